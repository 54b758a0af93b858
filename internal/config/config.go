package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFile  string `yaml:"log-file" env:"LOG_FILE" env-default:"tictactoe.log"`
	UI       UI     `yaml:"ui"`
}

type UI struct {
	Title      string `yaml:"title" env:"UI_TITLE" env-default:"Tic-Tac-Toe"`
	HideHelp   bool   `yaml:"hide-help" env:"UI_HIDE_HELP"`
	MarkXColor string `yaml:"mark-x-color" env:"UI_MARK_X_COLOR" env-default:"blue"`
	MarkOColor string `yaml:"mark-o-color" env:"UI_MARK_O_COLOR" env-default:"red"`
	WinColor   string `yaml:"win-color" env:"UI_WIN_COLOR" env-default:"green"`
}

// Load - reads the config file at path, falling back to environment
// variables and defaults when the file does not exist.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read config from env: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

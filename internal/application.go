package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/config"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/game"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/transport/tui"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/usecase"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	gameManager := usecase.NewGameManager(logger, game.New())
	renderer := tui.New(logger, conf.UI, gameManager)

	// run terminal renderer
	uiErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting terminal renderer", "session", gameManager.SessionID())
		uiErrCh <- renderer.Run()
	}()

	select {
	case err := <-uiErrCh:
		if err != nil {
			return fmt.Errorf("terminal renderer error: %w", err)
		}

		log.Info("Terminal renderer stopped, shutting down")
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		renderer.Stop()

		if err := <-uiErrCh; err != nil {
			return fmt.Errorf("terminal renderer error: %w", err)
		}

		return nil
	}
}

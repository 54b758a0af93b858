package usecase

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
)

type gameHistory interface {
	PlayMove(cell int) bool
	JumpTo(move int) bool
	Reset()
	View() entity.GameView
}

// GameManager turns renderer intents into history operations and notifies
// subscribers after every change. It is not safe for concurrent use: intents
// are expected one at a time from the renderer's event loop.
type GameManager struct {
	logger    *slog.Logger
	sessionID string

	history   gameHistory
	listeners []func(entity.GameView)
}

func NewGameManager(logger *slog.Logger, history gameHistory) *GameManager {
	sessionID := uuid.NewString()

	return &GameManager{
		logger:    logger.With("component", "game_manager", "session", sessionID),
		sessionID: sessionID,

		history: history,
	}
}

func (that *GameManager) SessionID() string {
	return that.sessionID
}

// Subscribe - registers a listener called with the new view after each
// accepted intent.
func (that *GameManager) Subscribe(listener func(entity.GameView)) {
	that.listeners = append(that.listeners, listener)
}

func (that *GameManager) View() entity.GameView {
	return that.history.View()
}

// Click - plays the cell for the player to move. Rejected clicks change
// nothing and notify nobody.
func (that *GameManager) Click(cell int) bool {
	if !that.history.PlayMove(cell) {
		return false
	}

	view := that.history.View()

	log := that.logger.With("method", "Click")
	log.Debug("move played", "cell", cell, "mark", string(view.Board[cell]), "move", view.Cursor)

	if view.Outcome.IsFinished() {
		if view.Outcome.IsWin() {
			log.Info("game finished", "winner", string(view.Outcome.Winner), "line", view.Outcome.Line[:], "moves", view.Cursor)
		} else {
			log.Info("game finished in a draw", "moves", view.Cursor)
		}
	}

	that.notify(view)

	return true
}

// Jump - shows an earlier or later snapshot without discarding any.
func (that *GameManager) Jump(move int) bool {
	if !that.history.JumpTo(move) {
		return false
	}

	view := that.history.View()
	that.logger.Debug("jumped to move", "method", "Jump", "move", move, "history_length", view.HistoryLength, "latest", view.IsLatest())

	that.notify(view)

	return true
}

func (that *GameManager) NewGame() {
	that.history.Reset()
	that.logger.Info("new game started", "method", "NewGame")

	that.notify(that.history.View())
}

func (that *GameManager) notify(view entity.GameView) {
	for _, listener := range that.listeners {
		listener(view)
	}
}

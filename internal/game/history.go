package game

import (
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/tictactoe"
)

// History holds every board snapshot of a game and a cursor selecting the
// displayed one. Snapshot 0 is always the empty board and each later snapshot
// adds exactly one mark to its predecessor.
//
// Invalid moves and jumps are ignored: the methods report false and leave the
// state as it was.
type History struct {
	snapshots []entity.Board
	cursor    int
}

func New() *History {
	return &History{
		snapshots: []entity.Board{{}},
		cursor:    0,
	}
}

// PlayMove - places the mark of the player to move on cell of the current
// snapshot. Snapshots after the cursor are discarded before the new one is
// appended.
func (that *History) PlayMove(cell int) bool {
	if !entity.IsValidCell(cell) {
		return false
	}

	current := that.Current()
	if !current[cell].IsEmpty() {
		return false
	}

	if !tictactoe.Evaluate(current).IsInProgress() {
		return false
	}

	next := current.With(cell, that.NextMark())

	that.snapshots = append(that.snapshots[:that.cursor+1], next)
	that.cursor = len(that.snapshots) - 1

	return true
}

// JumpTo - moves the cursor to an existing snapshot. Later snapshots are kept
// until the next move is played.
func (that *History) JumpTo(move int) bool {
	if move < 0 || move >= len(that.snapshots) {
		return false
	}

	that.cursor = move

	return true
}

func (that *History) Reset() {
	that.snapshots = []entity.Board{{}}
	that.cursor = 0
}

func (that *History) Current() entity.Board {
	return that.snapshots[that.cursor]
}

func (that *History) Outcome() entity.Outcome {
	return tictactoe.Evaluate(that.Current())
}

func (that *History) NextMark() entity.Mark {
	return tictactoe.NextMark(that.cursor)
}

func (that *History) Len() int {
	return len(that.snapshots)
}

func (that *History) Cursor() int {
	return that.cursor
}

func (that *History) Snapshot(move int) (entity.Board, bool) {
	if move < 0 || move >= len(that.snapshots) {
		return entity.Board{}, false
	}

	return that.snapshots[move], true
}

// Snapshots returns a copy of the whole history.
func (that *History) Snapshots() []entity.Board {
	return append([]entity.Board(nil), that.snapshots...)
}

func (that *History) View() entity.GameView {
	return entity.GameView{
		Board:         that.Current(),
		Outcome:       that.Outcome(),
		NextMark:      that.NextMark(),
		HistoryLength: that.Len(),
		Cursor:        that.cursor,
	}
}

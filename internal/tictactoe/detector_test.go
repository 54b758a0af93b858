package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	x = entity.MarkX
	o = entity.MarkO
	e = entity.EmptyCell
)

func TestEvaluate(t *testing.T) {
	t.Run("Empty board is in progress", func(t *testing.T) {
		// Given: an empty board
		board := entity.Board{}

		// When: evaluating the board
		outcome := Evaluate(board)

		// Then: the game is still in progress
		assert.Equal(t, entity.InProgress(), outcome)
	})

	t.Run("Top row of X wins", func(t *testing.T) {
		// Given: X holds the top row
		board := entity.Board{
			x, x, x,
			e, e, e,
			e, e, e,
		}

		// When: evaluating the board
		outcome := Evaluate(board)

		// Then: X wins on cells 0, 1, 2
		assert.Equal(t, entity.Win(x, [3]int{0, 1, 2}), outcome)
	})

	t.Run("Filled board without a line is a draw", func(t *testing.T) {
		// Given: a board that ended in a tie
		board := entity.Board{
			x, o, x,
			o, x, o,
			o, x, o,
		}

		// When: evaluating the board
		outcome := Evaluate(board)

		// Then: the game is a draw
		assert.Equal(t, entity.Draw(), outcome)
	})

	t.Run("Win on the last empty cell beats draw", func(t *testing.T) {
		// Given: a full board where X completed the \ diagonal
		board := entity.Board{
			x, o, x,
			o, x, o,
			o, x, x,
		}

		// When: evaluating the board
		outcome := Evaluate(board)

		// Then: X wins instead of a draw
		assert.Equal(t, entity.Win(x, [3]int{0, 4, 8}), outcome)
	})

	t.Run("Ongoing game with marks is in progress", func(t *testing.T) {
		board := entity.Board{
			x, o, x,
			e, o, e,
			x, e, e,
		}

		assert.Equal(t, entity.InProgress(), Evaluate(board))
	})
}

func TestEvaluate_EveryLine(t *testing.T) {
	for _, combo := range WinCombos {
		for _, mark := range []entity.Mark{x, o} {
			// Given: a board where only this line is filled
			var board entity.Board
			for _, cell := range combo {
				board[cell] = mark
			}

			// When: evaluating the board
			outcome := Evaluate(board)

			// Then: the mark wins on exactly that line
			require.Equal(t, entity.Win(mark, combo), outcome, "line %v mark %s", combo, mark)
		}
	}
}

func TestEvaluate_Priority(t *testing.T) {
	t.Run("Upper row before lower row", func(t *testing.T) {
		board := entity.Board{
			e, e, e,
			o, o, o,
			x, x, x,
		}

		assert.Equal(t, entity.Win(o, [3]int{3, 4, 5}), Evaluate(board))
	})

	t.Run("Row before column", func(t *testing.T) {
		board := entity.Board{
			o, o, o,
			o, e, e,
			o, e, e,
		}

		assert.Equal(t, entity.Win(o, [3]int{0, 1, 2}), Evaluate(board))
	})

	t.Run("Column before diagonal", func(t *testing.T) {
		board := entity.Board{
			x, e, e,
			x, x, e,
			x, e, x,
		}

		assert.Equal(t, entity.Win(x, [3]int{0, 3, 6}), Evaluate(board))
	})

	t.Run("Backslash diagonal before slash diagonal", func(t *testing.T) {
		board := entity.Board{
			x, e, x,
			e, x, e,
			x, e, x,
		}

		assert.Equal(t, entity.Win(x, [3]int{0, 4, 8}), Evaluate(board))
	})
}

func TestEvaluate_StableAfterWin(t *testing.T) {
	t.Run("Any filling of a top row win keeps the winner", func(t *testing.T) {
		// Given: X has won on the top row, cells 3..8 are free
		free := []int{3, 4, 5, 6, 7, 8}
		marks := []entity.Mark{e, x, o}

		combos := 1
		for range free {
			combos *= len(marks)
		}

		for n := 0; n < combos; n++ {
			board := entity.Board{x, x, x}

			// When: the free cells are filled with every combination of marks
			rest := n
			for _, cell := range free {
				board[cell] = marks[rest%len(marks)]
				rest /= len(marks)
			}

			// Then: X still wins on the top row
			require.Equal(t, entity.Win(x, [3]int{0, 1, 2}), Evaluate(board), "board %v", board)
		}
	})

	t.Run("Adding winner marks keeps the winner", func(t *testing.T) {
		// Given: X has won on the / diagonal after a legal game
		base := entity.Board{
			o, o, x,
			e, x, e,
			x, e, e,
		}
		require.Equal(t, entity.Win(x, [3]int{2, 4, 6}), Evaluate(base))

		free := []int{3, 5, 7, 8}

		for subset := 0; subset < 1<<len(free); subset++ {
			board := base

			// When: X marks are added on any subset of free cells
			for i, cell := range free {
				if subset&(1<<i) != 0 {
					board[cell] = x
				}
			}

			// Then: X remains the winner
			outcome := Evaluate(board)
			require.True(t, outcome.IsWin(), "board %v", board)
			assert.Equal(t, x, outcome.Winner)
		}
	})
}

func TestNextMark(t *testing.T) {
	assert.Equal(t, x, NextMark(0))
	assert.Equal(t, o, NextMark(1))
	assert.Equal(t, x, NextMark(4))
	assert.Equal(t, o, NextMark(7))
}

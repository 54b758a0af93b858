package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
)

const helpText = `How to Play: players take turns placing X and O. First to get three in a row wins!
1-9 play a cell   [ ] step through history   n new game   tab switch focus   q quit`

// statusText - the line shown above the board.
func statusText(view entity.GameView) string {
	switch {
	case view.Outcome.IsWin():
		return fmt.Sprintf("Winner: %s", view.Outcome.Winner)
	case view.Outcome.IsDraw():
		return "Draw!"
	default:
		return fmt.Sprintf("Next player: %s", view.NextMark)
	}
}

// moveLabel - history entry text for the snapshot at move.
func moveLabel(move int) string {
	if move == 0 {
		return "Game Start"
	}
	return fmt.Sprintf("Move #%d", move)
}

func cellLabel(mark entity.Mark) string {
	if mark.IsEmpty() {
		return " "
	}
	return string(mark)
}

type palette struct {
	markX tcell.Color
	markO tcell.Color
	win   tcell.Color
}

func newPalette(markX, markO, win string) palette {
	return palette{
		markX: tcell.GetColor(markX),
		markO: tcell.GetColor(markO),
		win:   tcell.GetColor(win),
	}
}

func (that palette) mark(mark entity.Mark) tcell.Color {
	switch mark {
	case entity.MarkX:
		return that.markX
	case entity.MarkO:
		return that.markO
	default:
		return tcell.ColorDefault
	}
}

// cellStyle - winning cells get the win colour as background.
func (that palette) cellStyle(view entity.GameView, cell int) tcell.Style {
	style := tcell.StyleDefault.Foreground(that.mark(view.Board[cell])).Bold(true)
	if view.Outcome.OnWinningLine(cell) {
		style = style.Background(that.win)
	}

	return style
}

// focusedCellStyle - the focused cell keeps its colours, reversed.
func (that palette) focusedCellStyle(view entity.GameView, cell int) tcell.Style {
	return that.cellStyle(view, cell).Reverse(true)
}

func (that palette) status(view entity.GameView) tcell.Color {
	if view.Outcome.IsWin() {
		return that.win
	}
	if view.Outcome.IsDraw() {
		return tcell.ColorDefault
	}
	return that.mark(view.NextMark)
}

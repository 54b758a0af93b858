package tui

import (
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/config"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
)

const (
	cellWidth  = 7
	cellHeight = 3
)

type uGame interface {
	Click(cell int) bool
	Jump(move int) bool
	NewGame()

	View() entity.GameView
	Subscribe(listener func(entity.GameView))
}

// Renderer draws game views in the terminal and forwards user input to the
// game as intents. It never changes game state itself.
type Renderer struct {
	logger *slog.Logger
	uGame  uGame
	colors palette

	app     *tview.Application
	cells   [entity.BoardSize]*tview.Button
	status  *tview.TextView
	history *tview.List
	newGame *tview.Button

	focusRing []tview.Primitive
	focused   int

	rendering bool
}

func New(logger *slog.Logger, conf config.UI, uGame uGame) *Renderer {
	renderer := &Renderer{
		logger: logger.With("component", "tui"),
		uGame:  uGame,
		colors: newPalette(conf.MarkXColor, conf.MarkOColor, conf.WinColor),

		app: tview.NewApplication(),
	}

	root := renderer.layout(conf)

	renderer.app.SetRoot(root, true)
	renderer.app.SetInputCapture(renderer.handleKey)
	renderer.focus(4)

	uGame.Subscribe(renderer.render)
	renderer.render(uGame.View())

	return renderer
}

// Run - blocks until the user quits or Stop is called.
func (that *Renderer) Run() error {
	that.logger.Info("terminal renderer started")

	if err := that.app.Run(); err != nil {
		return fmt.Errorf("failed to run terminal renderer: %w", err)
	}

	return nil
}

// Stop may be called from any goroutine.
func (that *Renderer) Stop() {
	that.app.Stop()
}

func (that *Renderer) layout(conf config.UI) tview.Primitive {
	board := tview.NewGrid().
		SetRows(cellHeight, cellHeight, cellHeight).
		SetColumns(cellWidth, cellWidth, cellWidth).
		SetBorders(true)

	for i := range that.cells {
		cell := i
		button := tview.NewButton(" ").SetSelectedFunc(func() {
			that.uGame.Click(cell)
		})
		that.cells[i] = button
		board.AddItem(button, i/3, i%3, 1, 1, 0, 0, false)
	}

	that.newGame = tview.NewButton("New Game").SetSelectedFunc(that.uGame.NewGame)

	that.history = tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true).
		SetChangedFunc(that.followHighlight).
		SetSelectedFunc(func(index int, _, _ string, _ rune) {
			that.uGame.Jump(index)
		})
	that.history.SetBorder(true).SetTitle(" Game History ")

	that.status = tview.NewTextView().SetTextAlign(tview.AlignCenter)

	title := tview.NewTextView().SetTextAlign(tview.AlignCenter).SetText(conf.Title)

	side := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(that.newGame, 1, 0, false).
		AddItem(that.history, 0, 1, false)

	boardWidth := 3*cellWidth + 4
	body := tview.NewFlex().
		AddItem(board, boardWidth, 0, false).
		AddItem(tview.NewBox(), 2, 0, false).
		AddItem(side, 0, 1, false)

	root := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(title, 1, 0, false).
		AddItem(that.status, 2, 0, false).
		AddItem(body, 0, 1, true)

	if !conf.HideHelp {
		root.AddItem(tview.NewTextView().SetText(helpText), 3, 0, false)
	}

	that.focusRing = make([]tview.Primitive, 0, len(that.cells)+2)
	for _, button := range that.cells {
		that.focusRing = append(that.focusRing, button)
	}
	that.focusRing = append(that.focusRing, that.newGame, that.history)

	return root
}

// render - redraws every widget from view. History entries depend only on
// their index, so the list is grown or shrunk instead of rebuilt.
func (that *Renderer) render(view entity.GameView) {
	that.rendering = true
	defer func() { that.rendering = false }()

	for i, button := range that.cells {
		button.SetLabel(cellLabel(view.Board[i]))
		button.SetStyle(that.colors.cellStyle(view, i))
		button.SetActivatedStyle(that.colors.focusedCellStyle(view, i))
	}

	that.status.SetText(statusText(view))
	that.status.SetTextColor(that.colors.status(view))

	for that.history.GetItemCount() > view.HistoryLength {
		that.history.RemoveItem(that.history.GetItemCount() - 1)
	}
	for move := that.history.GetItemCount(); move < view.HistoryLength; move++ {
		that.history.AddItem(moveLabel(move), "", 0, nil)
	}
	that.history.SetCurrentItem(view.Cursor)
}

// followHighlight - moving through the history list jumps to the highlighted
// move, so the board never shows a different snapshot than the list.
// The list also reports changes caused by render itself; those are skipped.
func (that *Renderer) followHighlight(index int, _, _ string, _ rune) {
	if that.rendering || index == that.uGame.View().Cursor {
		return
	}

	that.uGame.Jump(index)
}

func (that *Renderer) handleKey(event *tcell.EventKey) *tcell.EventKey {
	act, cell := actionFor(event)

	switch act {
	case actionClick:
		that.uGame.Click(cell)
	case actionStepBack:
		that.uGame.Jump(that.uGame.View().Cursor - 1)
	case actionStepForward:
		that.uGame.Jump(that.uGame.View().Cursor + 1)
	case actionNewGame:
		that.uGame.NewGame()
	case actionQuit:
		that.logger.Info("quit requested")
		that.Stop()
	case actionFocusNext:
		that.focus(that.focused + 1)
	case actionFocusPrev:
		that.focus(that.focused - 1)
	case actionNone:
		return event
	}

	return nil
}

func (that *Renderer) focus(index int) {
	count := len(that.focusRing)
	that.focused = ((index % count) + count) % count
	that.app.SetFocus(that.focusRing[that.focused])
}

package tictactoe

import "github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"

// WinCombos are checked in order: rows top to bottom, columns left to right,
// then the \ and / diagonals. The first match wins.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Evaluate - classifies the board as a win, a draw or a game in progress.
func Evaluate(board entity.Board) entity.Outcome {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if !a.IsEmpty() && a == b && b == c {
			return entity.Win(a, combo)
		}
	}

	if board.IsFull() {
		return entity.Draw()
	}

	return entity.InProgress()
}

// NextMark - X moves on even move indexes, O on odd ones.
func NextMark(moveIndex int) entity.Mark {
	if moveIndex%2 == 0 {
		return entity.MarkX
	}
	return entity.MarkO
}

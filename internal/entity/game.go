package entity

const (
	MarkX = Mark("X")
	MarkO = Mark("O")

	EmptyCell = Mark("")

	BoardSize = 9
)

// Mark is the content of a single board cell.
type Mark string

func (that Mark) IsEmpty() bool {
	return that == EmptyCell
}

// Board is one immutable snapshot of the 3x3 grid in row-major order.
// It is an array, so assignment and method calls always work on a copy.
type Board [BoardSize]Mark

// IsValidCell reports whether cell addresses a square on the board.
func IsValidCell(cell int) bool {
	return cell >= 0 && cell < BoardSize
}

// With returns a copy of the board with cell set to mark.
func (that Board) With(cell int, mark Mark) Board {
	that[cell] = mark
	return that
}

// IsFull - the game will continue until all the squares are full.
func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell.IsEmpty() {
			return false
		}
	}

	return true
}

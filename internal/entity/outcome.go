package entity

const (
	StatusInProgress = Status("in_progress")
	StatusWin        = Status("win")
	StatusDraw       = Status("draw")
)

type Status string

// Outcome classifies a board. Winner and Line are only set for StatusWin.
type Outcome struct {
	Status Status
	Winner Mark
	Line   [3]int
}

func InProgress() Outcome {
	return Outcome{Status: StatusInProgress}
}

func Win(mark Mark, line [3]int) Outcome {
	return Outcome{Status: StatusWin, Winner: mark, Line: line}
}

func Draw() Outcome {
	return Outcome{Status: StatusDraw}
}

func (that Outcome) IsInProgress() bool {
	return that.Status == StatusInProgress
}

func (that Outcome) IsWin() bool {
	return that.Status == StatusWin
}

func (that Outcome) IsDraw() bool {
	return that.Status == StatusDraw
}

func (that Outcome) IsFinished() bool {
	return that.IsWin() || that.IsDraw()
}

// OnWinningLine reports whether cell belongs to the winning triple.
func (that Outcome) OnWinningLine(cell int) bool {
	if !that.IsWin() {
		return false
	}

	for _, c := range that.Line {
		if c == cell {
			return true
		}
	}

	return false
}

package entity

// GameView is the read-only state handed to a renderer after every change.
type GameView struct {
	Board         Board
	Outcome       Outcome
	NextMark      Mark
	HistoryLength int
	Cursor        int
}

// IsLatest reports whether the cursor points at the newest snapshot.
func (that GameView) IsLatest() bool {
	return that.Cursor == that.HistoryLength-1
}

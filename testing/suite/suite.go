package suite

import (
	"log/slog"
	"os"
	"testing"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Recorder *Recorder
}

func New(t *testing.T) *Suite {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	return &Suite{
		T:        t,
		Logger:   logger,
		Recorder: &Recorder{},
	}
}

// Recorder collects every view passed to Record, in order.
type Recorder struct {
	views []entity.GameView
}

func (that *Recorder) Record(view entity.GameView) {
	that.views = append(that.views, view)
}

func (that *Recorder) Views() []entity.GameView {
	return append([]entity.GameView(nil), that.views...)
}

func (that *Recorder) Count() int {
	return len(that.views)
}

// Last returns the most recent view, or false if nothing was recorded.
func (that *Recorder) Last() (entity.GameView, bool) {
	if len(that.views) == 0 {
		return entity.GameView{}, false
	}

	return that.views[len(that.views)-1], true
}

func (that *Recorder) Reset() {
	that.views = nil
}

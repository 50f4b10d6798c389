package system

import (
	"time"

	"github.com/Bastczuak/bytepath/constant"
	"github.com/Bastczuak/bytepath/engine"
	"github.com/Bastczuak/bytepath/event"
	"github.com/Bastczuak/bytepath/vmath"
)

// TimeKeeperSystem derives the scaled simulation delta from the raw step
// duration. A player death opens a slow-motion window: simulation time runs
// at the floor speed and eases back to full speed over the window following
// a cubic curve. Every gameplay system downstream consumes the scaled
// delta; shake and flash stay on the raw delta so the death effects are not
// slowed by the slow motion they react to
type TimeKeeperSystem struct {
	reader event.ReaderID
}

// NewTimeKeeperSystem registers the system's event cursor
func NewTimeKeeperSystem(w *engine.World) *TimeKeeperSystem {
	return &TimeKeeperSystem{
		reader: w.Events.RegisterReader("time_keeper"),
	}
}

func (s *TimeKeeperSystem) Priority() int {
	return constant.PriorityTimeKeeper
}

func (s *TimeKeeperSystem) Update(w *engine.World) {
	tr := w.Resources.Time

	for _, ev := range w.Events.Read(s.reader) {
		if ev.Type == event.EventPlayerDeath {
			zero := time.Duration(0)
			tr.SlowDown = &zero
		}
	}

	raw := tr.RawDelta
	if tr.SlowDown == nil {
		tr.Delta = raw
		return
	}

	cfg := w.Resources.Config
	*tr.SlowDown += raw
	total := *tr.SlowDown
	if total > cfg.SlowDownDuration {
		tr.SlowDown = nil
		tr.Delta = raw
		return
	}

	easing := vmath.EaseInOutCubic(total.Seconds() / cfg.SlowDownDuration.Seconds())
	slowAmount := (1-easing)*cfg.SlowDownFloor + easing*1.0
	tr.Delta = time.Duration(float64(raw) * slowAmount)
}

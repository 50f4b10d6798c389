package component

import "time"

// Timer is a countdown/repeat primitive, distinct from Interpolation.
// It gates periodic spawns (repeating) and one-shot transitions such as the
// dead-projectile animation and the respawn delay (non-repeating)
type Timer struct {
	Elapsed   time.Duration
	Duration  time.Duration
	Count     int // Number of completed periods
	Finished  bool
	Repeating bool
}

// NewTimer returns a fresh timer for the given period
func NewTimer(duration time.Duration, repeating bool) Timer {
	return Timer{Duration: duration, Repeating: repeating}
}

// Tick advances the timer by delta. Finished becomes true on the tick where
// Elapsed first reaches Duration and Count increments once per finish event.
// A repeating timer resets its elapsed time immediately upon crossing, so
// the very next Tick resumes accumulation from zero; the Finished flag is
// cleared at the start of that next call. Only one finish event is produced
// per call regardless of delta size
func (t *Timer) Tick(delta time.Duration) {
	if t.Finished {
		if !t.Repeating {
			return
		}
		t.Finished = false
	}

	t.Elapsed += delta
	if t.Elapsed >= t.Duration {
		t.Elapsed = t.Duration
		t.Finished = true
		t.Count++
		if t.Repeating {
			t.Elapsed = 0
		}
	}
}

// Reset returns the timer to its initial state, keeping duration and repeat mode
func (t *Timer) Reset() {
	t.Elapsed = 0
	t.Finished = false
}

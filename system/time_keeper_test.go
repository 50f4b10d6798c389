package system

import (
	"testing"
	"time"

	"github.com/Bastczuak/bytepath/event"
)

func TestTimeKeeperPassthroughWithoutSlowDown(t *testing.T) {
	w := newTestWorld()
	sys := NewTimeKeeperSystem(w)

	setDelta(w, 16*time.Millisecond)
	sys.Update(w)

	if w.Resources.Time.Delta != 16*time.Millisecond {
		t.Errorf("Delta = %v, want the raw 16ms", w.Resources.Time.Delta)
	}
}

func TestTimeKeeperSlowsAfterDeath(t *testing.T) {
	w := newTestWorld()
	sys := NewTimeKeeperSystem(w)

	w.Events.Push(event.EventPlayerDeath, &event.PlayerDeathPayload{})

	raw := 16 * time.Millisecond
	setDelta(w, raw)
	sys.Update(w)

	scaled := w.Resources.Time.Delta
	if scaled >= raw {
		t.Fatalf("Delta = %v not slowed below raw %v", scaled, raw)
	}
	// Right after death the scale sits near the floor
	floor := time.Duration(float64(raw) * w.Resources.Config.SlowDownFloor)
	if scaled > floor*2 {
		t.Errorf("Delta = %v, want near the floor %v", scaled, floor)
	}
}

func TestTimeKeeperSpeedsBackUpMonotonically(t *testing.T) {
	w := newTestWorld()
	sys := NewTimeKeeperSystem(w)

	w.Events.Push(event.EventPlayerDeath, &event.PlayerDeathPayload{})

	raw := 50 * time.Millisecond
	prev := time.Duration(0)
	for i := 0; i < 49; i++ {
		setDelta(w, raw)
		sys.Update(w)
		if w.Resources.Time.Delta < prev {
			t.Fatalf("Delta regressed at step %d: %v < %v", i, w.Resources.Time.Delta, prev)
		}
		prev = w.Resources.Time.Delta
	}

	// At the exact end of the window the scale reaches 1 again
	setDelta(w, raw)
	sys.Update(w)
	if w.Resources.Time.Delta != raw {
		t.Errorf("Delta at the window end = %v, want %v", w.Resources.Time.Delta, raw)
	}

	// Past the window the accumulator is released
	setDelta(w, raw)
	sys.Update(w)
	if w.Resources.Time.Delta != raw {
		t.Errorf("Delta after the window = %v, want %v", w.Resources.Time.Delta, raw)
	}
	if w.Resources.Time.SlowDown != nil {
		t.Error("slow-down accumulator not cleared after the window")
	}
}

func TestTimeKeeperSecondDeathRestartsWindow(t *testing.T) {
	w := newTestWorld()
	sys := NewTimeKeeperSystem(w)

	w.Events.Push(event.EventPlayerDeath, &event.PlayerDeathPayload{})
	raw := 100 * time.Millisecond
	for i := 0; i < 10; i++ {
		setDelta(w, raw)
		sys.Update(w)
	}
	midway := w.Resources.Time.Delta

	// Dying again rewinds to the deepest slow-down
	w.Events.Push(event.EventPlayerDeath, &event.PlayerDeathPayload{})
	setDelta(w, raw)
	sys.Update(w)

	if w.Resources.Time.Delta >= midway {
		t.Errorf("Delta after second death = %v, want below the midway %v", w.Resources.Time.Delta, midway)
	}
}

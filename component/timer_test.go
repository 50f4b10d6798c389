package component

import (
	"testing"
	"time"
)

func TestTimerOneShot(t *testing.T) {
	timer := NewTimer(100*time.Millisecond, false)

	timer.Tick(60 * time.Millisecond)
	if timer.Finished {
		t.Fatal("finished before duration elapsed")
	}

	timer.Tick(60 * time.Millisecond)
	if !timer.Finished {
		t.Fatal("not finished after crossing duration")
	}
	if timer.Count != 1 {
		t.Errorf("Count = %d, want 1", timer.Count)
	}

	// A finished one-shot timer is inert
	timer.Tick(time.Second)
	if timer.Count != 1 {
		t.Errorf("Count after extra tick = %d, want 1", timer.Count)
	}
	if !timer.Finished {
		t.Error("Finished flag lost on one-shot timer")
	}
}

func TestTimerRepeatingResetsOnCrossing(t *testing.T) {
	timer := NewTimer(100*time.Millisecond, true)

	timer.Tick(100 * time.Millisecond)
	if !timer.Finished {
		t.Fatal("not finished on exact crossing")
	}
	if timer.Elapsed != 0 {
		t.Errorf("Elapsed = %v, want 0 after repeat reset", timer.Elapsed)
	}

	// Next tick clears Finished and resumes from zero
	timer.Tick(50 * time.Millisecond)
	if timer.Finished {
		t.Error("Finished not cleared on the next tick")
	}
	if timer.Elapsed != 50*time.Millisecond {
		t.Errorf("Elapsed = %v, want 50ms", timer.Elapsed)
	}

	timer.Tick(50 * time.Millisecond)
	if !timer.Finished || timer.Count != 2 {
		t.Errorf("second period: Finished=%v Count=%d, want true/2", timer.Finished, timer.Count)
	}
}

func TestTimerRepeatCountOverManySmallTicks(t *testing.T) {
	timer := NewTimer(100*time.Millisecond, true)

	// One full second in 10ms ticks crosses ten periods
	for i := 0; i < 100; i++ {
		timer.Tick(10 * time.Millisecond)
	}
	if timer.Count != 10 {
		t.Errorf("Count = %d, want 10", timer.Count)
	}
}

func TestTimerOneFinishPerTick(t *testing.T) {
	timer := NewTimer(10*time.Millisecond, true)

	// A delta spanning many periods still produces a single finish event
	timer.Tick(time.Second)
	if timer.Count != 1 {
		t.Errorf("Count = %d, want 1", timer.Count)
	}
}

func TestTimerReset(t *testing.T) {
	timer := NewTimer(100*time.Millisecond, false)
	timer.Tick(100 * time.Millisecond)

	timer.Reset()
	if timer.Finished || timer.Elapsed != 0 {
		t.Errorf("after Reset: Finished=%v Elapsed=%v, want false/0", timer.Finished, timer.Elapsed)
	}
	if timer.Duration != 100*time.Millisecond {
		t.Errorf("Reset changed duration to %v", timer.Duration)
	}
}

package system

import (
	"testing"
	"time"

	"github.com/Bastczuak/bytepath/event"
)

func TestShakeMovesCameraOnDeath(t *testing.T) {
	w := newTestWorld()
	sys := NewShakeSystem(w)
	w.Resources.Shake.Seed(1)

	setDelta(w, 16*time.Millisecond)
	sys.Update(w)
	if w.Resources.Camera.X != 0 || w.Resources.Camera.Y != 0 {
		t.Fatal("camera moved without a trigger")
	}

	w.Events.Push(event.EventPlayerDeath, &event.PlayerDeathPayload{})
	sys.Update(w)

	if w.Resources.Camera.X == 0 && w.Resources.Camera.Y == 0 {
		t.Error("camera did not move on the death step")
	}
}

func TestShakeConsumesRawTime(t *testing.T) {
	w := newTestWorld()
	sys := NewShakeSystem(w)
	w.Resources.Shake.Seed(1)

	w.Events.Push(event.EventPlayerDeath, &event.PlayerDeathPayload{})

	// Heavily slowed simulation time must not stretch the shake: raw steps
	// covering the duration wind it down regardless of the scaled delta
	steps := int(w.Resources.Shake.Duration/(16*time.Millisecond)) + 2
	for i := 0; i < steps; i++ {
		w.Resources.Time.RawDelta = 16 * time.Millisecond
		w.Resources.Time.Delta = time.Millisecond
		sys.Update(w)
	}

	if w.Resources.Shake.IsShaking {
		t.Error("shake outlived its raw-time duration")
	}
	if w.Resources.Camera.X != 0 || w.Resources.Camera.Y != 0 {
		t.Error("camera offset not reset after the shake ended")
	}
}

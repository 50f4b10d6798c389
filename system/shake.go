package system

import (
	"github.com/Bastczuak/bytepath/constant"
	"github.com/Bastczuak/bytepath/engine"
	"github.com/Bastczuak/bytepath/event"
)

// ShakeSystem triggers the noise-based camera shake on player death and
// advances it every step, writing the resulting offset to the camera.
// It runs on the raw delta: the shake reacting to the death must not be
// slowed by the death slow-motion window
type ShakeSystem struct {
	reader event.ReaderID
}

func NewShakeSystem(w *engine.World) *ShakeSystem {
	return &ShakeSystem{
		reader: w.Events.RegisterReader("shake"),
	}
}

func (s *ShakeSystem) Priority() int {
	return constant.PriorityShake
}

func (s *ShakeSystem) Update(w *engine.World) {
	shake := w.Resources.Shake

	for _, ev := range w.Events.Read(s.reader) {
		if ev.Type == event.EventPlayerDeath {
			shake.Trigger()
		}
	}

	x, y := shake.Advance(w.Resources.Time.RawDelta)
	w.Resources.Camera.X = x
	w.Resources.Camera.Y = y
}

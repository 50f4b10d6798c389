package system

import (
	"github.com/Bastczuak/bytepath/constant"
	"github.com/Bastczuak/bytepath/engine"
	"github.com/Bastczuak/bytepath/event"
)

// FlashSystem drives the full-screen death flash: a small frame counter set
// on player death and decremented once per step while positive. The counter
// runs in raw step frames, not scaled time
type FlashSystem struct {
	reader event.ReaderID
}

func NewFlashSystem(w *engine.World) *FlashSystem {
	return &FlashSystem{
		reader: w.Events.RegisterReader("flash"),
	}
}

func (s *FlashSystem) Priority() int {
	return constant.PriorityFlash
}

func (s *FlashSystem) Update(w *engine.World) {
	flash := w.Resources.Flash

	// Decrement before processing new deaths so the renderer observes the
	// full counter on the step the flash starts
	if flash.Frames > 0 {
		flash.Frames--
	}

	for _, ev := range w.Events.Read(s.reader) {
		if ev.Type == event.EventPlayerDeath {
			flash.Frames = constant.FlashFrames
		}
	}
}

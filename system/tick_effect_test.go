package system

import (
	"testing"

	"github.com/Bastczuak/bytepath/component"
	"github.com/Bastczuak/bytepath/constant"
)

func TestTickEffectPulsesAtPlayerPosition(t *testing.T) {
	w := newTestWorld()
	sys := NewTickEffectSystem(w)
	spawnTestPlayer(w)

	player, _ := w.PlayerEntity()
	w.Components.Position.Set(player, component.PositionComponent{X: 123, Y: 45})

	setDelta(w, constant.TickEffectPeriod)
	sys.Update(w)
	w.Commands.Apply(w)

	if n := w.Components.TickEffect.Count(); n != 1 {
		t.Fatalf("pulses after one period = %d, want 1", n)
	}

	// The pulse holds a snapshot of the ship position
	e := w.Components.TickEffect.All()[0]
	pos, _ := w.Components.Position.Get(e)
	if pos.X != 123 || pos.Y != 45 {
		t.Errorf("pulse at (%v, %v), want the ship position", pos.X, pos.Y)
	}
}

func TestTickEffectExpires(t *testing.T) {
	w := newTestWorld()
	sys := NewTickEffectSystem(w)
	spawnTestPlayer(w)

	setDelta(w, constant.TickEffectPeriod)
	sys.Update(w)
	w.Commands.Apply(w)
	e := w.Components.TickEffect.All()[0]

	setDelta(w, constant.TickEffectAnim)
	sys.Update(w)
	w.Commands.Apply(w)

	if w.Components.TickEffect.Has(e) {
		t.Error("pulse survived its animation")
	}
}

func TestTickEffectTimerPausedWithoutPlayer(t *testing.T) {
	w := newTestWorld()
	sys := NewTickEffectSystem(w)

	setDelta(w, constant.TickEffectPeriod)
	sys.Update(w)
	w.Commands.Apply(w)

	if n := w.Components.TickEffect.Count(); n != 0 {
		t.Errorf("pulses with no ship = %d, want 0", n)
	}
}

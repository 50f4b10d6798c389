package system

import (
	"testing"

	"github.com/Bastczuak/bytepath/component"
	"github.com/Bastczuak/bytepath/constant"
	"github.com/Bastczuak/bytepath/input"
)

func TestTrailSpawnsBehindShip(t *testing.T) {
	w := newTestWorld()
	sys := NewTrailEffectSystem(w)
	spawnTestPlayer(w)

	setDelta(w, constant.TrailSpawnPeriod)
	sys.Update(w)
	w.Commands.Apply(w)

	if n := w.Components.TrailEffect.Count(); n != 1 {
		t.Fatalf("trails after one period = %d, want 1", n)
	}

	// Non-boosting trail carries the idle color
	e := w.Components.TrailEffect.All()[0]
	sprite, _ := w.Components.Sprite.Get(e)
	if sprite.Color != constant.ColorNonBoost {
		t.Errorf("trail color = %v, want %v", sprite.Color, constant.ColorNonBoost)
	}
}

func TestTrailBoostColorWhileBoosting(t *testing.T) {
	w := newTestWorld()
	sys := NewTrailEffectSystem(w)
	spawnTestPlayer(w)

	w.Resources.Input.Pressed.Add(input.KeyBoost)
	setDelta(w, constant.TrailSpawnPeriod)
	sys.Update(w)
	w.Commands.Apply(w)

	e := w.Components.TrailEffect.All()[0]
	sprite, _ := w.Components.Sprite.Get(e)
	if sprite.Color != constant.ColorBoost {
		t.Errorf("trail color = %v, want %v", sprite.Color, constant.ColorBoost)
	}
}

func TestTrailShrinksAndExpires(t *testing.T) {
	w := newTestWorld()
	sys := NewTrailEffectSystem(w)
	spawnTestPlayer(w)

	setDelta(w, constant.TrailSpawnPeriod)
	sys.Update(w)
	w.Commands.Apply(w)
	e := w.Components.TrailEffect.All()[0]

	// Partway through: scale strictly below its starting value
	setDelta(w, constant.TrailShrink/2)
	sys.Update(w)
	sprite, _ := w.Components.Sprite.Get(e)
	if sprite.Scale >= 1 || sprite.Scale <= 0 {
		t.Errorf("mid-life scale = %v, want within (0, 1)", sprite.Scale)
	}

	// Past the shrink duration the particle is gone
	setDelta(w, constant.TrailShrink)
	sys.Update(w)
	w.Commands.Apply(w)
	if w.Components.TrailEffect.Has(e) {
		t.Error("trail survived its shrink animation")
	}
}

func TestTrailSuppressedWithoutPlayer(t *testing.T) {
	w := newTestWorld()
	sys := NewTrailEffectSystem(w)

	// A leftover trail from before the death
	e := w.CreateEntity()
	w.Components.Position.Set(e, component.PositionComponent{X: 10, Y: 10})
	w.Components.TrailEffect.Set(e, component.TrailEffectComponent{})
	w.Components.Sprite.Set(e, component.SpriteComponent{Kind: component.SpriteTrail})

	setDelta(w, constant.TrailSpawnPeriod)
	sys.Update(w)
	w.Commands.Apply(w)

	if w.Components.TrailEffect.Count() != 0 {
		t.Error("trails not cleaned up while no player exists")
	}

	// And the spawner stays silent
	setDelta(w, constant.TrailSpawnPeriod)
	sys.Update(w)
	w.Commands.Apply(w)
	if w.Components.TrailEffect.Count() != 0 {
		t.Error("trail spawned with no player to follow")
	}
}

package system

import (
	"math"
	"testing"

	"github.com/Bastczuak/bytepath/component"
	"github.com/Bastczuak/bytepath/constant"
	"github.com/Bastczuak/bytepath/input"
	"github.com/Bastczuak/bytepath/vmath"
)

func TestShootingFiresOnTimer(t *testing.T) {
	w := newTestWorld()
	sys := NewShootingSystem(w)
	spawnTestPlayer(w)

	// Before the period: nothing
	setDelta(w, constant.ProjectileSpawnPeriod/2)
	sys.Update(w)
	w.Commands.Apply(w)
	if n := w.Components.Projectile.Count(); n != 0 {
		t.Fatalf("projectiles before the period = %d, want 0", n)
	}

	setDelta(w, constant.ProjectileSpawnPeriod/2)
	sys.Update(w)
	w.Commands.Apply(w)

	if n := w.Components.Projectile.Count(); n != 1 {
		t.Fatalf("projectiles = %d, want 1", n)
	}
	if n := w.Components.ShootEffect.Count(); n != 1 {
		t.Errorf("muzzle effects = %d, want 1", n)
	}

	// The projectile starts ahead of the ship along its heading
	player, _ := w.PlayerEntity()
	playerPos, _ := w.Components.Position.Get(player)
	angle, _ := w.Components.Angle.Get(player)
	hx, hy := vmath.Heading(angle.Radians)

	e := w.Components.Projectile.All()[0]
	pos, _ := w.Components.Position.Get(e)
	wantX := playerPos.X + hx*constant.ProjectileSpawnOffset
	wantY := playerPos.Y + hy*constant.ProjectileSpawnOffset
	if math.Abs(pos.X-wantX) > 1e-9 || math.Abs(pos.Y-wantY) > 1e-9 {
		t.Errorf("projectile at (%v, %v), want (%v, %v)", pos.X, pos.Y, wantX, wantY)
	}
}

func TestShootingFanFiresThree(t *testing.T) {
	w := newTestWorld()
	sys := NewShootingSystem(w)
	spawnTestPlayer(w)

	w.Resources.Input.Pressed.Add(input.KeyFan)
	setDelta(w, constant.ProjectileSpawnPeriod)
	sys.Update(w)
	w.Commands.Apply(w)

	if n := w.Components.Projectile.Count(); n != 3 {
		t.Fatalf("fan projectiles = %d, want 3", n)
	}

	// Angles spread symmetrically around the ship heading
	player, _ := w.PlayerEntity()
	heading, _ := w.Components.Angle.Get(player)
	var offsets []float64
	for _, e := range w.Components.Projectile.All() {
		angle, _ := w.Components.Angle.Get(e)
		hx, hy := vmath.Heading(angle.Radians)
		px, py := vmath.Heading(heading.Radians)
		offsets = append(offsets, vmath.AngleBetween(hx, hy, px, py))
	}

	center, spread := 0, 0
	for _, off := range offsets {
		switch {
		case off < 1e-9:
			center++
		case math.Abs(off-constant.ProjectileFanAngle) < 1e-9:
			spread++
		default:
			t.Errorf("unexpected fan offset %v", off)
		}
	}
	if center != 1 || spread != 2 {
		t.Errorf("fan shape: %d centered, %d spread, want 1/2", center, spread)
	}
}

func TestShootingSilentWithoutPlayer(t *testing.T) {
	w := newTestWorld()
	sys := NewShootingSystem(w)

	setDelta(w, constant.ProjectileSpawnPeriod)
	sys.Update(w)
	w.Commands.Apply(w)

	if n := w.Components.Projectile.Count(); n != 0 {
		t.Errorf("projectiles with no ship = %d, want 0", n)
	}
}

func TestMuzzleEffectShrinksAndExpires(t *testing.T) {
	w := newTestWorld()
	sys := NewShootingSystem(w)

	e := w.CreateEntity()
	w.Components.Position.Set(e, component.PositionComponent{X: 10, Y: 10})
	w.Components.ShootEffect.Set(e, component.ShootEffectComponent{
		Effect: component.NewInterpolation(
			constant.ShootEffectAnim, vmath.EasingLinear, false,
			component.BeginEnd{Begin: 1, End: 0},
		),
	})
	w.Components.Sprite.Set(e, component.SpriteComponent{Kind: component.SpriteShootEffect, Scale: 1})

	setDelta(w, constant.ShootEffectAnim/2)
	sys.Update(w)
	sprite, _ := w.Components.Sprite.Get(e)
	if math.Abs(sprite.Scale-0.5) > 1e-9 {
		t.Errorf("mid-life scale = %v, want 0.5", sprite.Scale)
	}

	setDelta(w, constant.ShootEffectAnim)
	sys.Update(w)
	w.Commands.Apply(w)
	if w.Components.ShootEffect.Has(e) {
		t.Error("muzzle effect survived its animation")
	}
}

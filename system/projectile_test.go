package system

import (
	"math"
	"testing"
	"time"

	"github.com/Bastczuak/bytepath/component"
	"github.com/Bastczuak/bytepath/constant"
	"github.com/Bastczuak/bytepath/core"
	"github.com/Bastczuak/bytepath/engine"
)

func spawnTestProjectile(w *engine.World, x, y, angle float64) core.Entity {
	e := w.CreateEntity()
	w.Components.Position.Set(e, component.PositionComponent{X: x, Y: y})
	w.Components.Angle.Set(e, component.AngleComponent{Radians: angle})
	w.Components.Projectile.Set(e, component.ProjectileComponent{Speed: constant.ProjectileSpeed})
	w.Components.Sprite.Set(e, component.SpriteComponent{Kind: component.SpriteProjectile})
	return e
}

func TestProjectileMovesAlongHeading(t *testing.T) {
	w := newTestWorld()
	sys := NewProjectileSystem(w)
	e := spawnTestProjectile(w, 100, 100, 0)

	setDelta(w, 500*time.Millisecond)
	sys.Update(w)

	pos, _ := w.Components.Position.Get(e)
	wantX := 100 + constant.ProjectileSpeed*0.5
	if math.Abs(pos.X-wantX) > 1e-9 || math.Abs(pos.Y-100) > 1e-9 {
		t.Errorf("pos = (%v, %v), want (%v, 100)", pos.X, pos.Y, wantX)
	}
	if w.Commands.Pending() != 0 {
		t.Error("in-bounds projectile queued a command")
	}
}

func TestProjectileDiesPastBoundaryWithClampedAnimation(t *testing.T) {
	w := newTestWorld()
	projectiles := NewProjectileSystem(w)
	deaths := NewProjectileDeathSystem(w)

	e := spawnTestProjectile(w, constant.ScreenWidth-2, constant.ScreenHeight/2, 0)

	// Step 1: the projectile crosses the right edge entirely
	setDelta(w, 100*time.Millisecond)
	projectiles.Update(w)
	deaths.Update(w)
	w.Commands.Apply(w)

	if w.Components.Projectile.Has(e) {
		t.Fatal("projectile survived leaving the screen")
	}
	if n := w.Components.DeadProjectile.Count(); n != 1 {
		t.Fatalf("dead projectiles = %d, want 1", n)
	}

	// The animation spawns at the boundary-clamped position
	dead := w.Components.DeadProjectile.All()[0]
	pos, _ := w.Components.Position.Get(dead)
	wantX := constant.ScreenWidth - constant.ProjectileRadius
	if math.Abs(pos.X-wantX) > 1e-9 {
		t.Errorf("dead projectile X = %v, want clamped %v", pos.X, wantX)
	}
}

func TestDeadProjectileTwoFrameLifecycle(t *testing.T) {
	w := newTestWorld()
	sys := NewProjectileDeathSystem(w)

	spawnDeadProjectile(w, 50, 50)
	w.Commands.Apply(w)
	e := w.Components.DeadProjectile.All()[0]

	// First half of the animation: frame 0
	setDelta(w, constant.DeadProjectileAnim/2-time.Millisecond)
	sys.Update(w)
	sprite, _ := w.Components.Sprite.Get(e)
	if sprite.Frame != 0 {
		t.Errorf("Frame = %d in the first half, want 0", sprite.Frame)
	}

	// Second half: frame 1
	setDelta(w, constant.DeadProjectileAnim/2)
	sys.Update(w)
	sprite, _ = w.Components.Sprite.Get(e)
	if sprite.Frame != 1 {
		t.Errorf("Frame = %d in the second half, want 1", sprite.Frame)
	}

	// Past the timer: despawned at the barrier
	setDelta(w, constant.DeadProjectileAnim)
	sys.Update(w)
	w.Commands.Apply(w)
	if w.Components.DeadProjectile.Has(e) {
		t.Error("dead projectile survived its timer")
	}
}

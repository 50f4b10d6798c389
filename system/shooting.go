package system

import (
	"time"

	"github.com/Bastczuak/bytepath/component"
	"github.com/Bastczuak/bytepath/constant"
	"github.com/Bastczuak/bytepath/core"
	"github.com/Bastczuak/bytepath/engine"
	"github.com/Bastczuak/bytepath/input"
	"github.com/Bastczuak/bytepath/vmath"
)

// ShootingSystem fires the ship's weapon on a repeating spawn timer: one
// projectile ahead of the ship, or a three-projectile fan while the fan key
// is held, plus the brief muzzle effect at the spawn offset. It also
// animates live muzzle effects to their end of life
type ShootingSystem struct{}

func NewShootingSystem(w *engine.World) *ShootingSystem {
	return &ShootingSystem{}
}

func (s *ShootingSystem) Priority() int {
	return constant.PriorityShooting
}

func (s *ShootingSystem) Update(w *engine.World) {
	dt := w.Resources.Time.Delta
	s.animateMuzzle(w, dt)

	entity, ok := w.PlayerEntity()
	if !ok {
		return
	}

	timer := &w.Resources.Spawn.Projectile
	timer.Tick(dt)
	if !timer.Finished {
		return
	}

	pos, _ := w.Components.Position.Get(entity)
	angle, _ := w.Components.Angle.Get(entity)

	hx, hy := vmath.Heading(angle.Radians)
	muzzleX := pos.X + hx*constant.ProjectileSpawnOffset
	muzzleY := pos.Y + hy*constant.ProjectileSpawnOffset

	spawnAngles := []float64{angle.Radians}
	if w.Resources.Input.Pressed.Contains(input.KeyFan) {
		spawnAngles = []float64{
			angle.Radians - constant.ProjectileFanAngle,
			angle.Radians,
			angle.Radians + constant.ProjectileFanAngle,
		}
	}

	for _, a := range spawnAngles {
		spawnProjectile(w, muzzleX, muzzleY, a)
	}
	spawnMuzzleEffect(w, muzzleX, muzzleY, angle.Radians)
}

// animateMuzzle shrinks live muzzle effects and despawns the finished ones
func (s *ShootingSystem) animateMuzzle(w *engine.World, dt time.Duration) {
	values := make([]float64, 1)
	for _, e := range w.Components.ShootEffect.All() {
		effect, _ := w.Components.ShootEffect.Get(e)
		finished := effect.Effect.EvalInto(dt, values)

		if sprite, ok := w.Components.Sprite.Get(e); ok {
			sprite.Scale = values[0]
			w.Components.Sprite.Set(e, sprite)
		}
		w.Components.ShootEffect.Set(e, effect)

		if finished {
			w.Commands.Despawn(e)
		}
	}
}

func spawnProjectile(w *engine.World, x, y, angle float64) {
	w.Commands.Spawn(func(w *engine.World, e core.Entity) {
		w.Components.Position.Set(e, component.PositionComponent{X: x, Y: y})
		w.Components.Angle.Set(e, component.AngleComponent{Radians: angle})
		w.Components.Projectile.Set(e, component.ProjectileComponent{Speed: constant.ProjectileSpeed})
		w.Components.Sprite.Set(e, component.SpriteComponent{
			Kind:     component.SpriteProjectile,
			Z:        constant.ZProjectile,
			Scale:    1,
			Rotation: angle,
			Color:    constant.ColorDefault,
		})
	})
}

func spawnMuzzleEffect(w *engine.World, x, y, angle float64) {
	w.Commands.Spawn(func(w *engine.World, e core.Entity) {
		w.Components.Position.Set(e, component.PositionComponent{X: x, Y: y})
		w.Components.ShootEffect.Set(e, component.ShootEffectComponent{
			Effect: component.NewInterpolation(
				constant.ShootEffectAnim, vmath.EasingLinear, false,
				component.BeginEnd{Begin: 1, End: 0},
			),
		})
		w.Components.Sprite.Set(e, component.SpriteComponent{
			Kind:     component.SpriteShootEffect,
			Z:        constant.ZShootEffect,
			Scale:    1,
			Rotation: angle,
			Color:    constant.ColorDefault,
		})
	})
}

package system

import (
	"github.com/Bastczuak/bytepath/component"
	"github.com/Bastczuak/bytepath/constant"
	"github.com/Bastczuak/bytepath/core"
	"github.com/Bastczuak/bytepath/engine"
	"github.com/Bastczuak/bytepath/event"
)

// ProjectileDeathSystem spawns the two-frame boundary animation where a
// projectile left the screen and ages it out: the sprite switches to its
// second frame halfway through the timer and the entity despawns when the
// timer finishes
type ProjectileDeathSystem struct {
	reader event.ReaderID
}

func NewProjectileDeathSystem(w *engine.World) *ProjectileDeathSystem {
	return &ProjectileDeathSystem{
		reader: w.Events.RegisterReader("projectile_death"),
	}
}

func (s *ProjectileDeathSystem) Priority() int {
	return constant.PriorityProjectileDeath
}

func (s *ProjectileDeathSystem) Update(w *engine.World) {
	for _, ev := range w.Events.Read(s.reader) {
		if ev.Type != event.EventProjectileDeath {
			continue
		}
		if payload, ok := ev.Payload.(*event.ProjectileDeathPayload); ok {
			spawnDeadProjectile(w, payload.X, payload.Y)
		}
	}

	dt := w.Resources.Time.Delta
	for _, e := range w.Components.DeadProjectile.All() {
		dead, _ := w.Components.DeadProjectile.Get(e)
		dead.Timer.Tick(dt)

		if sprite, ok := w.Components.Sprite.Get(e); ok {
			frame := 0
			if dead.Timer.Elapsed >= dead.Timer.Duration/2 || dead.Timer.Finished {
				frame = 1
			}
			if frame != sprite.Frame {
				sprite.Frame = frame
				w.Components.Sprite.Set(e, sprite)
			}
		}

		if dead.Timer.Finished {
			w.Commands.Despawn(e)
			continue
		}
		w.Components.DeadProjectile.Set(e, dead)
	}
}

func spawnDeadProjectile(w *engine.World, x, y float64) {
	w.Commands.Spawn(func(w *engine.World, e core.Entity) {
		w.Components.Position.Set(e, component.PositionComponent{X: x, Y: y})
		w.Components.DeadProjectile.Set(e, component.DeadProjectileComponent{
			Timer: component.NewTimer(constant.DeadProjectileAnim, false),
		})
		w.Components.Sprite.Set(e, component.SpriteComponent{
			Kind:  component.SpriteDeadProjectile,
			Z:     constant.ZDeadProjectile,
			Scale: 1,
			Color: constant.ColorDeath,
		})
	})
}

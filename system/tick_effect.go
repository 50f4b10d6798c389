package system

import (
	"github.com/Bastczuak/bytepath/component"
	"github.com/Bastczuak/bytepath/constant"
	"github.com/Bastczuak/bytepath/core"
	"github.com/Bastczuak/bytepath/engine"
	"github.com/Bastczuak/bytepath/vmath"
)

// TickEffectSystem pulses a short-lived shape over the ship on a slow
// periodic timer. The pulse entity holds a snapshot of the ship position;
// the tween shrinks it and expiry despawns it
type TickEffectSystem struct{}

func NewTickEffectSystem(w *engine.World) *TickEffectSystem {
	return &TickEffectSystem{}
}

func (s *TickEffectSystem) Priority() int {
	return constant.PriorityTickEffect
}

func (s *TickEffectSystem) Update(w *engine.World) {
	dt := w.Resources.Time.Delta

	if entity, ok := w.PlayerEntity(); ok {
		timer := &w.Resources.Spawn.TickEffect
		timer.Tick(dt)
		if timer.Finished {
			pos, _ := w.Components.Position.Get(entity)
			spawnTickEffect(w, pos.X, pos.Y)
		}
	}

	values := make([]float64, 1)
	for _, e := range w.Components.TickEffect.All() {
		effect, _ := w.Components.TickEffect.Get(e)
		finished := effect.Effect.EvalInto(dt, values)

		if sprite, ok := w.Components.Sprite.Get(e); ok {
			sprite.Scale = values[0]
			w.Components.Sprite.Set(e, sprite)
		}
		w.Components.TickEffect.Set(e, effect)

		if finished {
			w.Commands.Despawn(e)
		}
	}
}

func spawnTickEffect(w *engine.World, x, y float64) {
	w.Commands.Spawn(func(w *engine.World, e core.Entity) {
		w.Components.Position.Set(e, component.PositionComponent{X: x, Y: y})
		w.Components.TickEffect.Set(e, component.TickEffectComponent{
			Effect: component.NewInterpolation(
				constant.TickEffectAnim, vmath.EasingLinear, false,
				component.BeginEnd{Begin: 1, End: 0},
			),
		})
		w.Components.Sprite.Set(e, component.SpriteComponent{
			Kind:  component.SpriteTickEffect,
			Z:     constant.ZTickEffect,
			Scale: 1,
			Color: constant.ColorDefault,
		})
	})
}

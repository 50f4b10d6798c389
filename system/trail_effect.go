package system

import (
	"github.com/Bastczuak/bytepath/component"
	"github.com/Bastczuak/bytepath/constant"
	"github.com/Bastczuak/bytepath/core"
	"github.com/Bastczuak/bytepath/engine"
	"github.com/Bastczuak/bytepath/input"
	"github.com/Bastczuak/bytepath/vmath"
)

// TrailEffectSystem lays shrinking trail particles behind the ship on a
// fast repeating timer. Trail color follows the boost state at spawn time.
// When no player exists the spawner is suppressed entirely and any live
// trail particles are cleaned up, so no orphaned spawn loop survives death
type TrailEffectSystem struct{}

func NewTrailEffectSystem(w *engine.World) *TrailEffectSystem {
	return &TrailEffectSystem{}
}

func (s *TrailEffectSystem) Priority() int {
	return constant.PriorityTrailEffect
}

func (s *TrailEffectSystem) Update(w *engine.World) {
	dt := w.Resources.Time.Delta

	entity, hasPlayer := w.PlayerEntity()
	if !hasPlayer {
		for _, e := range w.Components.TrailEffect.All() {
			w.Commands.Despawn(e)
		}
		return
	}

	timer := &w.Resources.Spawn.Trail
	timer.Tick(dt)
	if timer.Finished {
		s.spawnTrail(w, entity)
	}

	values := make([]float64, 1)
	for _, e := range w.Components.TrailEffect.All() {
		trail, _ := w.Components.TrailEffect.Get(e)
		finished := trail.Effect.EvalInto(dt, values)

		if sprite, ok := w.Components.Sprite.Get(e); ok {
			sprite.Scale = values[0]
			w.Components.Sprite.Set(e, sprite)
		}
		w.Components.TrailEffect.Set(e, trail)

		if finished {
			w.Commands.Despawn(e)
		}
	}
}

func (s *TrailEffectSystem) spawnTrail(w *engine.World, player core.Entity) {
	pos, _ := w.Components.Position.Get(player)
	angle, _ := w.Components.Angle.Get(player)

	keys := w.Resources.Input.Pressed
	boosting := false
	if boost, ok := w.Components.Boost.Get(player); ok && boost.CanBoost() {
		boosting = keys.Contains(input.KeyBoost) || keys.Contains(input.KeyBrake)
	}

	hx, hy := vmath.Heading(angle.Radians)
	x := pos.X - hx*constant.PlayerRadius
	y := pos.Y - hy*constant.PlayerRadius

	color := constant.ColorNonBoost
	if boosting {
		color = constant.ColorBoost
	}

	w.Commands.Spawn(func(w *engine.World, e core.Entity) {
		w.Components.Position.Set(e, component.PositionComponent{X: x, Y: y})
		w.Components.TrailEffect.Set(e, component.TrailEffectComponent{
			Boosting: boosting,
			Effect: component.NewInterpolation(
				constant.TrailShrink, vmath.EasingInOutCubic, false,
				component.BeginEnd{Begin: 1, End: 0},
			),
		})
		w.Components.Sprite.Set(e, component.SpriteComponent{
			Kind:  component.SpriteTrail,
			Z:     constant.ZTrail,
			Scale: 1,
			Color: color,
		})
	})
}

package system

import (
	"math/rand"

	"github.com/Bastczuak/bytepath/component"
	"github.com/Bastczuak/bytepath/constant"
	"github.com/Bastczuak/bytepath/core"
	"github.com/Bastczuak/bytepath/engine"
	"github.com/Bastczuak/bytepath/vmath"
)

// spawnExplosionBurst queues a radial burst of shrinking line particles at
// the given position, used when a pickup is collected
func spawnExplosionBurst(w *engine.World, rng *rand.Rand, x, y float64, color core.RGB) {
	for i := 0; i < constant.ExplosionLines; i++ {
		angle := rng.Float64() * vmath.TwoPi
		spawnLineParticle(w, x, y, angle, color)
	}
}

func spawnLineParticle(w *engine.World, x, y, angle float64, color core.RGB) {
	w.Commands.Spawn(func(w *engine.World, e core.Entity) {
		w.Components.Position.Set(e, component.PositionComponent{X: x, Y: y})
		w.Components.Angle.Set(e, component.AngleComponent{Radians: angle})
		w.Components.LineParticle.Set(e, component.LineParticleComponent{
			Length: constant.ExplosionLineLen,
			Speed:  constant.ExplosionSpeed,
			Effect: component.NewInterpolation(
				constant.ExplosionLineTime, vmath.EasingOutSine, false,
				component.BeginEnd{Begin: constant.ExplosionLineLen, End: 0},
			),
		})
		w.Components.Sprite.Set(e, component.SpriteComponent{
			Kind:  component.SpriteLine,
			Z:     constant.ZLineParticle,
			Scale: 1,
			Color: color,
		})
	})
}

package system

import (
	"github.com/Bastczuak/bytepath/constant"
	"github.com/Bastczuak/bytepath/engine"
	"github.com/Bastczuak/bytepath/vmath"
)

// LineParticleSystem flies explosion-burst lines outward along their angle
// while the tween shrinks their length to zero, then despawns them
type LineParticleSystem struct{}

func NewLineParticleSystem(w *engine.World) *LineParticleSystem {
	return &LineParticleSystem{}
}

func (s *LineParticleSystem) Priority() int {
	return constant.PriorityLineParticle
}

func (s *LineParticleSystem) Update(w *engine.World) {
	dt := w.Resources.Time.Delta
	dtSec := dt.Seconds()
	values := make([]float64, 1)

	for _, e := range w.Components.LineParticle.All() {
		particle, _ := w.Components.LineParticle.Get(e)
		pos, ok := w.Components.Position.Get(e)
		if !ok {
			continue
		}
		angle, _ := w.Components.Angle.Get(e)

		hx, hy := vmath.Heading(angle.Radians)
		pos.X += hx * particle.Speed * dtSec
		pos.Y += hy * particle.Speed * dtSec
		w.Components.Position.Set(e, pos)

		finished := particle.Effect.EvalInto(dt, values)
		particle.Length = values[0]
		w.Components.LineParticle.Set(e, particle)

		if finished {
			w.Commands.Despawn(e)
		}
	}
}

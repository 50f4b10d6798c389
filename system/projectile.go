package system

import (
	"github.com/Bastczuak/bytepath/constant"
	"github.com/Bastczuak/bytepath/engine"
	"github.com/Bastczuak/bytepath/event"
	"github.com/Bastczuak/bytepath/vmath"
)

// ProjectileSystem advances every projectile along its own heading. A
// projectile whose bounding box fully exits the screen is despawned at the
// step barrier and a projectile-death event carries the boundary-clamped
// position for the death animation
type ProjectileSystem struct{}

func NewProjectileSystem(w *engine.World) *ProjectileSystem {
	return &ProjectileSystem{}
}

func (s *ProjectileSystem) Priority() int {
	return constant.PriorityProjectile
}

func (s *ProjectileSystem) Update(w *engine.World) {
	dt := w.Resources.Time.Delta.Seconds()
	cfg := w.Resources.Config
	r := constant.ProjectileRadius

	for _, e := range w.Components.Projectile.All() {
		projectile, _ := w.Components.Projectile.Get(e)
		pos, ok := w.Components.Position.Get(e)
		if !ok {
			continue
		}
		angle, _ := w.Components.Angle.Get(e)

		hx, hy := vmath.Heading(angle.Radians)
		pos.X += hx * projectile.Speed * dt
		pos.Y += hy * projectile.Speed * dt
		w.Components.Position.Set(e, pos)

		if pos.X+r < 0 || pos.X-r > cfg.ScreenWidth || pos.Y+r < 0 || pos.Y-r > cfg.ScreenHeight {
			w.Commands.Despawn(e)
			w.Events.Push(event.EventProjectileDeath, &event.ProjectileDeathPayload{
				X: vmath.Clamp(pos.X, r, cfg.ScreenWidth-r),
				Y: vmath.Clamp(pos.Y, r, cfg.ScreenHeight-r),
			})
		}
	}
}

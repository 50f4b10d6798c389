package system

import (
	"math/rand"
	"time"

	"github.com/Bastczuak/bytepath/component"
	"github.com/Bastczuak/bytepath/constant"
	"github.com/Bastczuak/bytepath/core"
	"github.com/Bastczuak/bytepath/engine"
	"github.com/Bastczuak/bytepath/vmath"
)

// BoostPickupSystem spawns boost refills on a periodic timer. They travel
// in a straight line while spinning in place; touching the ship refills its
// boost resource and bursts the pickup, drifting off screen despawns it
type BoostPickupSystem struct {
	rng *rand.Rand
}

func NewBoostPickupSystem(w *engine.World) *BoostPickupSystem {
	return &BoostPickupSystem{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Seed makes spawn positions and burst angles deterministic for tests
func (s *BoostPickupSystem) Seed(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
}

func (s *BoostPickupSystem) Priority() int {
	return constant.PriorityBoostPickup
}

func (s *BoostPickupSystem) Update(w *engine.World) {
	dt := w.Resources.Time.Delta
	dtSec := dt.Seconds()

	timer := &w.Resources.Spawn.BoostPickup
	timer.Tick(dt)
	if timer.Finished {
		s.spawnPickup(w)
	}

	playerEntity, hasPlayer := w.PlayerEntity()
	var playerPos component.PositionComponent
	if hasPlayer {
		playerPos, _ = w.Components.Position.Get(playerEntity)
	}

	cfg := w.Resources.Config
	r := constant.PickupRadius

	for _, e := range w.Components.BoostPickup.All() {
		pickup, _ := w.Components.BoostPickup.Get(e)
		pos, ok := w.Components.Position.Get(e)
		if !ok {
			continue
		}
		angle, _ := w.Components.Angle.Get(e)

		hx, hy := vmath.Heading(angle.Radians)
		pos.X += hx * constant.BoostPickupSpeed * dtSec
		pos.Y += hy * constant.BoostPickupSpeed * dtSec
		w.Components.Position.Set(e, pos)

		if spin, hasSpin := w.Components.Spin.Get(e); hasSpin {
			spin.Radians = vmath.WrapAngle(spin.Radians + spin.Velocity*dtSec)
			w.Components.Spin.Set(e, spin)
			if sprite, hasSprite := w.Components.Sprite.Get(e); hasSprite {
				sprite.Rotation = spin.Radians
				w.Components.Sprite.Set(e, sprite)
			}
		}

		if hasPlayer {
			dx, dy := playerPos.X-pos.X, playerPos.Y-pos.Y
			if vmath.Magnitude(dx, dy) <= constant.BoostPickupRange {
				if boost, hasBoost := w.Components.Boost.Get(playerEntity); hasBoost {
					boost.Current += pickup.Amount
					if boost.Current > boost.Max {
						boost.Current = boost.Max
					}
					w.Components.Boost.Set(playerEntity, boost)
				}
				w.Commands.Despawn(e)
				spawnExplosionBurst(w, s.rng, pos.X, pos.Y, constant.ColorBoost)
				continue
			}
		}

		if pos.X+r < 0 || pos.X-r > cfg.ScreenWidth || pos.Y+r < 0 || pos.Y-r > cfg.ScreenHeight {
			w.Commands.Despawn(e)
		}
	}
}

func (s *BoostPickupSystem) spawnPickup(w *engine.World) {
	x, y, heading := randomEdgeSpawn(s.rng, w.Resources.Config)

	w.Commands.Spawn(func(w *engine.World, e core.Entity) {
		w.Components.Position.Set(e, component.PositionComponent{X: x, Y: y})
		w.Components.Angle.Set(e, component.AngleComponent{Radians: heading})
		w.Components.Spin.Set(e, component.SpinComponent{Velocity: constant.BoostPickupSpin})
		w.Components.BoostPickup.Set(e, component.BoostPickupComponent{Amount: constant.BoostPickupAmount})
		w.Components.Sprite.Set(e, component.SpriteComponent{
			Kind:  component.SpriteBoost,
			Z:     constant.ZPickup,
			Scale: 1,
			Color: constant.ColorBoost,
		})
	})
}

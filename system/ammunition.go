package system

import (
	"math"
	"math/rand"
	"time"

	"github.com/Bastczuak/bytepath/component"
	"github.com/Bastczuak/bytepath/constant"
	"github.com/Bastczuak/bytepath/core"
	"github.com/Bastczuak/bytepath/engine"
	"github.com/Bastczuak/bytepath/vmath"
)

// AmmunitionSystem spawns ammo pickups on a periodic timer and runs their
// two-phase lifecycle. Seeking: travel along the heading while re-steering
// a bounded angular rate per second toward the player's current position.
// Capturing: once within trigger range, hold position and play a short
// grow/pulse animation, then despawn into a radial explosion burst.
// Pickups that drift fully off screen are despawned without ceremony
type AmmunitionSystem struct {
	rng *rand.Rand
}

func NewAmmunitionSystem(w *engine.World) *AmmunitionSystem {
	return &AmmunitionSystem{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Seed makes spawn positions and burst angles deterministic for tests
func (s *AmmunitionSystem) Seed(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
}

func (s *AmmunitionSystem) Priority() int {
	return constant.PriorityAmmunition
}

func (s *AmmunitionSystem) Update(w *engine.World) {
	dt := w.Resources.Time.Delta

	timer := &w.Resources.Spawn.AmmoPickup
	timer.Tick(dt)
	if timer.Finished {
		s.spawnPickup(w)
	}

	playerEntity, hasPlayer := w.PlayerEntity()
	var playerPos component.PositionComponent
	if hasPlayer {
		playerPos, _ = w.Components.Position.Get(playerEntity)
	}

	values := make([]float64, 1)
	for _, e := range w.Components.AmmoPickup.All() {
		pickup, _ := w.Components.AmmoPickup.Get(e)
		pos, ok := w.Components.Position.Get(e)
		if !ok {
			continue
		}

		s.spin(w, e, dt)

		switch pickup.State {
		case component.PickupSeeking:
			s.seek(w, e, &pickup, pos, playerPos, hasPlayer, dt)
		case component.PickupCapturing:
			pickup.Capture.Tick(dt)
			finished := pickup.Pulse.EvalInto(dt, values)
			if sprite, hasSprite := w.Components.Sprite.Get(e); hasSprite {
				sprite.Scale = values[0]
				w.Components.Sprite.Set(e, sprite)
			}
			if finished || pickup.Capture.Finished {
				w.Commands.Despawn(e)
				spawnExplosionBurst(w, s.rng, pos.X, pos.Y, constant.ColorAmmo)
				continue
			}
			w.Components.AmmoPickup.Set(e, pickup)
		}
	}
}

// seek advances a seeking pickup and handles its transitions. Steering is
// clamped so the turn never overshoots the angle actually needed; the turn
// direction comes from the sign of the right-vector dot test
func (s *AmmunitionSystem) seek(
	w *engine.World,
	e core.Entity,
	pickup *component.AmmoPickupComponent,
	pos component.PositionComponent,
	playerPos component.PositionComponent,
	hasPlayer bool,
	dt time.Duration,
) {
	angle, _ := w.Components.Angle.Get(e)
	dtSec := dt.Seconds()

	if hasPlayer {
		hx, hy := vmath.Heading(angle.Radians)
		toX, toY := playerPos.X-pos.X, playerPos.Y-pos.Y

		needed := vmath.AngleBetween(hx, hy, toX, toY)
		turn := math.Min(needed, constant.AmmoPickupTurnRate*dtSec)

		rx, ry := vmath.RightOf(hx, hy)
		if vmath.DotProduct(rx, ry, toX, toY) < 0 {
			turn = -turn
		}
		angle.Radians = vmath.WrapAngle(angle.Radians + turn)
		w.Components.Angle.Set(e, angle)
	}

	hx, hy := vmath.Heading(angle.Radians)
	pos.X += hx * constant.AmmoPickupSpeed * dtSec
	pos.Y += hy * constant.AmmoPickupSpeed * dtSec
	w.Components.Position.Set(e, pos)

	if hasPlayer {
		dx, dy := playerPos.X-pos.X, playerPos.Y-pos.Y
		if vmath.Magnitude(dx, dy) <= constant.AmmoPickupTriggerRange {
			pickup.State = component.PickupCapturing
			pickup.Capture = component.NewTimer(constant.AmmoPickupCapture, false)
			pickup.Pulse = component.NewInterpolation(
				constant.AmmoPickupCapture, vmath.EasingOutSine, false,
				component.BeginEnd{Begin: 1, End: 1.5},
			)
			w.Components.AmmoPickup.Set(e, *pickup)
			return
		}
	}

	cfg := w.Resources.Config
	r := constant.PickupRadius
	if pos.X+r < 0 || pos.X-r > cfg.ScreenWidth || pos.Y+r < 0 || pos.Y-r > cfg.ScreenHeight {
		w.Commands.Despawn(e)
		return
	}
	w.Components.AmmoPickup.Set(e, *pickup)
}

// spin advances the center rotation pickups carry independently of heading
func (s *AmmunitionSystem) spin(w *engine.World, e core.Entity, dt time.Duration) {
	spin, ok := w.Components.Spin.Get(e)
	if !ok {
		return
	}
	spin.Radians = vmath.WrapAngle(spin.Radians + spin.Velocity*dt.Seconds())
	w.Components.Spin.Set(e, spin)

	if sprite, hasSprite := w.Components.Sprite.Get(e); hasSprite {
		sprite.Rotation = spin.Radians
		w.Components.Sprite.Set(e, sprite)
	}
}

// spawnPickup queues a new pickup at a random screen edge heading inward
func (s *AmmunitionSystem) spawnPickup(w *engine.World) {
	x, y, heading := randomEdgeSpawn(s.rng, w.Resources.Config)

	w.Commands.Spawn(func(w *engine.World, e core.Entity) {
		w.Components.Position.Set(e, component.PositionComponent{X: x, Y: y})
		w.Components.Angle.Set(e, component.AngleComponent{Radians: heading})
		w.Components.Spin.Set(e, component.SpinComponent{Velocity: constant.AmmoPickupSpin})
		w.Components.AmmoPickup.Set(e, component.AmmoPickupComponent{State: component.PickupSeeking})
		w.Components.Sprite.Set(e, component.SpriteComponent{
			Kind:  component.SpriteAmmo,
			Z:     constant.ZPickup,
			Scale: 1,
			Color: constant.ColorAmmo,
		})
	})
}

// randomEdgeSpawn picks a point on a random screen edge and a heading into
// the screen with up to ±45° of spread around the inward normal
func randomEdgeSpawn(rng *rand.Rand, cfg *engine.ConfigResource) (x, y, heading float64) {
	spread := (rng.Float64() - 0.5) * math.Pi / 2

	switch rng.Intn(4) {
	case 0: // left edge, heading right
		return 0, rng.Float64() * cfg.ScreenHeight, vmath.WrapAngle(0 + spread)
	case 1: // right edge, heading left
		return cfg.ScreenWidth, rng.Float64() * cfg.ScreenHeight, vmath.WrapAngle(math.Pi + spread)
	case 2: // top edge, heading down
		return rng.Float64() * cfg.ScreenWidth, 0, vmath.WrapAngle(math.Pi/2 + spread)
	default: // bottom edge, heading up
		return rng.Float64() * cfg.ScreenWidth, cfg.ScreenHeight, vmath.WrapAngle(3*math.Pi/2 + spread)
	}
}

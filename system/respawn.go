package system

import (
	"math"

	"github.com/Bastczuak/bytepath/component"
	"github.com/Bastczuak/bytepath/constant"
	"github.com/Bastczuak/bytepath/core"
	"github.com/Bastczuak/bytepath/engine"
	"github.com/Bastczuak/bytepath/event"
	"github.com/Bastczuak/bytepath/vmath"
)

// RespawnSystem spawns the initial ship during startup and brings a new
// ship back after each death once the respawn delay elapses. The delay
// ticks with the scaled delta, so it stretches together with the death
// slow-motion window
type RespawnSystem struct {
	reader  event.ReaderID
	pending bool
	delay   component.Timer
}

func NewRespawnSystem(w *engine.World) *RespawnSystem {
	return &RespawnSystem{
		reader: w.Events.RegisterReader("respawn"),
	}
}

func (s *RespawnSystem) Priority() int {
	return constant.PriorityRespawn
}

// Init spawns the first ship through the regular command barrier
func (s *RespawnSystem) Init(w *engine.World) {
	SpawnPlayer(w)
}

func (s *RespawnSystem) Update(w *engine.World) {
	for _, ev := range w.Events.Read(s.reader) {
		if ev.Type == event.EventPlayerDeath && !s.pending {
			s.pending = true
			s.delay = component.NewTimer(constant.RespawnDelay, false)
		}
	}

	if !s.pending {
		return
	}

	s.delay.Tick(w.Resources.Time.Delta)
	if s.delay.Finished {
		s.pending = false
		SpawnPlayer(w)
	}
}

// SpawnPlayer queues a ship at screen center facing up, with full boost,
// and announces it with a player-spawn event once the components are live
func SpawnPlayer(w *engine.World) {
	cfg := w.Resources.Config
	x, y := cfg.ScreenWidth/2, cfg.ScreenHeight/2
	heading := vmath.WrapAngle(-math.Pi / 2)

	w.Commands.Spawn(func(w *engine.World, e core.Entity) {
		w.Components.Position.Set(e, component.PositionComponent{X: x, Y: y})
		w.Components.Angle.Set(e, component.AngleComponent{Radians: heading})
		w.Components.Velocity.Set(e, component.VelocityComponent{})
		w.Components.Player.Set(e, component.PlayerComponent{
			MovementSpeed: cfg.PlayerMovementSpeed,
			RotationSpeed: cfg.PlayerRotationSpeed,
		})
		w.Components.Boost.Set(e, component.BoostComponent{
			Max:         cfg.BoostMax,
			Current:     cfg.BoostMax,
			IncAmount:   cfg.BoostIncAmount,
			DecAmount:   cfg.BoostDecAmount,
			CooldownSec: cfg.BoostCooldown,
		})
		w.Components.Sprite.Set(e, component.SpriteComponent{
			Kind:     component.SpriteShip,
			Z:        constant.ZPlayer,
			Scale:    1,
			Rotation: heading,
			Color:    constant.ColorDefault,
		})

		w.Events.Push(event.EventPlayerSpawn, &event.PlayerSpawnPayload{Entity: e})
	})
}

package system

import (
	"github.com/Bastczuak/bytepath/constant"
	"github.com/Bastczuak/bytepath/engine"
	"github.com/Bastczuak/bytepath/event"
	"github.com/Bastczuak/bytepath/input"
	"github.com/Bastczuak/bytepath/vmath"
)

// PlayerSystem advances the ship: rotation from the left/right keys, then
// translation along the updated heading, with the boost/brake speed factor
// applied while boosting is permitted. Leaving the screen entirely, or the
// kill key, is a terminal transition: the ship despawns and a player-death
// event is emitted for the time keeper, shake, flash and respawn systems
type PlayerSystem struct{}

func NewPlayerSystem(w *engine.World) *PlayerSystem {
	return &PlayerSystem{}
}

func (s *PlayerSystem) Priority() int {
	return constant.PriorityPlayer
}

func (s *PlayerSystem) Update(w *engine.World) {
	entity, ok := w.PlayerEntity()
	if !ok {
		return
	}

	player, _ := w.Components.Player.Get(entity)
	pos, _ := w.Components.Position.Get(entity)
	angle, _ := w.Components.Angle.Get(entity)
	vel, _ := w.Components.Velocity.Get(entity)

	dt := w.Resources.Time.Delta.Seconds()
	keys := w.Resources.Input.Pressed

	// Rotation first, movement along the resulting heading.
	// Left is counter-clockwise (positive radians)
	if keys.Contains(input.KeyLeft) {
		angle.Radians += player.RotationSpeed * dt
	}
	if keys.Contains(input.KeyRight) {
		angle.Radians -= player.RotationSpeed * dt
	}
	angle.Radians = vmath.WrapAngle(angle.Radians)
	angle.Velocity = player.RotationSpeed

	// Current velocity resets to base every tick; boost re-modifies it
	speed := player.MovementSpeed
	if boost, hasBoost := w.Components.Boost.Get(entity); hasBoost && boost.CanBoost() {
		if keys.Contains(input.KeyBoost) {
			speed *= constant.BoostMultiplier
		} else if keys.Contains(input.KeyBrake) {
			speed *= constant.BrakeMultiplier
		}
	}

	hx, hy := vmath.Heading(angle.Radians)
	vel.BaseX, vel.BaseY = hx*player.MovementSpeed, hy*player.MovementSpeed
	vel.X, vel.Y = hx*speed, hy*speed

	pos.X += vel.X * dt
	pos.Y += vel.Y * dt

	if sprite, hasSprite := w.Components.Sprite.Get(entity); hasSprite {
		sprite.Rotation = angle.Radians
		w.Components.Sprite.Set(entity, sprite)
	}

	w.Components.Angle.Set(entity, angle)
	w.Components.Velocity.Set(entity, vel)
	w.Components.Position.Set(entity, pos)

	if s.outOfBounds(w, pos.X, pos.Y) || keys.Contains(input.KeyKill) {
		w.Commands.Despawn(entity)
		w.Events.Push(event.EventPlayerDeath, &event.PlayerDeathPayload{X: pos.X, Y: pos.Y})
	}
}

// outOfBounds reports whether the ship's bounding box has fully exited the
// screen. The convention across all entities: alive while any part of the
// box overlaps the screen rectangle
func (s *PlayerSystem) outOfBounds(w *engine.World, x, y float64) bool {
	cfg := w.Resources.Config
	r := constant.PlayerRadius
	return x+r < 0 || x-r > cfg.ScreenWidth || y+r < 0 || y-r > cfg.ScreenHeight
}

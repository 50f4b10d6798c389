package event

import "github.com/Bastczuak/bytepath/core"

// PlayerSpawnPayload carries the freshly spawned ship entity
type PlayerSpawnPayload struct {
	Entity core.Entity
}

// PlayerDeathPayload carries the ship position at the moment of death
type PlayerDeathPayload struct {
	X, Y float64
}

// ProjectileDeathPayload carries the boundary-clamped position where a
// projectile left the screen
type ProjectileDeathPayload struct {
	X, Y float64
}

package component

// PlayerComponent marks the player ship and carries its movement parameters
type PlayerComponent struct {
	MovementSpeed float64 // units/sec
	RotationSpeed float64 // radians/sec
}

// ProjectileComponent marks a flying projectile
type ProjectileComponent struct {
	Speed float64 // units/sec along the entity's angle
}

// DeadProjectileComponent marks the short-lived two-frame boundary-death
// animation spawned where a projectile left the screen
type DeadProjectileComponent struct {
	Timer Timer
}

// ShootEffectComponent marks the brief muzzle square shown at the spawn offset
type ShootEffectComponent struct {
	Effect Interpolation
}

// TrailEffectComponent marks one shrinking trail particle behind the ship
type TrailEffectComponent struct {
	Effect   Interpolation
	Boosting bool // Spawned while the ship was boosting, selects trail color
}

// TickEffectComponent marks the periodic pulse shown over the ship
type TickEffectComponent struct {
	Effect Interpolation
}

// PickupState is the ammo pickup lifecycle phase
type PickupState int

const (
	PickupSeeking PickupState = iota
	PickupCapturing
)

// AmmoPickupComponent marks an ammunition pickup homing toward the player
type AmmoPickupComponent struct {
	State   PickupState
	Capture Timer         // Runs during the capture pulse
	Pulse   Interpolation // Grow/pulse sub-animation while capturing
}

// BoostPickupComponent marks a boost refill pickup
type BoostPickupComponent struct {
	Amount float64 // Boost restored on collection
}

// LineParticleComponent is one line of a radial explosion burst
type LineParticleComponent struct {
	Length float64 // Current half-length, driven by the effect tween
	Speed  float64 // Outward travel in units/sec
	Effect Interpolation
}

package constant

import (
	"math"
	"time"
)

// Player
const (
	PlayerMovementSpeed = 100.0          // units/sec
	PlayerRotationSpeed = 1.66 * math.Pi // radians/sec
	PlayerRadius        = 8.0            // half-extent of the ship bounding box
	RespawnDelay        = 3 * time.Second
)

// Boost resource
const (
	BoostMax        = 100.0
	BoostIncAmount  = 10.0 // regen per second
	BoostDecAmount  = 50.0 // drain per second
	BoostCooldown   = 2.0  // seconds after running empty
	BoostMultiplier = 1.5  // forward speed factor while boosting
	BrakeMultiplier = 0.5  // forward speed factor while braking
)

// Projectiles
const (
	ProjectileSpeed       = 200.0
	ProjectileSpawnOffset = 12.0 // spawn distance ahead of the ship
	ProjectileRadius      = 3.0
	ProjectileFanAngle    = math.Pi / 8 // spread of the 3-shot fan
	ProjectileSpawnPeriod = 250 * time.Millisecond
	DeadProjectileAnim    = 150 * time.Millisecond
)

// Pickups
const (
	AmmoPickupSpawnPeriod  = 1 * time.Second
	AmmoPickupSpeed        = 40.0
	AmmoPickupTurnRate     = math.Pi / 2 // max steering toward the player, radians/sec
	AmmoPickupTriggerRange = 20.0
	AmmoPickupCapture      = 150 * time.Millisecond
	AmmoPickupSpin         = 2 * math.Pi // radians/sec center rotation
	PickupRadius           = 9.0         // half-extent for pickup boundary checks

	BoostPickupSpawnPeriod = 2 * time.Second
	BoostPickupSpeed       = 30.0
	BoostPickupRange       = 18.0
	BoostPickupAmount      = 25.0
	BoostPickupSpin        = math.Pi
)

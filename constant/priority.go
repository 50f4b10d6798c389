package constant

// System priorities, lower runs first. Ordering mirrors the data flow:
// time dilation feeds every scaled-time consumer, the player's transform
// feeds shooting/shake/pickups, projectile death reacts to projectiles
const (
	PriorityTimeKeeper      = 10
	PriorityPlayer          = 20
	PriorityBoost           = 30
	PriorityShake           = 40
	PriorityFlash           = 50
	PriorityShooting        = 60
	PriorityProjectile      = 70
	PriorityProjectileDeath = 80
	PriorityAmmunition      = 90
	PriorityBoostPickup     = 100
	PriorityTickEffect      = 110
	PriorityTrailEffect     = 120
	PriorityLineParticle    = 130
	PriorityRespawn         = 140
)

package constant

// Z-index draw ordering, lower drawn first
const (
	ZTrail          = 10
	ZTickEffect     = 15
	ZPickup         = 20
	ZProjectile     = 30
	ZDeadProjectile = 30
	ZLineParticle   = 35
	ZShootEffect    = 40
	ZPlayer         = 50
)

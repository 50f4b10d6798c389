package event

// EventType identifies a domain event flowing between systems
type EventType int

const (
	// EventPlayerSpawn fires when a player ship enters the world, at startup
	// and on every respawn
	EventPlayerSpawn EventType = iota

	// EventPlayerDeath fires when the ship leaves the screen or the kill key
	// is pressed. Consumed independently by the time keeper (slow motion),
	// shake, flash and respawn systems
	EventPlayerDeath

	// EventProjectileDeath fires when a projectile crosses a screen boundary.
	// Consumed by the projectile-death system to spawn the boundary animation
	EventProjectileDeath
)

// String returns the event name for debugging
func (t EventType) String() string {
	switch t {
	case EventPlayerSpawn:
		return "PlayerSpawn"
	case EventPlayerDeath:
		return "PlayerDeath"
	case EventProjectileDeath:
		return "ProjectileDeath"
	default:
		return "Unknown"
	}
}

// GameEvent is one immutable event instance
type GameEvent struct {
	Type    EventType
	Payload any
}

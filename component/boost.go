package component

// BoostComponent is the player's boost resource. Current regenerates toward
// Max while the boost input is released; draining below zero starts a fixed
// cooldown that must fully elapse before boosting is permitted again
type BoostComponent struct {
	Max         float64
	Current     float64
	IncAmount   float64  // Regeneration per second
	DecAmount   float64  // Drain per second while boosting
	CooldownSec float64  // Cooldown length started on empty
	Cooldown    *float64 // Remaining cooldown, nil when not cooling down
}

// CanBoost reports whether boosting is currently permitted
func (b *BoostComponent) CanBoost() bool {
	return b.Cooldown == nil && b.Current > 0
}

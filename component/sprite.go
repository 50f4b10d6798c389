package component

import "github.com/Bastczuak/bytepath/core"

// SpriteKind selects the drawable shape for the renderer
type SpriteKind int

const (
	SpriteShip SpriteKind = iota
	SpriteProjectile
	SpriteDeadProjectile
	SpriteShootEffect
	SpriteTickEffect
	SpriteTrail
	SpriteAmmo
	SpriteBoost
	SpriteLine
)

// SpriteComponent is the drawable descriptor consumed by the renderer.
// Simulation systems mutate Scale, Frame and Rotation only; everything
// else is fixed at spawn time
type SpriteComponent struct {
	Kind     SpriteKind
	Z        int // Draw order, lower drawn first
	Scale    float64
	Frame    int // Source frame for the two-frame death animation
	Rotation float64
	Color    core.RGB
}

package component

// PositionComponent is a 2D location in virtual screen units
type PositionComponent struct {
	X, Y float64
}

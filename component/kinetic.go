package component

// AngleComponent tracks heading and rotation rate
type AngleComponent struct {
	Radians  float64 // Current heading
	Velocity float64 // Rotation rate in radians/sec
}

// VelocityComponent carries base speed and the per-tick effective speed.
// X/Y are reset to BaseX/BaseY at the start of every player tick and
// re-modified only while a boost input is applied
type VelocityComponent struct {
	BaseX, BaseY float64
	X, Y         float64
}

// SpinComponent is a secondary center rotation, independent of heading.
// Pickups use it to spin in place while travelling along their angle
type SpinComponent struct {
	Radians  float64
	Velocity float64 // radians/sec
}

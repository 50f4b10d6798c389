package vmath

import "math"

// Easing names a normalized [0,1]→[0,1] pacing curve.
// A closed enum dispatched by switch keeps components plain data,
// with no function values stored in component state.
type Easing int

const (
	EasingLinear Easing = iota
	EasingInOutCubic
	EasingOutSine
)

// At evaluates the curve at t. Callers supply t in [0,1]
func (e Easing) At(t float64) float64 {
	switch e {
	case EasingInOutCubic:
		return EaseInOutCubic(t)
	case EasingOutSine:
		return EaseOutSine(t)
	default:
		return t
	}
}

// String returns the curve name for debugging
func (e Easing) String() string {
	switch e {
	case EasingInOutCubic:
		return "InOutCubic"
	case EasingOutSine:
		return "OutSine"
	default:
		return "Linear"
	}
}

// EaseInOutCubic accelerates through the first half and decelerates through the second
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// EaseOutSine decelerates along a quarter sine wave
func EaseOutSine(t float64) float64 {
	return math.Sin(t * math.Pi / 2)
}

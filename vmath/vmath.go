package vmath

import "math"

// TwoPi is a full rotation in radians
const TwoPi = 2 * math.Pi

// Normalize2D returns the unit vector, zero-safe
func Normalize2D(x, y float64) (nx, ny float64) {
	mag := Magnitude(x, y)
	if mag == 0 {
		return 0, 0
	}
	return x / mag, y / mag
}

// Magnitude returns the Euclidean vector length
func Magnitude(x, y float64) float64 {
	return math.Hypot(x, y)
}

// MagnitudeSq returns the squared magnitude without sqrt
func MagnitudeSq(x, y float64) float64 {
	return x*x + y*y
}

// DotProduct returns x1*x2 + y1*y2
func DotProduct(x1, y1, x2, y2 float64) float64 {
	return x1*x2 + y1*y2
}

// Heading returns the unit direction vector for an angle in radians
func Heading(angle float64) (x, y float64) {
	return math.Cos(angle), math.Sin(angle)
}

// RightOf returns the vector rotated 90° clockwise (screen space, y-down)
func RightOf(x, y float64) (rx, ry float64) {
	return -y, x
}

// WrapAngle normalizes an angle into [0, 2π)
func WrapAngle(a float64) float64 {
	a = math.Mod(a, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	return a
}

// AngleBetween returns the unsigned angle between two vectors in [0, π]
func AngleBetween(x1, y1, x2, y2 float64) float64 {
	m1 := Magnitude(x1, y1)
	m2 := Magnitude(x2, y2)
	if m1 == 0 || m2 == 0 {
		return 0
	}
	cos := DotProduct(x1, y1, x2, y2) / (m1 * m2)
	return math.Acos(Clamp(cos, -1, 1))
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp blends between a and b by t
func Lerp(a, b, t float64) float64 {
	return (1-t)*a + t*b
}

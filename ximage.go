package vector

import (
	"math"

	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
)

// F64 returns the vector as an x/image f64.Vec2.
func (v Vector) F64() f64.Vec2 {
	return f64.Vec2{v.x, v.y}
}

// FromF64 creates a Vector from an x/image f64.Vec2, rounding as New does.
func FromF64(a f64.Vec2) Vector {
	return New(a[0], a[1])
}

// Fixed converts the vector to 26.6 fixed point, the format used by
// font and glyph coordinates. Each coordinate is rounded to the nearest 1/64.
func (v Vector) Fixed() fixed.Point26_6 {
	return fixed.Point26_6{X: floatToFixed(v.x), Y: floatToFixed(v.y)}
}

// FromFixed creates a Vector from a 26.6 fixed point value.
// Coordinates are rounded to two decimal places like any Vector, so 1/64
// steps are not kept exactly. FromFixed(p).Fixed() gives p back, but a
// vector converted with Fixed may not survive: New(0.01, 0) returns as
// (0.02, 0).
func FromFixed(p fixed.Point26_6) Vector {
	return New(fixedToFloat(p.X), fixedToFloat(p.Y))
}

// floatToFixed converts a float64 to fixed.Int26_6.
func floatToFixed(f float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(f * 64))
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}

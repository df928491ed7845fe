package vector

import (
	"fmt"
	"math"

	"github.com/gogpu/vector/internal/round"
)

// decimals is the number of decimal places kept in vector coordinates.
const decimals = 2

// Vector represents a 2D displacement with coordinates rounded to two
// decimal places.
//
// The zero value is the zero vector. Vectors are immutable: every method
// returns a new value and never modifies its receiver, so a Vector may be
// shared freely between goroutines.
type Vector struct {
	x, y float64
}

// New creates a Vector, rounding both coordinates to two decimal places.
func New(x, y float64) Vector {
	return Vector{
		x: round.Places(x, decimals),
		y: round.Places(y, decimals),
	}
}

// FromTwoPoints returns the displacement from start to end.
func FromTwoPoints(start, end Point) Vector {
	return New(end.X-start.X, end.Y-start.Y)
}

// X returns the horizontal coordinate.
func (v Vector) X() float64 { return v.x }

// Y returns the vertical coordinate.
func (v Vector) Y() float64 { return v.y }

// Length returns the Euclidean length of the vector. It is +Inf when the
// length exceeds the float64 range, even for finite coordinates.
func (v Vector) Length() float64 {
	return math.Hypot(v.x, v.y)
}

// Normalized returns the unit vector pointing in the same direction,
// with each coordinate rounded to two decimal places. Because of that
// rounding the result's length may differ from 1 by up to about 0.01.
//
// It returns ErrZeroVector if v has zero length and ErrNotFinite if a
// coordinate is infinite or NaN. The returned vector is the zero vector
// whenever err is non-nil.
func (v Vector) Normalized() (Vector, error) {
	x, y, err := direction(v.x, v.y)
	if err != nil {
		Logger().Debug("vector: normalize rejected", "x", v.x, "y", v.y)
		return Vector{}, err
	}
	return New(x, y), nil
}

// AngleBetween returns the unsigned angle between v and w in whole
// degrees, in the range [0, 180].
//
// It returns ErrUndefinedAngle if either vector has zero length or a
// non-finite coordinate.
func (v Vector) AngleBetween(w Vector) (float64, error) {
	vx, vy, errV := direction(v.x, v.y)
	wx, wy, errW := direction(w.x, w.y)
	if errV != nil || errW != nil {
		Logger().Debug("vector: angle between zero-length vectors",
			"v", v.String(), "w", w.String())
		return 0, ErrUndefinedAngle
	}
	// Clamp: rounding can push parallel vectors just outside acos's domain.
	cos := math.Max(-1, math.Min(1, vx*wx+vy*wy))
	return round.Int(degrees(math.Acos(cos))), nil
}

// Heading returns the compass-style heading of the vector in whole
// degrees, in the range [0, 360). The heading is measured from the
// positive Y axis, growing as the vector turns towards negative X.
//
// A vector with either coordinate equal to zero has heading 0. This
// includes axis-aligned vectors such as (5, 0), not only the zero vector.
func (v Vector) Heading() float64 {
	if v.x == 0 || v.y == 0 {
		return 0
	}
	angle := round.Int(degrees(math.Atan2(-v.x, v.y)))
	if angle >= 0 {
		return angle
	}
	return angle + 360
}

// Rotate returns the vector rotated counter-clockwise by angle degrees,
// with each coordinate rounded to two decimal places.
func (v Vector) Rotate(angle float64) Vector {
	sin, cos := math.Sincos(angle * (math.Pi / 180))
	return New(
		v.x*cos-v.y*sin,
		v.x*sin+v.y*cos,
	)
}

// Add returns the sum of two vectors.
func (v Vector) Add(w Vector) Vector {
	return New(v.x+w.x, v.y+w.y)
}

// Sub returns the difference of two vectors.
func (v Vector) Sub(w Vector) Vector {
	return New(v.x-w.x, v.y-w.y)
}

// Scale returns the vector multiplied by a scalar, with each coordinate
// rounded to two decimal places.
func (v Vector) Scale(s float64) Vector {
	return New(v.x*s, v.y*s)
}

// Dot returns the dot product of two vectors. The result is not rounded.
func (v Vector) Dot(w Vector) float64 {
	return v.x*w.x + v.y*w.y
}

// IsZero reports whether v is the zero vector.
func (v Vector) IsZero() bool {
	return v.x == 0 && v.y == 0
}

// Equal reports whether v and w have identical coordinates.
func (v Vector) Equal(w Vector) bool {
	return v.x == w.x && v.y == w.y
}

// Approx returns true if two vectors are approximately equal within epsilon.
func (v Vector) Approx(w Vector, epsilon float64) bool {
	return math.Abs(v.x-w.x) <= epsilon && math.Abs(v.y-w.y) <= epsilon
}

// String implements fmt.Stringer.
func (v Vector) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", v.x, v.y)
}

// direction returns the unrounded unit vector of (x, y).
func direction(x, y float64) (float64, float64, error) {
	if math.IsInf(x, 0) || math.IsInf(y, 0) || math.IsNaN(x) || math.IsNaN(y) {
		return 0, 0, ErrNotFinite
	}
	length := math.Hypot(x, y)
	if math.IsInf(length, 0) {
		// Finite coordinates whose length overflows; half of each still fits.
		x, y = x/2, y/2
		length = math.Hypot(x, y)
	}
	if length == 0 {
		return 0, 0, ErrZeroVector
	}
	return x / length, y / length, nil
}

func degrees(rad float64) float64 {
	return rad * (180 / math.Pi)
}

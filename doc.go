// Package vector provides a small immutable 2D vector type.
//
// # Overview
//
// A Vector is a planar displacement whose coordinates are always kept
// rounded to two decimal places. Every operation that produces a new
// vector (New, Add, Sub, Scale, Normalized, Rotate) rounds its result, so
// chained operations accumulate rounding error by design of the type.
//
//	v := vector.New(3, 4)
//	v.Length()               // 5
//	u, err := v.Normalized() // (0.60, 0.80), nil
//	v.Rotate(90)             // (-4.00, 3.00)
//
// # Rounding
//
// Coordinates are rounded half to even on their exact binary value, the
// same result as formatting the number with two decimals. For example
// 2.675, which is stored as 2.67499..., rounds to 2.67, and the exactly
// representable 0.125 rounds to 0.12. Angles returned by Heading and
// AngleBetween are whole degrees, rounded half to even.
//
// # Angles
//
// Rotate takes degrees and turns counter-clockwise. Heading is a
// compass-style angle in [0, 360) measured from the positive Y axis
// towards negative X. For compatibility, Heading returns 0 for any vector
// with a zero coordinate, including axis-aligned vectors such as (5, 0).
//
// # Multiplication
//
// Scale multiplies by a number and Dot returns the dot product. Multiply
// accepts either as an Operand (a Scalar or a Vector) when the kind of
// product is only known at run time.
//
// # Errors
//
// Normalized returns ErrZeroVector for the zero vector and ErrNotFinite
// for a vector with an infinite or NaN coordinate. AngleBetween returns
// ErrUndefinedAngle when either operand has no usable direction, and
// Multiply returns ErrTypeMismatch for an operand it cannot handle.
//
// # Concurrency
//
// Vectors are values and are never modified after construction; they can
// be shared between goroutines without synchronization.
package vector

package vector

import "errors"

var (
	// ErrZeroVector is returned when normalizing a vector of zero length.
	ErrZeroVector = errors.New("vector: cannot normalize zero vector")

	// ErrNotFinite is returned when normalizing a vector with an infinite
	// or NaN coordinate.
	ErrNotFinite = errors.New("vector: cannot normalize non-finite vector")

	// ErrUndefinedAngle is returned by AngleBetween when either vector has
	// zero length or a non-finite coordinate.
	ErrUndefinedAngle = errors.New("vector: angle with zero vector is undefined")

	// ErrTypeMismatch is returned when Multiply receives an operand that is
	// neither a Scalar nor a Vector.
	ErrTypeMismatch = errors.New("vector: incompatible operand type")
)

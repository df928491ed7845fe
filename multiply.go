package vector

import "fmt"

// Operand is the right-hand side of Multiply.
// This is a sealed interface - only Scalar and Vector implement it.
type Operand interface {
	// operandMarker is an unexported method that seals this interface.
	operandMarker()
}

// Scalar is a plain number used as a Multiply operand.
type Scalar float64

func (Scalar) operandMarker() {}
func (Vector) operandMarker() {}

// Product is the result of Multiply. It holds either a vector (scaling)
// or a scalar (dot product).
//
// A Product is only meaningful when Multiply returned a nil error. On
// failure Multiply returns the zero Product, which cannot be told apart
// from scaling to the zero vector.
type Product struct {
	vec      Vector
	scalar   float64
	isScalar bool
}

// IsScalar reports whether the product is a dot product.
func (p Product) IsScalar() bool { return p.isScalar }

// Vector returns the scaled vector. It is the zero vector for a dot product.
func (p Product) Vector() Vector { return p.vec }

// Scalar returns the dot product. It is 0 for a scaled vector.
func (p Product) Scalar() float64 { return p.scalar }

// String implements fmt.Stringer.
func (p Product) String() string {
	if p.isScalar {
		return fmt.Sprintf("%g", p.scalar)
	}
	return p.vec.String()
}

// Multiply multiplies v by o.
//
// A Scalar operand scales the vector, exactly like Scale. A Vector operand
// yields the dot product, exactly like Dot. Any other operand, including
// nil or a *Vector, fails with ErrTypeMismatch.
func (v Vector) Multiply(o Operand) (Product, error) {
	switch o := o.(type) {
	case Scalar:
		return Product{vec: v.Scale(float64(o))}, nil
	case Vector:
		return Product{scalar: v.Dot(o), isScalar: true}, nil
	default:
		Logger().Debug("vector: multiply rejected", "operand", fmt.Sprintf("%T", o))
		return Product{}, fmt.Errorf("%w: %T", ErrTypeMismatch, o)
	}
}

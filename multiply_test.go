package vector

import (
	"errors"
	"strings"
	"testing"
)

func TestVector_MultiplyScalar(t *testing.T) {
	tests := []struct {
		name   string
		v      Vector
		s      Scalar
		expect Vector
	}{
		{"triple", New(1, 2), 3, New(3, 6)},
		{"zero", New(1, 2), 0, New(0, 0)},
		{"fraction", New(1, 1), 0.125, New(0.12, 0.12)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.v.Multiply(tt.s)
			if err != nil {
				t.Fatalf("%v.Multiply(%v) error = %v", tt.v, tt.s, err)
			}
			if got.IsScalar() {
				t.Fatalf("%v.Multiply(%v).IsScalar() = true, want false", tt.v, tt.s)
			}
			if !got.Vector().Equal(tt.expect) {
				t.Errorf("%v.Multiply(%v) = %v, want %v", tt.v, tt.s, got, tt.expect)
			}
			if !got.Vector().Equal(tt.v.Scale(float64(tt.s))) {
				t.Errorf("Multiply and Scale disagree: %v vs %v", got, tt.v.Scale(float64(tt.s)))
			}
		})
	}
}

func TestVector_MultiplyVector(t *testing.T) {
	tests := []struct {
		name   string
		v, w   Vector
		expect float64
	}{
		{"perpendicular", New(1, 0), New(0, 1), 0},
		{"general", New(1, 2), New(3, 4), 11},
		{"opposite", New(2, 0), New(-3, 0), -6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.v.Multiply(tt.w)
			if err != nil {
				t.Fatalf("%v.Multiply(%v) error = %v", tt.v, tt.w, err)
			}
			if !got.IsScalar() {
				t.Fatalf("%v.Multiply(%v).IsScalar() = false, want true", tt.v, tt.w)
			}
			if got.Scalar() != tt.expect {
				t.Errorf("%v.Multiply(%v) = %v, want %v", tt.v, tt.w, got.Scalar(), tt.expect)
			}
		})
	}
}

func TestVector_MultiplyTypeMismatch(t *testing.T) {
	w := New(1, 1)
	tests := []struct {
		name     string
		operand  Operand
		typeName string
	}{
		{"nil", nil, "<nil>"},
		{"pointer to vector", &w, "*vector.Vector"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(1, 2).Multiply(tt.operand)
			if !errors.Is(err, ErrTypeMismatch) {
				t.Fatalf("Multiply(%v) error = %v, want %v", tt.operand, err, ErrTypeMismatch)
			}
			if !strings.Contains(err.Error(), tt.typeName) {
				t.Errorf("error %q does not name operand type %q", err, tt.typeName)
			}
			if got != (Product{}) {
				t.Errorf("Multiply(%v) = %v, want zero Product", tt.operand, got)
			}
		})
	}
}

func TestProduct_String(t *testing.T) {
	p, _ := New(1, 2).Multiply(Scalar(2))
	if got := p.String(); got != "(2.00, 4.00)" {
		t.Errorf("vector product String() = %q, want %q", got, "(2.00, 4.00)")
	}
	p, _ = New(1, 2).Multiply(New(3, 4))
	if got := p.String(); got != "11" {
		t.Errorf("scalar product String() = %q, want %q", got, "11")
	}
}

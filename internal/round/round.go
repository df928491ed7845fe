// Package round implements the decimal rounding used by vector coordinates.
package round

import (
	"math"
	"strconv"
)

// Places rounds x to n decimal places.
//
// The exact binary value of x is rounded half to even at the n-th decimal,
// so 2.675 (stored as 2.67499999...) becomes 2.67 while the exactly
// representable 0.125 becomes 0.12. Scaling by 10^n and calling math.Round
// would instead round the product, which is not the same number.
//
// NaN and infinities are returned unchanged. Negative zero results are
// returned as positive zero.
func Places(x float64, n int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', n, 64), 64)
	if err != nil {
		return x
	}
	if r == 0 {
		return 0
	}
	return r
}

// Int rounds x to the nearest integer, ties to even.
// Negative zero results are returned as positive zero.
func Int(x float64) float64 {
	r := math.RoundToEven(x)
	if r == 0 {
		return 0
	}
	return r
}

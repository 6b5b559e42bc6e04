// Package reconstruct: domain types shared by the orchestration and the
// share-document reader.
package reconstruct

import (
	"math/big"

	"github.com/katalvlaran/polyrec/frac"
)

// Point is one decoded sample (x, f(x)) of the hidden polynomial.
// Points are constructed once from decoded input and never mutated;
// both coordinates are exact arbitrary-precision integers.
type Point struct {
	X *big.Int
	Y *big.Int
}

// Result holds the exact coefficient vector of a reconstruction,
// highest degree first. Obtain one from Reconstruct; the zero value
// is empty and has constant term 0.
type Result struct {
	coeffs []frac.Fraction // degree d down to degree 0
}

// Coefficients returns a copy of the coefficient vector, highest degree
// first. Fractions are immutable, so a shallow copy fully isolates the
// caller from the Result.
func (r Result) Coefficients() []frac.Fraction {
	return append([]frac.Fraction(nil), r.coeffs...)
}

// Constant returns the degree-0 coefficient — the polynomial's value at
// x = 0, i.e. the secret as an exact rational.
func (r Result) Constant() frac.Fraction {
	if len(r.coeffs) == 0 {
		return frac.Zero()
	}

	return r.coeffs[len(r.coeffs)-1]
}

// Secret returns the constant term as an integer. The second return is
// false when the canonical denominator is not 1 — the sample points do not
// encode an integer-valued polynomial at x = 0. That condition is reported,
// never rounded away; inspect Constant for the exact rational.
func (r Result) Secret() (*big.Int, bool) {
	c := r.Constant()
	if !c.IsInt() {
		return nil, false
	}

	return c.Num(), true
}

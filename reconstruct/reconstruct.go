package reconstruct

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/polyrec/frac"
	"github.com/katalvlaran/polyrec/gauss"
)

// System builds the augmented interpolation matrix for the given points:
// with k = len(points) and d = k-1, row i is
//
//	[xᵢ^d, xᵢ^(d-1), …, xᵢ, 1, yᵢ]
//
// so the unknowns are the coefficients from degree d down to degree 0.
// Powers are computed over *big.Int and wrapped as denominator-1 Fractions;
// points are read, never mutated.
//
// Complexity: O(k²) big-integer multiplications, O(k²) memory.
func System(points []Point) [][]frac.Fraction {
	k := len(points)
	d := k - 1

	rows := make([][]frac.Fraction, k)
	for i, p := range points {
		row := make([]frac.Fraction, k+1)
		// Fill x^0 .. x^d right-to-left into columns d .. 0.
		pow := big.NewInt(1)
		for e := 0; e <= d; e++ {
			row[d-e] = frac.FromInt(pow)
			pow = new(big.Int).Mul(pow, p.X)
		}
		row[k] = frac.FromInt(p.Y)
		rows[i] = row
	}

	return rows
}

// Reconstruct derives the unique polynomial of degree len(points)-1 through
// the given points and returns its exact coefficients. The constant term —
// Result.Constant, the value at x = 0 — is the reconstructed secret.
//
// Errors:
//   - ErrNoPoints          — empty point list;
//   - ErrNilCoordinate     — a point with nil X or Y;
//   - ErrDegreeMismatch    — WithDegree(d) was set and len(points) != d+1;
//   - gauss.ErrSingular    — the points do not determine a unique polynomial
//     (duplicate x-coordinates are the usual cause).
//
// The computation is pure and fully deterministic; no state survives a call.
func Reconstruct(points []Point, opts ...Option) (Result, error) {
	o := gatherOptions(opts...)

	if len(points) == 0 {
		return Result{}, fmt.Errorf("Reconstruct: %w", ErrNoPoints)
	}
	if o.degree != DefaultDegree && len(points) != o.degree+1 {
		return Result{}, fmt.Errorf("Reconstruct: %d points for degree %d: %w", len(points), o.degree, ErrDegreeMismatch)
	}
	for i, p := range points {
		if p.X == nil || p.Y == nil {
			return Result{}, fmt.Errorf("Reconstruct: point %d: %w", i, ErrNilCoordinate)
		}
	}

	coeffs, err := gauss.Solve(System(points))
	if err != nil {
		return Result{}, fmt.Errorf("Reconstruct: %w", err)
	}

	return Result{coeffs: coeffs}, nil
}

// Package gauss solves square linear systems exactly with Gauss-Jordan
// elimination over frac.Fraction entries.
//
// 🚀 What is gauss?
//
//	Solve takes an n×(n+1) augmented matrix (coefficients plus constant
//	column) and reduces the left block to the identity, reading the exact
//	solution straight off the last column. No back-substitution pass, no
//	floating point, no rounding — the answer is the answer.
//
// ✨ Key guarantees:
//   - exact arithmetic end to end: every entry stays a canonical Fraction
//   - deterministic pivoting: the first row with a nonzero entry at or
//     below the diagonal wins, lowest index breaking ties. There is NO
//     magnitude-based partial pivoting — with exact arithmetic there is no
//     stability concern, and the fixed rule keeps the row-swap sequence
//     reproducible run to run. Do not "improve" this.
//   - inputs are never mutated: rows are cloned before elimination
//   - a column with no nonzero candidate fails with ErrSingular — the
//     system has no unique solution
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/polyrec/frac"
//	  "github.com/katalvlaran/polyrec/gauss"
//	)
//
//	// x + y = 3, x - y = 1
//	aug := [][]frac.Fraction{
//	  {frac.FromInt64(1), frac.FromInt64(1), frac.FromInt64(3)},
//	  {frac.FromInt64(1), frac.FromInt64(-1), frac.FromInt64(1)},
//	}
//	sol, err := gauss.Solve(aug) // [2, 1]
//
// Complexity: O(n³) Fraction operations, O(n²) Fraction scratch memory;
// each Fraction operation costs one gcd plus a few big-integer multiplies.
package gauss

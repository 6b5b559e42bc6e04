// Package frac implements an immutable exact-rational value type over
// math/big integers.
//
// 🚀 What is frac?
//
//	A Fraction is an ordered (numerator, denominator) pair kept permanently
//	in canonical reduced form: gcd(|num|, |den|) = 1, den > 0, sign carried
//	entirely by the numerator. Every operation returns a fresh canonical
//	Fraction; operands are never mutated.
//
// ✨ Key guarantees:
//   - canonical form after every single operation — the reduction step is
//     what keeps numerators and denominators from growing combinatorially
//     across long multiply/divide chains (e.g. Gaussian elimination)
//   - exactness: no rounding anywhere; equality is structural equality
//   - the zero value of Fraction behaves as 0/1 and is safe to use
//   - division by a zero-valued Fraction fails with ErrDivideByZero
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/polyrec/frac"
//
//	a := frac.FromInt64(1)
//	b, _ := frac.New(big.NewInt(2), big.NewInt(6)) // canonicalized to 1/3
//	sum := a.Add(b)                                 // 4/3
//	q, err := sum.Div(frac.FromInt64(2))            // 2/3
//
// Complexity: every operation is a constant number of big-integer
// multiplications plus one gcd; memory is proportional to operand size.
package frac

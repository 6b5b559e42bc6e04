package frac

import (
	"fmt"
	"math/big"
)

// one is the shared comparison constant for reduce; never mutated.
var one = big.NewInt(1)

// Fraction is an exact rational number in canonical reduced form:
// gcd(|num|, |den|) = 1, den > 0, sign carried by num.
//
// Fractions are immutable values: methods return fresh Fractions and never
// touch their operands, so sharing a Fraction across rows of a matrix (or
// across goroutines) is safe. The zero value behaves as 0/1.
type Fraction struct {
	num *big.Int // numerator, carries the sign; nil means 0
	den *big.Int // denominator, always > 0 once initialized; nil means 1
}

// New returns the canonical Fraction num/den. Both inputs are deep-copied,
// so later mutation of the arguments does not leak into the result.
// Returns ErrZeroDenominator when den is nil or zero.
func New(num, den *big.Int) (Fraction, error) {
	if den == nil || den.Sign() == 0 {
		return Fraction{}, fmt.Errorf("New: %w", ErrZeroDenominator)
	}
	if num == nil {
		num = new(big.Int)
	}

	return reduce(new(big.Int).Set(num), new(big.Int).Set(den)), nil
}

// FromInt returns v/1. The input is deep-copied.
func FromInt(v *big.Int) Fraction {
	if v == nil {
		v = new(big.Int)
	}

	return Fraction{num: new(big.Int).Set(v), den: big.NewInt(1)}
}

// FromInt64 returns v/1.
func FromInt64(v int64) Fraction {
	return Fraction{num: big.NewInt(v), den: big.NewInt(1)}
}

// Zero returns the canonical zero Fraction, 0/1.
func Zero() Fraction { return FromInt64(0) }

// One returns the canonical unit Fraction, 1/1.
func One() Fraction { return FromInt64(1) }

// Add returns f + g in canonical form via the cross-multiplication rule:
// (f.num*g.den + g.num*f.den) / (f.den*g.den), reduced immediately.
func (f Fraction) Add(g Fraction) Fraction {
	f, g = f.norm(), g.norm()
	num := new(big.Int).Mul(f.num, g.den)
	num.Add(num, new(big.Int).Mul(g.num, f.den))

	return reduce(num, new(big.Int).Mul(f.den, g.den))
}

// Sub returns f - g in canonical form.
func (f Fraction) Sub(g Fraction) Fraction {
	f, g = f.norm(), g.norm()
	num := new(big.Int).Mul(f.num, g.den)
	num.Sub(num, new(big.Int).Mul(g.num, f.den))

	return reduce(num, new(big.Int).Mul(f.den, g.den))
}

// Mul returns f * g in canonical form.
func (f Fraction) Mul(g Fraction) Fraction {
	f, g = f.norm(), g.norm()

	return reduce(new(big.Int).Mul(f.num, g.num), new(big.Int).Mul(f.den, g.den))
}

// Div returns f / g in canonical form, computed as (f.num*g.den)/(f.den*g.num).
// Returns ErrDivideByZero when g is zero.
func (f Fraction) Div(g Fraction) (Fraction, error) {
	f, g = f.norm(), g.norm()
	if g.num.Sign() == 0 {
		return Fraction{}, fmt.Errorf("Div: %w", ErrDivideByZero)
	}

	return reduce(new(big.Int).Mul(f.num, g.den), new(big.Int).Mul(f.den, g.num)), nil
}

// Neg returns -f.
func (f Fraction) Neg() Fraction {
	f = f.norm()

	return Fraction{num: new(big.Int).Neg(f.num), den: new(big.Int).Set(f.den)}
}

// Num returns a copy of the numerator. The sign of the Fraction lives here.
func (f Fraction) Num() *big.Int { return new(big.Int).Set(f.norm().num) }

// Den returns a copy of the denominator; it is always positive.
func (f Fraction) Den() *big.Int { return new(big.Int).Set(f.norm().den) }

// Sign returns -1, 0, or +1 according to the sign of f.
func (f Fraction) Sign() int { return f.norm().num.Sign() }

// IsZero reports whether f equals 0/1.
func (f Fraction) IsZero() bool { return f.norm().num.Sign() == 0 }

// IsInt reports whether f is an exact integer, i.e. its canonical
// denominator is 1.
func (f Fraction) IsInt() bool { return f.norm().den.Cmp(one) == 0 }

// Equal reports whether f and g denote the same rational. Canonical form
// makes this a structural comparison, no cross-multiplication needed.
func (f Fraction) Equal(g Fraction) bool {
	f, g = f.norm(), g.norm()

	return f.num.Cmp(g.num) == 0 && f.den.Cmp(g.den) == 0
}

// String renders "num/den", collapsing to "num" when the denominator is 1.
func (f Fraction) String() string {
	f = f.norm()
	if f.den.Cmp(one) == 0 {
		return f.num.String()
	}

	return f.num.String() + "/" + f.den.String()
}

// norm substitutes the canonical 0/1 pair for an uninitialized Fraction so
// the zero value is usable; constructed Fractions pass through untouched.
func (f Fraction) norm() Fraction {
	if f.num == nil || f.den == nil {
		return Fraction{num: new(big.Int), den: big.NewInt(1)}
	}

	return f
}

// reduce takes ownership of num and den (den != 0) and returns the canonical
// form: sign moved onto num, both divided by gcd(|num|, |den|).
// With num == 0 the gcd equals den, so the canonical zero 0/1 falls out of
// the same division — no special case.
func reduce(num, den *big.Int) Fraction {
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), den)
	if g.Cmp(one) != 0 {
		num.Quo(num, g)
		den.Quo(den, g)
	}

	return Fraction{num: num, den: den}
}

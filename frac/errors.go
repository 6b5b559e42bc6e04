package frac

import "errors"

var (
	// ErrZeroDenominator indicates a constructor call with denominator zero (or nil).
	ErrZeroDenominator = errors.New("frac: zero denominator")

	// ErrDivideByZero indicates division by a zero-valued Fraction.
	ErrDivideByZero = errors.New("frac: division by zero fraction")
)

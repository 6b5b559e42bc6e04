package basen

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

const (
	// MinBase is the smallest radix accepted by Decode and Encode.
	MinBase = 2
	// MaxBase is the largest radix accepted by Decode and Encode;
	// digits 0-9 plus a-z cover exactly 36 digit values.
	MaxBase = 36

	// letterOffset is the digit value of 'a' / 'A'.
	letterOffset = 10

	// signMarker flags a negative value when it leads the digit string.
	signMarker = "-"
)

var (
	// ErrInvalidBase indicates a radix outside [MinBase, MaxBase].
	ErrInvalidBase = errors.New("basen: base must be in [2,36]")

	// ErrEmptyDigits indicates no digits remain after trimming and sign stripping.
	ErrEmptyDigits = errors.New("basen: empty digit string")

	// ErrInvalidDigitChar indicates a character outside [0-9a-zA-Z].
	ErrInvalidDigitChar = errors.New("basen: invalid digit character")

	// ErrDigitOutOfRange indicates a digit whose value is not below the stated base.
	ErrDigitOutOfRange = errors.New("basen: digit value not below base")
)

// Decode parses digits as a signed integer in the given base and returns it
// as a fresh *big.Int.
//
// Rules:
//   - base must lie in [MinBase, MaxBase], otherwise ErrInvalidBase;
//   - leading/trailing whitespace is trimmed before parsing;
//   - one optional leading '-' marks the value negative;
//   - '0'..'9' map to 0–9, 'a'..'z' and 'A'..'Z' map to 10–35;
//     any other rune yields ErrInvalidDigitChar;
//   - every digit value must be strictly below base, otherwise
//     ErrDigitOutOfRange (the offending rune and base are in the message).
//
// Accumulation runs left to right as acc = acc*base + digit over *big.Int,
// so there is no upper bound on the decoded magnitude.
//
// Complexity: O(len(digits)) big-integer operations. Pure; no side effects.
func Decode(digits string, base int) (*big.Int, error) {
	if base < MinBase || base > MaxBase {
		return nil, fmt.Errorf("Decode: base %d: %w", base, ErrInvalidBase)
	}

	s := strings.TrimSpace(digits)
	negative := strings.HasPrefix(s, signMarker)
	if negative {
		s = s[len(signMarker):]
	}
	if s == "" {
		return nil, fmt.Errorf("Decode: %q: %w", digits, ErrEmptyDigits)
	}

	var (
		acc   = new(big.Int)            // running value, acc = acc*base + d
		radix = big.NewInt(int64(base)) // base as big.Int, reused each step
		digit = new(big.Int)            // scratch for the current digit value
		d     int                       // current digit value
		err   error
	)
	for _, r := range s {
		if d, err = digitValue(r); err != nil {
			return nil, fmt.Errorf("Decode: %q: %w", r, err)
		}
		if d >= base {
			return nil, fmt.Errorf("Decode: digit %q has value %d under base %d: %w", r, d, base, ErrDigitOutOfRange)
		}
		acc.Mul(acc, radix)
		acc.Add(acc, digit.SetInt64(int64(d)))
	}

	if negative {
		acc.Neg(acc)
	}

	return acc, nil
}

// Encode renders v in the given base using lowercase digits, the exact
// inverse of Decode for canonical (lowercase, no-whitespace) strings.
// A nil v encodes as zero. Returns ErrInvalidBase for a radix outside
// [MinBase, MaxBase].
func Encode(v *big.Int, base int) (string, error) {
	if base < MinBase || base > MaxBase {
		return "", fmt.Errorf("Encode: base %d: %w", base, ErrInvalidBase)
	}
	if v == nil {
		v = new(big.Int)
	}

	return v.Text(base), nil
}

// digitValue maps a single rune to its digit value in [0,35].
// Returns ErrInvalidDigitChar for anything outside [0-9a-zA-Z].
func digitValue(r rune) (int, error) {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0'), nil
	case r >= 'a' && r <= 'z':
		return int(r-'a') + letterOffset, nil
	case r >= 'A' && r <= 'Z':
		return int(r-'A') + letterOffset, nil
	default:
		return 0, ErrInvalidDigitChar
	}
}

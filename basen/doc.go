// Package basen converts digit strings in an arbitrary radix (2..36) to and
// from arbitrary-precision integers.
//
// 🚀 What is basen?
//
//	A tiny, exact decoder for positional notation: digits 0-9 carry values
//	0–9 and letters a-z (case-insensitive) carry 10–35, so base 36 covers
//	the full alphabet. Results are *big.Int — values of any magnitude
//	decode without overflow.
//
// ✨ Key guarantees:
//   - strict digit validation: a digit value ≥ the stated base is an error,
//     never a silent truncation
//   - sign handling: one optional leading '-' flips the result
//   - whitespace tolerance: leading/trailing spaces are trimmed before parsing
//   - purity: Decode and Encode are pure functions of their inputs
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/polyrec/basen"
//
//	v, err := basen.Decode("aF3", 16)   // 2803
//	s, err := basen.Encode(v, 16)       // "af3"
//
// Errors are package-level sentinels (ErrInvalidBase, ErrEmptyDigits,
// ErrInvalidDigitChar, ErrDigitOutOfRange) matched via errors.Is; call
// sites add the offending rune and base through fmt.Errorf wrapping.
package basen

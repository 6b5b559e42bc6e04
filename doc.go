// Package polyrec reconstructs a polynomial's constant term — the shared
// secret — from exact (x, y) sample points, with no floating-point step
// anywhere in the pipeline.
//
// 🚀 What is polyrec?
//
//	A small, exact-arithmetic library that brings together:
//		• Base decoding: arbitrary-precision parsing of base-2..36 digit strings
//		• Fractions: immutable exact rationals in canonical reduced form
//		• Elimination: Gauss-Jordan over exact fractions, deterministic pivoting
//		• Reconstruction: sample points → coefficients → constant term at x = 0
//
// ✨ Why choose polyrec?
//
//   - Exact or nothing – every result is an exact rational, never rounded
//   - Deterministic – first-nonzero pivoting, stable tie-breaks, no randomness
//   - Pure Go – math/big underneath, no cgo, no hidden deps
//   - Honest failures – singular systems and bad digits fail loudly via sentinels
//
// Under the hood, everything is organized under four subpackages:
//
//	basen/       — digit-string ↔ *big.Int conversion in bases 2..36
//	frac/        — the Fraction value type and its exact arithmetic
//	gauss/       — the exact Gauss-Jordan linear-system solver
//	reconstruct/ — orchestration plus the JSON share-document reader
//
// Quick sketch:
//
//	    (1, 4) (2, 7) (3, 12)
//	         │
//	         ▼
//	    │ 1  1  1 │  4 │
//	    │ 4  2  1 │  7 │   ──solve──▶  f(x) = x² + 3,  secret = f(0) = 3
//	    │ 9  3  1 │ 12 │
//
// See reconstruct/example_test.go for an end-to-end walkthrough from a raw
// share document to the recovered secret.
//
//	go get github.com/katalvlaran/polyrec
package polyrec

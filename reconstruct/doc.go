// Package reconstruct recovers a polynomial — and its constant term, the
// shared secret — from exact sample points.
//
// 🚀 How it works:
//
//	Given k points (xᵢ, yᵢ), the unique polynomial of degree d = k-1 through
//	them satisfies one linear equation per point. System builds row i as
//	[xᵢ^d, xᵢ^(d-1), …, xᵢ, 1, yᵢ], Reconstruct hands the k×(k+1) matrix to
//	gauss.Solve, and the last solution entry is f(0) — the secret.
//
// ✨ Key behaviors:
//   - everything is exact: coordinates are *big.Int, coefficients come back
//     as canonical frac.Fraction values
//   - a non-integer constant term is a surfaced condition, never a silent
//     truncation: Result.Secret reports it through its second return
//   - duplicate x-coordinates make the system singular and fail loudly
//   - share documents (the JSON test-case shape with a "keys" header and
//     per-x base/value entries) are parsed by ParseDocument; shares are
//     sorted numerically by x before the first k are taken, so selection
//     never depends on key insertion order
//
// ⚙️ Usage:
//
//	doc, err := reconstruct.ParseDocument(raw)
//	pts, err := doc.Points()
//	res, err := reconstruct.Reconstruct(pts)
//	if secret, ok := res.Secret(); ok {
//	  fmt.Println("secret:", secret)
//	} else {
//	  fmt.Println("non-integer constant term:", res.Constant())
//	}
//
// See example_test.go for the full document-to-secret walkthrough.
package reconstruct

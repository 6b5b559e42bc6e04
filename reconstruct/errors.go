package reconstruct

import "errors"

var (
	// ErrNoPoints indicates Reconstruct was called with an empty point list.
	ErrNoPoints = errors.New("reconstruct: at least one sample point is required")

	// ErrNilCoordinate indicates a Point with a nil X or Y.
	ErrNilCoordinate = errors.New("reconstruct: point has nil coordinate")

	// ErrDegreeMismatch indicates the point count does not match the degree
	// requested via WithDegree (need exactly degree+1 points).
	ErrDegreeMismatch = errors.New("reconstruct: point count does not match expected degree")

	// ErrBadDocument indicates a share document that does not follow the
	// expected shape (missing/invalid "keys" header, non-integer x key,
	// non-integer base field, malformed share entry).
	ErrBadDocument = errors.New("reconstruct: malformed share document")

	// ErrNotEnoughShares indicates a document holding fewer shares than its
	// declared threshold k.
	ErrNotEnoughShares = errors.New("reconstruct: fewer shares than threshold k")
)

// Package reconstruct: functional configuration for point selection and
// degree validation. Defaults are documented constants; Option constructors
// panic on nonsensical parameters (programmer error), never on data.
package reconstruct

// DEFAULTS - single source of truth for zero-option behavior.
const (
	// DefaultSortByX sorts document shares numerically by x-coordinate
	// before truncating to the threshold k. This pins the "first k" choice
	// to the declared coordinates instead of JSON key insertion order.
	DefaultSortByX = true

	// DefaultDegree derives the polynomial degree from the point count
	// (degree = len(points) - 1) instead of asserting a fixed value.
	DefaultDegree = -1
)

// options is the internal resolved configuration; fields stay unexported,
// public APIs consume ...Option.
type options struct {
	sortByX bool
	degree  int
}

// Option mutates the resolved options in a deterministic, order-independent way.
type Option func(*options)

// WithInsertionOrder makes Document.Points take shares in the document's
// lexicographic key order instead of sorting numerically by x-coordinate.
// This mirrors the enumeration order of generic key/value readers; use it
// only when a caller depends on that legacy selection.
func WithInsertionOrder() Option {
	return func(o *options) { o.sortByX = false }
}

// WithDegree asserts the expected polynomial degree d (≥ 0): Reconstruct
// then requires exactly d+1 points and fails with ErrDegreeMismatch
// otherwise. It only affects Reconstruct; Document.Points consumes ordering
// options alone. Panics on d < 0.
func WithDegree(d int) Option {
	if d < 0 {
		panic("reconstruct: WithDegree requires d >= 0")
	}

	return func(o *options) { o.degree = d }
}

// gatherOptions folds opts over the documented defaults.
func gatherOptions(opts ...Option) options {
	o := options{
		sortByX: DefaultSortByX,
		degree:  DefaultDegree,
	}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

package gauss

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/polyrec/frac"
)

// augmentedCols is the number of columns beyond the square coefficient block.
const augmentedCols = 1

var (
	// ErrBadShape indicates the input is not an n×(n+1) matrix with n ≥ 1.
	ErrBadShape = errors.New("gauss: matrix must be n x (n+1) with n >= 1")

	// ErrSingular indicates a pivot column with no nonzero candidate:
	// the system has no unique solution.
	ErrSingular = errors.New("gauss: singular matrix")
)

// Solve runs Gauss-Jordan elimination on the n×(n+1) augmented matrix aug and
// returns the exact solution vector, one Fraction per unknown in the original
// column order.
//
// Per pivot column: scan rows col..n-1 for the first nonzero entry (lowest
// index wins; ErrSingular when none), swap it into place, divide the pivot row
// by the pivot value, then subtract factor*pivotRow from every other row so
// the column is zero everywhere but the diagonal. After the last column the
// left block is the identity and column n holds the solution.
//
// aug is not mutated; rows are cloned into a scratch matrix that is discarded
// once the solution is extracted. Fully deterministic: identical inputs yield
// identical swap sequences and identical output.
//
// Complexity: O(n³) Fraction operations, O(n²) scratch memory.
func Solve(aug [][]frac.Fraction) ([]frac.Fraction, error) {
	n := len(aug)
	if n == 0 {
		return nil, fmt.Errorf("Solve: empty system: %w", ErrBadShape)
	}
	cols := n + augmentedCols

	// Clone rows; Fraction values are immutable, so a per-row shallow copy
	// fully isolates the caller's matrix from elimination writes.
	mat := make([][]frac.Fraction, n)
	var i int
	for i = 0; i < n; i++ {
		if len(aug[i]) != cols {
			return nil, fmt.Errorf("Solve: row %d has %d columns, want %d: %w", i, len(aug[i]), cols, ErrBadShape)
		}
		mat[i] = append([]frac.Fraction(nil), aug[i]...)
	}

	var (
		col, r, c int           // loop indices: pivot column, row, column
		pivotRow  int           // first row with a nonzero entry in col
		pivot     frac.Fraction // value being normalized to 1
		factor    frac.Fraction // multiplier eliminated from row r
		err       error
	)
	for col = 0; col < n; col++ {
		// Pivot search: first nonzero at or below the diagonal, lowest index wins.
		pivotRow = -1
		for r = col; r < n; r++ {
			if !mat[r][col].IsZero() {
				pivotRow = r
				break
			}
		}
		if pivotRow < 0 {
			return nil, fmt.Errorf("Solve: column %d: %w", col, ErrSingular)
		}
		if pivotRow != col {
			mat[col], mat[pivotRow] = mat[pivotRow], mat[col]
		}

		// Normalize: divide the pivot row by the pivot, making mat[col][col] == 1.
		// Columns left of the pivot are already zero and stay untouched.
		pivot = mat[col][col]
		for c = col; c < cols; c++ {
			if mat[col][c], err = mat[col][c].Div(pivot); err != nil {
				// Unreachable with a nonzero pivot; keep both sentinels observable.
				return nil, fmt.Errorf("Solve: normalize row %d: %w (%w)", col, ErrSingular, err)
			}
		}

		// Eliminate: zero column col in every other row.
		for r = 0; r < n; r++ {
			if r == col {
				continue
			}
			factor = mat[r][col]
			if factor.IsZero() {
				continue // already zero, skip the row update
			}
			for c = col; c < cols; c++ {
				mat[r][c] = mat[r][c].Sub(factor.Mul(mat[col][c]))
			}
		}
	}

	// Left block is the identity; the last column is the solution vector.
	sol := make([]frac.Fraction, n)
	for r = 0; r < n; r++ {
		sol[r] = mat[r][cols-1]
	}

	return sol, nil
}

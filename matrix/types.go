// SPDX-License-Identifier: MIT

package matrix

// Matrix is the minimal read/write surface shared by every kernel.
// Kernels take Matrix and take a flat fast path when both operands are *Dense.
type Matrix interface {
	// Rows returns the number of rows.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at (i, j); ErrOutOfRange on bad indices.
	// Complexity: O(1).
	At(i, j int) (float64, error)

	// Set assigns v at (i, j); ErrOutOfRange on bad indices.
	// Complexity: O(1).
	Set(i, j int, v float64) error

	// Clone returns an independent deep copy.
	// Complexity: O(rows*cols).
	Clone() Matrix
}

// Default tolerances for AllClose, matching common numeric practice.
const (
	DefaultRTol = 1e-5
	DefaultATol = 1e-8
)

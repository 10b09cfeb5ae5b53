// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a flat row-major buffer with the index formula i*cols + j.
//   - Return errors at the public surface instead of panicking.
//   - Allow 0×n and n×0 shapes: a diagram over the empty type is evaluated
//     to a matrix with no rows or no columns.
//
// Complexity quicksheet:
//   - NewDense: O(r*c); At/Set: O(1); Clone: O(r*c); String: O(r*c).

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	ctxAt  = "At"
	ctxSet = "Set"
)

// Dense is a concrete row-major matrix.
type Dense struct {
	r, c int       // rows, cols (>= 0)
	data []float64 // len == r*c, offset = i*c + j
}

var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix.
//
// Implementation:
//   - Stage 1: reject negative dimensions with ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled buffer.
//
// Complexity: Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(opNewDense, fmt.Errorf("%dx%d: %w", rows, cols, ErrInvalidDimensions))
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// FromRows builds a Dense from row slices; all rows must share one length.
// The input is copied.
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 {
		return &Dense{}, nil
	}
	c := len(rows[0])
	d := &Dense{r: len(rows), c: c, data: make([]float64, 0, len(rows)*c)}
	for i, row := range rows {
		if len(row) != c {
			return nil, matrixErrorf(opFromRows, fmt.Errorf("row %d has %d entries, want %d: %w", i, len(row), c, ErrBadShape))
		}
		d.data = append(d.data, row...)
	}

	return d, nil
}

// NewIdentity returns the n×n identity; n == 0 gives the empty matrix.
func NewIdentity(n int) (*Dense, error) {
	d, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		d.data[i*n+i] = 1
	}

	return d, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Dense) Shape() (int, int) { return m.r, m.c }

// At returns the element at (i, j).
func (m *Dense) At(i, j int) (float64, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, denseErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return m.data[i*m.c+j], nil
}

// Set assigns v at (i, j).
func (m *Dense) Set(i, j int, v float64) error {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return denseErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	m.data[i*m.c+j] = v

	return nil
}

// Clone returns a deep copy.
func (m *Dense) Clone() Matrix {
	out := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	copy(out.data, m.data)

	return out
}

// RowsCopy returns the matrix as a fresh [][]float64.
func (m *Dense) RowsCopy() [][]float64 {
	out := make([][]float64, m.r)
	for i := range out {
		out[i] = append([]float64(nil), m.data[i*m.c:(i+1)*m.c]...)
	}

	return out
}

// String renders one bracketed row per line: "[1, 2]\n[3, 4]\n".
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.FormatFloat(m.data[i*m.c+j], 'g', -1, 64))
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// asDense returns m as *Dense, copying through At when needed.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	d, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	for i := 0; i < d.r; i++ {
		for j := 0; j < d.c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, err
			}
			d.data[i*d.c+j] = v
		}
	}

	return d, nil
}

// SPDX-License-Identifier: MIT

// Package matrix - linear-algebra kernels used by the matrix categories.
//
// Every kernel validates its operands, allocates one fresh *Dense and never
// mutates its inputs. Loop orders are fixed, so results are deterministic.

package matrix

import (
	"fmt"
	"math"
)

func isNil(m Matrix) bool {
	if m == nil {
		return true
	}
	d, ok := m.(*Dense)

	return ok && d == nil
}

func validateNotNil(ms ...Matrix) error {
	for _, m := range ms {
		if isNil(m) {
			return ErrNilMatrix
		}
	}

	return nil
}

func validateSameShape(a, b Matrix) error {
	if err := validateNotNil(a, b); err != nil {
		return err
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return fmt.Errorf("%dx%d vs %dx%d: %w", a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch)
	}

	return nil
}

// Add returns a + b. Shapes must match exactly.
// Complexity: Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (Matrix, error) {
	if err := validateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	out := &Dense{r: da.r, c: da.c, data: make([]float64, len(da.data))}
	for k := range out.data {
		out.data[k] = da.data[k] + db.data[k]
	}

	return out, nil
}

// Mul returns the product a·b (a is r×n, b is n×c).
//
// Implementation:
//   - Stage 1: validate a.Cols == b.Rows.
//   - Stage 2: i-k-j loop over flat buffers, skipping zero a[i,k].
//
// Complexity: Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := validateNotNil(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if a.Cols() != b.Rows() {
		return nil, matrixErrorf(opMul, fmt.Errorf("%dx%d · %dx%d: %w", a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch))
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	out := &Dense{r: da.r, c: db.c, data: make([]float64, da.r*db.c)}
	for i := 0; i < da.r; i++ {
		for k := 0; k < da.c; k++ {
			av := da.data[i*da.c+k]
			if av == 0 {
				continue
			}
			for j := 0; j < db.c; j++ {
				out.data[i*db.c+j] += av * db.data[k*db.c+j]
			}
		}
	}

	return out, nil
}

// Scale returns alpha·m.
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	out := &Dense{r: d.r, c: d.c, data: make([]float64, len(d.data))}
	for k, v := range d.data {
		out.data[k] = alpha * v
	}

	return out, nil
}

// Transpose returns mᵀ. For real matrices this is the dagger.
func Transpose(m Matrix) (Matrix, error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	out := &Dense{r: d.c, c: d.r, data: make([]float64, len(d.data))}
	for i := 0; i < d.r; i++ {
		for j := 0; j < d.c; j++ {
			out.data[j*d.r+i] = d.data[i*d.c+j]
		}
	}

	return out, nil
}

// MatVec returns m·x for a column vector x of length m.Cols().
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if len(x) != m.Cols() {
		return nil, matrixErrorf(opMatVec, fmt.Errorf("%d columns, vector of %d: %w", m.Cols(), len(x), ErrDimensionMismatch))
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	out := make([]float64, d.r)
	for i := 0; i < d.r; i++ {
		var s float64
		for j := 0; j < d.c; j++ {
			s += d.data[i*d.c+j] * x[j]
		}
		out[i] = s
	}

	return out, nil
}

// DirectSum returns the block-diagonal matrix diag(a, b, ...).
// With no operands it returns the 0×0 matrix, the unit of the sum.
//
// Complexity: Time O(R*C) for the result of size R×C.
func DirectSum(ms ...Matrix) (Matrix, error) {
	var rows, cols int
	for _, m := range ms {
		if isNil(m) {
			return nil, matrixErrorf(opDirectSum, ErrNilMatrix)
		}
		rows += m.Rows()
		cols += m.Cols()
	}
	out := &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}
	r0, c0 := 0, 0
	for _, m := range ms {
		d, err := asDense(m)
		if err != nil {
			return nil, matrixErrorf(opDirectSum, err)
		}
		for i := 0; i < d.r; i++ {
			copy(out.data[(r0+i)*cols+c0:], d.data[i*d.c:(i+1)*d.c])
		}
		r0 += d.r
		c0 += d.c
	}

	return out, nil
}

// Kron returns the Kronecker product a ⊗ b, of shape (ra*rb)×(ca*cb).
//
// Implementation:
//   - Stage 1: allocate the result.
//   - Stage 2: block (i, j) of the result is a[i,j]·b.
//
// Complexity: Time O(ra*ca*rb*cb).
func Kron(a, b Matrix) (Matrix, error) {
	if err := validateNotNil(a, b); err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	rows, cols := da.r*db.r, da.c*db.c
	out := &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}
	for i := 0; i < da.r; i++ {
		for j := 0; j < da.c; j++ {
			av := da.data[i*da.c+j]
			if av == 0 {
				continue
			}
			for p := 0; p < db.r; p++ {
				row := (i*db.r + p) * cols
				for q := 0; q < db.c; q++ {
					out.data[row+j*db.c+q] = av * db.data[p*db.c+q]
				}
			}
		}
	}

	return out, nil
}

// AllClose reports |a-b| <= atol + rtol*|b| elementwise.
// Shapes must match; NaN never compares close.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if err := validateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	da, err := asDense(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	db, err := asDense(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	for k := range da.data {
		x, y := da.data[k], db.data[k]
		if math.IsNaN(x) || math.IsNaN(y) || math.Abs(x-y) > atol+rtol*math.Abs(y) {
			return false, nil
		}
	}

	return true, nil
}

// SPDX-License-Identifier: MIT

package functor

import (
	"strconv"

	"github.com/katalvlaran/lvcat/matrix"
	"github.com/katalvlaran/lvcat/moncat"
)

// Matrices is the category of real matrices with direct sum as tensor.
// An arrow from n to m wires is an m×n matrix (column convention), so
// Then(f, g) is g·f.
type Matrices struct{}

var (
	_ Category[matrix.Matrix] = Matrices{}
	_ Shaped[matrix.Matrix]   = Matrices{}
)

// Id returns the identity of size x.Width().
func (Matrices) Id(x moncat.Ty) (matrix.Matrix, error) { return matrix.NewIdentity(x.Width()) }

// Then returns g·f.
func (Matrices) Then(f, g matrix.Matrix) (matrix.Matrix, error) { return thenMatrix(f, g) }

// Tensor returns the direct sum f ⊕ g.
func (Matrices) Tensor(f, g matrix.Matrix) (matrix.Matrix, error) { return matrix.DirectSum(f, g) }

// Size is the width of x.
func (Matrices) Size(x moncat.Ty) int { return x.Width() }

// Shape returns (cols, rows).
func (Matrices) Shape(f matrix.Matrix) (int, int) { return f.Cols(), f.Rows() }

// Kronecker is the category of real matrices with the Kronecker product as
// tensor: a wire carries a space of dimension Dim, so a type of width n is
// a space of dimension Dim^n.
type Kronecker struct {
	Dim int
}

var (
	_ Category[matrix.Matrix] = Kronecker{}
	_ Shaped[matrix.Matrix]   = Kronecker{}
)

// Id returns the identity of size Dim^width.
func (k Kronecker) Id(x moncat.Ty) (matrix.Matrix, error) { return matrix.NewIdentity(k.Size(x)) }

// Then returns g·f.
func (Kronecker) Then(f, g matrix.Matrix) (matrix.Matrix, error) { return thenMatrix(f, g) }

// Tensor returns f ⊗ g.
func (Kronecker) Tensor(f, g matrix.Matrix) (matrix.Matrix, error) { return matrix.Kron(f, g) }

// Size returns Dim^width.
func (k Kronecker) Size(x moncat.Ty) int {
	n := 1
	for i := 0; i < x.Width(); i++ {
		n *= k.Dim
	}

	return n
}

// Shape returns (cols, rows).
func (Kronecker) Shape(f matrix.Matrix) (int, int) { return f.Cols(), f.Rows() }

func thenMatrix(f, g matrix.Matrix) (matrix.Matrix, error) {
	if f.Rows() != g.Cols() {
		return nil, &moncat.AxiomError{Op: "Then", Left: "dim " + strconv.Itoa(f.Rows()), Right: "dim " + strconv.Itoa(g.Cols())}
	}

	return matrix.Mul(g, f)
}

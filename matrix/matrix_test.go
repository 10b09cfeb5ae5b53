// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcat/matrix"
)

func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

func TestDense_ConstructAndAccess(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 2, 7))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)

	_, err = matrix.NewDense(-1, 2)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	empty, err := matrix.NewDense(0, 3)
	require.NoError(t, err) // zero-sized shapes are the unit object
	assert.Equal(t, 0, empty.Rows())

	_, err = matrix.FromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrix.ErrBadShape)

	c := m.Clone().(*matrix.Dense)
	require.NoError(t, c.Set(0, 0, 9))
	v, _ = m.At(0, 0)
	assert.Equal(t, 0.0, v, "Clone is independent")

	assert.Equal(t, "[1, 2]\n[3, 4]\n", mustRows(t, [][]float64{{1, 2}, {3, 4}}).String())
}

func TestMul(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	b := mustRows(t, [][]float64{{0, 1}, {1, 0}})
	p, err := matrix.Mul(a, b)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{2, 1}, {4, 3}}, p.(*matrix.Dense).RowsCopy())

	_, err = matrix.Mul(a, mustRows(t, [][]float64{{1, 2, 3}}))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Mul(nil, a)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	// 0-width composite: (1×0)·(0×1) is the 1×1 zero
	z1, _ := matrix.NewDense(1, 0)
	z2, _ := matrix.NewDense(0, 1)
	p, err = matrix.Mul(z1, z2)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0}}, p.(*matrix.Dense).RowsCopy())
}

// TestDirectSum checks that m ⊕ m ⊕ m is the identity for m = [1].
func TestDirectSum(t *testing.T) {
	one := mustRows(t, [][]float64{{1}})
	s, err := matrix.DirectSum(one, one, one)
	require.NoError(t, err)
	id, _ := matrix.NewIdentity(3)
	ok, err := matrix.AllClose(s, id, matrix.DefaultRTol, matrix.DefaultATol)
	require.NoError(t, err)
	assert.True(t, ok)

	unit, err := matrix.DirectSum()
	require.NoError(t, err)
	assert.Equal(t, 0, unit.Rows())

	blocks, err := matrix.DirectSum(mustRows(t, [][]float64{{1, 2}}), mustRows(t, [][]float64{{3}, {4}}))
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2, 0}, {0, 0, 3}, {0, 0, 4}}, blocks.(*matrix.Dense).RowsCopy())
}

func TestAdd(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2}})
	zero, _ := matrix.NewDense(1, 2)
	s, err := matrix.Add(a, zero)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2}}, s.(*matrix.Dense).RowsCopy())

	_, err = matrix.Add(a, mustRows(t, [][]float64{{1}, {2}}))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestKronTransposeScaleMatVec(t *testing.T) {
	x := mustRows(t, [][]float64{{0, 1}, {1, 0}})
	id, _ := matrix.NewIdentity(2)
	k, err := matrix.Kron(id, x)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{
		{0, 1, 0, 0},
		{1, 0, 0, 0},
		{0, 0, 0, 1},
		{0, 0, 1, 0},
	}, k.(*matrix.Dense).RowsCopy())

	tr, err := matrix.Transpose(mustRows(t, [][]float64{{1, 2, 3}}))
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1}, {2}, {3}}, tr.(*matrix.Dense).RowsCopy())

	sc, err := matrix.Scale(x, 2)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 2}, {2, 0}}, sc.(*matrix.Dense).RowsCopy())

	y, err := matrix.MatVec(mustRows(t, [][]float64{{1, 1}, {0, 2}}), []float64{3, 4})
	require.NoError(t, err)
	assert.Equal(t, []float64{7, 8}, y)
	_, err = matrix.MatVec(x, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// SPDX-License-Identifier: MIT

package functor_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcat/matrix"
	"github.com/katalvlaran/lvcat/moncat"
)

var (
	copyBox = moncat.NewBox("COPY", moncat.PRO(1), moncat.PRO(2), moncat.WithFunc(func(x []float64) ([]float64, error) {
		return []float64{x[0], x[0]}, nil
	}))
	addBox = moncat.NewBox("ADD", moncat.PRO(2), moncat.PRO(1), moncat.WithFunc(func(x []float64) ([]float64, error) {
		return []float64{x[0] + x[1]}, nil
	}))
	swapBox = moncat.Swap(moncat.PRO(1), moncat.PRO(1))
)

// must unwraps a (value, error) result; the returned check fails t on error.
func must[T any](v T, err error) func(testing.TB) T {
	return func(t testing.TB) T {
		t.Helper()
		require.NoError(t, err)

		return v
	}
}

func dense(t *testing.T, rows ...[]float64) matrix.Matrix {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

func requireClose(t *testing.T, want, got matrix.Matrix) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, matrix.DefaultRTol, matrix.DefaultATol)
	require.NoError(t, err)
	require.True(t, ok, "want\n%s\ngot\n%s", want, got)
}

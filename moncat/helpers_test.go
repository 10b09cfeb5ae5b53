// SPDX-License-Identifier: MIT

package moncat_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcat/moncat"
)

// Fixture boxes over PRO, with leaves so that tests can run them.
var (
	copyBox = moncat.NewBox("COPY", moncat.PRO(1), moncat.PRO(2), moncat.WithFunc(func(x []float64) ([]float64, error) {
		return []float64{x[0], x[0]}, nil
	}))
	addBox = moncat.NewBox("ADD", moncat.PRO(2), moncat.PRO(1), moncat.WithFunc(func(x []float64) ([]float64, error) {
		return []float64{x[0] + x[1]}, nil
	}))
	negBox = moncat.NewBox("NEG", moncat.PRO(1), moncat.PRO(1), moncat.WithFunc(func(x []float64) ([]float64, error) {
		return []float64{-x[0]}, nil
	}))
	swapBox = moncat.Swap(moncat.PRO(1), moncat.PRO(1))
)

// lookup resolves the fixture boxes by name.
func lookup(name string) (moncat.Arrow, error) {
	switch name {
	case "COPY":
		return copyBox, nil
	case "ADD":
		return addBox, nil
	case "NEG":
		return negBox, nil
	case "SWAP":
		return swapBox, nil
	}

	return nil, fmt.Errorf("%w: %s", moncat.ErrUnknownBox, name)
}

// run evaluates d on x by splicing every leaf into the running value.
func run(t *testing.T, d moncat.Diagram, x []float64) []float64 {
	t.Helper()
	cur := append([]float64(nil), x...)
	for _, l := range d.Layers() {
		w := l.Box.Dom().Width()
		y, err := l.Box.Call(cur[l.Offset : l.Offset+w])
		require.NoError(t, err)
		next := append([]float64(nil), cur[:l.Offset]...)
		next = append(next, y...)
		cur = append(next, cur[l.Offset+w:]...)
	}

	return cur
}

// must unwraps a (value, error) result; the returned check fails t on error.
func must[T any](v T, err error) func(testing.TB) T {
	return func(t testing.TB) T {
		t.Helper()
		require.NoError(t, err)

		return v
	}
}

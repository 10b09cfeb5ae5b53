// SPDX-License-Identifier: MIT

package functor

import (
	"fmt"

	"github.com/katalvlaran/lvcat/moncat"
)

// ObMap sends a generator to its image type.
type ObMap func(o moncat.Ob) (moncat.Ty, error)

// ObIdentity maps every generator to itself.
func ObIdentity() ObMap {
	return func(o moncat.Ob) (moncat.Ty, error) { return moncat.TyOf(o), nil }
}

// ObTable maps generators through a fixed table. Missing entries fail with
// ErrUnmappedOb. The table is copied.
func ObTable(table map[moncat.Ob]moncat.Ty) ObMap {
	own := make(map[moncat.Ob]moncat.Ty, len(table))
	for k, v := range table {
		own[k] = v
	}

	return func(o moncat.Ob) (moncat.Ty, error) {
		t, ok := own[o]
		if !ok {
			return moncat.Ty{}, fmt.Errorf("%w: %q", ErrUnmappedOb, o)
		}

		return t, nil
	}
}

// ObPRO maps every generator to PRO(n): each wire becomes a bundle of n.
func ObPRO(n int) ObMap {
	return func(moncat.Ob) (moncat.Ty, error) { return moncat.NewPRO(n) }
}

// ArMap sends a box to its image arrow.
type ArMap[T any] func(b moncat.Box) (T, error)

// ArPair is one entry of an arrow table.
type ArPair[T any] struct {
	Box   moncat.Box
	Arrow T
}

// ArTable maps boxes through a fixed table keyed by Box.Key. Missing boxes
// fail with ErrUnmappedBox.
func ArTable[T any](pairs ...ArPair[T]) ArMap[T] {
	table := make(map[string]T, len(pairs))
	for _, p := range pairs {
		table[p.Box.Key()] = p.Arrow
	}

	return func(b moncat.Box) (T, error) {
		a, ok := table[b.Key()]
		if !ok {
			var zero T
			return zero, fmt.Errorf("%w: %s", ErrUnmappedBox, b)
		}

		return a, nil
	}
}

// Or returns an arrow map trying m first and falling back to next on
// ErrUnmappedBox.
func (m ArMap[T]) Or(next ArMap[T]) ArMap[T] {
	return func(b moncat.Box) (T, error) {
		a, err := m(b)
		if err == nil {
			return a, nil
		}
		if next == nil || !isUnmapped(err) {
			return a, err
		}

		return next(b)
	}
}

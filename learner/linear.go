// SPDX-License-Identifier: MIT

package learner

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/lvcat/functor"
	"github.com/katalvlaran/lvcat/matrix"
	"github.com/katalvlaran/lvcat/moncat"
)

// MatrixArrows is the arrow map of the linear fragment of the vocabulary
// into functor.Matrices: swaps, COPY, ADD, Copy, Sum, Mult and Discard.
// Daggered boxes map to transposes. Bias and sigmoid are affine or
// nonlinear and fail with ErrNotLinear (which also matches
// functor.ErrUnmappedBox, so the map composes with ArMap.Or).
func MatrixArrows() functor.ArMap[matrix.Matrix] {
	return func(b moncat.Box) (matrix.Matrix, error) {
		if b.IsDagger() {
			m, err := linearMatrix(b.Dagger())
			if err != nil {
				return nil, err
			}
			return matrix.Transpose(m)
		}

		return linearMatrix(b)
	}
}

func linearMatrix(b moncat.Box) (matrix.Matrix, error) {
	dom, cod := b.Dom().Width(), b.Cod().Width()
	if wl, wr, ok := b.SwapWidths(); ok {
		// Swap(l, r): input i < |l| lands at |r| + i, the rest shift left.
		m, err := matrix.NewDense(cod, dom)
		if err != nil {
			return nil, err
		}
		for i := 0; i < dom; i++ {
			out := i - wl
			if i < wl {
				out = wr + i
			}
			if err := m.Set(out, i, 1); err != nil {
				return nil, err
			}
		}
		return m, nil
	}

	switch b.Name() {
	case NameCopy:
		return matrix.FromRows([][]float64{{1}, {1}})
	case NameAdd:
		return matrix.FromRows([][]float64{{1, 1}})
	}
	family, args, ok := splitCall(b.Name())
	if !ok {
		return nil, notLinear(b)
	}
	switch family {
	case FamilyMult:
		x, ok := b.Data().(float64)
		if !ok || len(args) != 1 {
			return nil, notLinear(b)
		}
		return matrix.FromRows([][]float64{{x}})
	case FamilyDiscard:
		return matrix.NewDense(0, dom)
	case FamilyCopy, FamilySum:
		if len(args) != 2 {
			return nil, notLinear(b)
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, notLinear(b)
		}
		m, err := matrix.NewDense(cod, dom)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return m, nil
		}
		// Copy stacks identities vertically, Sum horizontally.
		for k := 0; k < max(dom, cod)/n; k++ {
			for i := 0; i < n; i++ {
				r, c := k*n+i, i
				if family == FamilySum {
					r, c = i, k*n+i
				}
				if err := m.Set(r, c, 1); err != nil {
					return nil, err
				}
			}
		}
		return m, nil
	}

	return nil, notLinear(b)
}

func notLinear(b moncat.Box) error {
	return fmt.Errorf("%w: %w: %s", functor.ErrUnmappedBox, ErrNotLinear, b)
}

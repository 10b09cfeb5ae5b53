// SPDX-License-Identifier: MIT

package functor

import (
	"fmt"

	"github.com/katalvlaran/lvcat/moncat"
)

// Function is an arrow of Functions: a leaf from vectors of length Dom to
// vectors of length Cod.
type Function struct {
	Dom int
	Cod int
	Fn  moncat.Func
}

// Call runs the function, checking both lengths (ErrShape).
func (f Function) Call(x []float64) ([]float64, error) {
	if len(x) != f.Dom {
		return nil, fmt.Errorf("%w: input of length %d, want %d", ErrShape, len(x), f.Dom)
	}
	if f.Fn == nil {
		return nil, moncat.ErrNoFunction
	}
	y, err := f.Fn(x)
	if err != nil {
		return nil, err
	}
	if len(y) != f.Cod {
		return nil, fmt.Errorf("%w: output of length %d, want %d", ErrShape, len(y), f.Cod)
	}

	return y, nil
}

// Functions is the category of functions on []float64 with the cartesian
// tensor: Tensor(f, g) runs f on the first f.Dom entries and g on the rest.
type Functions struct{}

var (
	_ Category[Function] = Functions{}
	_ Shaped[Function]   = Functions{}
)

// Id returns the identity on x.Width() entries.
func (Functions) Id(x moncat.Ty) (Function, error) {
	n := x.Width()
	return Function{Dom: n, Cod: n, Fn: func(v []float64) ([]float64, error) {
		return append([]float64(nil), v...), nil
	}}, nil
}

// Then composes f then g.
func (Functions) Then(f, g Function) (Function, error) {
	if f.Cod != g.Dom {
		return Function{}, moncat.NewAxiomError("Then", moncat.PRO(f.Cod), moncat.PRO(g.Dom))
	}

	return Function{Dom: f.Dom, Cod: g.Cod, Fn: func(x []float64) ([]float64, error) {
		y, err := f.Call(x)
		if err != nil {
			return nil, err
		}
		return g.Call(y)
	}}, nil
}

// Tensor runs f and g side by side.
func (Functions) Tensor(f, g Function) (Function, error) {
	return Function{Dom: f.Dom + g.Dom, Cod: f.Cod + g.Cod, Fn: func(x []float64) ([]float64, error) {
		if len(x) != f.Dom+g.Dom {
			return nil, fmt.Errorf("%w: input of length %d, want %d", ErrShape, len(x), f.Dom+g.Dom)
		}
		a, err := f.Call(x[:f.Dom:f.Dom])
		if err != nil {
			return nil, err
		}
		b, err := g.Call(x[f.Dom:])
		if err != nil {
			return nil, err
		}
		out := make([]float64, 0, len(a)+len(b))
		out = append(out, a...)

		return append(out, b...), nil
	}}, nil
}

// Size is the width of x.
func (Functions) Size(x moncat.Ty) int { return x.Width() }

// Shape returns (Dom, Cod).
func (Functions) Shape(f Function) (int, int) { return f.Dom, f.Cod }

// FromBox turns a box with leaf semantics into a Function.
// Opaque boxes fail with moncat.ErrNoFunction.
func FromBox(b moncat.Box) (Function, error) {
	if b.Func() == nil {
		return Function{}, fmt.Errorf("%w: %s", moncat.ErrNoFunction, b)
	}

	return Function{Dom: b.Dom().Width(), Cod: b.Cod().Width(), Fn: b.Func()}, nil
}

// Leaves is the arrow map sending each box to its own leaf.
func Leaves() ArMap[Function] { return FromBox }

// Evaluator returns the functor that runs a diagram of leaves: identity on
// objects, each box to its own leaf.
func Evaluator(opts ...Option) *Functor[Function] {
	return New[Function](ObIdentity(), Leaves(), Functions{}, opts...)
}

// Eval runs d on x without building intermediate closures: each leaf is
// called on x[off:off+|dom|] and its result spliced back in place.
//
// Errors: ErrShape when x or a leaf result has the wrong length,
// moncat.ErrNoFunction for opaque boxes, or any leaf error.
//
// Complexity: O(n·w) copying for n layers over frontiers of width w, plus
// the cost of the leaves.
func Eval(d moncat.Diagram, x []float64) ([]float64, error) {
	if len(x) != d.Dom().Width() {
		return nil, fmt.Errorf("%w: input of length %d, want %d", ErrShape, len(x), d.Dom().Width())
	}
	cur := append([]float64(nil), x...)
	for i, l := range d.Layers() {
		w := l.Box.Dom().Width()
		y, err := l.Box.Call(cur[l.Offset : l.Offset+w : l.Offset+w])
		if err != nil {
			return nil, fmt.Errorf("layer %d (%s): %w", i, l.Box, err)
		}
		if len(y) != l.Box.Cod().Width() {
			return nil, fmt.Errorf("%w: layer %d (%s) returned %d values, want %d", ErrShape, i, l.Box, len(y), l.Box.Cod().Width())
		}
		next := make([]float64, 0, len(cur)-w+len(y))
		next = append(next, cur[:l.Offset]...)
		next = append(next, y...)
		cur = append(next, cur[l.Offset+w:]...)
	}

	return cur, nil
}

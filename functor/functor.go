// SPDX-License-Identifier: MIT

package functor

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvcat/moncat"
)

// Functor is a structure-preserving map from moncat diagrams into a target
// category. It owns its object and arrow maps and never retains the
// diagrams it is applied to; a Functor is safe for concurrent use when its
// maps and target are.
type Functor[T any] struct {
	ob     ObMap
	ar     ArMap[T]
	cod    Category[T]
	shaped Shaped[T] // nil unless cod implements Shaped
	logger *log.Logger
}

// Option configures a Functor.
type Option func(*options)

type options struct {
	logger *log.Logger
}

// WithLogger traces every folded layer at debug level.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// New builds a functor from an object map, an arrow map and a target.
func New[T any](ob ObMap, ar ArMap[T], cod Category[T], opts ...Option) *Functor[T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	f := &Functor[T]{ob: ob, ar: ar, cod: cod, logger: o.logger}
	if s, ok := cod.(Shaped[T]); ok {
		f.shaped = s
	}

	return f
}

// Target returns the codomain category.
func (f *Functor[T]) Target() Category[T] { return f.cod }

// MapOb returns F(x), the tensor of the images of x's generators.
func (f *Functor[T]) MapOb(x moncat.Ty) (moncat.Ty, error) {
	out := moncat.Ty{}
	for _, o := range x.Objects() {
		t, err := f.ob(o)
		if err != nil {
			return moncat.Ty{}, err
		}
		out = out.Tensor(t)
	}

	return out, nil
}

// MapBox returns F(b). When the target is Shaped, the image must have the
// sizes of F(dom) and F(cod), else ErrShape.
func (f *Functor[T]) MapBox(b moncat.Box) (T, error) {
	var zero T
	a, err := f.ar(b)
	if err != nil {
		if isUnmapped(err) {
			return zero, err
		}
		return zero, fmt.Errorf("%w: %s: %w", ErrUnmappedBox, b, err)
	}
	if f.shaped == nil {
		return a, nil
	}
	dom, err := f.MapOb(b.Dom())
	if err != nil {
		return zero, err
	}
	cod, err := f.MapOb(b.Cod())
	if err != nil {
		return zero, err
	}
	gd, gc := f.shaped.Shape(a)
	if wd, wc := f.shaped.Size(dom), f.shaped.Size(cod); gd != wd || gc != wc {
		return zero, fmt.Errorf("%w: image of %s is %d -> %d, want %d -> %d", ErrShape, b, gd, gc, wd, wc)
	}

	return a, nil
}

// Apply evaluates F on d.
//
// Implementation:
//   - Identity: Id(F(dom)).
//   - Single box: F(box).
//   - Composite: every layer becomes Id(F(left)) @ F(box) @ Id(F(right)),
//     sized from the frontier at that layer, and the layers are composed
//     with Then in order.
//
// Errors: ErrUnmappedOb, ErrUnmappedBox, ErrShape, or whatever the target's
// Id/Then/Tensor report.
//
// Complexity: O(n) target operations for n layers.
func (f *Functor[T]) Apply(d moncat.Diagram) (T, error) {
	var zero T
	switch d.Kind() {
	case moncat.KindIdentity:
		x, err := f.MapOb(d.Dom())
		if err != nil {
			return zero, err
		}
		return f.cod.Id(x)
	case moncat.KindBox:
		return f.MapBox(d.Boxes()[0])
	}

	var acc T
	frontiers := d.Frontiers()
	for i, l := range d.Layers() {
		frontier := frontiers[i]
		layer, err := f.whisker(frontier.Slice(0, l.Offset), l.Box, frontier.Slice(l.Offset+l.Box.Dom().Width(), frontier.Width()))
		if err != nil {
			return zero, fmt.Errorf("layer %d: %w", i, err)
		}
		if f.logger != nil {
			f.logger.Debug("fold", "layer", i, "box", l.Box.String(), "offset", l.Offset)
		}
		if i == 0 {
			acc = layer
			continue
		}
		if acc, err = f.cod.Then(acc, layer); err != nil {
			return zero, fmt.Errorf("layer %d: %w", i, err)
		}
	}

	return acc, nil
}

// whisker lifts F(b) to the full frontier.
func (f *Functor[T]) whisker(left moncat.Ty, b moncat.Box, right moncat.Ty) (T, error) {
	var zero T
	a, err := f.MapBox(b)
	if err != nil {
		return zero, err
	}
	if left.Width() > 0 {
		fl, err := f.MapOb(left)
		if err != nil {
			return zero, err
		}
		id, err := f.cod.Id(fl)
		if err != nil {
			return zero, err
		}
		if a, err = f.cod.Tensor(id, a); err != nil {
			return zero, err
		}
	}
	if right.Width() > 0 {
		fr, err := f.MapOb(right)
		if err != nil {
			return zero, err
		}
		id, err := f.cod.Id(fr)
		if err != nil {
			return zero, err
		}
		if a, err = f.cod.Tensor(a, id); err != nil {
			return zero, err
		}
	}

	return a, nil
}

// ApplyAll evaluates f on independent diagrams concurrently, at most limit
// at a time (limit <= 0 means unbounded). Results keep the input order; the
// first error cancels the remaining work.
func ApplyAll[T any](ctx context.Context, f *Functor[T], ds []moncat.Diagram, limit int) ([]T, error) {
	out := make([]T, len(ds))
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, d := range ds {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			v, err := f.Apply(d)
			if err != nil {
				return fmt.Errorf("diagram %d: %w", i, err)
			}
			out[i] = v

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

func isUnmapped(err error) bool {
	return errors.Is(err, ErrUnmappedBox) || errors.Is(err, ErrUnmappedOb)
}

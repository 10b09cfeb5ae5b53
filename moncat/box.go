// SPDX-License-Identifier: MIT

package moncat

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Func is the leaf semantics of a box: it maps a value of the domain's width
// to a value of the codomain's width. Shape checks are the leaf's business;
// the evaluator only verifies the length of what comes back.
type Func func(x []float64) ([]float64, error)

// boxKind distinguishes boxes whose dagger is structural.
type boxKind uint8

const (
	kindPlain boxKind = iota
	kindSwap
)

// Box is an atomic arrow. Boxes are immutable values; every method that
// "changes" a box returns a new one.
//
// Equality (Equal) covers name, domain, codomain, dagger flag, data (deep)
// and the identity of the leaf functions, so two boxes that only share a
// name never compare equal when they compute different things.
type Box struct {
	name    string
	dom     Ty
	cod     Ty
	fn      Func // leaf semantics, may be nil
	adjoint Func // leaf of the dagger, may be nil
	data    any  // opaque payload (scalar parameter, weights, ...)
	dagger  bool
	selfAdj bool
	kind    boxKind
}

// BoxOption configures a Box at construction time.
type BoxOption func(*Box)

// WithFunc attaches leaf semantics.
func WithFunc(fn Func) BoxOption {
	return func(b *Box) { b.fn = fn }
}

// WithDaggerFunc attaches the leaf used by the box's dagger.
func WithDaggerFunc(fn Func) BoxOption {
	return func(b *Box) { b.adjoint = fn }
}

// WithData attaches an opaque payload. It takes part in equality.
func WithData(data any) BoxOption {
	return func(b *Box) { b.data = data }
}

// WithSelfAdjoint marks a box equal to its own dagger (H-like boxes).
// Only meaningful when dom equals cod.
func WithSelfAdjoint() BoxOption {
	return func(b *Box) { b.selfAdj = true }
}

// NewBox creates a box from name to types.
// Complexity: O(len(opts)).
func NewBox(name string, dom, cod Ty, opts ...BoxOption) Box {
	b := Box{name: name, dom: dom, cod: cod}
	for _, opt := range opts {
		opt(&b)
	}
	if b.selfAdj && !dom.Equal(cod) {
		b.selfAdj = false
	}

	return b
}

// NewPROBox creates a box between PRO types of the given widths.
// Returns ErrType when a width is negative.
func NewPROBox(name string, dom, cod int, opts ...BoxOption) (Box, error) {
	d, err := NewPRO(dom)
	if err != nil {
		return Box{}, fmt.Errorf("box %q dom: %w", name, err)
	}
	c, err := NewPRO(cod)
	if err != nil {
		return Box{}, fmt.Errorf("box %q cod: %w", name, err)
	}

	return NewBox(name, d, c, opts...), nil
}

// Name returns the box name (without the dagger mark).
func (b Box) Name() string { return b.name }

// Dom returns the domain type.
func (b Box) Dom() Ty { return b.dom }

// Cod returns the codomain type.
func (b Box) Cod() Ty { return b.cod }

// Data returns the opaque payload, nil when absent.
func (b Box) Data() any { return b.data }

// Func returns the leaf semantics, nil when absent.
func (b Box) Func() Func { return b.fn }

// IsDagger reports whether b is the dagger of a box built by NewBox.
func (b Box) IsDagger() bool { return b.dagger }

// IsSwap reports whether b is a symmetry built by Swap.
func (b Box) IsSwap() bool { return b.kind == kindSwap }

// IsSelfAdjoint reports whether b was built WithSelfAdjoint.
func (b Box) IsSelfAdjoint() bool { return b.selfAdj }

// Call evaluates the leaf on x. Returns ErrNoFunction for opaque boxes.
func (b Box) Call(x []float64) ([]float64, error) {
	if b.fn == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoFunction, b)
	}

	return b.fn(x)
}

// Diagram returns the one-layer diagram holding b.
func (b Box) Diagram() Diagram {
	return Diagram{dom: b.dom, cod: b.cod, seq: leafSeq([]Layer{{Box: b, Offset: 0}})}
}

// Then composes b with others sequentially; see Diagram.Then.
func (b Box) Then(others ...Arrow) (Diagram, error) { return b.Diagram().Then(others...) }

// Tensor composes b with others in parallel; see Diagram.Tensor.
func (b Box) Tensor(others ...Arrow) (Diagram, error) { return b.Diagram().Tensor(others...) }

// Dagger returns the adjoint box: domain and codomain swapped, dagger flag
// toggled, leaf and adjoint leaf exchanged. Self-adjoint boxes and swaps
// return their structural dagger, so b.Dagger().Dagger() always equals b.
func (b Box) Dagger() Box {
	switch {
	case b.kind == kindSwap:
		return Swap(b.cod.Slice(0, b.cod.Width()-b.swapLeftWidth()), b.cod.Slice(b.cod.Width()-b.swapLeftWidth(), b.cod.Width()))
	case b.selfAdj:
		return b
	}
	d := b
	d.dom, d.cod = b.cod, b.dom
	d.fn, d.adjoint = b.adjoint, b.fn
	d.dagger = !b.dagger

	return d
}

// swapLeftWidth is the width of the left factor of a swap box.
func (b Box) swapLeftWidth() int {
	n, _ := b.data.(swapData)
	return n.left
}

// Equal reports structural equality of boxes (see Box).
func (b Box) Equal(o Box) bool {
	return b.name == o.name &&
		b.kind == o.kind &&
		b.dagger == o.dagger &&
		b.selfAdj == o.selfAdj &&
		b.dom.Equal(o.dom) &&
		b.cod.Equal(o.cod) &&
		reflect.DeepEqual(b.data, o.data) &&
		sameFunc(b.fn, o.fn) &&
		sameFunc(b.adjoint, o.adjoint)
}

// Key returns a deterministic identity string: equal boxes share a key.
// Data enters the key with its dynamic type, so 2 and 2.0 differ. Leaf
// functions are not part of the key; use it to index arrow tables.
func (b Box) Key() string {
	var sb strings.Builder
	sb.WriteString(strconv.Quote(b.name))
	sb.WriteByte(':')
	sb.WriteString(b.dom.key())
	sb.WriteString("->")
	sb.WriteString(b.cod.key())
	if b.dagger {
		sb.WriteString("†")
	}
	if b.data != nil {
		fmt.Fprintf(&sb, "#%T:%v", b.data, b.data)
	}

	return sb.String()
}

// String renders the box by name; daggers carry a trailing "†".
func (b Box) String() string {
	if b.dagger {
		return b.name + daggerMark
	}

	return b.name
}

// daggerMark suffixes the names of daggered boxes in text form.
const daggerMark = "†"

// sameFunc compares leaf identities: both nil, or the same code pointer.
// Closures built from one literal share a code pointer; name and data tell
// them apart.
func sameFunc(a, b Func) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}

// SPDX-License-Identifier: MIT

package moncat

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// Arrow is anything usable where a diagram is expected: a Box is its own
// one-layer diagram, a Diagram is itself.
type Arrow interface {
	Diagram() Diagram
}

// Kind tags the three shapes a Diagram can take.
type Kind uint8

const (
	// KindIdentity is a diagram without layers (dom == cod).
	KindIdentity Kind = iota
	// KindBox is a single box at offset 0 spanning the whole frontier.
	KindBox
	// KindComposite is everything else.
	KindComposite
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindIdentity:
		return "identity"
	case KindBox:
		return "box"
	default:
		return "composite"
	}
}

// Layer is one step of a diagram: Box applied to the current frontier,
// starting at wire Offset.
type Layer struct {
	Box    Box
	Offset int
}

// layers is a persistent rope of layers. Then and Tensor allocate one node
// and share both operands; the flat slice is built on first use and cached.
// A node is immutable once published.
type layers struct {
	n     int     // total number of layers below this node
	leaf  []Layer // set on leaves only
	left  *layers
	right *layers
	shift int // added to every offset of right (Tensor)

	once sync.Once
	flat []Layer
}

func leafSeq(ls []Layer) *layers {
	if len(ls) == 0 {
		return nil
	}

	return &layers{n: len(ls), leaf: ls}
}

// concat joins a and b, shifting b's offsets by shift.
// Complexity: O(1).
func concat(a, b *layers, shift int) *layers {
	switch {
	case b.size() == 0:
		return a
	case a.size() == 0 && shift == 0:
		return b
	}

	return &layers{n: a.size() + b.size(), left: a, right: b, shift: shift}
}

func (s *layers) size() int {
	if s == nil {
		return 0
	}

	return s.n
}

// slice returns the flattened layers. The result is shared: never mutate it.
// Implementation:
//   - Stage 1: leaves return their backing slice directly.
//   - Stage 2: inner nodes walk the rope with an explicit stack (ropes built
//     by long Then chains are deep), accumulating tensor shifts.
//
// Complexity: O(n) on first call, O(1) afterwards.
func (s *layers) slice() []Layer {
	if s == nil {
		return nil
	}
	if s.leaf != nil {
		return s.leaf
	}
	s.once.Do(func() {
		type frame struct {
			node  *layers
			shift int
		}
		out := make([]Layer, 0, s.n)
		stack := []frame{{node: s}}
		for len(stack) > 0 {
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if f.node.size() == 0 {
				continue
			}
			if f.node.leaf != nil {
				for _, l := range f.node.leaf {
					l.Offset += f.shift
					out = append(out, l)
				}
				continue
			}
			stack = append(stack,
				frame{node: f.node.right, shift: f.shift + f.node.shift},
				frame{node: f.node.left, shift: f.shift},
			)
		}
		s.flat = out
	})

	return s.flat
}

// Diagram is an immutable composite morphism: layers applied left to right
// against an evolving frontier, from Dom to Cod.
//
// Offsets are relative to the frontier at the point each layer fires, so
// Then concatenates without shifting and Tensor shifts the right operand by
// the width of the left codomain. The zero value is Id(Ty()).
type Diagram struct {
	dom Ty
	cod Ty
	seq *layers
}

// Id returns the identity diagram on x.
func Id(x Ty) Diagram { return Diagram{dom: x, cod: x} }

// NewDiagram builds a diagram from parallel box/offset slices, checking every
// layer against the running frontier and the final frontier against cod.
//
// Errors:
//   - ErrLength when len(boxes) != len(offsets);
//   - ErrOffset when a box does not fit inside the frontier;
//   - ErrAxiom when box labels or the final frontier do not match.
//
// Complexity: O(n·w) for n layers over frontiers of width w.
func NewDiagram(dom, cod Ty, boxes []Box, offsets []int) (Diagram, error) {
	if len(boxes) != len(offsets) {
		return Diagram{}, fmt.Errorf("%w: %d boxes, %d offsets", ErrLength, len(boxes), len(offsets))
	}
	ls := make([]Layer, len(boxes))
	for i := range boxes {
		ls[i] = Layer{Box: boxes[i], Offset: offsets[i]}
	}
	got, err := checkLayers(dom, ls)
	if err != nil {
		return Diagram{}, err
	}
	if !got.Equal(cod) {
		return Diagram{}, &AxiomError{Op: "NewDiagram", Left: got.String(), Right: cod.String()}
	}

	return Diagram{dom: dom, cod: cod, seq: leafSeq(ls)}, nil
}

// Decode builds a diagram from its layers and infers the codomain.
// The layers slice is copied.
func Decode(dom Ty, ls []Layer) (Diagram, error) {
	own := make([]Layer, len(ls))
	copy(own, ls)
	cod, err := checkLayers(dom, own)
	if err != nil {
		return Diagram{}, err
	}

	return Diagram{dom: dom, cod: cod, seq: leafSeq(own)}, nil
}

// checkLayers runs the frontier through ls and returns the final type.
func checkLayers(dom Ty, ls []Layer) (Ty, error) {
	frontier := dom
	for i, l := range ls {
		w := l.Box.dom.Width()
		if l.Offset < 0 || l.Offset+w > frontier.Width() {
			return Ty{}, fmt.Errorf("%w: layer %d: %s at %d in %s", ErrOffset, i, l.Box, l.Offset, frontier)
		}
		if got := frontier.Slice(l.Offset, l.Offset+w); !got.Equal(l.Box.dom) {
			return Ty{}, &AxiomError{Op: "layer " + strconv.Itoa(i), Left: got.String(), Right: l.Box.dom.String()}
		}
		frontier = rewrite(frontier, l)
	}

	return frontier, nil
}

// rewrite replaces the wires under l.Box's domain by its codomain.
func rewrite(frontier Ty, l Layer) Ty {
	return frontier.Slice(0, l.Offset).Tensor(l.Box.cod, frontier.Slice(l.Offset+l.Box.dom.Width(), frontier.Width()))
}

// Diagram implements Arrow.
func (d Diagram) Diagram() Diagram { return d }

// Dom returns the domain type.
func (d Diagram) Dom() Ty { return d.dom }

// Cod returns the codomain type.
func (d Diagram) Cod() Ty { return d.cod }

// Len returns the number of layers.
func (d Diagram) Len() int { return d.seq.size() }

// Kind classifies d as identity, single box or composite.
func (d Diagram) Kind() Kind {
	ls := d.seq.slice()
	switch {
	case len(ls) == 0:
		return KindIdentity
	case len(ls) == 1 && ls[0].Offset == 0 && ls[0].Box.dom.Equal(d.dom) && ls[0].Box.cod.Equal(d.cod):
		return KindBox
	default:
		return KindComposite
	}
}

// Layers returns a copy of the layer sequence.
func (d Diagram) Layers() []Layer {
	ls := d.seq.slice()
	out := make([]Layer, len(ls))
	copy(out, ls)

	return out
}

// Boxes returns the boxes in layer order.
func (d Diagram) Boxes() []Box {
	ls := d.seq.slice()
	out := make([]Box, len(ls))
	for i, l := range ls {
		out[i] = l.Box
	}

	return out
}

// Offsets returns the offsets in layer order.
func (d Diagram) Offsets() []int {
	ls := d.seq.slice()
	out := make([]int, len(ls))
	for i, l := range ls {
		out[i] = l.Offset
	}

	return out
}

// Frontiers returns the Len()+1 types the frontier goes through, from Dom to Cod.
func (d Diagram) Frontiers() []Ty {
	ls := d.seq.slice()
	out := make([]Ty, 0, len(ls)+1)
	frontier := d.dom
	out = append(out, frontier)
	for _, l := range ls {
		frontier = rewrite(frontier, l)
		out = append(out, frontier)
	}

	return out
}

// Then composes d with others in sequence: d >> o1 >> o2 ...
// Every codomain must equal the next domain, else an *AxiomError naming
// both types is returned. A nil operand is an ErrType.
// Complexity: O(len(others)) plus type comparisons.
func (d Diagram) Then(others ...Arrow) (Diagram, error) {
	out := d
	for i, o := range others {
		if o == nil {
			return Diagram{}, typeErrorf("Then: operand %d is nil", i)
		}
		next := o.Diagram()
		if !out.cod.Equal(next.dom) {
			return Diagram{}, &AxiomError{Op: "Then", Left: out.cod.String(), Right: next.dom.String()}
		}
		out = Diagram{dom: out.dom, cod: next.cod, seq: concat(out.seq, next.seq, 0)}
	}

	return out, nil
}

// Tensor composes d with others in parallel: d @ o1 @ o2 ...
// Layers of d come first; each operand's offsets are shifted by the width of
// everything to its left, measured on codomains.
func (d Diagram) Tensor(others ...Arrow) (Diagram, error) {
	out := d
	for i, o := range others {
		if o == nil {
			return Diagram{}, typeErrorf("Tensor: operand %d is nil", i)
		}
		next := o.Diagram()
		out = Diagram{
			dom: out.dom.Tensor(next.dom),
			cod: out.cod.Tensor(next.cod),
			seq: concat(out.seq, next.seq, out.cod.Width()),
		}
	}

	return out, nil
}

// Then composes arrows in sequence. A nil first operand is an ErrType.
func Then(first Arrow, rest ...Arrow) (Diagram, error) {
	if first == nil {
		return Diagram{}, typeErrorf("Then: operand is nil")
	}

	return first.Diagram().Then(rest...)
}

// Tensor composes arrows in parallel. Tensor() is Id(Ty()).
func Tensor(arrows ...Arrow) (Diagram, error) {
	return Id(Ty{}).Tensor(arrows...)
}

// Whisker returns Id(left) @ a @ Id(right).
func Whisker(left Ty, a Arrow, right Ty) (Diagram, error) {
	if a == nil {
		return Diagram{}, typeErrorf("Whisker: operand is nil")
	}

	return Id(left).Tensor(a, Id(right))
}

// Equal reports structural identity: same types, same boxes, same offsets.
// Use Equivalent to compare up to the interchange law.
func (d Diagram) Equal(o Diagram) bool {
	if !d.dom.Equal(o.dom) || !d.cod.Equal(o.cod) || d.Len() != o.Len() {
		return false
	}
	a, b := d.seq.slice(), o.seq.slice()
	for i := range a {
		if a[i].Offset != b[i].Offset || !a[i].Box.Equal(b[i].Box) {
			return false
		}
	}

	return true
}

// Equivalent reports whether d and o are equal as morphisms of a monoidal
// category, i.e. whether their right normal forms are structurally equal.
// Returns ErrType for a nil operand, and ErrClosedComponent when the forms
// differ but one side has a component wired to neither boundary.
func (d Diagram) Equivalent(o Arrow) (bool, error) {
	if o == nil {
		return false, typeErrorf("Equivalent: operand is nil")
	}
	od := o.Diagram()
	if !d.dom.Equal(od.dom) || !d.cod.Equal(od.cod) || d.Len() != od.Len() {
		return false, nil
	}
	if d.NormalForm(false).Equal(od.NormalForm(false)) {
		return true, nil
	}
	if d.hasClosedComponent() || od.hasClosedComponent() {
		return false, ErrClosedComponent
	}

	return false, nil
}

// Dagger returns the adjoint diagram: layers reversed, each box daggered,
// offsets unchanged.
func (d Diagram) Dagger() Diagram {
	ls := d.seq.slice()
	out := make([]Layer, len(ls))
	for i, l := range ls {
		out[len(ls)-1-i] = Layer{Box: l.Box.Dagger(), Offset: l.Offset}
	}

	return Diagram{dom: d.cod, cod: d.dom, seq: leafSeq(out)}
}

// Key returns an injective textual encoding of d, suitable as a map key.
func (d Diagram) Key() string {
	var sb strings.Builder
	sb.WriteString(d.dom.key())
	for _, l := range d.seq.slice() {
		sb.WriteByte('|')
		sb.WriteString(l.Box.Key())
		sb.WriteByte('@')
		sb.WriteString(strconv.Itoa(l.Offset))
	}
	sb.WriteString("|=")
	sb.WriteString(d.cod.key())

	return sb.String()
}

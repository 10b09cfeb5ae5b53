// SPDX-License-Identifier: MIT

package moncat

import "fmt"

// Interchange moves the box at layer i to layer j by successive swaps of
// adjacent layers, each licensed by the interchange law.
//
// Two adjacent layers commute when their wire ranges are disjoint. When the
// second box lies right of the first box's outputs, its offset is shifted by
// |dom0| - |cod0|; when it lies left of the first box's inputs, the first
// box's offset is shifted by |cod1| - |dom1|. An effect followed by a state
// at the same offset satisfies both. For such a pair the first box is
// shifted, unless left is set, in which case the second one is.
//
// Errors:
//   - ErrIndex when i or j is outside [0, Len());
//   - *AxiomError matching ErrInterchange (and ErrAxiom) when a swap would
//     cross overlapping boxes.
//
// Complexity: O(n + |i-j|).
func (d Diagram) Interchange(i, j int, left bool) (Diagram, error) {
	n := d.Len()
	if i < 0 || i >= n || j < 0 || j >= n {
		return Diagram{}, fmt.Errorf("%w: Interchange(%d, %d) on %d layers", ErrIndex, i, j, n)
	}
	if i == j {
		return d, nil
	}
	ls := d.Layers()
	for ; i < j; i++ {
		if err := swapLayers(ls, i, left); err != nil {
			return Diagram{}, err
		}
	}
	for ; i > j; i-- {
		if err := swapLayers(ls, i-1, left); err != nil {
			return Diagram{}, err
		}
	}

	return Diagram{dom: d.dom, cod: d.cod, seq: leafSeq(ls)}, nil
}

// sides reports where the box of layer k+1 sits relative to layer k:
// right of its outputs, and/or left of its inputs.
func sides(ls []Layer, k int) (right, leftOf bool) {
	b0, b1 := ls[k], ls[k+1]
	right = b1.Offset >= b0.Offset+b0.Box.cod.Width()
	leftOf = b0.Offset >= b1.Offset+b1.Box.dom.Width()

	return right, leftOf
}

// swapLayers exchanges layers k and k+1 in place.
func swapLayers(ls []Layer, k int, left bool) error {
	b0, b1 := ls[k], ls[k+1]
	right, leftOf := sides(ls, k)
	switch {
	case right && (!leftOf || left):
		b1.Offset += b0.Box.dom.Width() - b0.Box.cod.Width()
	case leftOf:
		b0.Offset += b1.Box.cod.Width() - b1.Box.dom.Width()
	default:
		return &AxiomError{
			Op:    fmt.Sprintf("Interchange(%d, %d)", k, k+1),
			Left:  b0.Box.String(),
			Right: b1.Box.String(),
			Err:   ErrInterchange,
		}
	}
	ls[k], ls[k+1] = b1, b0

	return nil
}

// SPDX-License-Identifier: MIT

package moncat

import "fmt"

// swapData tags swap boxes with the width of their left factor, so that the
// dagger can be rebuilt and equal swaps compare equal.
type swapData struct {
	left int
}

// Swap returns the symmetry left @ right -> right @ left. The PRO(1) swap is
// named "SWAP". Its leaf rotates the value by the width of left.
func Swap(left, right Ty) Box {
	name := "SWAP"
	if left.Width() != 1 || right.Width() != 1 || !left.IsPRO() || !right.IsPRO() {
		name = fmt.Sprintf("Swap(%s, %s)", left.idArg(), right.idArg())
	}
	b := NewBox(name, left.Tensor(right), right.Tensor(left),
		WithFunc(rotate(left.Width())),
		WithData(swapData{left: left.Width()}),
	)
	b.kind = kindSwap

	return b
}

func rotate(n int) Func {
	return func(x []float64) ([]float64, error) {
		if n > len(x) {
			return nil, fmt.Errorf("swap: value of length %d, left factor %d", len(x), n)
		}
		out := make([]float64, 0, len(x))
		out = append(out, x[n:]...)

		return append(out, x[:n]...), nil
	}
}

// Permutation returns the diagram sending input wire i to output position
// perm[i], built from adjacent swaps (a bubble sort on target positions).
// Returns ErrPermutation unless perm is a permutation of [0, dom.Width()).
// Complexity: O(w²) swaps for w wires.
func Permutation(perm []int, dom Ty) (Diagram, error) {
	w := dom.Width()
	if len(perm) != w {
		return Diagram{}, fmt.Errorf("%w: %d entries for %d wires", ErrPermutation, len(perm), w)
	}
	seen := make([]bool, w)
	for i, p := range perm {
		if p < 0 || p >= w || seen[p] {
			return Diagram{}, fmt.Errorf("%w: entry %d is %d", ErrPermutation, i, p)
		}
		seen[p] = true
	}
	cur := make([]int, w) // cur[k] is the input wire now at position k
	for k := range cur {
		cur[k] = k
	}
	var ls []Layer
	for sorted := false; !sorted; {
		sorted = true
		for k := 0; k+1 < w; k++ {
			if perm[cur[k]] < perm[cur[k+1]] {
				continue
			}
			a, b := cur[k], cur[k+1]
			ls = append(ls, Layer{Box: Swap(dom.Slice(a, a+1), dom.Slice(b, b+1)), Offset: k})
			cur[k], cur[k+1] = b, a
			sorted = false
		}
	}

	return Decode(dom, ls)
}

// SwapWidths returns the widths of the factors of a swap box built by Swap;
// ok is false for any other box.
func (b Box) SwapWidths() (left, right int, ok bool) {
	if b.kind != kindSwap {
		return 0, 0, false
	}
	left = b.swapLeftWidth()

	return left, b.dom.Width() - left, true
}

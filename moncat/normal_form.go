// SPDX-License-Identifier: MIT

package moncat

// NormalForm returns the canonical representative of d under the interchange
// law. With left == false (right normal form) a box moves one layer earlier
// whenever it lies left of its predecessor's inputs; with left == true,
// whenever it lies right of its predecessor's outputs. An effect followed by
// a state at the same offset counts as such a pair, so both interleavings of
// a state and an effect reach the same form. Two adjacent scalars (empty dom
// and cod) keep their order.
//
// Implementation:
//   - Stage 1: copy the layers once.
//   - Stage 2: gnome sort: on a swap step back one layer, otherwise advance.
//   - Stage 3: past n² swaps the rewriting is walked one swap at a time until
//     it reaches a fixed point or revisits a layout. A revisited layout only
//     happens when d has a closed component; the result is then the smallest
//     layout of the cycle by Key.
//
// Complexity: O(n²) interchanges when d has no closed component, O(n) on a
// normal form. The result is idempotent: NormalForm(NormalForm(d)) equals
// NormalForm(d).
func (d Diagram) NormalForm(left bool) Diagram {
	n := d.Len()
	if n < 2 {
		return d
	}
	ls := d.Layers()
	swaps := 0
	for k := 0; k+1 < n; {
		if !canSwap(ls, k, left) {
			k++
			continue
		}
		_ = swapLayers(ls, k, left) // one side holds, cannot fail
		swaps++
		if swaps > n*n {
			ls = settle(d.dom, d.cod, ls, left)
			break
		}
		if k > 0 {
			k--
		}
	}
	if swaps == 0 {
		return d
	}

	return Diagram{dom: d.dom, cod: d.cod, seq: leafSeq(ls)}
}

// canSwap reports whether the normal form moves layer k+1 before layer k.
func canSwap(ls []Layer, k int, left bool) bool {
	right, leftOf := sides(ls, k)
	swap := leftOf
	if left {
		swap = right
	}

	return swap && !(isScalar(ls[k].Box) && isScalar(ls[k+1].Box))
}

// step applies the first swap the normal form would make.
func step(ls []Layer, left bool) bool {
	for k := 0; k+1 < len(ls); k++ {
		if canSwap(ls, k, left) {
			_ = swapLayers(ls, k, left)
			return true
		}
	}

	return false
}

// settle runs the rewriting from ls to a fixed point, or to the smallest
// layout of the cycle it falls into.
func settle(dom, cod Ty, ls []Layer, left bool) []Layer {
	seen := make(map[string]int)
	var trail [][]Layer
	for {
		key := Diagram{dom: dom, cod: cod, seq: leafSeq(ls)}.Key()
		if at, ok := seen[key]; ok {
			best, bestKey := trail[at], key
			for _, c := range trail[at:] {
				if k := (Diagram{dom: dom, cod: cod, seq: leafSeq(c)}).Key(); k < bestKey {
					best, bestKey = c, k
				}
			}
			return best
		}
		seen[key] = len(trail)
		trail = append(trail, append([]Layer(nil), ls...))
		if !step(ls, left) {
			return ls
		}
	}
}

func isScalar(b Box) bool {
	return b.dom.Width() == 0 && b.cod.Width() == 0
}

// hasClosedComponent reports whether some box of d is connected to neither
// the domain nor the codomain. Normal forms of such diagrams are not unique.
func (d Diagram) hasClosedComponent() bool {
	ls := d.seq.slice()
	w := d.dom.Width()
	parent := make([]int, w+len(ls))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}

	front := make([]int, w)
	for i := range front {
		front[i] = i
	}
	for i, l := range ls {
		node := w + i
		dw := l.Box.dom.Width()
		for _, x := range front[l.Offset : l.Offset+dw] {
			parent[find(x)] = find(node)
		}
		next := make([]int, 0, len(front)-dw+l.Box.cod.Width())
		next = append(next, front[:l.Offset]...)
		for j := 0; j < l.Box.cod.Width(); j++ {
			next = append(next, node)
		}
		front = append(next, front[l.Offset+dw:]...)
	}

	open := make(map[int]bool, w+len(front))
	for i := 0; i < w; i++ {
		open[find(i)] = true
	}
	for _, x := range front {
		open[find(x)] = true
	}
	for i := range ls {
		if !open[find(w+i)] {
			return true
		}
	}

	return false
}

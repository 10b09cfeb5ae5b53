// SPDX-License-Identifier: MIT

package opengraph

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvcat/core"
	"github.com/katalvlaran/lvcat/dfs"
	"github.com/katalvlaran/lvcat/moncat"
)

// decoder holds the running frontier: the source port and label of
// every open wire, left to right.
type decoder struct {
	g        *core.Graph
	frontier []wireEnd
	obs      []moncat.Ob
	layers   []moncat.Layer
}

// Decode rebuilds a diagram from a port multigraph.
//
// Implementation:
//   - Stage 1: check boundaries; every input and output vertex is listed
//     once and carries exactly one wire.
//   - Stage 2: order vertices with dfs.TopologicalSort, inputs first, then
//     boxes by ID.
//   - Stage 3: per box, locate its input wires in the frontier; when they
//     are not adjacent and in port order, move them together with a
//     moncat.Permutation first. Splice the box outputs into the frontier.
//   - Stage 4: permute the frontier into the output order.
//
// Errors: ErrMissingBoundary, ErrDuplicateBoundary, ErrDangling (all wrap
// ErrValue), dfs.ErrCycleDetected wrapped with ErrValue, and resolver or
// moncat errors.
func Decode(g *core.Graph, resolve Resolver) (moncat.Diagram, error) {
	if g == nil || resolve == nil {
		return moncat.Diagram{}, fmt.Errorf("%w: nil graph or resolver", ErrValue)
	}
	dec := &decoder{g: g}

	// Stage 1
	inputs, outputs := g.Inputs(), g.Outputs()
	if err := checkBoundary(g, core.KindInput, inputs); err != nil {
		return moncat.Diagram{}, err
	}
	if err := checkBoundary(g, core.KindOutput, outputs); err != nil {
		return moncat.Diagram{}, err
	}
	dom := make([]moncat.Ob, len(inputs))
	for i, id := range inputs {
		v, _ := g.Vertex(id)
		dom[i] = wireOb(v.Label)
		dec.frontier = append(dec.frontier, wireEnd{id, 0})
	}
	dec.obs = slices.Clone(dom)

	// Stage 2
	order, err := dfs.TopologicalSort(g, dfs.WithLess(kindFirst(g)))
	if err != nil {
		return moncat.Diagram{}, fmt.Errorf("%w: %w", ErrValue, err)
	}

	// Stage 3
	for _, id := range order {
		v, err := g.Vertex(id)
		if err != nil {
			return moncat.Diagram{}, err
		}
		if v.Kind != core.KindBox {
			continue
		}
		b, err := resolve(v)
		if err != nil {
			return moncat.Diagram{}, err
		}
		if err := dec.place(v, b); err != nil {
			return moncat.Diagram{}, err
		}
	}

	// Stage 4
	if err := dec.close(outputs); err != nil {
		return moncat.Diagram{}, err
	}

	return moncat.Decode(moncat.TyOf(dom...), dec.layers)
}

// place appends b as the next layer, wired as the graph says.
func (dec *decoder) place(v core.Vertex, b moncat.Box) error {
	ins, err := dec.g.InEdges(v.ID)
	if err != nil {
		return err
	}
	outs, err := dec.g.OutEdges(v.ID)
	if err != nil {
		return err
	}
	n, m := b.Dom().Width(), b.Cod().Width()
	if err := checkPorts(v.ID, "input", ins, n, func(e core.Edge) int { return e.ToPort }); err != nil {
		return err
	}
	if err := checkPorts(v.ID, "output", outs, m, func(e core.Edge) int { return e.FromPort }); err != nil {
		return err
	}

	pos := make([]int, n)
	for j, e := range ins {
		if pos[j] = dec.find(wireEnd{e.From, e.FromPort}); pos[j] < 0 {
			return fmt.Errorf("%w: %s:%d feeds %s before it is produced", ErrDangling, e.From, e.FromPort, v.ID)
		}
	}

	var off int
	switch {
	case n == 0:
		off = 0
		if hint, ok := toInt(v.Metadata[MetaOffset]); ok && hint >= 0 && hint <= len(dec.frontier) {
			off = hint
		}
	case adjacent(pos):
		off = pos[0]
	default:
		if off, err = dec.gather(pos); err != nil {
			return err
		}
	}

	wires := make([]wireEnd, m)
	for k := range wires {
		wires[k] = wireEnd{v.ID, k}
	}
	dec.layers = append(dec.layers, moncat.Layer{Box: b, Offset: off})
	dec.frontier = slices.Concat(dec.frontier[:off], wires, dec.frontier[off+n:])
	dec.obs = slices.Concat(dec.obs[:off], b.Cod().Objects(), dec.obs[off+n:])

	return nil
}

// gather moves the wires at pos (in that order) next to each other,
// starting where the leftmost of them was, and returns that offset.
func (dec *decoder) gather(pos []int) (int, error) {
	w, n := len(dec.frontier), len(pos)
	start := slices.Min(pos)
	selected := make(map[int]int, n)
	for j, p := range pos {
		selected[p] = j
	}
	perm := make([]int, w)
	r := 0
	for p := 0; p < w; p++ {
		if j, ok := selected[p]; ok {
			perm[p] = start + j
			continue
		}
		perm[p] = r
		if r >= start {
			perm[p] = r + n
		}
		r++
	}
	if err := dec.permute(perm); err != nil {
		return 0, err
	}

	return start, nil
}

// permute appends the swaps sending wire i to position perm[i].
func (dec *decoder) permute(perm []int) error {
	p, err := moncat.Permutation(perm, moncat.TyOf(dec.obs...))
	if err != nil {
		return err
	}
	dec.layers = append(dec.layers, p.Layers()...)
	frontier := make([]wireEnd, len(perm))
	obs := make([]moncat.Ob, len(perm))
	for i, to := range perm {
		frontier[to], obs[to] = dec.frontier[i], dec.obs[i]
	}
	dec.frontier, dec.obs = frontier, obs

	return nil
}

// close checks that the frontier feeds exactly the outputs and puts it
// in their order.
func (dec *decoder) close(outputs []string) error {
	if len(dec.frontier) != len(outputs) {
		return fmt.Errorf("%w: %d open wires for %d outputs", ErrDangling, len(dec.frontier), len(outputs))
	}
	perm := make([]int, len(outputs))
	for i := range perm {
		perm[i] = -1
	}
	for k, id := range outputs {
		ins, err := dec.g.InEdges(id)
		if err != nil {
			return err
		}
		e := ins[0]
		i := dec.find(wireEnd{e.From, e.FromPort})
		if i < 0 || perm[i] >= 0 {
			return fmt.Errorf("%w: output %s is fed by %s:%d", ErrDangling, id, e.From, e.FromPort)
		}
		perm[i] = k
	}
	if !slices.IsSorted(perm) {
		if err := dec.permute(perm); err != nil {
			return err
		}
	}
	for k, id := range outputs {
		v, _ := dec.g.Vertex(id)
		if v.Label != "" && wireOb(v.Label) != dec.obs[k] {
			return fmt.Errorf("%w: output %s is labelled %q, wire carries %q", ErrValue, id, v.Label, dec.obs[k])
		}
	}

	return nil
}

func (dec *decoder) find(w wireEnd) int {
	return slices.Index(dec.frontier, w)
}

// checkBoundary verifies that ids lists every vertex of kind exactly
// once and that each carries a single wire on the inner side.
func checkBoundary(g *core.Graph, kind core.VertexKind, ids []string) error {
	listed := make(map[string]bool, len(ids))
	for _, id := range ids {
		if listed[id] {
			return fmt.Errorf("%w: %s", ErrDuplicateBoundary, id)
		}
		listed[id] = true
	}
	for _, id := range g.VerticesOfKind(kind) {
		if !listed[id] {
			return fmt.Errorf("%w: %s vertex %s is not in the boundary", ErrMissingBoundary, kind, id)
		}
	}
	for _, id := range ids {
		in, err := g.InEdges(id)
		if err != nil {
			return err
		}
		out, err := g.OutEdges(id)
		if err != nil {
			return err
		}
		inner, outer := out, in
		if kind == core.KindOutput {
			inner, outer = in, out
		}
		switch {
		case len(outer) > 0:
			return fmt.Errorf("%w: %s vertex %s has a wire on its outer side", ErrValue, kind, id)
		case len(inner) == 0:
			return fmt.Errorf("%w: %s vertex %s carries no wire", ErrMissingBoundary, kind, id)
		case len(inner) > 1:
			return fmt.Errorf("%w: %s vertex %s carries %d wires", ErrDuplicateBoundary, kind, id, len(inner))
		}
	}

	return nil
}

// checkPorts requires ports 0..want-1 to be wired, each once.
func checkPorts(id, side string, es []core.Edge, want int, port func(core.Edge) int) error {
	if len(es) != want {
		return fmt.Errorf("%w: %s has %d %s wires, box wants %d", ErrDangling, id, len(es), side, want)
	}
	for j, e := range es {
		if port(e) != j {
			return fmt.Errorf("%w: %s %s port %d is unwired", ErrDangling, id, side, j)
		}
	}

	return nil
}

func adjacent(pos []int) bool {
	for j := 1; j < len(pos); j++ {
		if pos[j] != pos[0]+j {
			return false
		}
	}

	return true
}

// kindFirst orders inputs before boxes before outputs, then by ID.
func kindFirst(g *core.Graph) func(a, b string) bool {
	rank := make(map[string]int)
	for _, id := range g.VerticesOfKind(core.KindInput) {
		rank[id] = -1
	}
	for _, id := range g.VerticesOfKind(core.KindOutput) {
		rank[id] = 1
	}

	return func(a, b string) bool {
		if rank[a] != rank[b] {
			return rank[a] < rank[b]
		}
		return a < b
	}
}

// wireOb reads a boundary label; unlabelled wires are PRO wires.
func wireOb(label string) moncat.Ob {
	if label == "" {
		return moncat.PRO(1).At(0)
	}

	return moncat.Ob(label)
}

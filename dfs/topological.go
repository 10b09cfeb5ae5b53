// SPDX-License-Identifier: MIT

package dfs

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/lvcat/core"
)

// readyQueue is a min-heap of vertex IDs under less.
type readyQueue struct {
	ids  []string
	less func(a, b string) bool
}

func (q *readyQueue) Len() int           { return len(q.ids) }
func (q *readyQueue) Less(i, j int) bool { return q.less(q.ids[i], q.ids[j]) }
func (q *readyQueue) Swap(i, j int)      { q.ids[i], q.ids[j] = q.ids[j], q.ids[i] }
func (q *readyQueue) Push(x any)         { q.ids = append(q.ids, x.(string)) }
func (q *readyQueue) Pop() any {
	n := len(q.ids) - 1
	id := q.ids[n]
	q.ids = q.ids[:n]

	return id
}

// TopologicalSort returns every vertex of g so that each wire u -> v has
// u before v. Among vertices whose predecessors are all placed, the
// smallest (by ID, or by WithLess) comes first, which makes the order
// deterministic.
//
// Implementation:
//   - Stage 1: count incoming wires per vertex (parallel wires count once each).
//   - Stage 2: seed a min-heap with the vertices of in-degree 0.
//   - Stage 3: pop, emit, and release successors whose count drops to 0.
//   - Stage 4: if fewer than V vertices were emitted, the rest sit on a cycle.
//
// Returns ErrGraphNil, ErrCycleDetected (with the stuck vertices) or the
// context error.
// Complexity: O((V+E)·logV).
func TopologicalSort(g *core.Graph, options ...TopoOption) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}

	// Stage 1
	verts := g.Vertices()
	indeg := make(map[string]int, len(verts))
	succ := make(map[string][]string, len(verts))
	for _, e := range g.Edges() {
		indeg[e.To]++
		succ[e.From] = append(succ[e.From], e.To)
	}

	// Stage 2
	q := &readyQueue{less: opts.less}
	for _, v := range verts {
		if indeg[v] == 0 {
			q.ids = append(q.ids, v)
		}
	}
	heap.Init(q)

	// Stage 3
	order := make([]string, 0, len(verts))
	for q.Len() > 0 {
		if err := opts.ctx.Err(); err != nil {
			return nil, err
		}
		v := heap.Pop(q).(string)
		order = append(order, v)
		for _, w := range succ[v] {
			indeg[w]--
			if indeg[w] == 0 {
				heap.Push(q, w)
			}
		}
	}

	// Stage 4
	if len(order) < len(verts) {
		var stuck []string
		for _, v := range verts {
			if indeg[v] > 0 {
				stuck = append(stuck, v)
			}
		}
		return nil, fmt.Errorf("%w: %v", ErrCycleDetected, stuck)
	}

	return order, nil
}

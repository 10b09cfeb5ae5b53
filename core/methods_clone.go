// SPDX-License-Identifier: MIT

package core

import (
	"maps"
	"slices"
	"sync/atomic"
)

// Clone returns a deep copy of the Graph: flags, vertices, edges,
// boundaries and the edge ID counter, so AddEdge on the clone continues
// the same textual sequence. Metadata maps are copied one level deep.
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	c := &Graph{
		allowLoops: g.allowLoops,
		vertices:   make(map[string]*Vertex, len(g.vertices)),
		edges:      make(map[string]*Edge, len(g.edges)),
		out:        maps.Clone(g.out),
		in:         maps.Clone(g.in),
		inputs:     slices.Clone(g.inputs),
		outputs:    slices.Clone(g.outputs),
	}
	atomic.StoreUint64(&c.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))
	for id, v := range g.vertices {
		c.vertices[id] = cloneVertex(v)
	}
	for id, e := range g.edges {
		ne := *e
		c.edges[id] = &ne
	}

	return c
}

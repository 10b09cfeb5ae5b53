// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"maps"
	"sort"
)

// AddVertex inserts v. Kind, Label and Metadata are copied in; the
// caller keeps ownership of its map.
// Returns ErrEmptyVertexID or ErrVertexExists.
// Complexity: O(|Metadata|).
func (g *Graph) AddVertex(v Vertex) error {
	if v.ID == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()
	if _, exists := g.vertices[v.ID]; exists {
		return fmt.Errorf("%w: %s", ErrVertexExists, v.ID)
	}
	g.vertices[v.ID] = cloneVertex(&v)

	return nil
}

// HasVertex reports whether a vertex with the given ID exists in the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, exists := g.vertices[id]

	return exists
}

// Vertex returns a copy of the vertex with the given ID.
func (g *Graph) Vertex(id string) (Vertex, error) {
	if id == "" {
		return Vertex{}, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return Vertex{}, fmt.Errorf("%w: %s", ErrVertexNotFound, id)
	}

	return *cloneVertex(v), nil
}

// Vertices returns all vertex IDs in sorted order.
// Complexity: O(V·logV)
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VerticesOfKind returns the sorted IDs of vertices of kind k.
func (g *Graph) VerticesOfKind(k VertexKind) []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	var ids []string
	for id, v := range g.vertices {
		if v.Kind == k {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// RemoveVertex deletes a vertex, its wires and its boundary entries.
// Complexity: O(E) in the worst case.
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()
	if _, ok := g.vertices[id]; !ok {
		return fmt.Errorf("%w: %s", ErrVertexNotFound, id)
	}
	delete(g.vertices, id)
	g.inputs = without(g.inputs, id)
	g.outputs = without(g.outputs, id)

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	for eid, e := range g.edges {
		if e.From == id || e.To == id {
			g.unlinkEdge(eid, e)
		}
	}

	return nil
}

func cloneVertex(v *Vertex) *Vertex {
	c := *v
	c.Metadata = maps.Clone(v.Metadata)
	if c.Metadata == nil {
		c.Metadata = make(map[string]any)
	}

	return &c
}

func without(ids []string, id string) []string {
	out := ids[:0]
	for _, x := range ids {
		if x != id {
			out = append(out, x)
		}
	}

	return out
}

// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"sort"
	"strconv"
	"sync/atomic"
)

const edgeIDPrefix = "e"

// AddEdge wires output port fromPort of from to input port toPort of to,
// returning the new edge ID. Both vertices must exist.
//
// Returns ErrEmptyVertexID, ErrVertexNotFound, ErrBadPort, ErrLoopNotAllowed
// or ErrPortInUse.
// Complexity: O(1).
func (g *Graph) AddEdge(from string, fromPort int, to string, toPort int, opts ...EdgeOption) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if fromPort < 0 || toPort < 0 {
		return "", fmt.Errorf("%w: %s:%d -> %s:%d", ErrBadPort, from, fromPort, to, toPort)
	}
	if from == to && !g.allowLoops {
		return "", fmt.Errorf("%w: %s", ErrLoopNotAllowed, from)
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	for _, id := range [...]string{from, to} {
		if _, ok := g.vertices[id]; !ok {
			return "", fmt.Errorf("%w: %s", ErrVertexNotFound, id)
		}
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	src, dst := portKey{from, fromPort}, portKey{to, toPort}
	if eid, used := g.out[src]; used {
		return "", fmt.Errorf("%w: output %s:%d (edge %s)", ErrPortInUse, from, fromPort, eid)
	}
	if eid, used := g.in[dst]; used {
		return "", fmt.Errorf("%w: input %s:%d (edge %s)", ErrPortInUse, to, toPort, eid)
	}

	seq := atomic.AddUint64(&g.nextEdgeID, 1)
	e := &Edge{
		ID:       edgeIDPrefix + strconv.FormatUint(seq, 10),
		From:     from,
		FromPort: fromPort,
		To:       to,
		ToPort:   toPort,
		seq:      seq,
	}
	for _, opt := range opts {
		opt(e)
	}
	g.edges[e.ID] = e
	g.out[src] = e.ID
	g.in[dst] = e.ID

	return e.ID, nil
}

// RemoveEdge deletes the edge with the given ID.
// Returns ErrEdgeNotFound if no such edge exists.
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	e, ok := g.edges[eid]
	if !ok {
		return fmt.Errorf("%w: %s", ErrEdgeNotFound, eid)
	}
	g.unlinkEdge(eid, e)

	return nil
}

// Edges returns copies of all edges in insertion order.
// Complexity: O(E·logE)
func (g *Graph) Edges() []Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })

	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// OutEdges returns the wires leaving id, ordered by FromPort.
func (g *Graph) OutEdges(id string) ([]Edge, error) {
	return g.portEdges(id, func(e *Edge) (string, int) { return e.From, e.FromPort })
}

// InEdges returns the wires entering id, ordered by ToPort.
func (g *Graph) InEdges(id string) ([]Edge, error) {
	return g.portEdges(id, func(e *Edge) (string, int) { return e.To, e.ToPort })
}

// Successors returns the distinct heads of the wires leaving id, sorted.
func (g *Graph) Successors(id string) ([]string, error) {
	es, err := g.OutEdges(id)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(es))
	ids := make([]string, 0, len(es))
	for _, e := range es {
		if _, dup := seen[e.To]; !dup {
			seen[e.To] = struct{}{}
			ids = append(ids, e.To)
		}
	}
	sort.Strings(ids)

	return ids, nil
}

func (g *Graph) portEdges(id string, side func(*Edge) (string, int)) ([]Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrVertexNotFound, id)
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	var out []Edge
	for _, e := range g.edges {
		if v, _ := side(e); v == id {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		_, pi := side(&out[i])
		_, pj := side(&out[j])
		return pi < pj
	})

	return out, nil
}

// unlinkEdge drops e from every index. Caller holds muEdgeAdj.
func (g *Graph) unlinkEdge(eid string, e *Edge) {
	delete(g.edges, eid)
	delete(g.out, portKey{e.From, e.FromPort})
	delete(g.in, portKey{e.To, e.ToPort})
}

// SPDX-License-Identifier: MIT

// Package core provides a thread-safe, in-memory directed port multigraph
// with labelled boundaries: the graph shape that a string diagram unfolds to.
//
// A Graph G = (V, E) holds:
//
//   - Vertices of three kinds: KindInput and KindOutput (boundary wires)
//     and KindBox (one per box of a diagram), each with a Label and
//     free-form Metadata.
//   - Edges between numbered ports: Edge{From, FromPort, To, ToPort}.
//     Every (vertex, port) pair carries at most one wire, so the ordered
//     port lists of a vertex are the ordered wires of its box.
//   - Ordered boundaries: Inputs() and Outputs() list the boundary
//     vertices in wire order.
//
// Concurrency:
//
//	Two sync.RWMutex locks guard the graph: muVert for vertices and
//	boundaries, muEdgeAdj for edges and port adjacency. When both are
//	taken, muVert is always acquired first.
//
// Determinism:
//
//	Vertices() is sorted by ID, Edges() by insertion order, InEdges and
//	OutEdges by port. Edge IDs are "e1", "e2", ... from an atomic counter.
//
// Errors:
//
//	ErrEmptyVertexID    - vertex ID is the empty string.
//	ErrVertexExists     - AddVertex with an ID already in use.
//	ErrVertexNotFound   - requested vertex does not exist.
//	ErrEdgeNotFound     - requested edge does not exist.
//	ErrBadPort          - negative port number.
//	ErrPortInUse        - a (vertex, port) pair already carries a wire.
//	ErrLoopNotAllowed   - self-loop when loops are disabled.
//	ErrBadBoundary      - boundary list names a vertex of the wrong kind or twice.
package core

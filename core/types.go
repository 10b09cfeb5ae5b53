// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided Vertex has an empty ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexExists indicates an AddVertex with an ID already in use.
	ErrVertexExists = errors.New("core: vertex already exists")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadPort indicates a negative port number.
	ErrBadPort = errors.New("core: port must be >= 0")

	// ErrPortInUse indicates a second wire on the same (vertex, port).
	ErrPortInUse = errors.New("core: port already wired")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrBadBoundary indicates a boundary list with a wrong-kind or repeated vertex.
	ErrBadBoundary = errors.New("core: bad boundary")
)

// VertexKind tells boundary vertices from box vertices.
type VertexKind int

const (
	// KindBox is an inner vertex standing for one box.
	KindBox VertexKind = iota
	// KindInput is a boundary vertex on the domain side.
	KindInput
	// KindOutput is a boundary vertex on the codomain side.
	KindOutput
)

// String returns "box", "input" or "output".
func (k VertexKind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindOutput:
		return "output"
	default:
		return "box"
	}
}

// Vertex represents a node in the graph.
//
// ID uniquely identifies this Vertex within its Graph.
// Metadata stores arbitrary key-value data and is shallow-copied by Clone.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Kind is the role of the vertex.
	Kind VertexKind

	// Label is a human readable name (box name or wire type).
	Label string

	// Metadata stores arbitrary user data.
	Metadata map[string]any
}

// Edge is one wire from an output port of From to an input port of To.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is the source vertex ID, FromPort its output port.
	From     string
	FromPort int

	// To is the destination vertex ID, ToPort its input port.
	To     string
	ToPort int

	// Label is the wire type, informational only.
	Label string

	seq uint64 // insertion order
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*Edge)

// WithEdgeLabel sets the wire label of the new edge.
func WithEdgeLabel(label string) EdgeOption {
	return func(e *Edge) { e.Label = label }
}

// portKey addresses one side of a wire.
type portKey struct {
	vertex string
	port   int
}

// Graph is the core in-memory port multigraph.
//
// muVert protects vertices and boundaries; muEdgeAdj protects edges and
// the port indexes. nextEdgeID is an atomic counter for Edge.ID generation.
type Graph struct {
	muVert    sync.RWMutex // guards vertices, inputs, outputs
	muEdgeAdj sync.RWMutex // guards edges, out, in

	allowLoops bool

	nextEdgeID uint64
	vertices   map[string]*Vertex
	edges      map[string]*Edge

	// out[(v, p)] and in[(v, p)] hold the edge ID wired to that port.
	out map[portKey]string
	in  map[portKey]string

	inputs  []string
	outputs []string
}

// NewGraph creates an empty Graph. Self-loops are rejected unless
// WithLoops is given.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[string]*Vertex),
		edges:    make(map[string]*Edge),
		out:      make(map[portKey]string),
		in:       make(map[portKey]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

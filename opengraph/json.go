// SPDX-License-Identifier: MIT

package opengraph

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/lvcat/core"
)

// document is the JSON form of an open graph.
type document struct {
	Vertices []vertexDoc `json:"vertices"`
	Edges    []edgeDoc   `json:"edges"`
	Inputs   []string    `json:"inputs"`
	Outputs  []string    `json:"outputs"`
}

type vertexDoc struct {
	ID       string         `json:"id"`
	Kind     string         `json:"kind"`
	Label    string         `json:"label,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

type edgeDoc struct {
	From     string `json:"from"`
	FromPort int    `json:"from_port"`
	To       string `json:"to"`
	ToPort   int    `json:"to_port"`
	Label    string `json:"label,omitempty"`
}

// WriteJSON writes g as indented JSON. Edges keep their insertion order,
// so re-reading yields the same edge IDs.
func WriteJSON(w io.Writer, g *core.Graph) error {
	doc := document{Inputs: g.Inputs(), Outputs: g.Outputs()}
	for _, id := range g.Vertices() {
		v, err := g.Vertex(id)
		if err != nil {
			return err
		}
		doc.Vertices = append(doc.Vertices, vertexDoc{ID: v.ID, Kind: v.Kind.String(), Label: v.Label, Metadata: v.Metadata})
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, edgeDoc{From: e.From, FromPort: e.FromPort, To: e.To, ToPort: e.ToPort, Label: e.Label})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(doc)
}

// ReadJSON reads a graph written by WriteJSON. Structural problems the
// graph itself rejects (unknown vertices, reused ports, repeated boundary
// entries) are reported wrapped in ErrValue.
func ReadJSON(r io.Reader) (*core.Graph, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValue, err)
	}
	g := core.NewGraph()
	for _, v := range doc.Vertices {
		kind, err := parseKind(v.Kind)
		if err != nil {
			return nil, err
		}
		if err := g.AddVertex(core.Vertex{ID: v.ID, Kind: kind, Label: v.Label, Metadata: v.Metadata}); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrValue, err)
		}
	}
	for _, e := range doc.Edges {
		if _, err := g.AddEdge(e.From, e.FromPort, e.To, e.ToPort, core.WithEdgeLabel(e.Label)); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrValue, err)
		}
	}
	for _, side := range []struct {
		ids []string
		set func(...string) error
	}{{doc.Inputs, g.SetInputs}, {doc.Outputs, g.SetOutputs}} {
		if dup := firstDuplicate(side.ids); dup != "" {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateBoundary, dup)
		}
		if err := side.set(side.ids...); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrValue, err)
		}
	}

	return g, nil
}

func parseKind(s string) (core.VertexKind, error) {
	for _, k := range []core.VertexKind{core.KindBox, core.KindInput, core.KindOutput} {
		if k.String() == s {
			return k, nil
		}
	}

	return 0, fmt.Errorf("%w: unknown vertex kind %q", ErrValue, s)
}

func firstDuplicate(ids []string) string {
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return id
		}
		seen[id] = struct{}{}
	}

	return ""
}

// SPDX-License-Identifier: MIT

package opengraph

import (
	"fmt"

	"github.com/katalvlaran/lvcat/core"
	"github.com/katalvlaran/lvcat/moncat"
)

// Metadata keys of box vertices.
const (
	MetaName     = "name"
	MetaDom      = "dom"
	MetaCod      = "cod"
	MetaData     = "data"
	MetaDagger   = "dagger"
	MetaSelfAdj  = "self_adjoint"
	MetaSwapLeft = "swap_left"
	MetaOffset   = "offset"
)

// InputID names the vertex of domain wire i.
func InputID(i int) string { return fmt.Sprintf("in%04d", i) }

// OutputID names the vertex of codomain wire i.
func OutputID(i int) string { return fmt.Sprintf("out%04d", i) }

// BoxID names the vertex of layer i.
func BoxID(i int) string { return fmt.Sprintf("b%06d", i) }

// wireEnd is the source of a wire: a vertex and one of its output ports.
type wireEnd struct {
	vertex string
	port   int
}

// Encode unfolds d into a port multigraph.
//
// Implementation:
//   - Stage 1: one input vertex per domain wire; the frontier holds their ports.
//   - Stage 2: per layer, wire frontier[off : off+|dom|] into the box's input
//     ports and splice the box's output ports into the frontier.
//   - Stage 3: wire the final frontier into one output vertex per codomain wire.
//
// Complexity: O(L·W) for L layers over frontiers of width W.
func Encode(d moncat.Diagram) (*core.Graph, error) {
	g := core.NewGraph()

	// Stage 1
	frontier := make([]wireEnd, 0, d.Dom().Width())
	inputs := make([]string, d.Dom().Width())
	for i := range inputs {
		inputs[i] = InputID(i)
		ob := string(d.Dom().At(i))
		if err := g.AddVertex(core.Vertex{ID: inputs[i], Kind: core.KindInput, Label: ob}); err != nil {
			return nil, err
		}
		frontier = append(frontier, wireEnd{inputs[i], 0})
	}

	// Stage 2
	for i, l := range d.Layers() {
		id := BoxID(i)
		if err := g.AddVertex(boxVertex(id, l)); err != nil {
			return nil, err
		}
		dom, cod := l.Box.Dom(), l.Box.Cod()
		for j := 0; j < dom.Width(); j++ {
			src := frontier[l.Offset+j]
			if _, err := g.AddEdge(src.vertex, src.port, id, j, core.WithEdgeLabel(string(dom.At(j)))); err != nil {
				return nil, err
			}
		}
		outs := make([]wireEnd, cod.Width())
		for k := range outs {
			outs[k] = wireEnd{id, k}
		}
		next := make([]wireEnd, 0, len(frontier)-dom.Width()+cod.Width())
		next = append(next, frontier[:l.Offset]...)
		next = append(next, outs...)
		frontier = append(next, frontier[l.Offset+dom.Width():]...)
	}

	// Stage 3
	outputs := make([]string, len(frontier))
	for i, src := range frontier {
		outputs[i] = OutputID(i)
		ob := string(d.Cod().At(i))
		if err := g.AddVertex(core.Vertex{ID: outputs[i], Kind: core.KindOutput, Label: ob}); err != nil {
			return nil, err
		}
		if _, err := g.AddEdge(src.vertex, src.port, outputs[i], 0, core.WithEdgeLabel(ob)); err != nil {
			return nil, err
		}
	}
	if err := g.SetInputs(inputs...); err != nil {
		return nil, err
	}
	if err := g.SetOutputs(outputs...); err != nil {
		return nil, err
	}

	return g, nil
}

// boxVertex records everything MetadataResolver needs to rebuild an opaque
// box. The offset only matters for boxes without inputs, whose place in
// the frontier no wire can tell.
func boxVertex(id string, l moncat.Layer) core.Vertex {
	b := l.Box
	meta := map[string]any{
		MetaName:    b.Name(),
		MetaDom:     b.Dom().String(),
		MetaCod:     b.Cod().String(),
		MetaDagger:  b.IsDagger(),
		MetaSelfAdj: b.IsSelfAdjoint(),
		MetaOffset:  l.Offset,
	}
	if left, _, ok := b.SwapWidths(); ok {
		meta[MetaSwapLeft] = left
	} else if b.Data() != nil {
		meta[MetaData] = b.Data()
	}

	return core.Vertex{ID: id, Kind: core.KindBox, Label: b.String(), Metadata: meta}
}

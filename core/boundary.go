// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"slices"
)

// SetInputs fixes the ordered domain boundary. Every ID must name an
// existing KindInput vertex and appear once; otherwise ErrBadBoundary
// (or ErrVertexNotFound) is returned and the boundary is left unchanged.
func (g *Graph) SetInputs(ids ...string) error {
	return g.setBoundary(&g.inputs, KindInput, ids)
}

// SetOutputs fixes the ordered codomain boundary, as SetInputs.
func (g *Graph) SetOutputs(ids ...string) error {
	return g.setBoundary(&g.outputs, KindOutput, ids)
}

// Inputs returns a copy of the ordered domain boundary.
func (g *Graph) Inputs() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return slices.Clone(g.inputs)
}

// Outputs returns a copy of the ordered codomain boundary.
func (g *Graph) Outputs() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return slices.Clone(g.outputs)
}

func (g *Graph) setBoundary(dst *[]string, kind VertexKind, ids []string) error {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		v, ok := g.vertices[id]
		if !ok {
			return fmt.Errorf("%w: %s", ErrVertexNotFound, id)
		}
		if v.Kind != kind {
			return fmt.Errorf("%w: %s is a %s vertex, want %s", ErrBadBoundary, id, v.Kind, kind)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: %s listed twice", ErrBadBoundary, id)
		}
		seen[id] = struct{}{}
	}
	*dst = slices.Clone(ids)

	return nil
}

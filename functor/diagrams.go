// SPDX-License-Identifier: MIT

package functor

import "github.com/katalvlaran/lvcat/moncat"

// Diagrams is the category of moncat diagrams itself. Functors into it
// translate between diagram flavours, e.g. labelled generators to PRO.
type Diagrams struct{}

var (
	_ Category[moncat.Diagram] = Diagrams{}
	_ Shaped[moncat.Diagram]   = Diagrams{}
)

// Id returns moncat.Id(x).
func (Diagrams) Id(x moncat.Ty) (moncat.Diagram, error) { return moncat.Id(x), nil }

// Then returns f >> g.
func (Diagrams) Then(f, g moncat.Diagram) (moncat.Diagram, error) { return f.Then(g) }

// Tensor returns f @ g.
func (Diagrams) Tensor(f, g moncat.Diagram) (moncat.Diagram, error) { return f.Tensor(g) }

// Size is the width of x.
func (Diagrams) Size(x moncat.Ty) int { return x.Width() }

// Shape returns the widths of f's domain and codomain.
func (Diagrams) Shape(f moncat.Diagram) (int, int) { return f.Dom().Width(), f.Cod().Width() }

// SPDX-License-Identifier: MIT

package core_test

import (
	"fmt"

	"github.com/katalvlaran/lvcat/core"
)

// ExampleGraph wires a two-output box between its boundaries.
func ExampleGraph() {
	g := core.NewGraph()
	_ = g.AddVertex(core.Vertex{ID: "in0", Kind: core.KindInput})
	_ = g.AddVertex(core.Vertex{ID: "b0", Kind: core.KindBox, Label: "COPY"})
	_ = g.AddVertex(core.Vertex{ID: "out0", Kind: core.KindOutput})
	_ = g.AddVertex(core.Vertex{ID: "out1", Kind: core.KindOutput})
	_, _ = g.AddEdge("in0", 0, "b0", 0)
	_, _ = g.AddEdge("b0", 0, "out0", 0)
	_, _ = g.AddEdge("b0", 1, "out1", 0)
	_ = g.SetOutputs("out0", "out1")

	out, _ := g.OutEdges("b0")
	for _, e := range out {
		fmt.Printf("%s:%d -> %s\n", e.From, e.FromPort, e.To)
	}
	fmt.Println(g.Outputs())

	// Output:
	// b0:0 -> out0
	// b0:1 -> out1
	// [out0 out1]
}

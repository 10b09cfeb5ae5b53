// SPDX-License-Identifier: MIT

package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvcat/core"
)

// BenchmarkAddEdge measures wiring a chain of n boxes.
func BenchmarkAddEdge(b *testing.B) {
	const n = 1000
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("b%06d", i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g := core.NewGraph()
		for _, id := range ids {
			_ = g.AddVertex(core.Vertex{ID: id})
		}
		for j := 1; j < n; j++ {
			_, _ = g.AddEdge(ids[j-1], 0, ids[j], 0)
		}
	}
}

// BenchmarkClone measures a deep copy of a 1000-vertex chain.
func BenchmarkClone(b *testing.B) {
	g := core.NewGraph()
	prev := ""
	for j := 0; j < 1000; j++ {
		id := fmt.Sprintf("b%06d", j)
		_ = g.AddVertex(core.Vertex{ID: id})
		if prev != "" {
			_, _ = g.AddEdge(prev, 0, id, 0)
		}
		prev = id
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Clone()
	}
}

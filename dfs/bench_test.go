// SPDX-License-Identifier: MIT

package dfs_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvcat/core"
	"github.com/katalvlaran/lvcat/dfs"
)

// BenchmarkTopologicalSort sorts a 1000-vertex ladder.
func BenchmarkTopologicalSort(b *testing.B) {
	g := core.NewGraph()
	const n = 1000
	for i := 0; i < n; i++ {
		_ = g.AddVertex(core.Vertex{ID: fmt.Sprintf("v%04d", i)})
	}
	for i := 2; i < n; i++ {
		_, _ = g.AddEdge(fmt.Sprintf("v%04d", i-1), 0, fmt.Sprintf("v%04d", i), 0)
		_, _ = g.AddEdge(fmt.Sprintf("v%04d", i-2), 1, fmt.Sprintf("v%04d", i), 1)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dfs.TopologicalSort(g); err != nil {
			b.Fatal(err)
		}
	}
}

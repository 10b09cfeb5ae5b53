// SPDX-License-Identifier: MIT

package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcat/core"
)

// TestConcurrentAddEdge wires many ports of one vertex concurrently.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	require.NoError(t, g.AddVertex(core.Vertex{ID: "X"}))
	for i := 0; i < num; i++ {
		require.NoError(t, g.AddVertex(core.Vertex{ID: fmt.Sprintf("V%d", i)}))
	}

	var wg sync.WaitGroup
	errs := make(chan error, num)
	wg.Add(num)
	for i := 0; i < num; i++ {
		go func(p int) {
			defer wg.Done()
			_, err := g.AddEdge("X", p, fmt.Sprintf("V%d", p), 0)
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}

	out, err := g.OutEdges("X")
	require.NoError(t, err)
	require.Len(t, out, num)
	for i, e := range out {
		assert.Equal(t, i, e.FromPort)
	}
}

// TestConcurrentSamePort races many writers for one port; exactly one wins.
func TestConcurrentSamePort(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(core.Vertex{ID: "X"}))
	require.NoError(t, g.AddVertex(core.Vertex{ID: "Y"}))

	const num = 50
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	wg.Add(num)
	for i := 0; i < num; i++ {
		go func(p int) {
			defer wg.Done()
			if _, err := g.AddEdge("X", 0, "Y", p); err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 1, wins)
	assert.Equal(t, 1, g.EdgeCount())
}

// SPDX-License-Identifier: MIT

package dfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcat/core"
	"github.com/katalvlaran/lvcat/dfs"
)

// build adds the vertices named in edges ("u->v" as pairs) and wires
// each pair on fresh ports.
func build(t *testing.T, verts []string, edges [][2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithLoops())
	for _, v := range verts {
		require.NoError(t, g.AddVertex(core.Vertex{ID: v}))
	}
	outPort := map[string]int{}
	inPort := map[string]int{}
	for _, e := range edges {
		_, err := g.AddEdge(e[0], outPort[e[0]], e[1], inPort[e[1]])
		require.NoError(t, err)
		outPort[e[0]]++
		inPort[e[1]]++
	}

	return g
}

func TestTopologicalSort_NilAndEmpty(t *testing.T) {
	order, err := dfs.TopologicalSort(nil)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	order, err = dfs.TopologicalSort(core.NewGraph())
	require.NoError(t, err)
	assert.Empty(t, order)
}

func TestTopologicalSort_SmallestFirst(t *testing.T) {
	// a -> d, c -> b, c -> d: the ready set starts as {a, c}.
	g := build(t, []string{"d", "c", "b", "a"}, [][2]string{{"a", "d"}, {"c", "b"}, {"c", "d"}})
	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c", "b", "d"}, order)

	rev, err := dfs.TopologicalSort(g, dfs.WithLess(func(a, b string) bool { return a > b }))
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b", "a", "d"}, rev)
}

func TestTopologicalSort_ParallelWires(t *testing.T) {
	g := build(t, []string{"x", "y", "z"}, [][2]string{{"x", "y"}, {"x", "y"}, {"y", "z"}, {"x", "z"}})
	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y", "z"}, order)
}

func TestTopologicalSort_Cycle(t *testing.T) {
	g := build(t, []string{"a", "b", "c", "s"}, [][2]string{{"s", "a"}, {"a", "b"}, {"b", "c"}, {"c", "a"}})
	_, err := dfs.TopologicalSort(g)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
	assert.Contains(t, err.Error(), "[a b c]")
}

func TestTopologicalSort_Cancel(t *testing.T) {
	g := build(t, []string{"a", "b"}, [][2]string{{"a", "b"}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.TopologicalSort(g, dfs.WithCancelContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDetectCycle(t *testing.T) {
	ok, cyc, err := dfs.DetectCycle(nil)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, cyc)

	dag := build(t, []string{"a", "b", "c"}, [][2]string{{"a", "b"}, {"a", "c"}, {"b", "c"}})
	ok, _, err = dfs.DetectCycle(dag)
	require.NoError(t, err)
	assert.False(t, ok)

	g := build(t, []string{"a", "b", "c", "s"}, [][2]string{{"s", "a"}, {"a", "b"}, {"b", "c"}, {"c", "a"}})
	ok, cyc, err = dfs.DetectCycle(g)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "b", "c", "a"}, cyc)

	loop := build(t, []string{"v"}, [][2]string{{"v", "v"}})
	ok, cyc, err = dfs.DetectCycle(loop)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"v", "v"}, cyc)
}

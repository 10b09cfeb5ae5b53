// SPDX-License-Identifier: MIT

package render_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcat/learner"
	"github.com/katalvlaran/lvcat/moncat"
	"github.com/katalvlaran/lvcat/render"
)

func copyAdd(t *testing.T) moncat.Diagram {
	t.Helper()
	d, err := learner.Copy1().Then(learner.Swap(), learner.Add())
	require.NoError(t, err)

	return d
}

func TestToDOT(t *testing.T) {
	dot, err := render.ToDOT(copyAdd(t), render.Options{})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(dot, "digraph G {\n"))
	assert.Contains(t, dot, "rankdir=TB;")
	assert.Contains(t, dot, `"b000000" [label="COPY"];`)
	assert.Contains(t, dot, `"b000001" [label="SWAP", shape=diamond`)
	assert.Contains(t, dot, `"b000000" -> "b000001";`)
	assert.Contains(t, dot, `{ rank=source; "in0000"; }`)
	assert.Contains(t, dot, `{ rank=sink; "out0000"; }`)
	assert.Equal(t, 6, strings.Count(dot, " -> "))
}

func TestToDOT_Detailed(t *testing.T) {
	dot, err := render.ToDOT(copyAdd(t), render.Options{Detailed: true, LeftToRight: true})
	require.NoError(t, err)
	assert.Contains(t, dot, "rankdir=LR;")
	assert.Contains(t, dot, `taillabel="1"`)
	assert.Contains(t, dot, `cod: PRO(2)`)
}

func TestRenderSVG(t *testing.T) {
	dot, err := render.ToDOT(copyAdd(t), render.Options{})
	require.NoError(t, err)

	svg, err := render.RenderSVG(dot)
	require.NoError(t, err)
	assert.Contains(t, string(svg), `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0`)
	assert.Contains(t, string(svg), "COPY")

	png, err := render.RenderPNG(dot)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))

	_, err = render.RenderSVG("digraph {")
	assert.Error(t, err)
}

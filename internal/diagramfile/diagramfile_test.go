// SPDX-License-Identifier: MIT

package diagramfile

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcat/functor"
	"github.com/katalvlaran/lvcat/learner"
	"github.com/katalvlaran/lvcat/moncat"
)

const affine = `
name  = "affine"
dom   = 1
expr  = "w >> Id(1) @ b >> ADD"
input = [2.0]

[[box]]
name  = "w"
kind  = "mult"
value = 3.0

[[box]]
name  = "b"
kind  = "bias"
value = 1.0
`

func TestParseAndBuildExpr(t *testing.T) {
	f, err := Parse([]byte(affine))
	require.NoError(t, err)
	assert.Equal(t, "affine", f.Name)
	assert.Equal(t, []float64{2}, f.Input)
	require.Len(t, f.Boxes, 2)

	d, reg, err := f.Build()
	require.NoError(t, err)
	require.NotNil(t, reg)
	assert.Equal(t, 3, d.Len())

	out, err := functor.Eval(d, f.Input)
	require.NoError(t, err)
	assert.Equal(t, []float64{7}, out)
}

func TestBuildLayers(t *testing.T) {
	src := `
dom = 1

[[layer]]
box    = "COPY"
offset = 0

[[layer]]
box    = "SWAP"
offset = 0

[[layer]]
box    = "Mult(2)"
offset = 1

[[layer]]
box    = "ADD"
offset = 0
`
	f, err := Parse([]byte(src))
	require.NoError(t, err)
	d, _, err := f.Build()
	require.NoError(t, err)
	assert.Equal(t, 4, d.Len())

	out, err := functor.Eval(d, []float64{5})
	require.NoError(t, err)
	assert.Equal(t, []float64{15}, out)
}

func TestBuildDaggerLayer(t *testing.T) {
	src := `
dom = 1

[[layer]]
box    = "ADD†"
offset = 0
`
	f, err := Parse([]byte(src))
	require.NoError(t, err)
	d, _, err := f.Build()
	require.NoError(t, err)
	require.Equal(t, 1, d.Len())
	assert.True(t, d.Boxes()[0].IsDagger())

	out, err := functor.Eval(d, []float64{4})
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 4}, out)
}

func TestBoxKinds(t *testing.T) {
	cases := []struct {
		def      BoxDef
		dom, cod int
	}{
		{BoxDef{Name: "m", Kind: KindMult, Value: 2}, 1, 1},
		{BoxDef{Name: "b", Kind: KindBias, Value: 2}, 0, 1},
		{BoxDef{Name: "c", Kind: KindCopy, Dom: 2, Copies: 3}, 2, 6},
		{BoxDef{Name: "c2", Kind: KindCopy, Dom: 1}, 1, 2},
		{BoxDef{Name: "s", Kind: KindSum, Cod: 2, Copies: 3}, 6, 2},
		{BoxDef{Name: "sig", Kind: KindSigmoid}, 1, 1},
		{BoxDef{Name: "a", Kind: KindAdd}, 2, 1},
		{BoxDef{Name: "x", Kind: KindSwap}, 2, 2},
		{BoxDef{Name: "d", Kind: KindDiscard, Dom: 3}, 3, 0},
		{BoxDef{Name: "n", Kind: KindNeuron, Dom: 2, Weights: []float64{1, 1, 0}}, 2, 1},
		{BoxDef{Name: "l", Kind: KindLayer, Dom: 2, Cod: 2, Weights: []float64{1, 1, 0, 1, -1, 0}}, 2, 2},
		{BoxDef{Name: "f", Kind: KindOpaque, Dom: 2, Cod: 3}, 2, 3},
	}
	for _, tc := range cases {
		t.Run(tc.def.Kind+"/"+tc.def.Name, func(t *testing.T) {
			a, err := tc.def.Arrow()
			require.NoError(t, err)
			d := a.Diagram()
			assert.Equal(t, tc.dom, d.Dom().Width())
			assert.Equal(t, tc.cod, d.Cod().Width())
		})
	}
}

func TestBoxKindErrors(t *testing.T) {
	_, err := BoxDef{Name: "z", Kind: "zeta"}.Arrow()
	assert.ErrorIs(t, err, ErrFormat)

	_, err = BoxDef{Name: "l", Kind: KindLayer, Dom: 2, Cod: 1, Weights: []float64{1}}.Arrow()
	assert.ErrorIs(t, err, learner.ErrWeights)

	_, err = BoxDef{Name: "n", Kind: KindNeuron, Dom: 2, Weights: []float64{1}}.Arrow()
	assert.ErrorIs(t, err, learner.ErrWeights)
}

func TestParseErrors(t *testing.T) {
	t.Run("syntax", func(t *testing.T) {
		_, err := Parse([]byte("dom = ["))
		assert.ErrorIs(t, err, ErrFormat)
	})
	t.Run("unknown key", func(t *testing.T) {
		_, err := Parse([]byte("dom = 1\ncolour = \"red\"\n"))
		assert.ErrorIs(t, err, ErrFormat)
		assert.Contains(t, err.Error(), "colour")
	})
}

func TestBuildErrors(t *testing.T) {
	one := 1
	two := 2
	cases := map[string]struct {
		file File
		want error
	}{
		"expr and layers": {File{Dom: &one, Expr: "COPY", Layers: []LayerDef{{Box: "COPY"}}}, ErrFormat},
		"layers need dom": {File{Layers: []LayerDef{{Box: "COPY"}}}, ErrFormat},
		"dom mismatch":    {File{Dom: &two, Expr: "COPY"}, ErrFormat},
		"unknown box":     {File{Expr: "FOO"}, moncat.ErrUnknownBox},
		"unnamed box":     {File{Expr: "COPY", Boxes: []BoxDef{{Kind: KindAdd}}}, ErrFormat},
		"duplicate box":   {File{Expr: "COPY", Boxes: []BoxDef{{Name: "COPY", Kind: KindAdd}}}, learner.ErrDuplicate},
		"not a box":       {File{Dom: &two, Layers: []LayerDef{{Box: "n"}}, Boxes: []BoxDef{{Name: "n", Kind: KindNeuron, Dom: 2, Weights: []float64{1, 1, 0}}}}, ErrFormat},
		"bad offset":      {File{Dom: &one, Layers: []LayerDef{{Box: "COPY", Offset: 1}}}, moncat.ErrOffset},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := tc.file.Build()
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	sum, err := learner.Sum(1, 2)
	require.NoError(t, err)
	scale, err := moncat.Tensor(learner.Mult(0.5), learner.Bias(1), moncat.Id(moncat.PRO(1)))
	require.NoError(t, err)
	add, err := learner.Add().Tensor(moncat.Id(moncat.PRO(1)))
	require.NoError(t, err)
	d, err := moncat.Then(learner.Copy1(), scale, add, sum)
	require.NoError(t, err)

	f, err := FromDiagram("mixed", d)
	require.NoError(t, err)
	data, err := f.Bytes()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "mixed.toml")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	back, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "mixed", back.Name)

	got, _, err := back.Build()
	require.NoError(t, err)
	assert.True(t, d.Equal(got), "got %s want %s", got, d)
}

func TestEncodeDagger(t *testing.T) {
	d := learner.Add().Dagger().Diagram()
	f, err := FromDiagram("", d)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, f.Encode(&buf))
	assert.Contains(t, buf.String(), "ADD†")

	back, err := Parse(buf.Bytes())
	require.NoError(t, err)
	got, _, err := back.Build()
	require.NoError(t, err)
	assert.True(t, d.Equal(got))
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

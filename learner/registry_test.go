// SPDX-License-Identifier: MIT

package learner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcat/learner"
	"github.com/katalvlaran/lvcat/moncat"
)

func TestRegistry_Lookup(t *testing.T) {
	reg := learner.NewRegistry()

	a := must(reg.Lookup("Copy(2, 3)"))(t)
	assert.True(t, a.Diagram().Equal(must(learner.Copy(2, 3))(t).Diagram()))

	b := must(reg.Lookup("Mult(0.5)"))(t)
	assert.True(t, b.Diagram().Equal(learner.Mult(0.5).Diagram()))

	sw := must(reg.Lookup("SWAP"))(t)
	assert.True(t, sw.Diagram().Equal(learner.Swap().Diagram()))

	_, err := reg.Lookup("Nope(1)")
	assert.ErrorIs(t, err, moncat.ErrUnknownBox)
	_, err = reg.Lookup("nope")
	assert.ErrorIs(t, err, moncat.ErrUnknownBox)
	_, err = reg.Lookup("Mult(x)")
	assert.ErrorIs(t, err, moncat.ErrParse)
	_, err = reg.Lookup("Copy(1.5, 2)")
	assert.ErrorIs(t, err, moncat.ErrType)
}

func TestRegistry_Register(t *testing.T) {
	reg := learner.NewRegistry()
	double := must(learner.Copy1().Then(learner.Add()))(t)
	require.NoError(t, reg.Register("double", double))
	assert.ErrorIs(t, reg.Register("double", double), learner.ErrDuplicate)
	assert.ErrorIs(t, reg.Register("COPY", double), learner.ErrDuplicate)
	assert.ErrorIs(t, reg.RegisterFactory(learner.FamilyCopy, nil), moncat.ErrType)

	got := must(reg.Lookup("double"))(t)
	assert.True(t, got.Diagram().Equal(double))
	assert.Contains(t, reg.Names(), "double")
	assert.Contains(t, reg.Names(), "Copy(...)")
}

// TestRegistry_ParseRoundTrip prints a layer and parses it back.
func TestRegistry_ParseRoundTrip(t *testing.T) {
	reg := learner.NewRegistry()
	layer := must(learner.Layer(2, 3, [][]float64{{0.1, 0.2, 0.3}, {1, 2, 3}, {0.3, 0.2, 0.1}}))(t)

	parsed, err := moncat.Parse(layer.String(), reg.Lookup)
	require.NoError(t, err, layer.String())
	assert.True(t, parsed.Equal(layer))
	assert.Equal(t, run(t, layer, 1, 1), run(t, parsed, 1, 1))
}

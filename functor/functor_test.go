// SPDX-License-Identifier: MIT

package functor_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcat/functor"
	"github.com/katalvlaran/lvcat/matrix"
	"github.com/katalvlaran/lvcat/moncat"
)

func TestEvaluator_MatchesEval(t *testing.T) {
	d := must(copyBox.Then(swapBox, addBox))(t)
	f := must(functor.Evaluator().Apply(d))(t)
	got := must(f.Call([]float64{46}))(t)
	assert.Equal(t, []float64{92}, got)
	assert.Equal(t, got, must(functor.Eval(d, []float64{46}))(t))

	id := must(functor.Evaluator().Apply(moncat.Id(moncat.PRO(2))))(t)
	assert.Equal(t, []float64{1, 2}, must(id.Call([]float64{1, 2}))(t))
}

// TestFunctions_Functoriality checks F(d1 >> d2) and F(d1 @ d2) on values.
func TestFunctions_Functoriality(t *testing.T) {
	F := functor.Evaluator()
	cat := functor.Functions{}
	d1 := must(copyBox.Tensor(addBox))(t)
	d2 := must(swapBox.Tensor(copyBox))(t)
	x := []float64{2, 3, 4}

	seq := must(F.Apply(must(d1.Then(d2))(t)))(t)
	seq2 := must(cat.Then(must(F.Apply(d1))(t), must(F.Apply(d2))(t)))(t)
	assert.Equal(t, must(seq.Call(x))(t), must(seq2.Call(x))(t))

	par := must(F.Apply(must(d1.Tensor(d2))(t)))(t)
	par2 := must(cat.Tensor(must(F.Apply(d1))(t), must(F.Apply(d2))(t)))(t)
	y := []float64{2, 3, 4, 5, 6, 7}
	assert.Equal(t, must(par.Call(y))(t), must(par2.Call(y))(t))
	assert.Equal(t, []float64{2, 2, 7, 6, 5, 7, 7}, must(par.Call(y))(t))
}

// TestDiagrams_Translation maps labelled generators into PRO diagrams.
func TestDiagrams_Translation(t *testing.T) {
	x, y := moncat.NewTy("x"), moncat.NewTy("y")
	f := moncat.NewBox("f", x, y)
	g := moncat.NewBox("g", y, x)
	F := functor.New[moncat.Diagram](
		functor.ObTable(map[moncat.Ob]moncat.Ty{"x": moncat.PRO(1), "y": moncat.PRO(2)}),
		functor.ArTable(
			functor.ArPair[moncat.Diagram]{Box: f, Arrow: must(copyBox.Then(swapBox))(t)},
			functor.ArPair[moncat.Diagram]{Box: g, Arrow: addBox.Diagram()},
		),
		functor.Diagrams{},
	)

	fg := must(F.Apply(must(f.Then(g))(t)))(t)
	assert.Equal(t, []float64{2}, must(functor.Eval(fg, []float64{1}))(t))
	assert.True(t, fg.Equal(must(must(F.Apply(f.Diagram()))(t).Then(must(F.Apply(g.Diagram()))(t)))(t)))

	// tensor: F(f @ g) == F(f) @ F(g), structurally
	fTg := must(F.Apply(must(f.Tensor(g))(t)))(t)
	assert.True(t, fTg.Equal(must(must(F.Apply(f.Diagram()))(t).Tensor(must(F.Apply(g.Diagram()))(t)))(t)))

	_, err := F.Apply(moncat.Id(moncat.NewTy("z")))
	assert.ErrorIs(t, err, functor.ErrUnmappedOb)

	h := moncat.NewBox("h", x, x)
	_, err = F.Apply(must(f.Then(g, h))(t))
	assert.ErrorIs(t, err, functor.ErrUnmappedBox)
}

// TestDiagrams_Bundles doubles every wire: COPY and ADD act on bundles of 3.
func TestDiagrams_Bundles(t *testing.T) {
	copy3 := moncat.NewBox("Copy(3, 2)", moncat.PRO(3), moncat.PRO(6), moncat.WithFunc(func(v []float64) ([]float64, error) {
		return append(append([]float64(nil), v...), v...), nil
	}))
	sum3 := moncat.NewBox("Sum(3, 2)", moncat.PRO(6), moncat.PRO(3), moncat.WithFunc(func(v []float64) ([]float64, error) {
		return []float64{v[0] + v[3], v[1] + v[4], v[2] + v[5]}, nil
	}))
	M := functor.New[moncat.Diagram](functor.ObPRO(3), functor.ArTable(
		functor.ArPair[moncat.Diagram]{Box: copyBox, Arrow: copy3.Diagram()},
		functor.ArPair[moncat.Diagram]{Box: addBox, Arrow: sum3.Diagram()},
	), functor.Diagrams{})

	d := must(M.Apply(must(copyBox.Then(addBox))(t)))(t)
	assert.Equal(t, []float64{2, 4, 6}, must(functor.Eval(d, []float64{1, 2, 3}))(t))

	// an image of the wrong width is a shape error
	bad := functor.New[moncat.Diagram](functor.ObPRO(2), functor.ArTable(
		functor.ArPair[moncat.Diagram]{Box: copyBox, Arrow: copy3.Diagram()},
	), functor.Diagrams{})
	_, err := bad.Apply(copyBox.Diagram())
	assert.ErrorIs(t, err, functor.ErrShape)
}

func matrixFunctor(t *testing.T) *functor.Functor[matrix.Matrix] {
	return functor.New[matrix.Matrix](functor.ObIdentity(), functor.ArTable(
		functor.ArPair[matrix.Matrix]{Box: copyBox, Arrow: dense(t, []float64{1}, []float64{1})},
		functor.ArPair[matrix.Matrix]{Box: addBox, Arrow: dense(t, []float64{1, 1})},
		functor.ArPair[matrix.Matrix]{Box: swapBox, Arrow: dense(t, []float64{0, 1}, []float64{1, 0})},
	), functor.Matrices{})
}

// TestMatrices_Bimonoid checks the bimonoid law on the linear semantics.
func TestMatrices_Bimonoid(t *testing.T) {
	F := matrixFunctor(t)
	one := moncat.Id(moncat.PRO(1))
	lhs := must(moncat.Then(
		must(copyBox.Tensor(copyBox))(t),
		must(one.Tensor(swapBox, one))(t),
		must(addBox.Tensor(addBox))(t),
	))(t)
	rhs := must(addBox.Then(copyBox))(t)

	requireClose(t, dense(t, []float64{1, 1}, []float64{1, 1}), must(F.Apply(lhs))(t))
	requireClose(t, must(F.Apply(rhs))(t), must(F.Apply(lhs))(t))

	// F(d1 @ d2) == F(d1) ⊕ F(d2)
	par := must(F.Apply(must(copyBox.Tensor(addBox))(t)))(t)
	sum := must(matrix.DirectSum(must(F.Apply(copyBox.Diagram()))(t), must(F.Apply(addBox.Diagram()))(t)))(t)
	requireClose(t, sum, par)
}

func TestMatrices_Semantics(t *testing.T) {
	cat := functor.Matrices{}
	m := dense(t, []float64{1})
	s := must(cat.Tensor(must(cat.Tensor(m, m))(t), m))(t)
	requireClose(t, must(cat.Id(moncat.PRO(3)))(t), s)

	_, err := cat.Then(dense(t, []float64{1, 2}), dense(t, []float64{1, 2}))
	assert.ErrorIs(t, err, moncat.ErrAxiom)

	F := functor.New[matrix.Matrix](functor.ObIdentity(), functor.ArTable(
		functor.ArPair[matrix.Matrix]{Box: copyBox, Arrow: dense(t, []float64{1, 1})}, // transposed on purpose
	), cat)
	_, err = F.Apply(copyBox.Diagram())
	assert.ErrorIs(t, err, functor.ErrShape)
}

func TestKronecker(t *testing.T) {
	xBox := moncat.NewBox("X", moncat.PRO(1), moncat.PRO(1))
	not := dense(t, []float64{0, 1}, []float64{1, 0})
	F := functor.New[matrix.Matrix](functor.ObIdentity(), functor.ArTable(
		functor.ArPair[matrix.Matrix]{Box: xBox, Arrow: not},
	), functor.Kronecker{Dim: 2})

	got := must(F.Apply(must(xBox.Tensor(moncat.Id(moncat.PRO(1))))(t)))(t)
	id2, _ := matrix.NewIdentity(2)
	requireClose(t, must(matrix.Kron(not, id2))(t), got)

	id := must(F.Apply(moncat.Id(moncat.PRO(2))))(t)
	assert.Equal(t, 4, id.Rows())

	xx := must(F.Apply(must(xBox.Then(xBox))(t)))(t)
	requireClose(t, id2, xx)
}

func TestEval_Errors(t *testing.T) {
	short := moncat.NewBox("short", moncat.PRO(1), moncat.PRO(2), moncat.WithFunc(func(x []float64) ([]float64, error) {
		return x, nil // declared 1 -> 2, returns one value
	}))
	_, err := functor.Eval(short.Diagram(), []float64{1})
	assert.ErrorIs(t, err, functor.ErrShape)

	f := must(functor.Evaluator().Apply(must(short.Then(addBox))(t)))(t)
	_, err = f.Call([]float64{1})
	assert.ErrorIs(t, err, functor.ErrShape)

	_, err = functor.Eval(copyBox.Diagram(), []float64{1, 2})
	assert.ErrorIs(t, err, functor.ErrShape)

	opaque := moncat.NewBox("opaque", moncat.PRO(1), moncat.PRO(1))
	_, err = functor.Eval(opaque.Diagram(), []float64{1})
	assert.ErrorIs(t, err, moncat.ErrNoFunction)
	_, err = functor.Evaluator().Apply(opaque.Diagram())
	assert.ErrorIs(t, err, moncat.ErrNoFunction)
	assert.ErrorIs(t, err, functor.ErrUnmappedBox)
}

func TestArMap_Or(t *testing.T) {
	neg := functor.Function{Dom: 1, Cod: 1, Fn: func(x []float64) ([]float64, error) { return []float64{-x[0]}, nil }}
	opaque := moncat.NewBox("opaque", moncat.PRO(1), moncat.PRO(1))
	ar := functor.ArTable(functor.ArPair[functor.Function]{Box: opaque, Arrow: neg}).Or(functor.Leaves())
	F := functor.New[functor.Function](functor.ObIdentity(), ar, functor.Functions{})

	f := must(F.Apply(must(copyBox.Then(addBox, opaque))(t)))(t)
	assert.Equal(t, []float64{-4}, must(f.Call([]float64{2}))(t))
}

func TestApplyAll(t *testing.T) {
	F := matrixFunctor(t)
	ds := []moncat.Diagram{
		copyBox.Diagram(),
		must(copyBox.Then(addBox))(t),
		moncat.Id(moncat.PRO(2)),
		swapBox.Diagram(),
	}
	out, err := functor.ApplyAll(context.Background(), F, ds, 2)
	require.NoError(t, err)
	require.Len(t, out, len(ds))
	assert.Equal(t, 2, out[0].Rows())
	requireClose(t, dense(t, []float64{2}), out[1])
	assert.Equal(t, 2, out[2].Cols())

	bad := append(ds, moncat.NewBox("nope", moncat.PRO(1), moncat.PRO(1)).Diagram())
	_, err = functor.ApplyAll(context.Background(), F, bad, 0)
	assert.True(t, errors.Is(err, functor.ErrUnmappedBox))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = functor.ApplyAll(ctx, F, ds, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

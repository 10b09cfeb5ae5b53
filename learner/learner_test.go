// SPDX-License-Identifier: MIT

package learner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcat/functor"
	"github.com/katalvlaran/lvcat/learner"
	"github.com/katalvlaran/lvcat/moncat"
)

// must unwraps a (value, error) result; the returned check fails t on error.
func must[T any](v T, err error) func(testing.TB) T {
	return func(t testing.TB) T {
		t.Helper()
		require.NoError(t, err)

		return v
	}
}

func run(t *testing.T, a moncat.Arrow, x ...float64) []float64 {
	t.Helper()

	return must(learner.Run(a.Diagram(), x))(t)
}

// TestCopyThenDiscard: copying then discarding either copy is the identity.
func TestCopyThenDiscard(t *testing.T) {
	one := moncat.Id(moncat.PRO(1))
	discard := must(learner.Discard(1))(t)
	left := must(learner.Copy1().Then(must(discard.Tensor(one))(t)))(t)
	right := must(learner.Copy1().Then(must(one.Tensor(discard))(t)))(t)

	assert.Equal(t, []float64{46}, run(t, left, 46))
	assert.Equal(t, []float64{46}, run(t, right, 46))
	assert.Equal(t, run(t, one, 46), run(t, left, 46))
}

// TestSwapInvolution: swap then swap is the identity on values.
func TestSwapInvolution(t *testing.T) {
	ss := must(learner.Swap().Then(learner.Swap()))(t)
	assert.Equal(t, []float64{1, 2}, run(t, ss, 1, 2))
	assert.Equal(t, []float64{2, 1}, run(t, learner.Swap(), 1, 2))

	// Yang-Baxter on [0, 1, 2]
	one := moncat.Id(moncat.PRO(1))
	sI := must(learner.Swap().Tensor(one))(t)
	iS := must(one.Tensor(learner.Swap()))(t)
	lhs := must(iS.Then(sI, iS))(t)
	rhs := must(sI.Then(iS, sI))(t)
	assert.Equal(t, run(t, rhs, 0, 1, 2), run(t, lhs, 0, 1, 2))
	assert.Equal(t, []float64{2, 1, 0}, run(t, lhs, 0, 1, 2))
}

// TestBimonoid: (copy ⊗ copy) >> (id ⊗ swap ⊗ id) >> (add ⊗ add) == add >> copy.
func TestBimonoid(t *testing.T) {
	one := moncat.Id(moncat.PRO(1))
	cp, add := learner.Copy1(), learner.Add()
	lhs := must(moncat.Then(
		must(cp.Tensor(cp))(t),
		must(one.Tensor(learner.Swap(), one))(t),
		must(add.Tensor(add))(t),
	))(t)
	rhs := must(add.Then(cp))(t)

	assert.Equal(t, []float64{3}, run(t, add, 1, 2))
	assert.Equal(t, run(t, rhs, 123, 25), run(t, lhs, 123, 25))
	assert.Equal(t, []float64{148, 148}, run(t, lhs, 123, 25))
}

func TestCopySumMults(t *testing.T) {
	assert.Equal(t, []float64{1, 2, 3, 1, 2, 3}, run(t, must(learner.Copy(3, 2))(t), 1, 2, 3))
	assert.Equal(t, []float64{1, 2, 1, 2, 1, 2}, run(t, must(learner.Copy(2, 3))(t), 1, 2))
	assert.Equal(t, run(t, learner.Copy1(), 34), run(t, must(learner.Copy(1, 2))(t), 34))
	assert.Equal(t, []float64{9, 12}, run(t, must(learner.Sum(2, 3))(t), 1, 2, 3, 4, 5, 6))
	assert.Equal(t, []float64{2, 3}, run(t, must(learner.Mults(2, []float64{2, 3}))(t), 1, 1))

	c := must(learner.Copy(2, 3))(t)
	assert.Equal(t, "Copy(2, 3)", c.Name())
	assert.True(t, c.Cod().Equal(moncat.PRO(6)))

	_, err := learner.Mults(2, []float64{1})
	assert.ErrorIs(t, err, learner.ErrWeights)
	_, err = learner.Copy(-1, 2)
	assert.ErrorIs(t, err, moncat.ErrType)

	_, err = must(learner.Sum(2, 2))(t).Call([]float64{1})
	assert.ErrorIs(t, err, functor.ErrShape)
}

func TestNeuron(t *testing.T) {
	n := must(learner.Neuron(3, []float64{1.3, 0.5, 2.1, 0.4}))(t)
	assert.True(t, n.Dom().Equal(moncat.PRO(3)))
	assert.True(t, n.Cod().Equal(moncat.PRO(1)))
	y := run(t, n, 1, 2, 3)
	require.Len(t, y, 1)
	assert.InDelta(t, 0.99987662, y[0], 1e-6)

	disconnect := must(learner.Neuron(4, []float64{0, 0, 0, 0, 0}))(t)
	assert.Equal(t, run(t, disconnect, 1, 2, 3, 4), run(t, disconnect, 13, 2, 3, 4))

	_, err := learner.Neuron(2, []float64{1, 2})
	assert.ErrorIs(t, err, learner.ErrWeights)
}

// TestLayer: a 2 -> 3 layer of three neurons on [1, 1].
func TestLayer(t *testing.T) {
	params := [][]float64{{0.1, 0.2, 0.3}, {1, 2, 3}, {0.3, 0.2, 0.1}}
	layer := must(learner.Layer(2, 3, params))(t)
	assert.True(t, layer.Dom().Equal(moncat.PRO(2)))
	assert.True(t, layer.Cod().Equal(moncat.PRO(3)))

	y := run(t, layer, 1, 1)
	want := []float64{0.64565629, 0.99752742, 0.64565629}
	require.Len(t, y, 3)
	for i := range want {
		assert.InDelta(t, want[i], y[i], 1e-6, "output %d", i)
	}

	small := must(learner.Layer(1, 2, [][]float64{{0, 0.1}, {1.2, 1.3}}))(t)
	assert.True(t, small.Cod().Equal(moncat.PRO(2)))

	_, err := learner.Layer(2, 3, params[:2])
	assert.ErrorIs(t, err, learner.ErrWeights)
}

// TestBiasAndDiscard: discarding then adding a bias is the bias beside the
// discard, so both diagrams share their normal forms.
func TestBiasAndDiscard(t *testing.T) {
	bias := learner.Bias(3)
	discard := must(learner.Discard(1))(t)
	seq := must(discard.Then(bias))(t)
	par := must(bias.Tensor(discard))(t)

	assert.Equal(t, []float64{3}, run(t, seq, 7))
	assert.Equal(t, []float64{3}, run(t, par, 7))

	eq, err := seq.Equivalent(par)
	require.NoError(t, err)
	assert.True(t, eq)
	for _, left := range []bool{false, true} {
		nf := par.NormalForm(left)
		assert.True(t, seq.NormalForm(left).Equal(nf), "left=%v", left)
		assert.True(t, nf.NormalForm(left).Equal(nf), "left=%v: idempotent", left)
		assert.Equal(t, []float64{3}, run(t, nf, 7))
	}
}

// TestRewriting replays the interchange and normal form checks on learner boxes.
func TestRewriting(t *testing.T) {
	cp, add := learner.Copy1(), learner.Add()
	one := moncat.Id(moncat.PRO(1))

	got := must(must(cp.Tensor(add))(t).Interchange(0, 1, false))(t)
	want := must(must(one.Tensor(add))(t).Then(must(cp.Tensor(one))(t)))(t)
	assert.True(t, got.Equal(want))

	nf := must(cp.Tensor(cp))(t).Diagram()
	nf = must(nf.Then(must(add.Tensor(add))(t)))(t).NormalForm(false)
	ca := must(cp.Then(add))(t)
	assert.True(t, nf.Equal(must(ca.Tensor(ca))(t)))

	d := must(must(add.Tensor(add))(t).Then(must(one.Tensor(cp))(t)))(t)
	assert.Equal(t, []int{0, 1, 1}, d.Offsets())

	c := must(learner.Swap().Then(add, cp))(t)
	assert.True(t, must(moncat.Id(moncat.PRO(2)).Then(c))(t).Equal(c))
	assert.True(t, must(c.Then(moncat.Id(moncat.PRO(2))))(t).Equal(c))
}

// TestFunctor translates abstract generators into learners.
func TestFunctor(t *testing.T) {
	x, y := moncat.NewTy("x"), moncat.NewTy("y")
	f := moncat.NewBox("f", x, y)
	g := moncat.NewBox("g", y, x)
	F := learner.NewFunctor(
		functor.ObTable(map[moncat.Ob]moncat.Ty{"x": moncat.PRO(1), "y": moncat.PRO(2)}),
		functor.ArTable(
			functor.ArPair[moncat.Diagram]{Box: f, Arrow: must(learner.Copy1().Then(learner.Swap()))(t)},
			functor.ArPair[moncat.Diagram]{Box: g, Arrow: learner.Add().Diagram()},
		),
	)
	assert.Equal(t, []float64{2}, run(t, must(F.Apply(must(f.Then(g))(t)))(t), 1))

	M := func(n int) *functor.Functor[moncat.Diagram] {
		return learner.NewFunctor(functor.ObPRO(n), functor.ArTable(
			functor.ArPair[moncat.Diagram]{Box: learner.Copy1(), Arrow: must(learner.Copy(n, 2))(t).Diagram()},
			functor.ArPair[moncat.Diagram]{Box: learner.Add(), Arrow: must(learner.Sum(n, 2))(t).Diagram()},
		))
	}
	d := must(learner.Copy1().Then(learner.Add()))(t)
	assert.Equal(t, []float64{2, 4, 6}, run(t, must(M(3).Apply(d))(t), 1, 2, 3))

	labelled := learner.NewFunctor(functor.ObIdentity(), functor.ArTable[moncat.Diagram]())
	_, err := labelled.Apply(moncat.Id(x))
	assert.ErrorIs(t, err, moncat.ErrType)
}

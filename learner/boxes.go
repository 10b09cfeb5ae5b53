// SPDX-License-Identifier: MIT

package learner

import (
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/lvcat/moncat"
)

// Fixed box names.
const (
	NameSwap    = "SWAP"
	NameCopy    = "COPY"
	NameAdd     = "ADD"
	NameSigmoid = "sigmoid"
)

// Parametric box families, rendered as Family(args...).
const (
	FamilyCopy    = "Copy"
	FamilySum     = "Sum"
	FamilyMult    = "Mult"
	FamilyBias    = "Bias"
	FamilyDiscard = "Discard"
)

// Swap exchanges two wires.
func Swap() moncat.Box { return moncat.Swap(moncat.PRO(1), moncat.PRO(1)) }

// Copy1 duplicates one wire: x -> (x, x). Its dagger adds, matching the
// transpose of its matrix.
func Copy1() moncat.Box {
	return moncat.NewBox(NameCopy, moncat.PRO(1), moncat.PRO(2), moncat.WithFunc(copyOne), moncat.WithDaggerFunc(addTwo))
}

// Add sums two wires. Its dagger copies.
func Add() moncat.Box {
	return moncat.NewBox(NameAdd, moncat.PRO(2), moncat.PRO(1), moncat.WithFunc(addTwo), moncat.WithDaggerFunc(copyOne))
}

func copyOne(x []float64) ([]float64, error) {
	if len(x) != 1 {
		return nil, shapeErrorf(NameCopy, 1, len(x))
	}
	return []float64{x[0], x[0]}, nil
}

func addTwo(x []float64) ([]float64, error) {
	if len(x) != 2 {
		return nil, shapeErrorf(NameAdd, 2, len(x))
	}
	return []float64{x[0] + x[1]}, nil
}

// Sigmoid is the logistic activation 1 / (1 + e^-x).
func Sigmoid() moncat.Box {
	return moncat.NewBox(NameSigmoid, moncat.PRO(1), moncat.PRO(1), moncat.WithFunc(func(x []float64) ([]float64, error) {
		if len(x) != 1 {
			return nil, shapeErrorf(NameSigmoid, 1, len(x))
		}
		return []float64{1 / (1 + math.Exp(-x[0]))}, nil
	}))
}

// Bias is the constant x: a box with no inputs and one output.
func Bias(x float64) moncat.Box {
	return moncat.NewBox(call(FamilyBias, fmtFloat(x)), moncat.Ty{}, moncat.PRO(1), moncat.WithData(x),
		moncat.WithFunc(func(v []float64) ([]float64, error) {
			if len(v) != 0 {
				return nil, shapeErrorf(FamilyBias, 0, len(v))
			}
			return []float64{x}, nil
		}))
}

// Mult scales one wire by x.
func Mult(x float64) moncat.Box {
	return moncat.NewBox(call(FamilyMult, fmtFloat(x)), moncat.PRO(1), moncat.PRO(1), moncat.WithData(x),
		moncat.WithFunc(func(v []float64) ([]float64, error) {
			if len(v) != 1 {
				return nil, shapeErrorf(FamilyMult, 1, len(v))
			}
			return []float64{x * v[0]}, nil
		}))
}

// Discard drops n wires.
func Discard(n int) (moncat.Box, error) {
	return moncat.NewPROBox(call(FamilyDiscard, strconv.Itoa(n)), n, 0,
		moncat.WithFunc(func(v []float64) ([]float64, error) {
			if len(v) != n {
				return nil, shapeErrorf(FamilyDiscard, n, len(v))
			}
			return []float64{}, nil
		}))
}

// Copy repeats a vector of length dom copies times: dom -> dom*copies.
//
//	Copy(2, 3)([1, 2]) == [1, 2, 1, 2, 1, 2]
func Copy(dom, copies int) (moncat.Box, error) {
	if copies < 0 {
		return moncat.Box{}, fmt.Errorf("%w: Copy(%d, %d)", moncat.ErrType, dom, copies)
	}
	name := call(FamilyCopy, strconv.Itoa(dom), strconv.Itoa(copies))

	return moncat.NewPROBox(name, dom, dom*copies, moncat.WithFunc(func(v []float64) ([]float64, error) {
		if len(v) != dom {
			return nil, shapeErrorf(name, dom, len(v))
		}
		out := make([]float64, 0, dom*copies)
		for i := 0; i < copies; i++ {
			out = append(out, v...)
		}
		return out, nil
	}))
}

// Sum adds copies blocks of length cod: cod*copies -> cod.
//
//	Sum(2, 3)([1, 2, 3, 4, 5, 6]) == [9, 12]
func Sum(cod, copies int) (moncat.Box, error) {
	if copies < 0 {
		return moncat.Box{}, fmt.Errorf("%w: Sum(%d, %d)", moncat.ErrType, cod, copies)
	}
	name := call(FamilySum, strconv.Itoa(cod), strconv.Itoa(copies))

	return moncat.NewPROBox(name, cod*copies, cod, moncat.WithFunc(func(v []float64) ([]float64, error) {
		if len(v) != cod*copies {
			return nil, shapeErrorf(name, cod*copies, len(v))
		}
		out := make([]float64, cod)
		for i := range out {
			for j := 0; j < copies; j++ {
				out[i] += v[i+cod*j]
			}
		}
		return out, nil
	}))
}

func shapeErrorf(name string, want, got int) error {
	return fmt.Errorf("%w: %s expects %d values, got %d", ErrShape, name, want, got)
}

func fmtFloat(x float64) string { return strconv.FormatFloat(x, 'g', -1, 64) }

func call(family string, args ...string) string {
	s := family + "("
	for i, a := range args {
		if i > 0 {
			s += ", "
		}
		s += a
	}

	return s + ")"
}

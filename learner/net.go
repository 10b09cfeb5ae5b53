// SPDX-License-Identifier: MIT

package learner

import (
	"fmt"

	"github.com/katalvlaran/lvcat/moncat"
)

// Mults scales each of dom wires by its own weight.
// Returns ErrWeights unless len(weights) == dom.
func Mults(dom int, weights []float64) (moncat.Diagram, error) {
	if len(weights) != dom {
		return moncat.Diagram{}, fmt.Errorf("%w: Mults(%d) with %d weights", ErrWeights, dom, len(weights))
	}
	boxes := make([]moncat.Box, dom)
	offsets := make([]int, dom)
	for i, w := range weights {
		boxes[i], offsets[i] = Mult(w), i
	}

	return moncat.NewDiagram(moncat.PRO(dom), moncat.PRO(dom), boxes, offsets)
}

// Neuron is the diagram dom -> 1 computing sigmoid(w·x + b), with
// weights = (w_1, ..., w_dom, b).
//
// Implementation:
//   - Stage 1: Mults(dom, w) @ Bias(b) puts w_i·x_i and b side by side.
//   - Stage 2: Sum(1, dom+1) adds them up, sigmoid activates.
func Neuron(dom int, weights []float64) (moncat.Diagram, error) {
	if len(weights) != dom+1 {
		return moncat.Diagram{}, fmt.Errorf("%w: Neuron(%d) with %d weights, want %d", ErrWeights, dom, len(weights), dom+1)
	}
	mults, err := Mults(dom, weights[:dom])
	if err != nil {
		return moncat.Diagram{}, err
	}
	sum, err := Sum(1, dom+1)
	if err != nil {
		return moncat.Diagram{}, err
	}
	scaled, err := mults.Tensor(Bias(weights[dom]))
	if err != nil {
		return moncat.Diagram{}, err
	}

	return scaled.Then(sum, Sigmoid())
}

// Layer is a fully connected layer dom -> cod: the input is copied once
// per neuron and neuron i uses params[i] (dom weights then a bias).
func Layer(dom, cod int, params [][]float64) (moncat.Diagram, error) {
	if len(params) != cod {
		return moncat.Diagram{}, fmt.Errorf("%w: Layer(%d, %d) with %d rows", ErrWeights, dom, cod, len(params))
	}
	copies, err := Copy(dom, cod)
	if err != nil {
		return moncat.Diagram{}, err
	}
	neurons := moncat.Id(moncat.Ty{})
	for i, row := range params {
		n, err := Neuron(dom, row)
		if err != nil {
			return moncat.Diagram{}, fmt.Errorf("neuron %d: %w", i, err)
		}
		if neurons, err = neurons.Tensor(n); err != nil {
			return moncat.Diagram{}, err
		}
	}

	return copies.Then(neurons)
}

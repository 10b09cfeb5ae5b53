// SPDX-License-Identifier: MIT

package learner_test

import (
	"fmt"

	"github.com/katalvlaran/lvcat/learner"
	"github.com/katalvlaran/lvcat/moncat"
)

// ExampleNeuron evaluates sigmoid(w·x + b) with zero weights and bias.
func ExampleNeuron() {
	n, err := learner.Neuron(2, []float64{0, 0, 0})
	if err != nil {
		panic(err)
	}
	y, err := learner.Run(n, []float64{3, 4})
	if err != nil {
		panic(err)
	}
	fmt.Println(n.Dom(), "->", n.Cod())
	fmt.Println(y)
	// Output:
	// PRO(2) -> PRO(1)
	// [0.5]
}

// ExampleRegistry parses a diagram over the learner vocabulary.
func ExampleRegistry() {
	reg := learner.NewRegistry()
	d, err := moncat.Parse("Copy(1, 3) >> Mult(2) @ Id(2) >> Sum(1, 3)", reg.Lookup)
	if err != nil {
		panic(err)
	}
	y, err := learner.Run(d, []float64{5})
	if err != nil {
		panic(err)
	}
	fmt.Println(y)
	// Output:
	// [20]
}

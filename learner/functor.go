// SPDX-License-Identifier: MIT

package learner

import (
	"fmt"

	"github.com/katalvlaran/lvcat/functor"
	"github.com/katalvlaran/lvcat/moncat"
)

// NewFunctor builds a functor into learner diagrams: every generator must
// map to a PRO type, every box to a diagram of leaves. The result of Apply
// runs with functor.Eval.
func NewFunctor(ob functor.ObMap, ar functor.ArMap[moncat.Diagram], opts ...functor.Option) *functor.Functor[moncat.Diagram] {
	pro := func(o moncat.Ob) (moncat.Ty, error) {
		t, err := ob(o)
		if err != nil {
			return moncat.Ty{}, err
		}
		if !t.IsPRO() {
			return moncat.Ty{}, fmt.Errorf("%w: %q maps to %s", moncat.ErrType, o, t)
		}

		return t, nil
	}

	return functor.New[moncat.Diagram](pro, ar, functor.Diagrams{}, opts...)
}

// Run evaluates a learner diagram on x.
func Run(d moncat.Diagram, x []float64) ([]float64, error) { return functor.Eval(d, x) }

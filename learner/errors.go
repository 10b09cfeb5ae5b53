// SPDX-License-Identifier: MIT

package learner

import (
	"errors"

	"github.com/katalvlaran/lvcat/functor"
)

var (
	// ErrShape is returned by leaves called on vectors of the wrong length.
	// It matches functor.ErrShape.
	ErrShape = functor.ErrShape

	// ErrWeights reports a weight list or matrix of the wrong size.
	ErrWeights = errors.New("learner: wrong number of weights")

	// ErrDuplicate is returned when a name is registered twice.
	ErrDuplicate = errors.New("learner: name already registered")

	// ErrNotLinear is returned by MatrixArrows for boxes with no matrix.
	ErrNotLinear = errors.New("learner: box is not linear")
)

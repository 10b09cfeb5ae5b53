// SPDX-License-Identifier: MIT

package opengraph

import (
	"errors"
	"fmt"
)

var (
	// ErrValue is the root of every malformed-graph error.
	ErrValue = errors.New("opengraph: invalid graph")

	// ErrMissingBoundary: a boundary vertex is not listed in the boundary,
	// or carries no wire.
	ErrMissingBoundary = fmt.Errorf("%w: missing boundary", ErrValue)

	// ErrDuplicateBoundary: a boundary vertex is listed twice, or carries
	// more than one wire.
	ErrDuplicateBoundary = fmt.Errorf("%w: duplicate boundary", ErrValue)

	// ErrDangling: a box port is unwired, or a wire is never consumed.
	ErrDangling = fmt.Errorf("%w: dangling wire", ErrValue)

	// ErrMetadata: a box vertex lacks the metadata its resolver needs.
	ErrMetadata = fmt.Errorf("%w: bad box metadata", ErrValue)
)

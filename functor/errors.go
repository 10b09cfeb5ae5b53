// SPDX-License-Identifier: MIT

package functor

import "errors"

var (
	// ErrUnmappedBox is returned when the arrow map has no image for a box.
	ErrUnmappedBox = errors.New("functor: unmapped box")

	// ErrUnmappedOb is returned when the object map has no image for a generator.
	ErrUnmappedOb = errors.New("functor: unmapped object")

	// ErrShape reports a value or an arrow whose width disagrees with the
	// type it is supposed to inhabit. It is detected at evaluation time.
	ErrShape = errors.New("functor: shape mismatch")
)

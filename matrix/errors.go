// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every kernel returns these sentinels wrapped with its operation tag;
// callers match them with errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions is returned when a requested shape is negative.
	// Zero-sized shapes are allowed: they model the unit object.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrBadShape is returned for ragged row input.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// At/Set return it instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operands, e.g. Add of
	// different shapes or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix was passed.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// Operation tags used by matrixErrorf.
const (
	opNewDense  = "NewDense"
	opFromRows  = "FromRows"
	opIdentity  = "NewIdentity"
	opAdd       = "Add"
	opMul       = "Mul"
	opScale     = "Scale"
	opTranspose = "Transpose"
	opMatVec    = "MatVec"
	opDirectSum = "DirectSum"
	opKron      = "Kron"
	opAllClose  = "AllClose"
)

// matrixErrorf prefixes err with an operation tag, preserving errors.Is.
// Callers must not pass a nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// denseErrorf attaches method and coordinates to an accessor error.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// SPDX-License-Identifier: MIT

package moncat

import (
	"errors"
	"fmt"
)

// Sentinel errors for diagram construction and rewriting.
// Every message is prefixed with "moncat:"; match them with errors.Is.
var (
	// ErrAxiom reports a violated composition axiom: mismatched types in Then,
	// a layer whose box does not fit the frontier labels, or a forbidden
	// interchange.
	ErrAxiom = errors.New("moncat: composition axiom violated")

	// ErrInterchange reports an interchange of boxes whose wire ranges overlap.
	// Errors carrying it also match ErrAxiom.
	ErrInterchange = errors.New("moncat: boxes do not commute")

	// ErrType reports an operand of the wrong kind (nil arrow, negative width,
	// non-PRO type where a PRO width is required).
	ErrType = errors.New("moncat: type error")

	// ErrOffset reports a layer offset outside the current frontier.
	ErrOffset = errors.New("moncat: offset outside frontier")

	// ErrLength reports boxes and offsets of different lengths.
	ErrLength = errors.New("moncat: boxes and offsets differ in length")

	// ErrIndex reports a layer index outside [0, Len()).
	ErrIndex = errors.New("moncat: layer index out of range")

	// ErrNoFunction reports a call to a box that carries no leaf semantics.
	ErrNoFunction = errors.New("moncat: box has no function")

	// ErrPermutation reports a slice that is not a permutation of the wires.
	ErrPermutation = errors.New("moncat: invalid permutation")

	// ErrParse reports a malformed textual diagram.
	ErrParse = errors.New("moncat: parse error")

	// ErrUnknownBox is returned by lookups that cannot resolve a box name.
	ErrUnknownBox = errors.New("moncat: unknown box")

	// ErrClosedComponent reports an equivalence that normal forms cannot
	// decide: a diagram has a part wired to neither its domain nor its
	// codomain, and the two normal forms differ.
	ErrClosedComponent = errors.New("moncat: diagram has a closed component")
)

// AxiomError describes a composition that violates the axioms of a monoidal
// category. Left and Right are the rendered operands that failed to match.
// It matches ErrAxiom, and Err when set (e.g. ErrInterchange).
type AxiomError struct {
	Op    string // operation tag: "Then", "layer 3", "Interchange", ...
	Left  string // left operand (type or box)
	Right string // right operand (type or box)
	Err   error  // optional refinement of ErrAxiom
}

// Error implements error.
func (e *AxiomError) Error() string {
	if e.Err != nil && e.Err != ErrAxiom {
		return fmt.Sprintf("moncat: %s: %s and %s: %v", e.Op, e.Left, e.Right, e.Err)
	}

	return fmt.Sprintf("moncat: %s: %s does not compose with %s", e.Op, e.Left, e.Right)
}

// Unwrap exposes ErrAxiom and the optional refinement to errors.Is.
func (e *AxiomError) Unwrap() []error {
	if e.Err == nil || e.Err == ErrAxiom {
		return []error{ErrAxiom}
	}

	return []error{ErrAxiom, e.Err}
}

// NewAxiomError builds an AxiomError for a pair of mismatched types.
// Target categories outside this package use it to report composition
// failures with the same shape as Diagram.Then.
func NewAxiomError(op string, left, right fmt.Stringer) error {
	return &AxiomError{Op: op, Left: left.String(), Right: right.String()}
}

// typeErrorf wraps ErrType with a formatted reason.
func typeErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrType, fmt.Sprintf(format, args...))
}

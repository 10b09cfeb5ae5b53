// SPDX-License-Identifier: MIT

// Package moncat defines the algebra of monoidal diagrams: wire types, boxes
// and diagrams built from them by sequential (Then) and parallel (Tensor)
// composition, together with the structural rewrites that decide equality
// up to the laws of a monoidal category.
//
// What & Why:
//
//	A Diagram is stored as an ordered list of layers. Each layer is a Box and
//	an offset: starting from the domain, the layer replaces the wires
//	[offset, offset+|box.dom|) of the current frontier with box.cod. Because
//	offsets are always relative to the frontier at the moment the layer
//	fires, sequential composition is plain concatenation and parallel
//	composition only shifts the right operand by the width of the left
//	codomain. Both are O(1): layers live in a persistent rope that is
//	flattened once, lazily, when somebody asks for them.
//
// Values:
//
//   - Ty: immutable sequence of generator labels (Ob). PRO(n) is the type
//     of n identical wires.
//   - Box: atomic arrow with a name, a domain, a codomain and optional leaf
//     semantics (Func) or data.
//   - Diagram: closed variant over {identity, box, composite}; see Kind.
//
// Rewriting:
//
//	Interchange swaps adjacent layers whose wire ranges are disjoint (the
//	interchange law). NormalForm bubbles boxes to one side until no legal
//	move is left, producing the representative used by Equivalent.
//
// Errors:
//
//	ErrAxiom        - types do not compose, or boxes do not commute.
//	ErrInterchange  - requested interchange of overlapping boxes (also ErrAxiom).
//	ErrType         - malformed operand (negative PRO width, nil arrow, non-PRO type).
//	ErrOffset       - layer offset does not fit inside the frontier.
//	ErrLength       - boxes and offsets of different lengths.
//	ErrIndex        - layer index out of range.
//	ErrNoFunction   - evaluation of a box without leaf semantics.
//	ErrPermutation  - malformed wire permutation.
//	ErrParse        - malformed textual diagram.
//	ErrUnknownBox   - a name the lookup cannot resolve.
//	ErrClosedComponent - Equivalent cannot decide a diagram with a closed component.
//
// Complexity:
//
//	Then/Tensor O(1) (plus O(width) for the tensor of the types); Layers O(n)
//	once per value; Interchange O(n); NormalForm O(n²) swaps in the worst case
//	for diagrams without a closed component.
package moncat

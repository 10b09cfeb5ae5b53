// SPDX-License-Identifier: MIT

// Package functor evaluates and translates moncat diagrams.
//
// A Functor pairs an object map (generator -> type) with an arrow map
// (box -> target arrow) and a target Category. Apply folds a diagram layer
// by layer: each box image is whiskered with identities on the wires to its
// left and right, and the layers are composed in order. By construction
//
//	F(Id(x))     == Id(F(x))
//	F(d1 >> d2)  == F(d1) >> F(d2)
//	F(d1 @ d2)   == F(d1) @ F(d2)
//
// Targets shipped here:
//
//   - Functions: leaves on []float64 with the cartesian tensor (Eval is the
//     splice fast path for running a diagram of leaves directly).
//   - Matrices: real matrices, direct sum as tensor.
//   - Kronecker: real matrices, Kronecker product as tensor.
//   - Diagrams: moncat diagrams, for translations between flavours.
//
// Shape errors are detected lazily, when an arrow or a value is actually
// produced. ApplyAll evaluates independent diagrams concurrently.
package functor

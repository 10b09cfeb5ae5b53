// SPDX-License-Identifier: MIT

// Package lvcat is an in-memory toolkit for string diagrams of monoidal
// categories: build them, rewrite them, evaluate them, draw them.
//
// 🚀 What is lvcat?
//
//	A thread-safe library and CLI that brings together:
//		• Diagrams: wire types, boxes, Then / Tensor, dagger, parsing
//		• Rewriting: interchange law, left and right normal forms
//		• Functors: fold a diagram into functions, matrices or other diagrams
//		• Learners: COPY, ADD, sigmoid, biases, neurons and dense layers
//		• Open graphs: diagrams as port multigraphs, JSON round trips
//		• Rendering: Graphviz DOT, SVG and PNG
//
// Under the hood, everything is organized under these subpackages:
//
//	moncat/    Ty, Box, Diagram, Interchange, NormalForm, Parse
//	functor/   Functor, target categories (Functions, Matrices, Diagrams)
//	matrix/    dense matrices: Mul, DirectSum, Kron, Transpose
//	learner/   vocabulary of boxes on real vectors, box Registry
//	core/      boundary-labelled port multigraph with thread-safe primitives
//	dfs/       topological order and cycle detection over core graphs
//	opengraph/ Encode / Decode between diagrams and core graphs
//	render/    DOT export and Graphviz rendering
//
// Quick example (COPY then ADD doubles its input):
//
//	 x
//	 │
//	COPY
//	 │ │
//	 ADD
//	  │
//	  2x
//
//	d, _ := learner.Copy1().Then(learner.Add())
//	y, _ := functor.Eval(d, []float64{21}) // [42]
//
// The lvcat command (cmd/lvcat) wraps the same operations for TOML diagram
// files and serves them over HTTP.
package lvcat

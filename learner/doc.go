// SPDX-License-Identifier: MIT

// Package learner builds feed-forward learners as diagrams of functions on
// vectors.
//
// Wires carry reals; the tensor is the cartesian product, witnessed by the
// copy map (COPY, Copy) and the discard map (Discard). On top of the
// structural boxes sit the arithmetic ones (ADD, Sum, Mult, Bias, sigmoid)
// and the network builders Mults, Neuron and Layer, which return ordinary
// moncat diagrams.
//
// Boxes are produced by factories, never shared globals. A Registry
// resolves printed names back to boxes, so diagrams round-trip through
// moncat.Parse and the graph codec.
package learner

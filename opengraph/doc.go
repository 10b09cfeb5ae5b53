// SPDX-License-Identifier: MIT

// Package opengraph encodes diagrams as boundary-labelled port multigraphs
// (core.Graph) and decodes such graphs back into diagrams.
//
// Encoding:
//
//	in0000 ... inNNNN    one KindInput vertex per domain wire
//	b000000 ...          one KindBox vertex per layer, in layer order
//	out0000 ...          one KindOutput vertex per codomain wire
//
// Every wire becomes one edge between numbered ports. Box vertices carry
// their name, dom, cod, data and dagger flag in Metadata.
//
// Decoding orders the boxes with dfs.TopologicalSort, recovers each
// offset from the wires feeding the box and inserts swaps where those
// wires are not adjacent and in order. A Resolver turns each box vertex
// back into a moncat.Box: MetadataResolver rebuilds opaque boxes,
// RegistryResolver restores boxes with leaves from a name lookup.
//
// Decode(Encode(d)) equals d whenever the resolver restores the boxes.
package opengraph

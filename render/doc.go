// SPDX-License-Identifier: MIT

// Package render draws diagrams as Graphviz graphs.
//
// # Usage
//
//	dot, err := render.ToDOT(d, render.Options{Detailed: true})
//	svg, err := render.RenderSVG(dot)
//	png, err := render.RenderPNG(dot)
//
// The DOT source is built from the open graph of the diagram
// (opengraph.Encode): inputs on the top rank, outputs on the bottom rank,
// one box node per layer, and one edge per wire.
//
// # Dependencies
//
// Rendering runs in-process through [github.com/goccy/go-graphviz]; no
// Graphviz installation is needed.
package render

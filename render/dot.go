// SPDX-License-Identifier: MIT

package render

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/lvcat/core"
	"github.com/katalvlaran/lvcat/moncat"
	"github.com/katalvlaran/lvcat/opengraph"
)

// Options configures DOT generation.
type Options struct {
	// Detailed adds box metadata to node labels and wire types to edges.
	Detailed bool

	// LeftToRight lays wires out horizontally (rankdir=LR).
	LeftToRight bool
}

// ToDOT converts a diagram to Graphviz DOT source.
func ToDOT(d moncat.Diagram, opts Options) (string, error) {
	g, err := opengraph.Encode(d)
	if err != nil {
		return "", err
	}

	return GraphToDOT(g, opts)
}

// GraphToDOT converts an open graph to Graphviz DOT source.
func GraphToDOT(g *core.Graph, opts Options) (string, error) {
	rankdir := "TB"
	if opts.LeftToRight {
		rankdir = "LR"
	}
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	fmt.Fprintf(&buf, "  rankdir=%s;\n", rankdir)
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14];\n")
	buf.WriteString("  ranksep=0.4;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, id := range g.Vertices() {
		v, err := g.Vertex(id)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", v.ID, strings.Join(fmtAttrs(v, opts.Detailed), ", "))
	}
	writeRank(&buf, "source", g.Inputs())
	writeRank(&buf, "sink", g.Outputs())

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		attrs := []string{}
		if opts.Detailed {
			attrs = append(attrs,
				fmt.Sprintf("label=%q", e.Label),
				fmt.Sprintf("taillabel=%q", strconv.Itoa(e.FromPort)),
				fmt.Sprintf("headlabel=%q", strconv.Itoa(e.ToPort)),
			)
		}
		if len(attrs) == 0 {
			fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q [%s];\n", e.From, e.To, strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")

	return buf.String(), nil
}

func writeRank(buf *bytes.Buffer, rank string, ids []string) {
	if len(ids) == 0 {
		return
	}
	quoted := make([]string, len(ids))
	for i, id := range ids {
		quoted[i] = strconv.Quote(id)
	}
	fmt.Fprintf(buf, "  { rank=%s; %s; }\n", rank, strings.Join(quoted, "; "))
}

func fmtAttrs(v core.Vertex, detailed bool) []string {
	if v.Kind != core.KindBox {
		return []string{`label=""`, "shape=point", "width=0.08"}
	}
	label := v.Label
	if detailed {
		parts := []string{label}
		for _, k := range slices.Sorted(maps.Keys(v.Metadata)) {
			if k == opengraph.MetaName {
				continue
			}
			parts = append(parts, fmt.Sprintf("%s: %v", k, v.Metadata[k]))
		}
		label = strings.Join(parts, "\n")
	}
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if left, ok := v.Metadata[opengraph.MetaSwapLeft]; ok && left != nil {
		attrs = append(attrs, "shape=diamond", "style=filled", "fillcolor=lightgrey")
	}

	return attrs
}

// RenderSVG renders DOT source to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	out, err := renderDOT(dot, graphviz.SVG)
	if err != nil {
		return nil, err
	}

	return normalizeViewBox(out), nil
}

// RenderPNG renders DOT source to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return renderDOT(dot, graphviz.PNG)
}

func renderDOT(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root tag so the drawing scales with its
// container.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}
	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}
	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(tag))
}

// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvcat/render"
)

const (
	formatDOT = "dot"
	formatSVG = "svg"
	formatPNG = "png"
)

// renderOpts holds the flags of the render command.
type renderOpts struct {
	format      string // dot, svg or png
	output      string // output path; stdout for dot when empty
	detailed    bool   // types and ports on the drawing
	leftToRight bool   // wires run left to right
	normalize   bool   // draw the right normal form
}

// newRenderCmd creates the render command: draw a diagram through Graphviz.
func (a *app) newRenderCmd() *cobra.Command {
	opts := renderOpts{format: formatSVG}
	cmd := &cobra.Command{
		Use:   "render FILE|EXPR",
		Short: "Draw a diagram as DOT, SVG or PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRender(cmd, args[0], opts)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opts.format, "format", "f", opts.format, "output format: dot, svg, png")
	f.StringVarP(&opts.output, "output", "o", "", "output file (default <name>.<format>; dot goes to stdout)")
	f.BoolVar(&opts.detailed, "detailed", false, "label wires with types and ports")
	f.BoolVar(&opts.leftToRight, "lr", false, "lay the diagram out left to right")
	f.BoolVar(&opts.normalize, "normalize", false, "draw the normal form")

	return cmd
}

func (a *app) runRender(cmd *cobra.Command, arg string, opts renderOpts) error {
	prog := newProgress(loggerFromContext(cmd.Context()))
	src, err := loadSource(arg)
	if err != nil {
		return err
	}
	d := src.diagram
	if opts.normalize {
		d = d.NormalForm(false)
	}
	dot, err := render.ToDOT(d, render.Options{Detailed: opts.detailed, LeftToRight: opts.leftToRight})
	if err != nil {
		return err
	}

	var data []byte
	switch strings.ToLower(opts.format) {
	case formatDOT:
		if opts.output == "" {
			_, err := fmt.Fprint(a.out, dot)
			return err
		}
		data = []byte(dot)
	case formatSVG:
		data, err = render.RenderSVG(dot)
	case formatPNG:
		data, err = render.RenderPNG(dot)
	default:
		return fmt.Errorf("unknown format %q (want dot, svg or png)", opts.format)
	}
	if err != nil {
		return err
	}

	path := opts.output
	if path == "" {
		path = outputName(arg, strings.ToLower(opts.format))
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	prog.done("rendered " + src.name)
	printSuccess(a.out, "rendered %s", src.name)
	printFile(a.out, path)

	return nil
}

// outputName derives "<base>.<ext>" from a file argument, or "diagram.<ext>"
// for expressions.
func outputName(arg, ext string) string {
	if _, err := os.Stat(arg); err == nil {
		return strings.TrimSuffix(arg, filepath.Ext(arg)) + "." + ext
	}
	return "diagram." + ext
}

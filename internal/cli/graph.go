// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvcat/dfs"
	"github.com/katalvlaran/lvcat/internal/diagramfile"
	"github.com/katalvlaran/lvcat/opengraph"
)

// newGraphCmd creates the graph command: diagram to open-graph JSON, or
// back with --decode.
func (a *app) newGraphCmd() *cobra.Command {
	var (
		output string
		decode bool
	)
	cmd := &cobra.Command{
		Use:   "graph FILE|EXPR",
		Short: "Convert a diagram to open-graph JSON and back",
		Long: `Graph writes the open graph of a diagram: one vertex per box and per
boundary wire, one edge per wire. With --decode the argument is an open-graph
JSON file and the result is written as a TOML diagram file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			src, err := loadSource(args[0])
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			if decode {
				f, err := diagramfile.FromDiagram(src.name, src.diagram)
				if err != nil {
					return err
				}
				if err := f.Encode(&buf); err != nil {
					return err
				}
			} else {
				g, err := opengraph.Encode(src.diagram)
				if err != nil {
					return err
				}
				order, err := dfs.TopologicalSort(g)
				if err != nil {
					return err
				}
				logger.Debug("open graph", "vertices", g.VertexCount(), "edges", g.EdgeCount(), "order", order)
				if err := opengraph.WriteJSON(&buf, g); err != nil {
					return err
				}
			}

			return writeOutput(a.out, output, buf.Bytes())
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&decode, "decode", false, "read open-graph JSON and write a TOML diagram file")

	return cmd
}

// writeOutput writes data to path, or to w when path is empty.
func writeOutput(w io.Writer, path string, data []byte) error {
	if path == "" {
		_, err := w.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	printFile(w, path)

	return nil
}

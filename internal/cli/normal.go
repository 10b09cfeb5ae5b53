// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvcat/internal/diagramfile"
	"github.com/katalvlaran/lvcat/moncat"
)

// newNormalCmd creates the normal command: print the normal form of each
// argument, or write it as a diagram file with -o.
func (a *app) newNormalCmd() *cobra.Command {
	var (
		left   bool
		output string
	)
	cmd := &cobra.Command{
		Use:   "normal FILE|EXPR...",
		Short: "Bring diagrams to normal form",
		Long: `Normal moves boxes along the interchange law until no further move
applies. The right normal form (default) pulls boxes on the left earlier;
--left pulls boxes on the right earlier.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != "" && len(args) != 1 {
				return errors.New("--output takes exactly one diagram")
			}
			logger := loggerFromContext(cmd.Context())
			for _, arg := range args {
				src, err := loadSource(arg)
				if err != nil {
					return err
				}
				nf := src.diagram.NormalForm(left)
				logger.Debug("normal form", "name", src.name, "layers", nf.Len(), "changed", !nf.Equal(src.diagram))

				if output != "" {
					return a.writeNormal(src.name, nf, output)
				}
				printTitle(a.out, src.name)
				printKeyValue(a.out, "normal", nf.String())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&left, "left", false, "compute the left normal form")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the normal form as a TOML diagram file")

	return cmd
}

func (a *app) writeNormal(name string, nf moncat.Diagram, path string) error {
	f, err := diagramfile.FromDiagram(name, nf)
	if err != nil {
		return err
	}
	data, err := f.Bytes()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	printSuccess(a.out, "wrote normal form of %s", name)
	printFile(a.out, path)

	return nil
}

// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvcat/functor"
	"github.com/katalvlaran/lvcat/learner"
	"github.com/katalvlaran/lvcat/matrix"
	"github.com/katalvlaran/lvcat/moncat"
)

// newMatrixCmd creates the matrix command: the linear map of each diagram,
// computed in parallel by the matrix functor.
func (a *app) newMatrixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matrix FILE|EXPR...",
		Short: "Print the matrices of linear diagrams",
		Long: `Matrix sends swaps, copies, sums, scalings and discards to matrices
(columns are inputs) and composes them, with the direct sum as tensor.
Bias and sigmoid are not linear.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			prog := newProgress(loggerFromContext(ctx))

			srcs := make([]*source, len(args))
			ds := make([]moncat.Diagram, len(args))
			for i, arg := range args {
				src, err := loadSource(arg)
				if err != nil {
					return err
				}
				srcs[i], ds[i] = src, src.diagram
			}

			f := functor.New[matrix.Matrix](functor.ObIdentity(), learner.MatrixArrows(), functor.Matrices{},
				functor.WithLogger(loggerFromContext(ctx)))
			ms, err := functor.ApplyAll(ctx, f, ds, a.cfg.Workers)
			if err != nil {
				return err
			}
			prog.done("computed matrices")

			for i, m := range ms {
				printTitle(a.out, srcs[i].name)
				printMatrix(a.out, rowsOf(m))
			}
			return nil
		},
	}

	return cmd
}

func rowsOf(m matrix.Matrix) [][]float64 {
	rows := make([][]float64, m.Rows())
	for i := range rows {
		rows[i] = make([]float64, m.Cols())
		for j := range rows[i] {
			rows[i][j], _ = m.At(i, j)
		}
	}

	return rows
}

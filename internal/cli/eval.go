// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvcat/functor"
	"github.com/katalvlaran/lvcat/internal/watch"
)

// newEvalCmd creates the eval command: run a diagram on a vector.
// With --watch it re-runs on every save until interrupted.
func (a *app) newEvalCmd() *cobra.Command {
	var (
		input   []float64
		watchIt bool
	)
	cmd := &cobra.Command{
		Use:   "eval FILE|EXPR",
		Short: "Evaluate a diagram on an input vector",
		Long: `Evaluate runs every box's function layer by layer.

The input defaults to the file's "input" key; --input overrides it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if !watchIt {
				return a.evalOnce(ctx, args[0], input, cmd.Flags().Changed("input"))
			}
			return a.evalWatch(ctx, args[0], input, cmd.Flags().Changed("input"))
		},
	}
	cmd.Flags().Float64SliceVarP(&input, "input", "i", nil, "input vector, comma separated")
	cmd.Flags().BoolVarP(&watchIt, "watch", "w", false, "re-evaluate whenever the file changes")

	return cmd
}

func (a *app) evalOnce(ctx context.Context, arg string, input []float64, override bool) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	src, err := loadSource(arg)
	if err != nil {
		return err
	}
	x := input
	if !override && src.file != nil {
		x = src.file.Input
	}
	if x == nil {
		x = []float64{}
	}
	out, err := functor.Eval(src.diagram, x)
	if err != nil {
		return fmt.Errorf("%s: %w", src.name, err)
	}
	prog.done("evaluated " + src.name)

	printTitle(a.out, src.name)
	printKeyValue(a.out, "type", fmt.Sprintf("%s -> %s", src.diagram.Dom(), src.diagram.Cod()))
	printKeyValue(a.out, "input", formatVector(x))
	printKeyValue(a.out, "output", formatVector(out))

	return nil
}

func (a *app) evalWatch(ctx context.Context, path string, input []float64, override bool) error {
	logger := loggerFromContext(ctx)
	if err := a.evalOnce(ctx, path, input, override); err != nil {
		printFailure(a.out, "%v", err)
	}

	w, err := watch.New(a.cfg.Debounce, path)
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		return err
	}
	defer w.Stop()
	logger.Info("watching", "file", path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ch, ok := <-w.Changes:
			if !ok {
				return nil
			}
			if ch.Removed {
				printWarning(a.out, "%s was removed", ch.File)
				continue
			}
			logger.Debug("changed", "file", ch.File)
			if err := a.evalOnce(ctx, ch.File, input, override); err != nil {
				printFailure(a.out, "%v", err)
			}
		}
	}
}

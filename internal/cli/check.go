// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// ErrNotEquivalent is returned by check when the diagrams differ, so the
// process exits non-zero.
var ErrNotEquivalent = errors.New("diagrams are not equivalent")

// newCheckCmd creates the check command: equality up to interchange.
func (a *app) newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check A B",
		Short: "Check whether two diagrams are equal up to interchange",
		Long: `Check compares the right normal forms of A and B. Each argument is a
diagram file, an open-graph JSON file, or an expression.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			first, err := loadSource(args[0])
			if err != nil {
				return err
			}
			second, err := loadSource(args[1])
			if err != nil {
				return err
			}
			eq, err := first.diagram.Equivalent(second.diagram)
			if err != nil {
				return err
			}
			if !eq {
				printFailure(a.out, "%s and %s differ", first.name, second.name)
				printKeyValue(a.out, "A", first.diagram.NormalForm(false).String())
				printKeyValue(a.out, "B", second.diagram.NormalForm(false).String())
				return fmt.Errorf("%w: %s, %s", ErrNotEquivalent, first.name, second.name)
			}
			printSuccess(a.out, "%s and %s are equivalent", first.name, second.name)

			return nil
		},
	}

	return cmd
}

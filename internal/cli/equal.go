// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/matrixplus/matrix"
)

type equalFlags struct {
	tol float64
}

// NewEqualCommand creates the equal command.
func NewEqualCommand() *cobra.Command {
	flags := &equalFlags{}
	cmd := &cobra.Command{
		Use:   "equal <a> <b>",
		Short: "Print whether two matrices have equal shape and elements within tolerance",
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEqual(cmd, args, flags)
		},
	}
	cmd.Flags().Float64Var(&flags.tol, "tol", matrix.Epsilon, "Absolute element tolerance (strict)")

	return cmd
}

func runEqual(cmd *cobra.Command, args []string, flags *equalFlags) error {
	a, b, err := readPair(cmd, args)
	if err != nil {
		return err
	}

	return writeValue(cmd, "equal", a.EqualWithin(b, flags.tol))
}

// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/matrixplus/gonumx"
)

type inverseFlags struct {
	verify bool
}

// NewInverseCommand creates the inverse command.
func NewInverseCommand() *cobra.Command {
	flags := &inverseFlags{}
	cmd := &cobra.Command{
		Use:   "inverse <matrix>",
		Short: "Print the inverse of a square, non-singular matrix",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInverse(cmd, args, flags)
		},
	}
	cmd.Flags().BoolVar(&flags.verify, "verify", false, "Cross-check against gonum's inverse")

	return cmd
}

func runInverse(cmd *cobra.Command, args []string, flags *inverseFlags) error {
	m, err := readMatrix(cmd, args[0])
	if err != nil {
		return err
	}
	inv, err := m.Inverse()
	if err != nil {
		return err
	}

	if flags.verify || settings.Verify {
		ref, err := gonumx.Inverse(m)
		if err != nil {
			return err
		}
		if !matricesAgree(inv, ref) {
			return fmt.Errorf("%w: inverse differs from reference\n%s", ErrVerifyMismatch, ref)
		}
		VerboseLog("inverse: reference agrees")
	}

	return writeMatrix(cmd, inv)
}

// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/matrixplus/gonumx"
)

// detFlags holds the flags of the det command.
type detFlags struct {
	verify bool
}

// NewDetCommand creates the det command.
func NewDetCommand() *cobra.Command {
	flags := &detFlags{}
	cmd := &cobra.Command{
		Use:   "det <matrix>",
		Short: "Print the determinant of a square matrix",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDet(cmd, args, flags)
		},
	}
	cmd.Flags().BoolVar(&flags.verify, "verify", false, "Cross-check against gonum's LU determinant")

	return cmd
}

func runDet(cmd *cobra.Command, args []string, flags *detFlags) error {
	m, err := readMatrix(cmd, args[0])
	if err != nil {
		return err
	}
	det, err := m.Determinant()
	if err != nil {
		return err
	}

	if flags.verify || settings.Verify {
		ref, err := gonumx.Det(m)
		if err != nil {
			return err
		}
		VerboseLog("det: laplace=%g lu=%g", det, ref)
		if !agrees(det, ref) {
			return fmt.Errorf("%w: det %g, reference %g", ErrVerifyMismatch, det, ref)
		}
	}

	return writeValue(cmd, "det", det)
}

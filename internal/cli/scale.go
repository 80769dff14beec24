// SPDX-License-Identifier: MIT

package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/matrixplus/matrix"
)

// NewScaleCommand creates the scale command.
func NewScaleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "scale <matrix> <factor>",
		Short: "Print the matrix multiplied by a scalar",
		Args:  exactArgs(2),
		RunE:  runScale,
	}
}

func runScale(cmd *cobra.Command, args []string) error {
	factor, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return usageErrorf("factor %q: %w", args[1], err)
	}
	m, err := readMatrix(cmd, args[0])
	if err != nil {
		return err
	}

	return writeMatrix(cmd, matrix.ScaleBy(m, factor))
}

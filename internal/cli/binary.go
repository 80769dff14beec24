// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/matrixplus/matrix"
)

// NewAddCommand creates the add command.
func NewAddCommand() *cobra.Command {
	return newBinaryCommand("add", "Print the element-wise sum a + b", matrix.Sum)
}

// NewSubCommand creates the sub command.
func NewSubCommand() *cobra.Command {
	return newBinaryCommand("sub", "Print the element-wise difference a - b", matrix.Diff)
}

// NewMulCommand creates the mul command.
func NewMulCommand() *cobra.Command {
	return newBinaryCommand("mul", "Print the matrix product a × b", matrix.Product)
}

func newBinaryCommand(name, short string, op func(a, b *matrix.Matrix) (*matrix.Matrix, error)) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <a> <b>",
		Short: short,
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := readPair(cmd, args)
			if err != nil {
				return err
			}
			res, err := op(a, b)
			if err != nil {
				return err
			}

			return writeMatrix(cmd, res)
		},
	}
}

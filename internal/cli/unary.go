// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/matrixplus/matrix"
)

// NewTransposeCommand creates the transpose command.
func NewTransposeCommand() *cobra.Command {
	return newUnaryCommand("transpose", "Print the transpose of a matrix",
		func(m *matrix.Matrix) (*matrix.Matrix, error) { return m.Transpose(), nil })
}

// NewCofactorsCommand creates the cofactors command.
func NewCofactorsCommand() *cobra.Command {
	return newUnaryCommand("cofactors", "Print the cofactor matrix (not transposed)",
		(*matrix.Matrix).Cofactors)
}

func newUnaryCommand(name, short string, op func(*matrix.Matrix) (*matrix.Matrix, error)) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <matrix>",
		Short: short,
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := readMatrix(cmd, args[0])
			if err != nil {
				return err
			}
			res, err := op(m)
			if err != nil {
				return err
			}

			return writeMatrix(cmd, res)
		},
	}
}

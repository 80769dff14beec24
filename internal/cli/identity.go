// SPDX-License-Identifier: MIT

package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/matrixplus/matrix"
)

// NewIdentityCommand creates the identity command. Non-positive n clamps to 1.
func NewIdentityCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "identity <n>",
		Short: "Print the n×n identity matrix",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return usageErrorf("n %q: %w", args[0], err)
			}
			VerboseLog("identity: n=%d", n)

			return writeMatrix(cmd, matrix.NewIdentity(n))
		},
	}
}

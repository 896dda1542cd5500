package cli

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matkit/matkit/rref"
)

// NewReduceCommand creates the reduce command: load, reduce in place,
// print the rendering to stdout.
func NewReduceCommand(_ *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reduce <matrix.yaml>",
		Short: "Reduce a matrix to reduced row-echelon form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := LoadMatrix(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}

			rref.Reduce(m)
			log.Debug("matrix reduced", "rows", m.Rows(), "cols", m.Cols())
			fmt.Fprint(cmd.OutOrStdout(), m)

			return nil
		},
	}
}

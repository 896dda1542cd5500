package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewDimsCommand creates the dims command, printing "<cols>x<rows>" —
// column count first, matching mat2.Dims.
func NewDimsCommand(_ *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "dims <matrix.yaml>",
		Short: "Print matrix dimensions as <cols>x<rows>",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := LoadMatrix(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}

			cols, rows := m.Dims()
			fmt.Fprintf(cmd.OutOrStdout(), "%dx%d\n", cols, rows)

			return nil
		},
	}
}

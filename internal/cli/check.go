package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matkit/matkit/rref"
)

// ErrNotReduced is returned (and mapped to a nonzero exit code) when the
// checked matrix is not in reduced row-echelon form.
var ErrNotReduced = errors.New("cli: matrix is not in reduced row-echelon form")

// NewCheckCommand creates the check command: print the RREF verdict and
// fail when the matrix is not reduced.
func NewCheckCommand(_ *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "check <matrix.yaml>",
		Short:         "Check whether a matrix is in reduced row-echelon form",
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true, // the verdict on stdout is the report
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := LoadMatrix(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}

			ok := rref.IsRREF(m)
			fmt.Fprintf(cmd.OutOrStdout(), "rref: %t\n", ok)
			if !ok {
				return ErrNotReduced
			}

			return nil
		},
	}
}

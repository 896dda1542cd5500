// Package cli wires the matkit library to a small cobra front end.
// Commands read a matrix from a YAML file (or stdin via "-"): a list of
// equal-length numeric lists, e.g.
//
//	- [1, 2, 3]
//	- [1, 5, 6]
package cli

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	Verbose bool
}

// NewRootCommand creates the root command for the matkit CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:          "matkit",
		Short:        "Dense matrix toolkit: Gauss-Jordan reduction and RREF checks",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			// Diagnostics go to stderr so stdout stays a clean rendering.
			log.SetOutput(cmd.ErrOrStderr())
			if opts.Verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(NewReduceCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewDimsCommand(opts))

	return cmd
}

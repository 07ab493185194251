package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/fuzzscore/internal/rulebase"
)

// version is set via -ldflags at build time.
var version = "(devel)"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the current version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "fuzzscore %s (rules %s)\n", version, rulebase.Default().Version())
		},
	}
}

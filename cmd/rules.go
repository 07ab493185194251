package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/fuzzscore/internal/config"
	"github.com/abhisek/fuzzscore/internal/report"
	"github.com/abhisek/fuzzscore/internal/rulebase"
)

type rulesDocument struct {
	Version   string          `json:"version"`
	Variables []string        `json:"variables"`
	Rules     []rulebase.Rule `json:"rules"`
}

func newRulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the rule base in evaluation order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := resolve(cmd)
			if err != nil {
				return err
			}
			rb := rt.engine.Rules()
			out := cmd.OutOrStdout()
			if rt.cfg.Output == config.FormatJSON {
				return report.JSON(out, rulesDocument{
					Version:   rb.Version(),
					Variables: rb.Variables(),
					Rules:     rb.Rules(),
				})
			}
			return report.Rules(out, rb, rt.options())
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Validate the rule base and report coverage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := resolve(cmd)
			if err != nil {
				return err
			}
			rb := rt.engine.Rules()
			if err := rb.Check(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "rule base %s OK: %d rules cover all %d combinations\n",
				rb.Version(), rb.Len(), rulebase.Combinations())
			return nil
		},
	})
	return cmd
}

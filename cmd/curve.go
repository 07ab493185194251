package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/fuzzscore/internal/config"
	"github.com/abhisek/fuzzscore/internal/linguistic"
	"github.com/abhisek/fuzzscore/internal/membership"
	"github.com/abhisek/fuzzscore/internal/report"
)

func newCurveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "curve <variable>",
		Short:     "Sample the membership curves of a variable",
		Args:      cobra.ExactArgs(1),
		ValidArgs: variableNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := linguistic.ByName(args[0])
			if err != nil {
				return err
			}

			plot := v.Plot
			flags := cmd.Flags()
			if flags.Changed("from") {
				plot.From, _ = flags.GetFloat64("from")
			}
			if flags.Changed("to") {
				plot.To, _ = flags.GetFloat64("to")
			}
			if flags.Changed("step") {
				plot.Step, _ = flags.GetFloat64("step")
			}
			if plot.Step <= 0 {
				return fmt.Errorf("step must be positive, got %g", plot.Step)
			}
			if plot.To < plot.From {
				return fmt.Errorf("range end %g is before start %g", plot.To, plot.From)
			}

			rt, err := resolve(cmd)
			if err != nil {
				return err
			}

			samples := membership.Samples(v, plot.From, plot.To, plot.Step)
			out := cmd.OutOrStdout()
			if rt.cfg.Output == config.FormatJSON {
				return report.JSON(out, report.CurveDocument(v, samples))
			}
			return report.Curve(out, v, samples, rt.options())
		},
	}

	cmd.Flags().Float64("from", 0, "First sample (default: the variable's plot range)")
	cmd.Flags().Float64("to", 0, "Last sample (default: the variable's plot range)")
	cmd.Flags().Float64("step", 0, "Distance between samples (default: the variable's plot step)")
	return cmd
}

func variableNames() []string {
	vars := linguistic.All()
	names := make([]string, len(vars))
	for i, v := range vars {
		names[i] = v.Name
	}
	return names
}

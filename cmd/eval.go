package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/fuzzscore/internal/config"
	"github.com/abhisek/fuzzscore/internal/fuzzy"
	"github.com/abhisek/fuzzscore/internal/report"
)

func newEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval [anamnesis smoking age doubt_time]",
		Short: "Compute the performance score for one set of inputs",
		Example: "  fuzzscore eval 25 500 28 10\n" +
			"  fuzzscore eval --anamnesis 25 --smoking 500 --age 28 --doubt-time 10 -o json",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 4 {
				return fmt.Errorf("expected 4 positional values or none, got %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := evalArgs(cmd, args)
			if err != nil {
				return err
			}
			in, err := fuzzy.ParseInput(raw[0], raw[1], raw[2], raw[3])
			if err != nil {
				return err
			}

			rt, err := resolve(cmd)
			if err != nil {
				return err
			}
			return evaluate(cmd, rt, in)
		},
	}

	cmd.Flags().String("anamnesis", "", "Anamnesis score (0-100 points)")
	cmd.Flags().String("smoking", "", "Smoking degree index (0-800)")
	cmd.Flags().String("age", "", "Age in years (10-70)")
	cmd.Flags().String("doubt-time", "", "Doubting time in hours (0-16)")
	return cmd
}

// evalArgs returns the four raw values from positional args or, when none
// are given, from the named flags.
func evalArgs(cmd *cobra.Command, args []string) ([4]string, error) {
	var raw [4]string
	if len(args) == 4 {
		copy(raw[:], args)
		return raw, nil
	}

	flagNames := [4]string{"anamnesis", "smoking", "age", "doubt-time"}
	var missing []string
	for i, name := range flagNames {
		if !cmd.Flags().Changed(name) {
			missing = append(missing, "--"+name)
			continue
		}
		raw[i], _ = cmd.Flags().GetString(name)
	}
	if len(missing) > 0 {
		return raw, fmt.Errorf("missing values: %v", missing)
	}
	return raw, nil
}

// evaluate runs one input through the engine and writes the report. Out of
// range inputs are logged, or refused in strict mode.
func evaluate(cmd *cobra.Command, rt *app, in fuzzy.Input) error {
	adv := fuzzy.Advise(in)
	if rt.cfg.Strict && len(adv) > 0 {
		return &fuzzy.RangeError{Advisories: adv}
	}
	for _, a := range adv {
		rt.logger.Warn("input outside recommended range",
			"variable", a.Variable,
			"value", a.Value,
			"min", a.Recommended.Min,
			"max", a.Recommended.Max)
	}

	res, err := rt.engine.Evaluate(in)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if rt.cfg.Output == config.FormatJSON {
		return report.JSON(out, report.Evaluation{Result: res, Advisories: adv})
	}
	return report.Result(out, res, adv, rt.options())
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/fuzzscore/internal/fuzzy"
)

func newPresetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preset [name]",
		Short: "List the sample inputs, or evaluate one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%-6s  %9s  %7s  %5s  %10s\n",
					"Preset", "Anamnesis", "Smoking", "Age", "Doubt time")
				for _, p := range fuzzy.Presets() {
					fmt.Fprintf(out, "%-6s  %9g  %7g  %5g  %10g\n",
						p.Name, p.Input.Anamnesis, p.Input.Smoking, p.Input.Age, p.Input.DoubtTime)
				}
				return nil
			}

			p, err := fuzzy.PresetByName(args[0])
			if err != nil {
				return err
			}
			rt, err := resolve(cmd)
			if err != nil {
				return err
			}
			return evaluate(cmd, rt, p.Input)
		},
	}
}

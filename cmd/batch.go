package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/fuzzscore/internal/batch"
)

func newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch [file|-]",
		Short: "Evaluate CSV rows and write one JSON record per line",
		Long: "Reads rows of anamnesis,smoking,age,doubt_time (an optional header row is skipped)\n" +
			"from a file or stdin and writes one JSON object per row. Invalid rows produce an\n" +
			"error record and do not stop the run.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := resolve(cmd)
			if err != nil {
				return err
			}

			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open input: %w", err)
				}
				defer f.Close()
				in = f
			}

			p, err := batch.New(rt.engine, batch.Options{
				Strict:    rt.cfg.Strict,
				CacheSize: rt.cfg.CacheSize,
			}, rt.logger)
			if err != nil {
				return err
			}

			sum, err := p.Run(cmd.Context(), in, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			failOnError, _ := cmd.Flags().GetBool("fail-on-error")
			if failOnError && sum.Failed > 0 {
				return fmt.Errorf("%d of %d rows failed", sum.Failed, sum.Rows)
			}
			return nil
		},
	}

	cmd.Flags().Int("cache-size", 0, "Maximum memoized results; 0 disables (overrides FUZZSCORE_CACHE_SIZE)")
	cmd.Flags().Bool("fail-on-error", false, "Exit non-zero if any row failed")
	return cmd
}

package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/abhisek/fuzzscore/internal/config"
	"github.com/abhisek/fuzzscore/internal/fuzzy"
	"github.com/abhisek/fuzzscore/internal/logging"
	"github.com/abhisek/fuzzscore/internal/report"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "fuzzscore",
		Short: "Fuzzy performance score calculator",
		Long: "fuzzscore rates performance from anamnesis score, cigarette count, age and doubt time\n" +
			"using a Mamdani-style fuzzy rule base of 81 rules.",
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.String("log-level", "", "Log level: debug, info, warn, error (overrides FUZZSCORE_LOG_LEVEL)")
	pf.String("log-format", "", "Log format: text or json (overrides FUZZSCORE_LOG_FORMAT)")
	pf.StringP("output", "o", "", "Output format: text or json (overrides FUZZSCORE_OUTPUT)")
	pf.Bool("color", true, "Colorize text output (overrides FUZZSCORE_COLOR)")
	pf.Bool("strict", false, "Refuse inputs outside their recommended range (overrides FUZZSCORE_STRICT)")

	root.AddCommand(newEvalCmd())
	root.AddCommand(newBatchCmd())
	root.AddCommand(newPresetCmd())
	root.AddCommand(newRulesCmd())
	root.AddCommand(newCurveCmd())
	root.AddCommand(newVersionCmd())
	return root
}

// Execute runs the command tree against os.Args.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

// app is the resolved configuration shared by every subcommand.
type app struct {
	cfg    config.Config
	logger *slog.Logger
	engine *fuzzy.Engine
}

func (rt *app) options() report.Options {
	return report.Options{Color: rt.cfg.Color}
}

// resolve builds the runtime using flags (highest priority), then
// FUZZSCORE_* env vars, then defaults.
func resolve(cmd *cobra.Command) (*app, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-format") {
		cfg.LogFormat, _ = flags.GetString("log-format")
	}
	if flags.Changed("output") {
		cfg.Output, _ = flags.GetString("output")
	}
	if flags.Changed("color") {
		cfg.Color, _ = flags.GetBool("color")
	}
	if flags.Changed("strict") {
		cfg.Strict, _ = flags.GetBool("strict")
	}
	if flags.Lookup("cache-size") != nil && flags.Changed("cache-size") {
		cfg.CacheSize, _ = flags.GetInt("cache-size")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := logging.New(cmd.ErrOrStderr(), cfg)
	if err != nil {
		return nil, err
	}
	return &app{
		cfg:    cfg,
		logger: logger,
		engine: fuzzy.NewEngine(nil, logger),
	}, nil
}

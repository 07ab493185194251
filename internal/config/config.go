package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds CLI-wide settings.
type Config struct {
	// LogLevel is one of debug, info, warn, error. Default: info.
	LogLevel string
	// LogFormat selects the log handler: text or json. Default: text.
	LogFormat string

	// Output selects how results are rendered: text or json. Default: text.
	Output string
	// Color enables styled terminal output. Default: true.
	Color bool

	// Strict refuses inputs outside their recommended ranges instead of
	// evaluating them with a warning.
	Strict bool

	// CacheSize bounds the batch evaluator's memo of repeated inputs.
	// Zero disables caching. Default: 256.
	CacheSize int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: FormatText,
		Output:    FormatText,
		Color:     true,
		CacheSize: 256,
	}
}

// FromEnv builds a Config from environment variables, falling back to
// defaults for unset values. Malformed booleans and integers are reported.
func FromEnv() (Config, error) {
	return fromLookup(os.LookupEnv)
}

func fromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := DefaultConfig()

	if v, ok := lookup("FUZZSCORE_LOG_LEVEL"); ok && v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v, ok := lookup("FUZZSCORE_LOG_FORMAT"); ok && v != "" {
		cfg.LogFormat = strings.ToLower(v)
	}
	if v, ok := lookup("FUZZSCORE_OUTPUT"); ok && v != "" {
		cfg.Output = strings.ToLower(v)
	}
	if v, ok := lookup("NO_COLOR"); ok && v != "" {
		cfg.Color = false
	}
	if v, ok := lookup("FUZZSCORE_COLOR"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("FUZZSCORE_COLOR: %w", err)
		}
		cfg.Color = b
	}
	if v, ok := lookup("FUZZSCORE_STRICT"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("FUZZSCORE_STRICT: %w", err)
		}
		cfg.Strict = b
	}
	if v, ok := lookup("FUZZSCORE_CACHE_SIZE"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("FUZZSCORE_CACHE_SIZE: %w", err)
		}
		cfg.CacheSize = n
	}

	return cfg, nil
}

// Validate checks enum fields and bounds.
func (c Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q: must be debug, info, warn or error", c.LogLevel)
	}
	switch c.LogFormat {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("unknown log format %q: must be text or json", c.LogFormat)
	}
	switch c.Output {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("unknown output format %q: must be text or json", c.Output)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("cache size must be >= 0, got %d", c.CacheSize)
	}
	return nil
}

// Package contract has configuration types and shared helpers used by
// every layer of talentscope.
package contract

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/minjaelee/talentscope/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit = 25
	MaxResultLimit     = 1000
	DefaultPrecision   = 2
	MinPrecision       = 0
	MaxPrecision       = 4
)

// Config holds the runtime configuration for one invocation.
// This struct remains the "final, validated" config.
type Config struct {
	InputPath   string            // Path to the uploaded roster file (.xlsx)
	ResultLimit int               // Maximum number of rows to show in row-level views
	Precision   int               // Decimal precision for score columns
	Output      schema.OutputMode // Output format: text (default), csv, json or parquet
	OutputFile  string            // Optional path to write output to
	Width       int               // Terminal width override (0 = auto-detect)
	UseColors   bool              // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env,
// config file). Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	InputPathStr string

	Limit      int    `mapstructure:"limit"`
	Precision  int    `mapstructure:"precision"`
	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	Width      int    `mapstructure:"width"`
	Color      string `mapstructure:"color"`
}

// Clone returns a copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ProcessAndValidate turns the raw input into a validated Config.
// The input path may be empty here; commands that need a roster check
// for it themselves, since metrics and mcp run without one.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if input.Limit < 1 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be between 1 and %d, got %d", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	if input.Precision < MinPrecision || input.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between %d and %d, got %d", MinPrecision, MaxPrecision, input.Precision)
	}
	cfg.Precision = input.Precision

	output := schema.OutputMode(strings.ToLower(strings.TrimSpace(input.Output)))
	if _, ok := schema.ValidOutputModes[output]; !ok {
		return fmt.Errorf("invalid output mode: %s (expected text, csv, json or parquet)", input.Output)
	}
	cfg.Output = output

	useColors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid color setting: %w", err)
	}
	cfg.UseColors = useColors

	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width

	if input.InputPathStr != "" {
		if err := ValidateInputPath(input.InputPathStr); err != nil {
			return err
		}
		cfg.InputPath = input.InputPathStr
	}

	return nil
}

// ValidateInputPath checks that the roster path has the accepted
// extension. Only xlsx workbooks are accepted; no other file formats.
func ValidateInputPath(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".xlsx" {
		return fmt.Errorf("unsupported input file %q: only .xlsx workbooks are accepted", path)
	}
	return nil
}

// Package core has the evaluation metrics pipeline and the entry
// points behind every talentscope command.
package core

import (
	"context"
	"errors"
	"time"

	"github.com/minjaelee/talentscope/internal/contract"
	"github.com/minjaelee/talentscope/internal/loader"
	"github.com/minjaelee/talentscope/internal/outwriter"
	"github.com/minjaelee/talentscope/schema"
)

// ErrNoInput is returned by commands that need a roster file when none
// was given.
var ErrNoInput = errors.New("a roster file is required")

// GetReport loads the configured roster and runs the full pipeline.
// It is the shared entry for the CLI commands and the MCP tools.
func GetReport(cfg *contract.Config) (*schema.Report, error) {
	if cfg.InputPath == "" {
		return nil, ErrNoInput
	}
	roster, err := loader.LoadRoster(cfg.InputPath)
	if err != nil {
		return nil, err
	}
	return BuildReport(roster), nil
}

// ExecuteReport renders every derived view of the roster.
// It serves as the main entry point for the 'report' command.
func ExecuteReport(_ context.Context, cfg *contract.Config) error {
	start := time.Now()
	report, err := GetReport(cfg)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteReport(report, cfg, time.Since(start))
}

// ExecuteSummary renders the headline numbers only.
func ExecuteSummary(_ context.Context, cfg *contract.Config) error {
	start := time.Now()
	report, err := GetReport(cfg)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteSummary(report.Summary, cfg, time.Since(start))
}

// ExecuteOrg renders the organizational breakdowns: rank averages,
// grade distribution, tenure curve and the rank balance triples.
func ExecuteOrg(_ context.Context, cfg *contract.Config) error {
	start := time.Now()
	report, err := GetReport(cfg)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteOrg(report, cfg, time.Since(start))
}

// ExecuteTalent renders the core talent selection and the per
// department talent density.
func ExecuteTalent(_ context.Context, cfg *contract.Config) error {
	start := time.Now()
	report, err := GetReport(cfg)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteTalent(report, cfg, time.Since(start))
}

// ExecuteGrowth renders the year-over-year views. When the roster has
// no prior-year scores the section degrades to an inline notice.
func ExecuteGrowth(_ context.Context, cfg *contract.Config) error {
	start := time.Now()
	report, err := GetReport(cfg)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteGrowth(report, cfg, time.Since(start))
}

// ExecuteRisk renders the risk views: department score dispersion, the
// potential-risk segment and shock drops.
func ExecuteRisk(_ context.Context, cfg *contract.Config) error {
	start := time.Now()
	report, err := GetReport(cfg)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteRisk(report, cfg, time.Since(start))
}

// ExecuteExport writes the normalized roster with its derived columns
// for BI tools. Unlike the other commands its default format is CSV,
// and it is the only command that writes Parquet.
func ExecuteExport(_ context.Context, cfg *contract.Config) error {
	if cfg.InputPath == "" {
		return ErrNoInput
	}
	roster, err := loader.LoadRoster(cfg.InputPath)
	if err != nil {
		return err
	}
	// Run the pipeline so the export carries the derived columns too.
	BuildReport(roster)
	return outwriter.NewOutWriter().WriteExport(roster, cfg)
}

// ExecuteMetrics displays the formal definitions of all derived views.
// This is a static display that does not require a roster.
func ExecuteMetrics(_ context.Context, cfg *contract.Config) error {
	return outwriter.NewOutWriter().WriteMetrics(cfg)
}

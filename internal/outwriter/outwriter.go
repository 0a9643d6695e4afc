// Package outwriter has output and writer logic.
package outwriter

import (
	"os"
	"time"

	"github.com/minjaelee/talentscope/internal/contract"
	"github.com/minjaelee/talentscope/schema"
	"golang.org/x/term"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteReport prints every derived view using the configured output format.
func (ow *OutWriter) WriteReport(report *schema.Report, cfg *contract.Config, duration time.Duration) error {
	return PrintReport(report, cfg, duration)
}

// WriteSummary prints the headline numbers using the configured output format.
func (ow *OutWriter) WriteSummary(summary schema.SummaryStats, cfg *contract.Config, duration time.Duration) error {
	return PrintSummary(summary, cfg, duration)
}

// WriteOrg prints the organizational breakdowns using the configured output format.
func (ow *OutWriter) WriteOrg(report *schema.Report, cfg *contract.Config, duration time.Duration) error {
	return PrintOrg(report, cfg, duration)
}

// WriteTalent prints the core talent views using the configured output format.
func (ow *OutWriter) WriteTalent(report *schema.Report, cfg *contract.Config, duration time.Duration) error {
	return PrintTalent(report, cfg, duration)
}

// WriteGrowth prints the year-over-year views using the configured output format.
func (ow *OutWriter) WriteGrowth(report *schema.Report, cfg *contract.Config, duration time.Duration) error {
	return PrintGrowth(report, cfg, duration)
}

// WriteRisk prints the risk views using the configured output format.
func (ow *OutWriter) WriteRisk(report *schema.Report, cfg *contract.Config, duration time.Duration) error {
	return PrintRisk(report, cfg, duration)
}

// WriteExport writes the normalized roster with derived columns.
func (ow *OutWriter) WriteExport(roster *schema.Roster, cfg *contract.Config) error {
	return PrintExport(roster, cfg)
}

// WriteMetrics prints metric definitions using the configured output format.
func (ow *OutWriter) WriteMetrics(cfg *contract.Config) error {
	return PrintMetricsDefinitions(cfg)
}

// GetMaxTableNameWidth calculates the maximum width for employee names
// in table output based on terminal width and table configuration.
func GetMaxTableNameWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		// Get terminal width
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the fixed columns: rank number, department,
	// rank, scores, grade, with borders and padding.
	baseWidth := 60

	available := termWidth - baseWidth
	if available < 8 {
		// Minimum reasonable name width
		return 8
	}
	if available > 30 {
		// Maximum name width to keep rows compact
		return 30
	}
	return available
}

package cmd

import (
	"github.com/minjaelee/talentscope/core"
	"github.com/minjaelee/talentscope/internal/contract"
	"github.com/spf13/cobra"
)

// exportCmd writes the normalized roster for BI tools.
var exportCmd = &cobra.Command{
	Use:   "export <roster.xlsx>",
	Short: "Export the normalized roster with derived columns.",
	Long: `Write the normalized roster as a flat table for BI tools.

Every row carries the canonical columns plus the derived ones: score
delta, growth percent and tenure bucket. Headers and rank spellings are
normalized regardless of how the workbook spelled them.

The default format is CSV. Parquet output requires --output-file since
the format cannot stream to a terminal.

Examples:
  # Normalized CSV on stdout
  talentscope export roster.xlsx

  # Parquet file for a warehouse
  talentscope export roster.xlsx --output parquet --output-file roster.parquet

  # JSON for ad-hoc scripting
  talentscope export roster.xlsx --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteExport(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run export", err)
		}
	},
}

package cmd

import (
	"github.com/minjaelee/talentscope/core"
	"github.com/minjaelee/talentscope/internal/contract"
	"github.com/spf13/cobra"
)

// reportCmd renders every derived view of the roster.
var reportCmd = &cobra.Command{
	Use:   "report <roster.xlsx>",
	Short: "Show the full evaluation report for a roster.",
	Long: `Load an evaluation roster and render every derived view in one pass.

The report walks through the whole analysis:
- Headline numbers for the roster
- Mean score by rank and grade distribution
- Score dispersion and tenure curve
- Core talent selection and talent density
- Competency/performance matrix with the potential-risk segment
- Year-over-year growth, top improvers and shock drops

Rosters without a prior-year total score column still produce a full
report; the growth sections degrade to an inline notice.

Examples:
  # Full report on the terminal
  talentscope report roster.xlsx

  # Machine-readable report for downstream tooling
  talentscope report roster.xlsx --output json --output-file report.json

  # Narrow terminal, no colors
  talentscope report roster.xlsx --width 80 --color no`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteReport(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run report", err)
		}
	},
}

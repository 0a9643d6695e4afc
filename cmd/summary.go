package cmd

import (
	"github.com/minjaelee/talentscope/core"
	"github.com/minjaelee/talentscope/internal/contract"
	"github.com/spf13/cobra"
)

// summaryCmd renders the headline numbers only.
var summaryCmd = &cobra.Command{
	Use:   "summary <roster.xlsx>",
	Short: "Show headline numbers for a roster.",
	Long: `Compute the headline numbers of an evaluation roster:

- Headcount
- Mean total score
- Mean year-over-year growth (when prior-year scores exist)
- Mean tenure in years

Examples:
  # Quick look at a roster
  talentscope summary roster.xlsx

  # One-row CSV for dashboards
  talentscope summary roster.xlsx --output csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteSummary(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run summary", err)
		}
	},
}

package cmd

import (
	"github.com/minjaelee/talentscope/core"
	"github.com/minjaelee/talentscope/internal/contract"
	"github.com/spf13/cobra"
)

// riskCmd renders the risk views.
var riskCmd = &cobra.Command{
	Use:   "risk <roster.xlsx>",
	Short: "Show dispersion, the nine-box matrix and shock drops.",
	Long: `Surface the risk signals hidden in an evaluation roster:

- Score dispersion per department (sample standard deviation), widest
  spread first
- The competency/performance matrix with quadrant counts
- The potential-risk segment: above-average competency that is not
  showing up in performance
- Shock drops, when prior-year scores are available

Examples:
  # Risk views on the terminal
  talentscope risk roster.xlsx

  # Potential-risk segment as CSV for follow-up
  talentscope risk roster.xlsx --output csv --output-file risk.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteRisk(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run risk analysis", err)
		}
	},
}

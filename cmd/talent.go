package cmd

import (
	"github.com/minjaelee/talentscope/core"
	"github.com/minjaelee/talentscope/internal/contract"
	"github.com/spf13/cobra"
)

// talentCmd renders the core talent views.
var talentCmd = &cobra.Command{
	Use:   "talent <roster.xlsx>",
	Short: "Show the top decile of the roster and talent density.",
	Long: `Select the core talent of an evaluation roster and show where it sits.

- Core talent: every employee at or above the 90th percentile of total
  score, best first
- Talent density: the share of S/A grades per department, including
  departments where that share is zero

Examples:
  # Core talent on the terminal
  talentscope talent roster.xlsx

  # Top 10 only
  talentscope talent roster.xlsx --limit 10

  # Full selection as CSV
  talentscope talent roster.xlsx --output csv --output-file core.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteTalent(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run talent analysis", err)
		}
	},
}

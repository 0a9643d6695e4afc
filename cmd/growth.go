package cmd

import (
	"github.com/minjaelee/talentscope/core"
	"github.com/minjaelee/talentscope/internal/contract"
	"github.com/spf13/cobra"
)

// growthCmd renders the year-over-year views.
var growthCmd = &cobra.Command{
	Use:   "growth <roster.xlsx>",
	Short: "Show year-over-year score movement.",
	Long: `Compute year-over-year movement from the prior-year total scores:

- Mean delta across the roster
- Top improvers by score delta
- Mean delta per department, weakest department first
- Shock drops: employees whose score fell by 10 points or more

Employees with a zero prior score report zero growth rather than an
infinite percentage. Rosters without a prior-year column degrade to a
notice in text output; csv and json fail instead.

Examples:
  # Growth views on the terminal
  talentscope growth roster.xlsx

  # Notable movers as CSV
  talentscope growth roster.xlsx --output csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteGrowth(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run growth analysis", err)
		}
	},
}

package cmd

import (
	"github.com/minjaelee/talentscope/core"
	"github.com/minjaelee/talentscope/internal/contract"
	"github.com/spf13/cobra"
)

// metricsCmd displays the formal definitions of all derived views.
var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Display formulas and definitions for all derived views",
	Long: `Show the formal definitions and formulas behind every derived view.

No roster is read - this is purely informational.

Use this to:
- Understand what each view measures
- Explain the selection and risk thresholds to your team
- Document the analysis methodology

Examples:
  # Show all view definitions
  talentscope metrics

  # Definitions as JSON
  talentscope metrics --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteMetrics(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot display metrics", err)
		}
	},
}

package cmd

import (
	"github.com/minjaelee/talentscope/core"
	"github.com/minjaelee/talentscope/internal/contract"
	"github.com/spf13/cobra"
)

// orgCmd renders the organizational breakdowns.
var orgCmd = &cobra.Command{
	Use:   "org <roster.xlsx>",
	Short: "Break the roster down by rank, grade and tenure.",
	Long: `Render the organizational breakdowns of an evaluation roster:

- Mean total score per rank, highest rank first
- Headcount and mean score per grade (S A B C D)
- Mean score across tenure buckets
- Competency vs performance balance per rank, as long-format triples

Ranks outside the fixed enumeration are dropped from the rank views;
the rest of the roster is unaffected.

Examples:
  # Organizational breakdowns on the terminal
  talentscope org roster.xlsx

  # Long-format balance table for a charting tool
  talentscope org roster.xlsx --output csv --output-file balance.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteOrg(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run org breakdown", err)
		}
	},
}

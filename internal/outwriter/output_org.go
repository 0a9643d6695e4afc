package outwriter

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/minjaelee/talentscope/internal/contract"
	"github.com/minjaelee/talentscope/schema"
)

// orgViews bundles the organizational breakdowns for JSON output.
type orgViews struct {
	RankAverages   []schema.RankGroup    `json:"rank_averages"`
	GradeBreakdown []schema.GradeGroup   `json:"grade_breakdown"`
	TenureCurve    []schema.TenureGroup  `json:"tenure_curve"`
	RankBalance    []schema.BalanceEntry `json:"rank_balance"`
}

// PrintOrg outputs the organizational breakdowns, dispatching based on the output format configured.
func PrintOrg(report *schema.Report, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	views := orgViews{
		RankAverages:   report.RankAverages,
		GradeBreakdown: report.GradeBreakdown,
		TenureCurve:    report.TenureCurve,
		RankBalance:    report.RankBalance,
	}

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, views)
		}, "Wrote JSON")
	case schema.CSVOut:
		// The long-format balance view is the tidy table of this command.
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeBalanceCSV(w, report.RankBalance, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return errParquetUnsupported()
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeOrgTables(w, views, cfg, fmtFloat, duration)
		}, "Wrote table")
	}
}

// writeOrgTables generates and writes the human-readable breakdowns.
func writeOrgTables(w io.Writer, views orgViews, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	if err := renderRankAverages(w, views.RankAverages, fmtFloat); err != nil {
		return err
	}
	if err := renderGradeBreakdown(w, views.GradeBreakdown, cfg, fmtFloat); err != nil {
		return err
	}
	if err := renderTenureCurve(w, views.TenureCurve, fmtFloat); err != nil {
		return err
	}
	if err := renderRankBalance(w, views.RankBalance, fmtFloat); err != nil {
		return err
	}
	return writeDuration(w, duration)
}

// renderRankAverages writes the mean total score per rank, highest rank first.
func renderRankAverages(w io.Writer, groups []schema.RankGroup, fmtFloat func(float64) string) error {
	data := make([][]string, 0, len(groups))
	for _, g := range groups {
		data = append(data, []string{
			string(g.Rank),
			strconv.Itoa(g.Count),
			fmtFloat(g.MeanTotalScore),
		})
	}
	return renderSectionTable(w, "🏢 Mean score by rank", []string{"Rank", "Count", "Mean Score"}, data)
}

// renderGradeBreakdown writes headcount and mean score per grade, best grade first.
func renderGradeBreakdown(w io.Writer, groups []schema.GradeGroup, cfg *contract.Config, fmtFloat func(float64) string) error {
	data := make([][]string, 0, len(groups))
	for _, g := range groups {
		data = append(data, []string{
			gradeLabel(g.Grade, cfg),
			strconv.Itoa(g.Count),
			fmtFloat(g.MeanTotalScore),
		})
	}
	return renderSectionTable(w, "🎖️  Grade distribution", []string{"Grade", "Count", "Mean Score"}, data)
}

// renderTenureCurve writes the mean score per tenure bucket in bucket order.
func renderTenureCurve(w io.Writer, groups []schema.TenureGroup, fmtFloat func(float64) string) error {
	data := make([][]string, 0, len(groups))
	for _, g := range groups {
		data = append(data, []string{
			g.Bucket,
			strconv.Itoa(g.Count),
			fmtFloat(g.MeanTotalScore),
		})
	}
	return renderSectionTable(w, "⏳ Score by tenure", []string{"Tenure", "Count", "Mean Score"}, data)
}

// renderRankBalance writes the long-format competency/performance triples.
func renderRankBalance(w io.Writer, entries []schema.BalanceEntry, fmtFloat func(float64) string) error {
	data := make([][]string, 0, len(entries))
	for _, e := range entries {
		data = append(data, []string{
			string(e.Rank),
			string(e.Metric),
			fmtFloat(e.Score),
		})
	}
	return renderSectionTable(w, "⚖️  Competency vs performance by rank", []string{"Rank", "Metric", "Mean Score"}, data)
}

// writeBalanceCSV writes the rank balance view in CSV format.
func writeBalanceCSV(w io.Writer, entries []schema.BalanceEntry, fmtFloat func(float64) string) error {
	header := []string{"rank", "metric", "score"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, e := range entries {
			rec := []string{string(e.Rank), string(e.Metric), fmtFloat(e.Score)}
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

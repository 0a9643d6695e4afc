package outwriter

import (
	"fmt"
	"io"
	"time"

	"github.com/minjaelee/talentscope/internal/contract"
	"github.com/minjaelee/talentscope/schema"
)

// PrintReport outputs every derived view, dispatching based on the output format configured.
// The full report is a multi-table document, so CSV is rejected with a
// pointer to the section commands and the export command.
func PrintReport(report *schema.Report, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, report)
		}, "Wrote JSON")
	case schema.CSVOut:
		return fmt.Errorf("the full report has no single CSV shape: use a section command (summary, org, talent, growth, risk) or export")
	case schema.ParquetOut:
		return errParquetUnsupported()
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportTables(w, report, cfg, fmtFloat, duration)
		}, "Wrote table")
	}
}

// writeReportTables writes every section of the human-readable report
// in a fixed order: summary, organization, talent, risk, growth.
func writeReportTables(w io.Writer, report *schema.Report, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	meanGrowth := "n/a (no prior-year scores)"
	if report.Summary.MeanGrowth != nil {
		meanGrowth = deltaLabel(*report.Summary.MeanGrowth, cfg)
	}
	summaryData := [][]string{
		{"Headcount", fmt.Sprintf("%d", report.Summary.Headcount)},
		{"Mean total score", fmtFloat(report.Summary.MeanTotalScore)},
		{"Mean growth", meanGrowth},
		{"Mean tenure (years)", fmtFloat(report.Summary.MeanTenureYears)},
	}
	if err := renderSectionTable(w, "📊 Summary", []string{"Metric", "Value"}, summaryData); err != nil {
		return err
	}

	if err := renderRankAverages(w, report.RankAverages, fmtFloat); err != nil {
		return err
	}
	if err := renderGradeBreakdown(w, report.GradeBreakdown, cfg, fmtFloat); err != nil {
		return err
	}
	if err := renderTenureCurve(w, report.TenureCurve, fmtFloat); err != nil {
		return err
	}
	if err := renderRankBalance(w, report.RankBalance, fmtFloat); err != nil {
		return err
	}

	if err := renderCoreTalent(w, report.CoreTalent, cfg, fmtFloat); err != nil {
		return err
	}
	if err := renderTalentDensity(w, report.TalentDensity, fmtFloat); err != nil {
		return err
	}

	if err := renderDeptDispersion(w, report.DeptDispersion, cfg, fmtFloat); err != nil {
		return err
	}
	if err := renderNineBox(w, report.NineBox, cfg, fmtFloat); err != nil {
		return err
	}

	if report.Growth == nil {
		if _, err := fmt.Fprintln(w, "📈 Growth views unavailable: roster has no prior-year total score column"); err != nil {
			return err
		}
		return writeDuration(w, duration)
	}

	if _, err := fmt.Fprintf(w, "📈 Mean year-over-year delta: %s\n\n", deltaLabel(report.Growth.MeanDelta, cfg)); err != nil {
		return err
	}
	if err := renderTopImprovers(w, report.Growth.TopImprovers, cfg); err != nil {
		return err
	}
	if err := renderDeptGrowth(w, report.Growth.DeptGrowth, cfg); err != nil {
		return err
	}
	if err := renderShockDrops(w, report.Growth.ShockDrops, cfg, fmtFloat); err != nil {
		return err
	}
	return writeDuration(w, duration)
}

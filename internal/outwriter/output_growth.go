package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/minjaelee/talentscope/internal/contract"
	"github.com/minjaelee/talentscope/schema"
)

// PrintGrowth outputs the year-over-year views, dispatching based on the output format configured.
// Without prior-year scores the text view degrades to an inline notice;
// machine formats fail loudly instead.
func PrintGrowth(report *schema.Report, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if report.Growth == nil {
			return errGrowthUnavailable()
		}
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, report.Growth)
		}, "Wrote JSON")
	case schema.CSVOut:
		if report.Growth == nil {
			return errGrowthUnavailable()
		}
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeGrowthCSV(w, report.Growth, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return errParquetUnsupported()
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeGrowthTables(w, report.Growth, cfg, fmtFloat, duration)
		}, "Wrote table")
	}
}

// writeGrowthTables generates and writes the human-readable growth views.
func writeGrowthTables(w io.Writer, growth *schema.GrowthReport, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	if growth == nil {
		if _, err := fmt.Fprintln(w, "📈 Growth views unavailable: roster has no prior-year total score column"); err != nil {
			return err
		}
		return writeDuration(w, duration)
	}

	if _, err := fmt.Fprintf(w, "📈 Mean year-over-year delta: %s\n\n", deltaLabel(growth.MeanDelta, cfg)); err != nil {
		return err
	}
	if err := renderTopImprovers(w, growth.TopImprovers, cfg); err != nil {
		return err
	}
	if err := renderDeptGrowth(w, growth.DeptGrowth, cfg); err != nil {
		return err
	}
	if err := renderShockDrops(w, growth.ShockDrops, cfg, fmtFloat); err != nil {
		return err
	}
	return writeDuration(w, duration)
}

// renderTopImprovers writes the fixed-size view of the largest gains.
func renderTopImprovers(w io.Writer, improvers []schema.EmployeeRecord, cfg *contract.Config) error {
	data := make([][]string, 0, len(improvers))
	for i, rec := range improvers {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			displayName(rec, cfg),
			rec.Department,
			string(rec.Rank),
			deltaLabel(rec.ScoreDelta, cfg),
			deltaLabel(rec.GrowthPercent, cfg) + "%",
		})
	}
	return renderSectionTable(w, "🚀 Top improvers", []string{"#", "Name", "Department", "Rank", "Delta", "Growth"}, data)
}

// renderDeptGrowth writes the mean delta per department, weakest first.
func renderDeptGrowth(w io.Writer, groups []schema.DeptDelta, cfg *contract.Config) error {
	data := make([][]string, 0, len(groups))
	for _, g := range groups {
		data = append(data, []string{
			g.Department,
			strconv.Itoa(g.Count),
			deltaLabel(g.MeanDelta, cfg),
		})
	}
	return renderSectionTable(w, "🏢 Growth by department", []string{"Department", "Count", "Mean Delta"}, data)
}

// renderShockDrops writes rows whose score fell past the shock
// threshold, most severe first.
func renderShockDrops(w io.Writer, drops []schema.EmployeeRecord, cfg *contract.Config, fmtFloat func(float64) string) error {
	if len(drops) == 0 {
		_, err := fmt.Fprintf(w, "✅ No shock drops (delta <= %s)\n\n", fmtFloat(schema.ShockDropThreshold))
		return err
	}

	rows := capRows(drops, cfg.ResultLimit)
	data := make([][]string, 0, len(rows))
	for i, rec := range rows {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			displayName(rec, cfg),
			rec.Department,
			string(rec.Rank),
			fmtFloat(rec.PriorTotalScore),
			fmtFloat(rec.TotalScore),
			deltaLabel(rec.ScoreDelta, cfg),
		})
	}
	title := fmt.Sprintf("⚠️  Shock drops (delta <= %s)", fmtFloat(schema.ShockDropThreshold))
	if err := renderSectionTable(w, title, []string{"#", "Name", "Department", "Rank", "Prior", "Current", "Delta"}, data); err != nil {
		return err
	}

	if len(rows) < len(drops) {
		if _, err := fmt.Fprintf(w, "Showing top %d of %d shock drops\n\n", len(rows), len(drops)); err != nil {
			return err
		}
	}
	return nil
}

// writeGrowthCSV writes the notable growth rows in CSV format: the top
// improvers and every shock drop, largest gain first. The full roster
// with deltas is available through the export command.
func writeGrowthCSV(w io.Writer, growth *schema.GrowthReport, fmtFloat func(float64) string) error {
	header := []string{"name", "department", "position", "prior_total_score", "total_score", "delta", "growth_percent"}
	rows := make([]schema.EmployeeRecord, 0, len(growth.TopImprovers)+len(growth.ShockDrops))
	rows = append(rows, growth.TopImprovers...)
	rows = append(rows, growth.ShockDrops...)
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].ScoreDelta > rows[j].ScoreDelta
	})

	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, rec := range rows {
			row := []string{
				rec.Name,
				rec.Department,
				string(rec.Rank),
				fmtFloat(rec.PriorTotalScore),
				fmtFloat(rec.TotalScore),
				fmtFloat(rec.ScoreDelta),
				fmtFloat(rec.GrowthPercent),
			}
			if err := csvWriter.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

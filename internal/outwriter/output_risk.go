package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/minjaelee/talentscope/internal/contract"
	"github.com/minjaelee/talentscope/schema"
)

// riskViews bundles the risk views for JSON output. ShockDrops is nil
// when the roster carries no prior-year scores.
type riskViews struct {
	DeptDispersion []schema.DeptDispersion `json:"dept_dispersion"`
	NineBox        schema.NineBoxResult    `json:"nine_box"`
	ShockDrops     []schema.EmployeeRecord `json:"shock_drops,omitempty"`
}

// PrintRisk outputs the risk views, dispatching based on the output format configured.
func PrintRisk(report *schema.Report, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	views := riskViews{
		DeptDispersion: report.DeptDispersion,
		NineBox:        report.NineBox,
	}
	if report.Growth != nil {
		views.ShockDrops = report.Growth.ShockDrops
	}

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, views)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writePotentialRiskCSV(w, report.NineBox.PotentialRisk, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return errParquetUnsupported()
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRiskTables(w, views, cfg, fmtFloat, duration)
		}, "Wrote table")
	}
}

// writeRiskTables generates and writes the human-readable risk views.
func writeRiskTables(w io.Writer, views riskViews, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	if err := renderDeptDispersion(w, views.DeptDispersion, cfg, fmtFloat); err != nil {
		return err
	}
	if err := renderNineBox(w, views.NineBox, cfg, fmtFloat); err != nil {
		return err
	}
	if views.ShockDrops != nil {
		if err := renderShockDrops(w, views.ShockDrops, cfg, fmtFloat); err != nil {
			return err
		}
	}
	return writeDuration(w, duration)
}

// renderDeptDispersion writes the per-department score spread, widest
// first. A wide spread flags uneven evaluation within one department.
func renderDeptDispersion(w io.Writer, groups []schema.DeptDispersion, cfg *contract.Config, fmtFloat func(float64) string) error {
	rows := groups
	if cfg.ResultLimit > 0 && len(rows) > cfg.ResultLimit {
		rows = rows[:cfg.ResultLimit]
	}

	data := make([][]string, 0, len(rows))
	for _, g := range rows {
		data = append(data, []string{
			g.Department,
			strconv.Itoa(g.Count),
			fmtFloat(g.StdDev),
		})
	}
	return renderSectionTable(w, "📉 Score dispersion by department", []string{"Department", "Count", "Std Dev"}, data)
}

// renderNineBox writes the quadrant counts and the potential-risk rows.
func renderNineBox(w io.Writer, nb schema.NineBoxResult, cfg *contract.Config, fmtFloat func(float64) string) error {
	counts := make([][]string, 0, len(nb.Quadrants))
	for _, q := range nb.Quadrants {
		counts = append(counts, []string{string(q.Quadrant), strconv.Itoa(q.Count)})
	}
	title := fmt.Sprintf("🎯 Competency/performance matrix (means %s / %s)",
		fmtFloat(nb.CompetencyMean), fmtFloat(nb.PerformanceMean))
	if err := renderSectionTable(w, title, []string{"Quadrant", "Count"}, counts); err != nil {
		return err
	}

	if len(nb.PotentialRisk) == 0 {
		_, err := fmt.Fprintln(w, "✅ No employees in the potential-risk segment")
		return err
	}

	rows := capRows(nb.PotentialRisk, cfg.ResultLimit)
	data := make([][]string, 0, len(rows))
	for i, rec := range rows {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			displayName(rec, cfg),
			rec.Department,
			string(rec.Rank),
			fmtFloat(rec.CompetencyScore),
			fmtFloat(rec.PerformanceScore),
		})
	}
	if err := renderSectionTable(w, "⚠️  Potential-risk segment", []string{"#", "Name", "Department", "Rank", "Competency", "Performance"}, data); err != nil {
		return err
	}

	if len(rows) < len(nb.PotentialRisk) {
		if _, err := fmt.Fprintf(w, "Showing top %d of %d potential-risk employees\n\n", len(rows), len(nb.PotentialRisk)); err != nil {
			return err
		}
	}
	return nil
}

// writePotentialRiskCSV writes the potential-risk segment in CSV format.
func writePotentialRiskCSV(w io.Writer, rows []schema.EmployeeRecord, fmtFloat func(float64) string) error {
	header := []string{"employee_id", "name", "department", "position", "competency_score", "performance_score", "total_score", "grade"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, rec := range rows {
			row := []string{
				rec.EmployeeID,
				rec.Name,
				rec.Department,
				string(rec.Rank),
				fmtFloat(rec.CompetencyScore),
				fmtFloat(rec.PerformanceScore),
				fmtFloat(rec.TotalScore),
				string(rec.Grade),
			}
			if err := csvWriter.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

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

// talentViews bundles the talent views for JSON output.
type talentViews struct {
	CoreTalent    schema.CoreTalentResult `json:"core_talent"`
	TalentDensity []schema.DensityGroup   `json:"talent_density"`
}

// PrintTalent outputs the core talent views, dispatching based on the output format configured.
func PrintTalent(report *schema.Report, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	views := talentViews{
		CoreTalent:    report.CoreTalent,
		TalentDensity: report.TalentDensity,
	}

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, views)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCoreTalentCSV(w, report.CoreTalent, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return errParquetUnsupported()
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTalentTables(w, views, cfg, fmtFloat, duration)
		}, "Wrote table")
	}
}

// writeTalentTables generates and writes the human-readable talent views.
func writeTalentTables(w io.Writer, views talentViews, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	if err := renderCoreTalent(w, views.CoreTalent, cfg, fmtFloat); err != nil {
		return err
	}
	if err := renderTalentDensity(w, views.TalentDensity, fmtFloat); err != nil {
		return err
	}
	return writeDuration(w, duration)
}

// renderCoreTalent writes the top-decile selection, best first.
func renderCoreTalent(w io.Writer, result schema.CoreTalentResult, cfg *contract.Config, fmtFloat func(float64) string) error {
	rows := capRows(result.Rows, cfg.ResultLimit)

	data := make([][]string, 0, len(rows))
	for i, rec := range rows {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			displayName(rec, cfg),
			rec.Department,
			string(rec.Rank),
			fmtFloat(rec.TotalScore),
			gradeLabel(rec.Grade, cfg),
		})
	}

	title := fmt.Sprintf("🌟 Core talent (threshold %s)", fmtFloat(result.Threshold))
	if err := renderSectionTable(w, title, []string{"#", "Name", "Department", "Rank", "Score", "Grade"}, data); err != nil {
		return err
	}

	if len(rows) < len(result.Rows) {
		if _, err := fmt.Fprintf(w, "Showing top %d of %d qualifying employees\n\n", len(rows), len(result.Rows)); err != nil {
			return err
		}
	}
	return nil
}

// renderTalentDensity writes the per-department share of S/A grades.
// Departments without a single S/A row still appear with 0 percent.
func renderTalentDensity(w io.Writer, groups []schema.DensityGroup, fmtFloat func(float64) string) error {
	data := make([][]string, 0, len(groups))
	for _, g := range groups {
		data = append(data, []string{
			g.Department,
			strconv.Itoa(g.Count),
			strconv.Itoa(g.HighGradeCount),
			fmtFloat(g.Percent) + "%",
		})
	}
	return renderSectionTable(w, "🧲 Talent density (S/A share)", []string{"Department", "Count", "S/A", "Density"}, data)
}

// writeCoreTalentCSV writes the full core talent selection in CSV format.
func writeCoreTalentCSV(w io.Writer, result schema.CoreTalentResult, fmtFloat func(float64) string) error {
	header := []string{"rank", "employee_id", "name", "department", "position", "total_score", "grade", "threshold"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for i, rec := range result.Rows {
			row := []string{
				strconv.Itoa(i + 1),
				rec.EmployeeID,
				rec.Name,
				rec.Department,
				string(rec.Rank),
				fmtFloat(rec.TotalScore),
				string(rec.Grade),
				fmtFloat(result.Threshold),
			}
			if err := csvWriter.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

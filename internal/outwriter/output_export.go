package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/minjaelee/talentscope/internal/contract"
	"github.com/minjaelee/talentscope/internal/parquet"
	"github.com/minjaelee/talentscope/schema"
)

// PrintExport writes the normalized roster with its derived columns,
// dispatching based on the output format configured. Parquet needs a
// seekless file target, so it requires --output-file.
func PrintExport(roster *schema.Roster, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, roster.Records)
		}, "Wrote JSON")
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return fmt.Errorf("parquet export requires --output-file")
		}
		if err := parquet.WriteRosterParquet(roster.Records, cfg.OutputFile); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "💾 Wrote parquet to %s\n", cfg.OutputFile)
		return nil
	default:
		// CSV is the default here; a text table of the whole roster adds
		// nothing over the spreadsheet it came from.
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRosterCSV(w, roster.Records, fmtFloat)
		}, "Wrote CSV")
	}
}

// writeRosterCSV writes every roster row with derived columns in CSV format.
func writeRosterCSV(w io.Writer, records []schema.EmployeeRecord, fmtFloat func(float64) string) error {
	header := []string{
		"employee_id",
		"name",
		"department",
		"position",
		"tenure_years",
		"performance_score",
		"competency_score",
		"total_score",
		"prior_total_score",
		"grade",
		"score_delta",
		"growth_percent",
		"tenure_bucket",
	}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, rec := range records {
			row := []string{
				rec.EmployeeID,
				rec.Name,
				rec.Department,
				string(rec.Rank),
				fmtFloat(rec.TenureYears),
				fmtFloat(rec.PerformanceScore),
				fmtFloat(rec.CompetencyScore),
				fmtFloat(rec.TotalScore),
				fmtFloat(rec.PriorTotalScore),
				string(rec.Grade),
				fmtFloat(rec.ScoreDelta),
				fmtFloat(rec.GrowthPercent),
				rec.TenureBucket,
			}
			if err := csvWriter.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

package outwriter

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/minjaelee/talentscope/internal/contract"
	"github.com/minjaelee/talentscope/schema"
)

// PrintSummary outputs the headline numbers, dispatching based on the output format configured.
func PrintSummary(summary schema.SummaryStats, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, summary)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSummaryCSV(w, summary, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return errParquetUnsupported()
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSummaryTable(w, summary, cfg, fmtFloat, duration)
		}, "Wrote table")
	}
}

// writeSummaryTable generates and writes the human-readable summary.
func writeSummaryTable(w io.Writer, summary schema.SummaryStats, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	meanGrowth := "n/a (no prior-year scores)"
	if summary.MeanGrowth != nil {
		meanGrowth = deltaLabel(*summary.MeanGrowth, cfg)
	}

	data := [][]string{
		{"Headcount", strconv.Itoa(summary.Headcount)},
		{"Mean total score", fmtFloat(summary.MeanTotalScore)},
		{"Mean growth", meanGrowth},
		{"Mean tenure (years)", fmtFloat(summary.MeanTenureYears)},
	}
	if err := renderSectionTable(w, "📊 Summary", []string{"Metric", "Value"}, data); err != nil {
		return err
	}
	return writeDuration(w, duration)
}

// writeSummaryCSV writes the headline numbers as a single CSV row.
func writeSummaryCSV(w io.Writer, summary schema.SummaryStats, fmtFloat func(float64) string) error {
	header := []string{"headcount", "mean_total_score", "mean_growth", "mean_tenure_years"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		meanGrowth := ""
		if summary.MeanGrowth != nil {
			meanGrowth = fmtFloat(*summary.MeanGrowth)
		}
		return csvWriter.Write([]string{
			strconv.Itoa(summary.Headcount),
			fmtFloat(summary.MeanTotalScore),
			meanGrowth,
			fmtFloat(summary.MeanTenureYears),
		})
	})
}

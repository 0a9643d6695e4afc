package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/minjaelee/talentscope/internal/contract"
	"github.com/minjaelee/talentscope/schema"
)

// PrintMetricsDefinitions displays the formal definitions of all derived views.
// This is a static display that does not require a roster.
func PrintMetricsDefinitions(cfg *contract.Config) error {
	renderModel := buildMetricsRenderModel()

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, renderModel)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeMetricsCSV(w, renderModel)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return errParquetUnsupported()
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeMetricsText(w, renderModel)
		}, "Wrote text")
	}
}

// writeMetricsText displays metric definitions in human-readable text format.
func writeMetricsText(w io.Writer, renderModel *schema.MetricsRenderModel) error {
	if _, err := fmt.Fprintf(w, "📐 %s\n", renderModel.Title); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s\n\n", renderModel.Description); err != nil {
		return err
	}

	for _, m := range renderModel.Metrics {
		if _, err := fmt.Fprintf(w, "%s: %s\n", m.Name, m.Purpose); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "   Formula: %s\n", m.Formula); err != nil {
			return err
		}
		if m.Notes != "" {
			if _, err := fmt.Fprintf(w, "   Note: %s\n", m.Notes); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// writeMetricsCSV displays metric definitions in CSV format.
func writeMetricsCSV(w io.Writer, renderModel *schema.MetricsRenderModel) error {
	header := []string{"name", "purpose", "formula", "notes"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, m := range renderModel.Metrics {
			if err := csvWriter.Write([]string{m.Name, m.Purpose, m.Formula, m.Notes}); err != nil {
				return err
			}
		}
		return nil
	})
}

// buildMetricsRenderModel constructs the complete render model with all derived views.
func buildMetricsRenderModel() *schema.MetricsRenderModel {
	return &schema.MetricsRenderModel{
		Title:       "Talentscope Derived Views",
		Description: "All views are computed fresh from the uploaded roster on every run",
		Metrics: []schema.MetricDefinition{
			{
				Name:    "summary",
				Purpose: "Headline numbers for the whole roster",
				Formula: "headcount, mean(total_score), mean(delta), mean(tenure_years)",
				Notes:   "mean growth is omitted without prior-year scores",
			},
			{
				Name:    "rank-averages",
				Purpose: "Mean total score per rank",
				Formula: "group by rank; mean(total_score); fixed rank order, highest first",
				Notes:   "ranks outside the enumeration are dropped from this view",
			},
			{
				Name:    "grade-breakdown",
				Purpose: "Headcount and mean score per grade",
				Formula: "group by grade; count, mean(total_score); S A B C D order",
			},
			{
				Name:    "dispersion",
				Purpose: "Evaluation spread within each department",
				Formula: "group by department; sample stddev(total_score); widest first",
				Notes:   "departments with fewer than two rows report 0",
			},
			{
				Name:    "nine-box",
				Purpose: "Competency/performance segmentation against roster means",
				Formula: "Star, Potential-Risk, Performer, Developing vs mean(competency), mean(performance)",
			},
			{
				Name:    "core-talent",
				Purpose: "Top decile of the roster by total score",
				Formula: "total_score >= quantile(total_score, 0.9); best first",
			},
			{
				Name:    "talent-density",
				Purpose: "Share of S/A grades per department",
				Formula: "group by department; 100 * count(grade in {S,A}) / count",
				Notes:   "departments without an S/A row still appear with 0",
			},
			{
				Name:    "tenure-curve",
				Purpose: "Mean score across length of service",
				Formula: "bucket tenure into (0,2] (2,5] (5,10] (10,20] (20,100]; mean(total_score)",
			},
			{
				Name:    "rank-balance",
				Purpose: "Competency vs performance balance per rank",
				Formula: "group by rank; mean(competency_score), mean(performance_score) as long-format triples",
			},
			{
				Name:    "growth",
				Purpose: "Year-over-year movement of total scores",
				Formula: "delta = total_score - prior_total_score; growth% = 100 * delta / prior",
				Notes:   "rows with a zero prior score report 0 growth",
			},
			{
				Name:    "shock-drops",
				Purpose: "Rows whose score fell past the alarm threshold",
				Formula: "delta <= -10.0; most severe first",
				Notes:   "the boundary is inclusive",
			},
		},
	}
}

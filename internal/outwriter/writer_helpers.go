package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/minjaelee/talentscope/internal/contract"
	"github.com/minjaelee/talentscope/schema"
)

// writeWithFile handles the common pattern of opening a file, writing to it, and cleaning up.
// It accepts a writer function that takes an io.Writer and returns an error.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "💾 %s to %s\n", successMsg, outputFile)
	}
	return nil
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// writeCSVWithHeader handles the common pattern of creating a CSV writer,
// writing a header, and writing data rows.
func writeCSVWithHeader(w io.Writer, header []string, writeRows func(*csv.Writer) error) error {
	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	if err := writeRows(csvWriter); err != nil {
		return err
	}

	return nil
}

// createFormatters creates the common formatter closures used across multiple output types.
func createFormatters(precision int) (fmtFloat func(float64) string, intFmt string) {
	numFmt := "%.*f"
	intFmt = "%d"
	fmtFloat = func(v float64) string {
		return fmt.Sprintf(numFmt, precision, v)
	}
	return fmtFloat, intFmt
}

// gradeLabel returns the grade as a colored label when colors are on,
// plain text otherwise.
func gradeLabel(g schema.Grade, cfg *contract.Config) string {
	if !cfg.UseColors {
		return string(g)
	}
	return contract.GetColorGrade(g)
}

// deltaLabel returns a signed delta, colored by direction when colors
// are on.
func deltaLabel(delta float64, cfg *contract.Config) string {
	if !cfg.UseColors {
		return schema.FormatSigned(delta, cfg.Precision)
	}
	return contract.GetColorDelta(delta, cfg.Precision)
}

// capRows limits a row-level view to the configured result limit for
// display. Machine formats receive the full view.
func capRows(rows []schema.EmployeeRecord, limit int) []schema.EmployeeRecord {
	if limit > 0 && len(rows) > limit {
		return rows[:limit]
	}
	return rows
}

// displayName returns the best available identifier for one row.
// Rosters without a name column fall back to the employee ID.
func displayName(rec schema.EmployeeRecord, cfg *contract.Config) string {
	name := rec.Name
	if name == "" {
		name = rec.EmployeeID
	}
	if name == "" {
		name = "(unnamed)"
	}
	return contract.TruncateName(name, GetMaxTableNameWidth(cfg))
}

// writeDuration writes the closing timing line of a text view.
func writeDuration(w io.Writer, duration time.Duration) error {
	_, err := fmt.Fprintf(w, "Analysis completed in %v\n", duration)
	return err
}

// errParquetUnsupported rejects parquet output for view commands.
// Only the roster export writes parquet.
func errParquetUnsupported() error {
	return fmt.Errorf("parquet output is only supported by the export command")
}

// errGrowthUnavailable rejects machine-readable growth output when the
// roster carries no prior-year scores. The text renderer degrades to an
// inline notice instead.
func errGrowthUnavailable() error {
	return fmt.Errorf("growth views unavailable: roster has no prior-year total score column")
}

// Package parquet provides data structures and functions for exporting
// the normalized roster to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"io"
	"os"

	"github.com/minjaelee/talentscope/schema"
	"github.com/parquet-go/parquet-go"
)

// EmployeeRow is the flat export shape of one roster row with its
// derived columns. BI tools consume this file directly.
type EmployeeRow struct {
	// EmployeeID is the roster identifier (empty when the input had no ID column)
	EmployeeID string `parquet:"employee_id,snappy"`

	// Name is the display name of the employee
	Name string `parquet:"name,snappy"`

	// Department is the organizational unit
	Department string `parquet:"department,snappy"`

	// Rank is the canonical position name
	Rank string `parquet:"rank,snappy"`

	// TenureYears is the length of service in years
	TenureYears float64 `parquet:"tenure_years,snappy"`

	// PerformanceScore is the outcome-based evaluation score
	PerformanceScore float64 `parquet:"performance_score,snappy"`

	// CompetencyScore is the capability-based evaluation score
	CompetencyScore float64 `parquet:"competency_score,snappy"`

	// TotalScore is the overall evaluation score
	TotalScore float64 `parquet:"total_score,snappy"`

	// PriorTotalScore is last year's overall score (0 when absent)
	PriorTotalScore float64 `parquet:"prior_total_score,snappy"`

	// Grade is the overall evaluation grade
	Grade string `parquet:"grade,snappy"`

	// ScoreDelta is TotalScore minus PriorTotalScore
	ScoreDelta float64 `parquet:"score_delta,snappy"`

	// GrowthPercent is the relative year-over-year growth
	GrowthPercent float64 `parquet:"growth_percent,snappy"`

	// TenureBucket is the fixed tenure interval label (empty when out of range)
	TenureBucket string `parquet:"tenure_bucket,snappy"`
}

// WriteRosterParquet writes the roster rows to a Parquet file.
func WriteRosterParquet(records []schema.EmployeeRecord, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return WriteRoster(records, file)
}

// WriteRoster writes the roster rows to any writer in Parquet format.
func WriteRoster(records []schema.EmployeeRecord, w io.Writer) error {
	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the EmployeeRow struct tags
	writer := parquet.NewGenericWriter[EmployeeRow](w)

	if _, err := writer.Write(ConvertRecords(records)); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

// ConvertRecords converts schema.EmployeeRecord to EmployeeRow for Parquet export.
func ConvertRecords(records []schema.EmployeeRecord) []EmployeeRow {
	result := make([]EmployeeRow, len(records))
	for i, record := range records {
		result[i] = EmployeeRow{
			EmployeeID:       record.EmployeeID,
			Name:             record.Name,
			Department:       record.Department,
			Rank:             string(record.Rank),
			TenureYears:      record.TenureYears,
			PerformanceScore: record.PerformanceScore,
			CompetencyScore:  record.CompetencyScore,
			TotalScore:       record.TotalScore,
			PriorTotalScore:  record.PriorTotalScore,
			Grade:            string(record.Grade),
			ScoreDelta:       record.ScoreDelta,
			GrowthPercent:    record.GrowthPercent,
			TenureBucket:     record.TenureBucket,
		}
	}
	return result
}

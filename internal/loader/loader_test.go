package loader

import (
	"bytes"
	"math"
	"path/filepath"
	"testing"

	"github.com/minjaelee/talentscope/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// buildWorkbook writes a one-sheet workbook from a raw grid.
func buildWorkbook(t *testing.T, rows [][]string) *excelize.File {
	t.Helper()
	file := excelize.NewFile()
	sheet := file.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		cells := make([]any, len(row))
		for j, v := range row {
			cells[j] = v
		}
		require.NoError(t, file.SetSheetRow(sheet, cell, &cells))
	}
	return file
}

// TestLoadRoster tests the xlsx path end to end through a real workbook.
func TestLoadRoster(t *testing.T) {
	file := buildWorkbook(t, [][]string{
		{"Department", "Rank", "Total Score", "Name"},
		{"Sales", "Manager", "80.5", "Kim"},
		{"HR", "Staff", "71.2", "Lee"},
	})
	path := filepath.Join(t.TempDir(), "roster.xlsx")
	require.NoError(t, file.SaveAs(path))

	roster, err := LoadRoster(path)
	require.NoError(t, err)
	require.Len(t, roster.Records, 2)
	assert.Equal(t, schema.Manager, roster.Records[0].Rank)
	assert.InDelta(t, 80.5, roster.Records[0].TotalScore, 0.0001)
}

// TestLoadRosterFromReader tests the in-memory upload path.
func TestLoadRosterFromReader(t *testing.T) {
	file := buildWorkbook(t, [][]string{
		{"부서", "직급", "총점"},
		{"영업", "과장", "77.7"},
	})
	var buf bytes.Buffer
	require.NoError(t, file.Write(&buf))

	roster, err := LoadRosterFromReader(&buf)
	require.NoError(t, err)
	require.Len(t, roster.Records, 1)
	assert.Equal(t, schema.Manager, roster.Records[0].Rank)
	assert.InDelta(t, 77.7, roster.Records[0].TotalScore, 0.0001)
}

// TestLoadRosterMissingFile tests the open error path.
func TestLoadRosterMissingFile(t *testing.T) {
	_, err := LoadRoster(filepath.Join(t.TempDir(), "absent.xlsx"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open roster")
}

// TestParseRows tests roster parsing from a raw grid.
func TestParseRows(t *testing.T) {
	rows := [][]string{
		{"Employee ID", "Name", "Department", "Rank", "Tenure Years", "Performance Score", "Competency Score", "Total Score", "Prior Total Score", "Overall Grade"},
		{"E001", "Kim", "Sales", "Manager", "4.5", "82.3", "78.1", "80.2", "75.0", "a"},
		{"E002", "Lee", "HR", "Staff", "1.2", "70.0", "71.5", "70.8", "", "B"},
	}

	roster, err := ParseRows(rows)
	require.NoError(t, err)
	require.Len(t, roster.Records, 2)

	first := roster.Records[0]
	assert.Equal(t, "E001", first.EmployeeID)
	assert.Equal(t, "Sales", first.Department)
	assert.Equal(t, schema.Manager, first.Rank)
	assert.InDelta(t, 80.2, first.TotalScore, 0.0001)
	assert.Equal(t, schema.GradeA, first.Grade)

	// Missing prior cell coerces to 0, but the column itself is present.
	assert.Zero(t, roster.Records[1].PriorTotalScore)
	assert.True(t, roster.Has(schema.ColPriorScore))
	assert.True(t, roster.Has(schema.ColGrade))
}

// TestParseRowsKoreanHeaders tests the original roster header spellings.
func TestParseRowsKoreanHeaders(t *testing.T) {
	rows := [][]string{
		{"사번", "성명", "부서", "직급", "근무기간", "성과점수", "역량점수", "총점", "전년도총점", "종합등급"},
		{"1001", "김철수", "영업", "부장", "15.5", "88.4", "90.2", "89.1", "85.3", "S"},
		{"1002", "이영희", "인사", "대리", "3.0", "76.2", "74.9", "75.5", "77.0", "B"},
	}

	roster, err := ParseRows(rows)
	require.NoError(t, err)
	require.Len(t, roster.Records, 2)

	assert.Equal(t, schema.SeniorDirector, roster.Records[0].Rank)
	assert.Equal(t, schema.AssistantManager, roster.Records[1].Rank)
	assert.Equal(t, schema.GradeS, roster.Records[0].Grade)
	assert.InDelta(t, 89.1, roster.Records[0].TotalScore, 0.0001)
}

// TestParseRowsMissingRequiredColumn tests the fatal validation error.
func TestParseRowsMissingRequiredColumn(t *testing.T) {
	rows := [][]string{
		{"Name", "Department", "Grade"},
		{"Kim", "Sales", "A"},
	}

	_, err := ParseRows(rows)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rank")
	assert.Contains(t, err.Error(), "total_score")
}

// TestParseRowsOptionalColumnsAbsent verifies degraded-mode bookkeeping.
func TestParseRowsOptionalColumnsAbsent(t *testing.T) {
	rows := [][]string{
		{"Department", "Rank", "Total Score"},
		{"Sales", "Staff", "70.5"},
	}

	roster, err := ParseRows(rows)
	require.NoError(t, err)
	assert.False(t, roster.Has(schema.ColPriorScore))
	assert.False(t, roster.Has(schema.ColGrade))
	assert.True(t, roster.Has(schema.ColTotalScore))
}

// TestParseRowsCoercion verifies that every numeric cell normalizes to
// a finite float, with junk coerced to 0.
func TestParseRowsCoercion(t *testing.T) {
	rows := [][]string{
		{"Department", "Rank", "Total Score", "Tenure Years", "Performance Score"},
		{"Sales", "Staff", "n/a", "-", ""},
		{"Sales", "Staff", "88.8"}, // short row: remaining cells missing
	}

	roster, err := ParseRows(rows)
	require.NoError(t, err)

	for _, rec := range roster.Records {
		for _, v := range []float64{rec.TotalScore, rec.TenureYears, rec.PerformanceScore, rec.CompetencyScore, rec.PriorTotalScore} {
			assert.False(t, math.IsNaN(v))
			assert.False(t, math.IsInf(v, 0))
		}
	}
	assert.Zero(t, roster.Records[0].TotalScore)
	assert.InDelta(t, 88.8, roster.Records[1].TotalScore, 0.0001)
	assert.Zero(t, roster.Records[1].TenureYears)
}

// TestParseRowsEmpty tests the empty-sheet error.
func TestParseRowsEmpty(t *testing.T) {
	_, err := ParseRows(nil)
	assert.Error(t, err)
}

// TestNormalizeHeader tests separator and case folding.
func TestNormalizeHeader(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{raw: " Total_Score ", expected: "total score"},
		{raw: "prior-year total score", expected: "prior year total score"},
		{raw: "DEPARTMENT", expected: "department"},
		{raw: "총점", expected: "총점"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalizeHeader(tt.raw))
		})
	}
}

// TestNormalizeRank tests rank canonicalization.
func TestNormalizeRank(t *testing.T) {
	assert.Equal(t, schema.SeniorDirector, normalizeRank("부장"))
	assert.Equal(t, schema.Manager, normalizeRank("  manager "))
	assert.Equal(t, schema.Rank("Contractor"), normalizeRank("Contractor"))
}

package outwriter

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/minjaelee/talentscope/internal/contract"
	"github.com/minjaelee/talentscope/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *contract.Config {
	return &contract.Config{
		ResultLimit: contract.DefaultResultLimit,
		Precision:   contract.DefaultPrecision,
		Output:      schema.TextOut,
		Width:       100,
		UseColors:   false,
	}
}

func TestCreateFormatters(t *testing.T) {
	fmtFloat, intFmt := createFormatters(2)
	assert.Equal(t, "3.14", fmtFloat(3.14159))
	assert.Equal(t, "%d", intFmt)

	fmtFloat, _ = createFormatters(0)
	assert.Equal(t, "3", fmtFloat(3.14159))
}

func TestCapRows(t *testing.T) {
	rows := make([]schema.EmployeeRecord, 10)

	assert.Len(t, capRows(rows, 3), 3)
	assert.Len(t, capRows(rows, 25), 10)
	assert.Len(t, capRows(rows, 0), 10)
}

func TestGradeLabelPlain(t *testing.T) {
	cfg := testConfig()
	assert.Equal(t, "S", gradeLabel(schema.GradeS, cfg))
	assert.Equal(t, "X", gradeLabel(schema.Grade("X"), cfg))
}

func TestDeltaLabelPlain(t *testing.T) {
	cfg := testConfig()
	assert.Equal(t, "+3.50", deltaLabel(3.5, cfg))
	assert.Equal(t, "-3.50", deltaLabel(-3.5, cfg))
}

func TestDisplayNameFallbacks(t *testing.T) {
	cfg := testConfig()

	assert.Equal(t, "Kim", displayName(schema.EmployeeRecord{Name: "Kim"}, cfg))
	assert.Equal(t, "E042", displayName(schema.EmployeeRecord{EmployeeID: "E042"}, cfg))
	assert.Equal(t, "(unnamed)", displayName(schema.EmployeeRecord{}, cfg))
}

func TestWriteSummaryCSV(t *testing.T) {
	fmtFloat, _ := createFormatters(2)
	growth := 1.25
	summary := schema.SummaryStats{
		Headcount:       42,
		MeanTotalScore:  78.5,
		MeanGrowth:      &growth,
		MeanTenureYears: 6.2,
	}

	var buf bytes.Buffer
	require.NoError(t, writeSummaryCSV(&buf, summary, fmtFloat))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "headcount,mean_total_score,mean_growth,mean_tenure_years", lines[0])
	assert.Equal(t, "42,78.50,1.25,6.20", lines[1])
}

func TestWriteSummaryCSVNoGrowth(t *testing.T) {
	fmtFloat, _ := createFormatters(2)
	summary := schema.SummaryStats{Headcount: 1, MeanTotalScore: 70}

	var buf bytes.Buffer
	require.NoError(t, writeSummaryCSV(&buf, summary, fmtFloat))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	// Empty growth cell, not a zero.
	assert.Equal(t, "1,70.00,,0.00", lines[1])
}

func TestWriteSummaryTable(t *testing.T) {
	cfg := testConfig()
	fmtFloat, _ := createFormatters(cfg.Precision)
	summary := schema.SummaryStats{Headcount: 3, MeanTotalScore: 70.5, MeanTenureYears: 4.1}

	var buf bytes.Buffer
	require.NoError(t, writeSummaryTable(&buf, summary, cfg, fmtFloat, time.Millisecond))

	out := buf.String()
	assert.Contains(t, out, "Headcount")
	assert.Contains(t, out, "70.50")
	assert.Contains(t, out, "n/a (no prior-year scores)")
	assert.Contains(t, out, "Analysis completed in")
}

func TestWriteBalanceCSV(t *testing.T) {
	fmtFloat, _ := createFormatters(1)
	entries := []schema.BalanceEntry{
		{Rank: schema.Manager, Metric: schema.CompetencyMetric, Score: 80.25},
		{Rank: schema.Manager, Metric: schema.PerformanceMetric, Score: 75.0},
	}

	var buf bytes.Buffer
	require.NoError(t, writeBalanceCSV(&buf, entries, fmtFloat))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "rank,metric,score", lines[0])
	assert.Equal(t, "Manager,competency,80.2", lines[1])
	assert.Equal(t, "Manager,performance,75.0", lines[2])
}

func TestWriteGrowthTablesDegraded(t *testing.T) {
	cfg := testConfig()
	fmtFloat, _ := createFormatters(cfg.Precision)

	var buf bytes.Buffer
	require.NoError(t, writeGrowthTables(&buf, nil, cfg, fmtFloat, time.Millisecond))

	assert.Contains(t, buf.String(), "Growth views unavailable")
}

func TestPrintGrowthMachineFormatsFailWithoutPrior(t *testing.T) {
	report := &schema.Report{}

	cfg := testConfig()
	cfg.Output = schema.JSONOut
	assert.Error(t, PrintGrowth(report, cfg, time.Millisecond))

	cfg.Output = schema.CSVOut
	assert.Error(t, PrintGrowth(report, cfg, time.Millisecond))
}

func TestPrintSummaryRejectsParquet(t *testing.T) {
	cfg := testConfig()
	cfg.Output = schema.ParquetOut

	err := PrintSummary(schema.SummaryStats{}, cfg, time.Millisecond)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "export")
}

func TestPrintReportRejectsCSV(t *testing.T) {
	cfg := testConfig()
	cfg.Output = schema.CSVOut

	err := PrintReport(&schema.Report{}, cfg, time.Millisecond)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "section command")
}

func TestRenderCoreTalentCapped(t *testing.T) {
	cfg := testConfig()
	cfg.ResultLimit = 2
	fmtFloat, _ := createFormatters(cfg.Precision)

	result := schema.CoreTalentResult{
		Threshold: 90.1,
		Rows: []schema.EmployeeRecord{
			{Name: "alice", TotalScore: 99},
			{Name: "bob", TotalScore: 95},
			{Name: "carol", TotalScore: 91},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, renderCoreTalent(&buf, result, cfg, fmtFloat))

	out := buf.String()
	assert.Contains(t, out, "Showing top 2 of 3")
	assert.Contains(t, out, "alice")
	assert.NotContains(t, out, "carol")
}

func TestWriteRosterCSV(t *testing.T) {
	fmtFloat, _ := createFormatters(2)
	records := []schema.EmployeeRecord{
		{
			EmployeeID: "E001",
			Name:       "Kim",
			Department: "Sales",
			Rank:       schema.Manager,
			TotalScore: 80.2,
			Grade:      schema.GradeA,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, writeRosterCSV(&buf, records, fmtFloat))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "employee_id,name,department,position"))
	assert.Contains(t, lines[1], "E001,Kim,Sales,Manager")
}

func TestWriteMetricsText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeMetricsText(&buf, buildMetricsRenderModel()))

	out := buf.String()
	assert.Contains(t, out, "core-talent")
	assert.Contains(t, out, "shock-drops")
	assert.Contains(t, out, "quantile(total_score, 0.9)")
}

func TestBuildMetricsRenderModel(t *testing.T) {
	model := buildMetricsRenderModel()
	assert.NotNil(t, model)
	assert.Len(t, model.Metrics, 11)

	for _, m := range model.Metrics {
		assert.NotEmpty(t, m.Name)
		assert.NotEmpty(t, m.Purpose)
		assert.NotEmpty(t, m.Formula)
	}
}

func TestGetMaxTableNameWidth(t *testing.T) {
	cfg := testConfig()

	cfg.Width = 200
	assert.Equal(t, 30, GetMaxTableNameWidth(cfg))

	cfg.Width = 65
	assert.Equal(t, 8, GetMaxTableNameWidth(cfg))

	cfg.Width = 80
	assert.Equal(t, 20, GetMaxTableNameWidth(cfg))
}

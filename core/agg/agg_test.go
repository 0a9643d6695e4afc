package agg

import (
	"math/rand"
	"testing"

	"github.com/minjaelee/talentscope/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(dept string, rank schema.Rank, total float64) schema.EmployeeRecord {
	return schema.EmployeeRecord{Department: dept, Rank: rank, TotalScore: total}
}

// TestMeanTotalByRank verifies group means and the enumeration order.
func TestMeanTotalByRank(t *testing.T) {
	records := []schema.EmployeeRecord{
		rec("Sales", schema.Staff, 70),
		rec("Sales", schema.SeniorDirector, 90),
		rec("HR", schema.Staff, 80),
		rec("HR", schema.Manager, 85),
	}

	groups := MeanTotalByRank(records)
	require.Len(t, groups, 3)

	assert.Equal(t, schema.SeniorDirector, groups[0].Rank)
	assert.InDelta(t, 90.0, groups[0].MeanTotalScore, 0.0001)
	assert.Equal(t, schema.Manager, groups[1].Rank)
	assert.Equal(t, schema.Staff, groups[2].Rank)
	assert.InDelta(t, 75.0, groups[2].MeanTotalScore, 0.0001)
	assert.Equal(t, 2, groups[2].Count)
}

// TestMeanTotalByRankDropsUnknown verifies that ranks outside the
// enumeration never appear in the ordered view.
func TestMeanTotalByRankDropsUnknown(t *testing.T) {
	records := []schema.EmployeeRecord{
		rec("Sales", schema.Rank("Contractor"), 99),
		rec("Sales", schema.Staff, 70),
	}

	groups := MeanTotalByRank(records)
	require.Len(t, groups, 1)
	assert.Equal(t, schema.Staff, groups[0].Rank)
}

// TestOrderInvariantUnderShuffle verifies that group order follows the
// enumeration regardless of input row order.
func TestOrderInvariantUnderShuffle(t *testing.T) {
	records := []schema.EmployeeRecord{
		{Department: "A", Rank: schema.Staff, Grade: schema.GradeD, TotalScore: 60},
		{Department: "A", Rank: schema.AssistantManager, Grade: schema.GradeC, TotalScore: 70},
		{Department: "A", Rank: schema.Manager, Grade: schema.GradeB, TotalScore: 80},
		{Department: "A", Rank: schema.DeputyDirector, Grade: schema.GradeA, TotalScore: 90},
		{Department: "A", Rank: schema.SeniorDirector, Grade: schema.GradeS, TotalScore: 95},
	}

	rng := rand.New(rand.NewSource(7))
	for range 5 {
		rng.Shuffle(len(records), func(i, j int) {
			records[i], records[j] = records[j], records[i]
		})

		ranks := MeanTotalByRank(records)
		require.Len(t, ranks, 5)
		for i, rank := range schema.RankOrder {
			assert.Equal(t, rank, ranks[i].Rank)
		}

		grades := GradeBreakdown(records)
		require.Len(t, grades, 5)
		for i, grade := range schema.GradeOrder {
			assert.Equal(t, grade, grades[i].Grade)
		}
	}
}

// TestGradeBreakdown verifies counts and means per grade.
func TestGradeBreakdown(t *testing.T) {
	records := []schema.EmployeeRecord{
		{Department: "A", Grade: schema.GradeA, TotalScore: 88},
		{Department: "A", Grade: schema.GradeA, TotalScore: 92},
		{Department: "A", Grade: schema.GradeC, TotalScore: 60},
		{Department: "A", Grade: schema.Grade(""), TotalScore: 10}, // missing grade dropped
	}

	groups := GradeBreakdown(records)
	require.Len(t, groups, 2)
	assert.Equal(t, schema.GradeA, groups[0].Grade)
	assert.Equal(t, 2, groups[0].Count)
	assert.InDelta(t, 90.0, groups[0].MeanTotalScore, 0.0001)
	assert.Equal(t, schema.GradeC, groups[1].Grade)
}

// TestDeptScoreDispersion verifies sample stddev per department and the
// descending sort.
func TestDeptScoreDispersion(t *testing.T) {
	records := []schema.EmployeeRecord{
		rec("Flat", schema.Staff, 80),
		rec("Flat", schema.Staff, 80),
		rec("Spread", schema.Staff, 60),
		rec("Spread", schema.Staff, 100),
		rec("Solo", schema.Staff, 75),
	}

	result := DeptScoreDispersion(records)
	require.Len(t, result, 3)

	assert.Equal(t, "Spread", result[0].Department)
	assert.InDelta(t, 28.2843, result[0].StdDev, 0.001)
	assert.Equal(t, "Flat", result[1].Department)
	assert.Zero(t, result[1].StdDev)
	// A single-row department has no defined spread and reports 0.
	assert.Equal(t, "Solo", result[2].Department)
	assert.Zero(t, result[2].StdDev)
}

// TestTalentDensity verifies the S/A share per department.
func TestTalentDensity(t *testing.T) {
	records := make([]schema.EmployeeRecord, 0, 24)
	// Engineering: 2 of 4 high grades.
	records = append(records,
		schema.EmployeeRecord{Department: "Engineering", Grade: schema.GradeS},
		schema.EmployeeRecord{Department: "Engineering", Grade: schema.GradeA},
		schema.EmployeeRecord{Department: "Engineering", Grade: schema.GradeB},
		schema.EmployeeRecord{Department: "Engineering", Grade: schema.GradeC},
	)
	// Support: 20 rows, none S/A. Must still appear with 0%.
	for range 20 {
		records = append(records, schema.EmployeeRecord{Department: "Support", Grade: schema.GradeB})
	}

	result := TalentDensity(records)
	require.Len(t, result, 2)

	assert.Equal(t, "Engineering", result[0].Department)
	assert.InDelta(t, 50.0, result[0].Percent, 0.0001)
	assert.Equal(t, "Support", result[1].Department)
	assert.Zero(t, result[1].Percent)
	assert.Equal(t, 20, result[1].Count)
}

// TestTenureCurve verifies bucket assignment and bucket order.
func TestTenureCurve(t *testing.T) {
	records := []schema.EmployeeRecord{
		{Department: "A", TenureYears: 1.5, TotalScore: 70},
		{Department: "A", TenureYears: 2.0, TotalScore: 80}, // boundary stays Entry
		{Department: "A", TenureYears: 2.01, TotalScore: 90},
		{Department: "A", TenureYears: 25, TotalScore: 85},
		{Department: "A", TenureYears: 0, TotalScore: 999}, // no bucket
	}

	groups := TenureCurve(records)
	require.Len(t, groups, 3)

	assert.Equal(t, "Entry", groups[0].Bucket)
	assert.Equal(t, 2, groups[0].Count)
	assert.InDelta(t, 75.0, groups[0].MeanTotalScore, 0.0001)
	assert.Equal(t, "Junior", groups[1].Bucket)
	assert.Equal(t, "20+ years", groups[2].Bucket)
}

// TestRankBalance verifies the long-format triples and their order.
func TestRankBalance(t *testing.T) {
	records := []schema.EmployeeRecord{
		{Department: "A", Rank: schema.Staff, CompetencyScore: 60, PerformanceScore: 70},
		{Department: "A", Rank: schema.Staff, CompetencyScore: 80, PerformanceScore: 90},
		{Department: "A", Rank: schema.SeniorDirector, CompetencyScore: 95, PerformanceScore: 94},
	}

	entries := RankBalance(records)
	require.Len(t, entries, 4)

	assert.Equal(t, schema.SeniorDirector, entries[0].Rank)
	assert.Equal(t, schema.CompetencyMetric, entries[0].Metric)
	assert.InDelta(t, 95.0, entries[0].Score, 0.0001)
	assert.Equal(t, schema.PerformanceMetric, entries[1].Metric)

	assert.Equal(t, schema.Staff, entries[2].Rank)
	assert.InDelta(t, 70.0, entries[2].Score, 0.0001)
	assert.InDelta(t, 80.0, entries[3].Score, 0.0001)
}

// TestDeptMeanDelta verifies the ascending per-department growth sort.
func TestDeptMeanDelta(t *testing.T) {
	records := []schema.EmployeeRecord{
		{Department: "Up", ScoreDelta: 5},
		{Department: "Up", ScoreDelta: 7},
		{Department: "Down", ScoreDelta: -4},
	}

	result := DeptMeanDelta(records)
	require.Len(t, result, 2)
	assert.Equal(t, "Down", result[0].Department)
	assert.InDelta(t, -4.0, result[0].MeanDelta, 0.0001)
	assert.Equal(t, "Up", result[1].Department)
	assert.InDelta(t, 6.0, result[1].MeanDelta, 0.0001)
}

// Package agg has grouping and aggregation logic for evaluation rosters.
package agg

import (
	"sort"

	"github.com/minjaelee/talentscope/core/stats"
	"github.com/minjaelee/talentscope/schema"
)

// meanAccumulator collects values for a single group key.
type meanAccumulator struct {
	sum   float64
	count int
}

func (m *meanAccumulator) add(v float64) {
	m.sum += v
	m.count++
}

func (m *meanAccumulator) mean() float64 {
	if m.count == 0 {
		return 0
	}
	return m.sum / float64(m.count)
}

// MeanTotalByRank computes the mean total score per rank. Groups follow
// the fixed rank enumeration order, highest rank first. Ranks outside
// the enumeration and ranks with no rows are dropped from the view.
func MeanTotalByRank(records []schema.EmployeeRecord) []schema.RankGroup {
	acc := make(map[schema.Rank]*meanAccumulator)
	for _, rec := range records {
		if !schema.IsKnownRank(rec.Rank) {
			continue
		}
		if acc[rec.Rank] == nil {
			acc[rec.Rank] = &meanAccumulator{}
		}
		acc[rec.Rank].add(rec.TotalScore)
	}

	groups := make([]schema.RankGroup, 0, len(acc))
	for _, rank := range schema.RankOrder {
		a, ok := acc[rank]
		if !ok {
			continue
		}
		groups = append(groups, schema.RankGroup{
			Rank:           rank,
			Count:          a.count,
			MeanTotalScore: a.mean(),
		})
	}
	return groups
}

// GradeBreakdown computes headcount and mean total score per grade,
// ordered S through D. Grades outside the enumeration are dropped.
func GradeBreakdown(records []schema.EmployeeRecord) []schema.GradeGroup {
	acc := make(map[schema.Grade]*meanAccumulator)
	for _, rec := range records {
		if !schema.IsKnownGrade(rec.Grade) {
			continue
		}
		if acc[rec.Grade] == nil {
			acc[rec.Grade] = &meanAccumulator{}
		}
		acc[rec.Grade].add(rec.TotalScore)
	}

	groups := make([]schema.GradeGroup, 0, len(acc))
	for _, grade := range schema.GradeOrder {
		a, ok := acc[grade]
		if !ok {
			continue
		}
		groups = append(groups, schema.GradeGroup{
			Grade:          grade,
			Count:          a.count,
			MeanTotalScore: a.mean(),
		})
	}
	return groups
}

// DeptScoreDispersion computes the sample standard deviation of total
// scores per department, highest dispersion first. A wide spread means
// the department mixes very strong and very weak results.
func DeptScoreDispersion(records []schema.EmployeeRecord) []schema.DeptDispersion {
	byDept := make(map[string][]float64)
	for _, rec := range records {
		byDept[rec.Department] = append(byDept[rec.Department], rec.TotalScore)
	}

	result := make([]schema.DeptDispersion, 0, len(byDept))
	for dept, scores := range byDept {
		result = append(result, schema.DeptDispersion{
			Department: dept,
			Count:      len(scores),
			StdDev:     stats.SampleStdDev(scores),
		})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].StdDev != result[j].StdDev {
			return result[i].StdDev > result[j].StdDev
		}
		return result[i].Department < result[j].Department
	})
	return result
}

// TalentDensity computes the share of S/A grades per department,
// highest share first. Every department appears: one without a single
// S/A row reports 0 percent rather than being absent.
func TalentDensity(records []schema.EmployeeRecord) []schema.DensityGroup {
	total := make(map[string]int)
	high := make(map[string]int)
	for _, rec := range records {
		total[rec.Department]++
		if schema.IsHighGrade(rec.Grade) {
			high[rec.Department]++
		}
	}

	result := make([]schema.DensityGroup, 0, len(total))
	for dept, count := range total {
		h := high[dept]
		result = append(result, schema.DensityGroup{
			Department:     dept,
			Count:          count,
			HighGradeCount: h,
			Percent:        float64(h) / float64(count) * 100,
		})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Percent != result[j].Percent {
			return result[i].Percent > result[j].Percent
		}
		return result[i].Department < result[j].Department
	})
	return result
}

// TenureCurve computes the mean total score per tenure bucket, in the
// fixed bucket order. Rows whose tenure falls in no bucket are left
// out, as are buckets with no rows.
func TenureCurve(records []schema.EmployeeRecord) []schema.TenureGroup {
	acc := make(map[string]*meanAccumulator)
	for _, rec := range records {
		bucket, ok := schema.BucketForTenure(rec.TenureYears)
		if !ok {
			continue
		}
		if acc[bucket] == nil {
			acc[bucket] = &meanAccumulator{}
		}
		acc[bucket].add(rec.TotalScore)
	}

	groups := make([]schema.TenureGroup, 0, len(acc))
	for _, b := range schema.TenureBuckets {
		a, ok := acc[b.Label]
		if !ok {
			continue
		}
		groups = append(groups, schema.TenureGroup{
			Bucket:         b.Label,
			Count:          a.count,
			MeanTotalScore: a.mean(),
		})
	}
	return groups
}

// RankBalance computes the mean competency and performance score per
// rank and reshapes them into long-format (rank, metric, score) triples
// for grouped-bar presentation. Ranks follow the enumeration order and
// each present rank emits the competency triple before the performance
// one.
func RankBalance(records []schema.EmployeeRecord) []schema.BalanceEntry {
	comp := make(map[schema.Rank]*meanAccumulator)
	perf := make(map[schema.Rank]*meanAccumulator)
	for _, rec := range records {
		if !schema.IsKnownRank(rec.Rank) {
			continue
		}
		if comp[rec.Rank] == nil {
			comp[rec.Rank] = &meanAccumulator{}
			perf[rec.Rank] = &meanAccumulator{}
		}
		comp[rec.Rank].add(rec.CompetencyScore)
		perf[rec.Rank].add(rec.PerformanceScore)
	}

	entries := make([]schema.BalanceEntry, 0, 2*len(comp))
	for _, rank := range schema.RankOrder {
		c, ok := comp[rank]
		if !ok {
			continue
		}
		entries = append(entries,
			schema.BalanceEntry{Rank: rank, Metric: schema.CompetencyMetric, Score: c.mean()},
			schema.BalanceEntry{Rank: rank, Metric: schema.PerformanceMetric, Score: perf[rank].mean()},
		)
	}
	return entries
}

// DeptMeanDelta computes the mean year-over-year score delta per
// department, ascending, so the weakest-growing department comes first.
func DeptMeanDelta(records []schema.EmployeeRecord) []schema.DeptDelta {
	acc := make(map[string]*meanAccumulator)
	for _, rec := range records {
		if acc[rec.Department] == nil {
			acc[rec.Department] = &meanAccumulator{}
		}
		acc[rec.Department].add(rec.ScoreDelta)
	}

	result := make([]schema.DeptDelta, 0, len(acc))
	for dept, a := range acc {
		result = append(result, schema.DeptDelta{
			Department: dept,
			Count:      a.count,
			MeanDelta:  a.mean(),
		})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].MeanDelta != result[j].MeanDelta {
			return result[i].MeanDelta < result[j].MeanDelta
		}
		return result[i].Department < result[j].Department
	})
	return result
}

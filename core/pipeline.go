package core

import (
	"math"
	"sort"

	"github.com/minjaelee/talentscope/core/agg"
	"github.com/minjaelee/talentscope/core/stats"
	"github.com/minjaelee/talentscope/schema"
)

// BuildReport runs the full metrics pipeline over a loaded roster and
// returns every derived artifact. The pipeline only reads input fields
// and recomputes derived columns from scratch, so running it twice over
// the same roster yields identical output.
func BuildReport(roster *schema.Roster) *schema.Report {
	deriveColumns(roster)
	records := roster.Records

	report := &schema.Report{
		Summary:        summarize(roster),
		RankAverages:   agg.MeanTotalByRank(records),
		GradeBreakdown: agg.GradeBreakdown(records),
		DeptDispersion: agg.DeptScoreDispersion(records),
		NineBox:        nineBox(records),
		CoreTalent:     coreTalent(records),
		TalentDensity:  agg.TalentDensity(records),
		TenureCurve:    agg.TenureCurve(records),
		RankBalance:    agg.RankBalance(records),
	}

	// Year-over-year views need prior scores. Without the column they
	// degrade to nil instead of aborting the other views.
	if roster.Has(schema.ColPriorScore) {
		report.Growth = growthReport(records)
	}

	return report
}

// deriveColumns appends the derived columns to every record. They are
// always recomputed from their source fields, never trusted from a
// previous run.
func deriveColumns(roster *schema.Roster) {
	hasPrior := roster.Has(schema.ColPriorScore)
	for i := range roster.Records {
		rec := &roster.Records[i]

		if hasPrior {
			rec.ScoreDelta = rec.TotalScore - rec.PriorTotalScore
			rec.AbsScoreDelta = math.Abs(rec.ScoreDelta)
			rec.GrowthPercent = growthPercent(rec.ScoreDelta, rec.PriorTotalScore)
		} else {
			rec.ScoreDelta = 0
			rec.AbsScoreDelta = 0
			rec.GrowthPercent = 0
		}

		bucket, ok := schema.BucketForTenure(rec.TenureYears)
		if !ok {
			bucket = ""
		}
		rec.TenureBucket = bucket
	}
}

// growthPercent computes the relative year-over-year growth. A zero
// prior score would divide to infinity; such rows report 0 instead.
func growthPercent(delta, prior float64) float64 {
	if prior == 0 {
		return 0
	}
	return delta / prior * 100
}

// summarize computes the headline numbers shown above every view.
func summarize(roster *schema.Roster) schema.SummaryStats {
	records := roster.Records
	totals := make([]float64, len(records))
	tenures := make([]float64, len(records))
	for i, rec := range records {
		totals[i] = rec.TotalScore
		tenures[i] = rec.TenureYears
	}

	summary := schema.SummaryStats{
		Headcount:       len(records),
		MeanTotalScore:  stats.Mean(totals),
		MeanTenureYears: stats.Mean(tenures),
	}

	if roster.Has(schema.ColPriorScore) {
		deltas := make([]float64, len(records))
		for i, rec := range records {
			deltas[i] = rec.ScoreDelta
		}
		growth := stats.Mean(deltas)
		summary.MeanGrowth = &growth
	}

	return summary
}

// nineBox partitions the roster by competency and performance against
// their respective means. Rows with above-average competency but
// below-average performance are the Potential-Risk segment: strong
// potential that is not showing up in results.
func nineBox(records []schema.EmployeeRecord) schema.NineBoxResult {
	comp := make([]float64, len(records))
	perf := make([]float64, len(records))
	for i, rec := range records {
		comp[i] = rec.CompetencyScore
		perf[i] = rec.PerformanceScore
	}
	compMean := stats.Mean(comp)
	perfMean := stats.Mean(perf)

	counts := map[schema.Quadrant]int{}
	var potentialRisk []schema.EmployeeRecord
	for _, rec := range records {
		q := quadrantFor(rec, compMean, perfMean)
		counts[q]++
		if q == schema.PotentialRiskQuadrant {
			potentialRisk = append(potentialRisk, rec)
		}
	}

	quadrants := make([]schema.QuadrantCount, 0, 4)
	for _, q := range []schema.Quadrant{
		schema.StarQuadrant,
		schema.PotentialRiskQuadrant,
		schema.PerformerQuadrant,
		schema.DevelopingQuadrant,
	} {
		quadrants = append(quadrants, schema.QuadrantCount{Quadrant: q, Count: counts[q]})
	}

	return schema.NineBoxResult{
		CompetencyMean:  compMean,
		PerformanceMean: perfMean,
		Quadrants:       quadrants,
		PotentialRisk:   potentialRisk,
	}
}

// quadrantFor places one record in the competency/performance matrix.
func quadrantFor(rec schema.EmployeeRecord, compMean, perfMean float64) schema.Quadrant {
	switch {
	case rec.CompetencyScore > compMean && rec.PerformanceScore < perfMean:
		return schema.PotentialRiskQuadrant
	case rec.CompetencyScore > compMean:
		return schema.StarQuadrant
	case rec.PerformanceScore >= perfMean:
		return schema.PerformerQuadrant
	default:
		return schema.DevelopingQuadrant
	}
}

// coreTalent selects every row at or above the 90th percentile of total
// score, best first.
func coreTalent(records []schema.EmployeeRecord) schema.CoreTalentResult {
	totals := make([]float64, len(records))
	for i, rec := range records {
		totals[i] = rec.TotalScore
	}
	threshold := stats.Percentile(totals, schema.CoreTalentQuantile)

	var rows []schema.EmployeeRecord
	for _, rec := range records {
		if rec.TotalScore >= threshold {
			rows = append(rows, rec)
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalScore > rows[j].TotalScore
	})

	return schema.CoreTalentResult{Threshold: threshold, Rows: rows}
}

// growthReport computes every view derived from prior-year scores.
// Callers must only invoke it when the prior-year column is present.
func growthReport(records []schema.EmployeeRecord) *schema.GrowthReport {
	deltas := make([]float64, len(records))
	for i, rec := range records {
		deltas[i] = rec.ScoreDelta
	}

	// Top improvers: largest positive delta first, capped at the fixed
	// view size.
	improvers := make([]schema.EmployeeRecord, len(records))
	copy(improvers, records)
	sort.SliceStable(improvers, func(i, j int) bool {
		return improvers[i].ScoreDelta > improvers[j].ScoreDelta
	})
	if len(improvers) > schema.TopImproverCount {
		improvers = improvers[:schema.TopImproverCount]
	}

	// Shock drops: delta at or below the threshold, most severe first.
	var drops []schema.EmployeeRecord
	for _, rec := range records {
		if rec.ScoreDelta <= schema.ShockDropThreshold {
			drops = append(drops, rec)
		}
	}
	sort.SliceStable(drops, func(i, j int) bool {
		return drops[i].ScoreDelta < drops[j].ScoreDelta
	})

	return &schema.GrowthReport{
		MeanDelta:    stats.Mean(deltas),
		TopImprovers: improvers,
		DeptGrowth:   agg.DeptMeanDelta(records),
		ShockDrops:   drops,
	}
}

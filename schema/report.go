package schema

// SummaryStats holds the headline numbers shown above every view.
type SummaryStats struct {
	Headcount       int      `json:"headcount"`
	MeanTotalScore  float64  `json:"mean_total_score"`
	MeanGrowth      *float64 `json:"mean_growth,omitempty"` // nil without prior-year scores
	MeanTenureYears float64  `json:"mean_tenure_years"`
}

// RankGroup is the mean total score for one rank of the enumeration.
type RankGroup struct {
	Rank           Rank    `json:"rank"`
	Count          int     `json:"count"`
	MeanTotalScore float64 `json:"mean_total_score"`
}

// GradeGroup is the headcount and mean total score for one grade.
type GradeGroup struct {
	Grade          Grade   `json:"grade"`
	Count          int     `json:"count"`
	MeanTotalScore float64 `json:"mean_total_score"`
}

// DeptDispersion is the spread of total scores within one department.
// StdDev is the sample standard deviation; departments with fewer than
// two rows report 0.
type DeptDispersion struct {
	Department string  `json:"department"`
	Count      int     `json:"count"`
	StdDev     float64 `json:"std_dev"`
}

// QuadrantCount is the headcount of one matrix quadrant.
type QuadrantCount struct {
	Quadrant Quadrant `json:"quadrant"`
	Count    int      `json:"count"`
}

// NineBoxResult partitions the roster by competency and performance
// against their respective means.
type NineBoxResult struct {
	CompetencyMean  float64          `json:"competency_mean"`
	PerformanceMean float64          `json:"performance_mean"`
	Quadrants       []QuadrantCount  `json:"quadrants"`
	PotentialRisk   []EmployeeRecord `json:"potential_risk"`
}

// CoreTalentResult holds the top-decile selection of the roster.
type CoreTalentResult struct {
	Threshold float64          `json:"threshold"`
	Rows      []EmployeeRecord `json:"rows"`
}

// DeptDelta is the mean year-over-year delta for one department.
type DeptDelta struct {
	Department string  `json:"department"`
	Count      int     `json:"count"`
	MeanDelta  float64 `json:"mean_delta"`
}

// GrowthReport holds every view derived from prior-year scores. It is
// nil on the Report when the input carried no prior-year column.
type GrowthReport struct {
	MeanDelta    float64          `json:"mean_delta"`
	TopImprovers []EmployeeRecord `json:"top_improvers"`
	DeptGrowth   []DeptDelta      `json:"dept_growth"`
	ShockDrops   []EmployeeRecord `json:"shock_drops"`
}

// DensityGroup is the share of S/A grades within one department.
// Departments without a single S/A row report 0 percent, not absence.
type DensityGroup struct {
	Department     string  `json:"department"`
	Count          int     `json:"count"`
	HighGradeCount int     `json:"high_grade_count"`
	Percent        float64 `json:"percent"`
}

// TenureGroup is the mean total score within one tenure bucket.
type TenureGroup struct {
	Bucket         string  `json:"bucket"`
	Count          int     `json:"count"`
	MeanTotalScore float64 `json:"mean_total_score"`
}

// BalanceEntry is one (rank, metric, score) triple of the long-format
// rank balance view used for grouped-bar presentation.
type BalanceEntry struct {
	Rank   Rank          `json:"rank"`
	Metric BalanceMetric `json:"metric"`
	Score  float64       `json:"score"`
}

// Report is the full set of derived artifacts for one uploaded roster.
// Each field carries a stable table shape the presentation layer
// consumes by column name.
type Report struct {
	Summary        SummaryStats     `json:"summary"`
	RankAverages   []RankGroup      `json:"rank_averages"`
	GradeBreakdown []GradeGroup     `json:"grade_breakdown"`
	DeptDispersion []DeptDispersion `json:"dept_dispersion"`
	NineBox        NineBoxResult    `json:"nine_box"`
	CoreTalent     CoreTalentResult `json:"core_talent"`
	Growth         *GrowthReport    `json:"growth,omitempty"` // nil without prior-year scores
	TalentDensity  []DensityGroup   `json:"talent_density"`
	TenureCurve    []TenureGroup    `json:"tenure_curve"`
	RankBalance    []BalanceEntry   `json:"rank_balance"`
}

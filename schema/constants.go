package schema

// Custom string types for type safety.
type (
	// Rank represents an employee's position in the corporate ladder.
	Rank string

	// Grade represents an overall evaluation grade.
	Grade string

	// Quadrant represents a cell of the competency/performance matrix.
	Quadrant string

	// BalanceMetric identifies a score series in the rank balance view.
	BalanceMetric string

	// OutputMode represents the format of the output.
	OutputMode string

	// Column is a canonical column name of the input roster.
	Column string
)

// All ranks in the fixed enumeration, highest first.
const (
	SeniorDirector   Rank = "Senior Director"
	DeputyDirector   Rank = "Deputy Director"
	Manager          Rank = "Manager"
	AssistantManager Rank = "Assistant Manager"
	Staff            Rank = "Staff"
)

// All grades in the fixed enumeration, best first.
const (
	GradeS Grade = "S"
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
)

// All quadrants of the competency/performance matrix.
const (
	StarQuadrant          Quadrant = "Star"           // competency > mean, performance >= mean
	PotentialRiskQuadrant Quadrant = "Potential-Risk" // competency > mean, performance < mean
	PerformerQuadrant     Quadrant = "Performer"      // competency <= mean, performance >= mean
	DevelopingQuadrant    Quadrant = "Developing"     // competency <= mean, performance < mean
)

// Score series shown side by side in the rank balance view.
const (
	CompetencyMetric  BalanceMetric = "competency"
	PerformanceMetric BalanceMetric = "performance"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// Canonical roster columns. Department, rank and total score are
// required; everything else is optional.
const (
	ColEmployeeID  Column = "employee_id"
	ColName        Column = "name"
	ColDepartment  Column = "department"
	ColRank        Column = "rank"
	ColTenure      Column = "tenure_years"
	ColPerformance Column = "performance_score"
	ColCompetency  Column = "competency_score"
	ColTotalScore  Column = "total_score"
	ColPriorScore  Column = "prior_total_score"
	ColGrade       Column = "grade"
)

// RankOrder lists all ranks in display order, highest rank first.
var RankOrder = []Rank{SeniorDirector, DeputyDirector, Manager, AssistantManager, Staff}

// GradeOrder lists all grades in display order, best grade first.
var GradeOrder = []Grade{GradeS, GradeA, GradeB, GradeC, GradeD}

// HighGrades are the grades counted toward talent density.
var HighGrades = map[Grade]struct{}{GradeS: {}, GradeA: {}}

// RequiredColumns must all be present in the input roster; a missing one
// fails the whole upload.
var RequiredColumns = []Column{ColDepartment, ColRank, ColTotalScore}

// NumericColumns are coerced to float64 during loading. Unparseable or
// missing cells become 0.0, never an error.
var NumericColumns = []Column{ColPerformance, ColCompetency, ColTotalScore, ColTenure, ColPriorScore}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// TenureBucketDef is one fixed half-open tenure interval (lo, hi].
type TenureBucketDef struct {
	Label string
	Lo    float64
	Hi    float64
}

// TenureBuckets are the fixed tenure intervals used for grouping, in
// display order. Tenure values outside (0, 100] fall in no bucket.
var TenureBuckets = []TenureBucketDef{
	{Label: "Entry", Lo: 0, Hi: 2},
	{Label: "Junior", Lo: 2, Hi: 5},
	{Label: "Senior", Lo: 5, Hi: 10},
	{Label: "Veteran", Lo: 10, Hi: 20},
	{Label: "20+ years", Lo: 20, Hi: 100},
}

// Thresholds used across the derived views.
const (
	// CoreTalentQuantile is the total-score quantile that defines core talent.
	CoreTalentQuantile = 0.9

	// ShockDropThreshold flags rows whose year-over-year delta fell at
	// least this much. The boundary is inclusive.
	ShockDropThreshold = -10.0

	// TopImproverCount is the number of rows in the top improvers view.
	TopImproverCount = 5
)

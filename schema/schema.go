// Package schema has models, enumerations and helpers for all parts of talentscope.
package schema

// EmployeeRecord represents one row of the evaluation roster.
// Numeric fields are coerced to float64 during loading; unparseable or
// missing values become 0.0. Derived fields are computed by the
// pipeline, never read from input, and are recomputed on every run.
type EmployeeRecord struct {
	EmployeeID       string  `json:"employee_id,omitempty"`
	Name             string  `json:"name,omitempty"`
	Department       string  `json:"department"`
	Rank             Rank    `json:"rank"`
	TenureYears      float64 `json:"tenure_years"`
	PerformanceScore float64 `json:"performance_score"`
	CompetencyScore  float64 `json:"competency_score"`
	TotalScore       float64 `json:"total_score"`
	PriorTotalScore  float64 `json:"prior_total_score"`
	Grade            Grade   `json:"grade,omitempty"`

	// Derived fields appended by the pipeline.
	ScoreDelta    float64 `json:"score_delta"`
	AbsScoreDelta float64 `json:"abs_score_delta"`
	GrowthPercent float64 `json:"growth_percent"`
	TenureBucket  string  `json:"tenure_bucket,omitempty"`
}

// Roster is the in-memory table built from one uploaded file. It lives
// for a single pipeline run; a new upload builds a new Roster.
type Roster struct {
	Records []EmployeeRecord

	// Columns records which canonical columns the input carried.
	// Derived views that depend on an absent optional column degrade
	// to "unavailable" instead of aborting the run.
	Columns map[Column]bool
}

// Has reports whether the input carried the given canonical column.
func (r *Roster) Has(col Column) bool {
	return r.Columns[col]
}

// Headcount returns the number of rows in the roster.
func (r *Roster) Headcount() int {
	return len(r.Records)
}

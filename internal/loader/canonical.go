package loader

import (
	"strings"

	"github.com/minjaelee/talentscope/schema"
)

// headerAliases maps normalized header spellings to canonical columns.
// The original rosters carry Korean headers; exports from other HR
// tools carry English ones. Both are accepted.
var headerAliases = map[string]schema.Column{
	"employee id": schema.ColEmployeeID,
	"id":          schema.ColEmployeeID,
	"사번":          schema.ColEmployeeID,

	"name":          schema.ColName,
	"employee name": schema.ColName,
	"성명":            schema.ColName,
	"이름":            schema.ColName,

	"department": schema.ColDepartment,
	"dept":       schema.ColDepartment,
	"부서":         schema.ColDepartment,

	"rank":     schema.ColRank,
	"position": schema.ColRank,
	"직급":       schema.ColRank,

	"tenure":           schema.ColTenure,
	"tenure years":     schema.ColTenure,
	"years of service": schema.ColTenure,
	"근무기간":             schema.ColTenure,

	"performance":       schema.ColPerformance,
	"performance score": schema.ColPerformance,
	"성과점수":              schema.ColPerformance,

	"competency":       schema.ColCompetency,
	"competency score": schema.ColCompetency,
	"역량점수":             schema.ColCompetency,

	"total":       schema.ColTotalScore,
	"total score": schema.ColTotalScore,
	"총점":          schema.ColTotalScore,

	"prior total score":      schema.ColPriorScore,
	"prior year total score": schema.ColPriorScore,
	"previous total score":   schema.ColPriorScore,
	"전년도총점":                  schema.ColPriorScore,

	"grade":         schema.ColGrade,
	"overall grade": schema.ColGrade,
	"종합등급":          schema.ColGrade,
}

// rankAliases maps roster rank spellings to the fixed enumeration.
// Values outside the map are kept verbatim and treated as unknown for
// ordering purposes, not rejected.
var rankAliases = map[string]schema.Rank{
	"senior director":   schema.SeniorDirector,
	"부장":                schema.SeniorDirector,
	"deputy director":   schema.DeputyDirector,
	"차장":                schema.DeputyDirector,
	"manager":           schema.Manager,
	"과장":                schema.Manager,
	"assistant manager": schema.AssistantManager,
	"대리":                schema.AssistantManager,
	"staff":             schema.Staff,
	"사원":                schema.Staff,
}

// normalizeHeader lowers a header cell and collapses separator noise so
// "Total_Score " and "total score" resolve to the same alias.
func normalizeHeader(header string) string {
	h := strings.ToLower(strings.TrimSpace(header))
	h = strings.ReplaceAll(h, "_", " ")
	h = strings.ReplaceAll(h, "-", " ")
	return strings.Join(strings.Fields(h), " ")
}

// canonicalColumn resolves a raw header cell to its canonical column.
func canonicalColumn(header string) (schema.Column, bool) {
	col, ok := headerAliases[normalizeHeader(header)]
	return col, ok
}

// normalizeRank resolves a raw rank cell to the fixed enumeration where
// possible, keeping unrecognized values verbatim.
func normalizeRank(value string) schema.Rank {
	trimmed := strings.TrimSpace(value)
	if rank, ok := rankAliases[strings.ToLower(trimmed)]; ok {
		return rank
	}
	return schema.Rank(trimmed)
}

// normalizeGrade upper-cases a raw grade cell. Values outside the
// enumeration are kept and treated as unknown for ordering purposes.
func normalizeGrade(value string) schema.Grade {
	return schema.Grade(strings.ToUpper(strings.TrimSpace(value)))
}

package schema

import "fmt"

// RankOrdinal returns the sort key for a rank. Ranks outside the fixed
// enumeration sort after every known rank.
func RankOrdinal(r Rank) int {
	for i, known := range RankOrder {
		if r == known {
			return i
		}
	}
	return len(RankOrder)
}

// GradeOrdinal returns the sort key for a grade. Grades outside the
// fixed enumeration sort after every known grade.
func GradeOrdinal(g Grade) int {
	for i, known := range GradeOrder {
		if g == known {
			return i
		}
	}
	return len(GradeOrder)
}

// IsKnownRank reports whether the rank is part of the fixed enumeration.
func IsKnownRank(r Rank) bool {
	return RankOrdinal(r) < len(RankOrder)
}

// IsKnownGrade reports whether the grade is part of the fixed enumeration.
func IsKnownGrade(g Grade) bool {
	return GradeOrdinal(g) < len(GradeOrder)
}

// IsHighGrade reports whether the grade counts toward talent density.
func IsHighGrade(g Grade) bool {
	_, ok := HighGrades[g]
	return ok
}

// BucketForTenure maps tenure years to its fixed half-open interval
// (lo, hi]. The second return is false when the value falls in no
// bucket, which mirrors how the original binning leaves such rows out.
func BucketForTenure(years float64) (string, bool) {
	for _, b := range TenureBuckets {
		if years > b.Lo && years <= b.Hi {
			return b.Label, true
		}
	}
	return "", false
}

// FormatSigned renders a float with an explicit leading sign, as the
// summary growth figure is displayed.
func FormatSigned(v float64, precision int) string {
	return fmt.Sprintf("%+.*f", precision, v)
}

package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/minjaelee/talentscope/schema"
)

// Color variables for console output.
var (
	GradeSColor = color.New(color.FgYellow, color.Bold) // top grade, the original renders it gold
	GradeAColor = color.New(color.FgCyan, color.Bold)
	GradeBColor = color.New(color.FgGreen)
	GradeCColor = color.New(color.FgYellow)
	GradeDColor = color.New(color.FgRed)

	RiseColor = color.New(color.FgGreen) // positive year-over-year delta
	DropColor = color.New(color.FgRed)   // negative year-over-year delta
)

// GetColorGrade returns a colored grade label for console output.
// Grades outside the enumeration render as plain text.
func GetColorGrade(g schema.Grade) string {
	switch g {
	case schema.GradeS:
		return GradeSColor.Sprint(string(g))
	case schema.GradeA:
		return GradeAColor.Sprint(string(g))
	case schema.GradeB:
		return GradeBColor.Sprint(string(g))
	case schema.GradeC:
		return GradeCColor.Sprint(string(g))
	case schema.GradeD:
		return GradeDColor.Sprint(string(g))
	default:
		return string(g)
	}
}

// GetColorDelta returns a signed, colored year-over-year delta for
// console output.
func GetColorDelta(delta float64, precision int) string {
	text := schema.FormatSigned(delta, precision)
	if delta < 0 {
		return DropColor.Sprint(text)
	}
	return RiseColor.Sprint(text)
}

// SelectOutputFile returns the appropriate file handle for output,
// based on the provided file path. An empty path means stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}

// TruncateName truncates a display name to a maximum width with an
// ellipsis suffix. Requires maxWidth > 3 so the ellipsis still leaves
// at least one character of content.
func TruncateName(name string, maxWidth int) string {
	runes := []rune(name)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return name
}

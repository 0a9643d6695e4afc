// Package loader reads an uploaded evaluation roster into memory.
// Input is a single xlsx workbook: first sheet, first row as header.
package loader

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/minjaelee/talentscope/schema"
	"github.com/xuri/excelize/v2"
)

// LoadRoster opens an xlsx workbook and parses its first sheet into a
// roster. The whole table is read once; nothing is kept open after.
func LoadRoster(path string) (*schema.Roster, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open roster %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	return parseWorkbook(file)
}

// LoadRosterFromReader parses an xlsx workbook from an in-memory
// stream, as an upload handler would hand it over.
func LoadRosterFromReader(r io.Reader) (*schema.Roster, error) {
	file, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster: %w", err)
	}
	defer func() { _ = file.Close() }()

	return parseWorkbook(file)
}

// parseWorkbook extracts the first sheet as a string grid and parses it.
func parseWorkbook(file *excelize.File) (*schema.Roster, error) {
	sheetName := file.GetSheetName(0)
	if sheetName == "" {
		return nil, errors.New("no worksheet found")
	}

	rows, err := file.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheetName, err)
	}

	return ParseRows(rows)
}

// ParseRows builds a roster from a raw string grid. The first row is
// the header; every later row becomes one EmployeeRecord. A missing
// required column fails the whole upload; missing optional columns are
// recorded so dependent views can degrade instead of aborting.
func ParseRows(rows [][]string) (*schema.Roster, error) {
	if len(rows) == 0 {
		return nil, errors.New("worksheet is empty")
	}

	// 1. Resolve headers to canonical columns. First match wins.
	colIndex := make(map[schema.Column]int)
	for i, header := range rows[0] {
		col, ok := canonicalColumn(header)
		if !ok {
			continue
		}
		if _, seen := colIndex[col]; !seen {
			colIndex[col] = i
		}
	}

	// 2. Required columns are fatal for the whole upload when absent.
	var missing []string
	for _, col := range schema.RequiredColumns {
		if _, ok := colIndex[col]; !ok {
			missing = append(missing, string(col))
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	columns := make(map[schema.Column]bool, len(colIndex))
	for col := range colIndex {
		columns[col] = true
	}

	// 3. Build records with numeric coercion.
	records := make([]schema.EmployeeRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		cell := func(col schema.Column) string {
			idx, ok := colIndex[col]
			if !ok || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		records = append(records, schema.EmployeeRecord{
			EmployeeID:       cell(schema.ColEmployeeID),
			Name:             cell(schema.ColName),
			Department:       cell(schema.ColDepartment),
			Rank:             normalizeRank(cell(schema.ColRank)),
			TenureYears:      coerceFloat(cell(schema.ColTenure)),
			PerformanceScore: coerceFloat(cell(schema.ColPerformance)),
			CompetencyScore:  coerceFloat(cell(schema.ColCompetency)),
			TotalScore:       coerceFloat(cell(schema.ColTotalScore)),
			PriorTotalScore:  coerceFloat(cell(schema.ColPriorScore)),
			Grade:            normalizeGrade(cell(schema.ColGrade)),
		})
	}

	return &schema.Roster{Records: records, Columns: columns}, nil
}

// coerceFloat converts a cell to float64. Unparseable or missing values
// become 0.0, never an error. This mirrors the original ingestion and
// silently masks data-entry mistakes; callers must not rely on 0 being
// a real score.
func coerceFloat(s string) float64 {
	if s == "" {
		return 0.0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0.0
	}
	return v
}

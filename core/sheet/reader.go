package sheet

import (
	"errors"
	"io"
	"strings"

	"roster-manager/core/roster"
	"roster-manager/core/utils"

	"github.com/xuri/excelize/v2"
)

// Column headers recognized in roster workbooks. Matching is
// case-insensitive; CheckedIn also accepts a spaced variant.
const (
	ColumnID          = "ID"
	ColumnName        = "Name"
	ColumnAffiliation = "Affiliation"
	ColumnStatus      = "Status"
	ColumnCheckedIn   = "CheckedIn"
)

// ParseRoster decodes a roster workbook from r. The first sheet is read with
// a header row mapping columns by name. ID, Name and Affiliation are
// required; Status and CheckedIn are optional and default downstream.
// An unreadable workbook yields a SourceParseError, a readable workbook
// without the required columns a LoadError. Rows with a blank ID cell are
// skipped.
func ParseRoster(r io.Reader) ([]roster.Row, error) {
	rows, err := readFirstSheet(r)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, &LoadError{Column: ColumnID}
	}

	idx := mapHeader(rows[0])
	for _, required := range []string{ColumnID, ColumnName, ColumnAffiliation} {
		if _, ok := idx[required]; !ok {
			return nil, &LoadError{Column: required}
		}
	}

	out := make([]roster.Row, 0, len(rows)-1)
	for _, cells := range rows[1:] {
		row := roster.Row{
			ID:          cellAt(cells, idx, ColumnID),
			Name:        cellAt(cells, idx, ColumnName),
			Affiliation: cellAt(cells, idx, ColumnAffiliation),
			Status:      cellAt(cells, idx, ColumnStatus),
			CheckedIn:   cellAt(cells, idx, ColumnCheckedIn),
		}
		if utils.IsBlank(row.ID) {
			continue
		}
		out = append(out, row)
	}
	return out, nil
}

// Flatten reads every sheet of the workbook and returns all non-blank cell
// values as one raw list. This is the delegation ingestion path: the
// workbook layout carries no meaning, only the cell values do.
func Flatten(r io.Reader) ([]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &SourceParseError{Cause: err}
	}
	defer f.Close()

	var values []string
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, &SourceParseError{Cause: err}
		}
		for _, cells := range rows {
			for _, cell := range cells {
				if utils.IsBlank(cell) {
					continue
				}
				values = append(values, cell)
			}
		}
	}
	return values, nil
}

func readFirstSheet(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &SourceParseError{Cause: err}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &SourceParseError{Cause: errors.New("workbook has no sheets")}
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, &SourceParseError{Cause: err}
	}
	return rows, nil
}

// mapHeader resolves header cells to canonical column names.
func mapHeader(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, cell := range header {
		switch strings.ToLower(strings.TrimSpace(cell)) {
		case "id":
			idx[ColumnID] = i
		case "name":
			idx[ColumnName] = i
		case "affiliation":
			idx[ColumnAffiliation] = i
		case "status":
			idx[ColumnStatus] = i
		case "checkedin", "checked_in", "checked in":
			idx[ColumnCheckedIn] = i
		}
	}
	return idx
}

// cellAt fetches a cell by mapped column, tolerating short rows
// (excelize drops trailing empty cells).
func cellAt(cells []string, idx map[string]int, column string) string {
	i, ok := idx[column]
	if !ok || i >= len(cells) {
		return ""
	}
	return cells[i]
}

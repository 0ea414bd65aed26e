package sheet

import (
	"fmt"
	"io"

	"roster-manager/core/roster"

	"github.com/xuri/excelize/v2"
)

// WriteRoster renders the roster to an xlsx workbook on w under the given
// sheet label. The column layout mirrors what ParseRoster accepts, so an
// exported workbook loads back without loss.
func WriteRoster(w io.Writer, records []roster.Record, sheetName string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return err
	}

	f.SetCellValue(sheetName, "A1", ColumnID)
	f.SetCellValue(sheetName, "B1", ColumnName)
	f.SetCellValue(sheetName, "C1", ColumnAffiliation)
	f.SetCellValue(sheetName, "D1", ColumnStatus)
	f.SetCellValue(sheetName, "E1", ColumnCheckedIn)

	for i, rec := range records {
		row := i + 2
		f.SetCellValue(sheetName, "A"+fmt.Sprint(row), rec.ID)
		f.SetCellValue(sheetName, "B"+fmt.Sprint(row), rec.Name)
		f.SetCellValue(sheetName, "C"+fmt.Sprint(row), string(rec.Affiliation))
		f.SetCellValue(sheetName, "D"+fmt.Sprint(row), string(rec.Status))
		if rec.CheckedInAt != nil {
			f.SetCellValue(sheetName, "E"+fmt.Sprint(row), rec.CheckedInAt.Format(roster.TimestampLayout))
		}
	}

	return f.Write(w)
}

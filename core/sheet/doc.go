// Package sheet is the workbook codec for the roster-manager boundaries.
//
// It decodes roster uploads (header-mapped, first sheet only), flattens
// delegation workbooks (every non-blank cell across all sheets) and renders
// the current roster back to an exportable workbook. All spreadsheet I/O
// goes through github.com/xuri/excelize, and all failures surface as one of
// two typed errors:
//
//   - SourceParseError: the workbook could not be decoded at all.
//   - LoadError: the workbook decoded but lacks a required roster column.
//
// Either way the triggering operation aborts without partial state.
package sheet

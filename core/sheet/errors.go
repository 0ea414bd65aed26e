package sheet

import (
	"errors"
	"fmt"
)

// SourceParseError wraps a workbook that could not be decoded at all.
// The operation that triggered the parse is aborted; no partial state
// change happens.
type SourceParseError struct {
	Cause error
}

func (e *SourceParseError) Error() string {
	return fmt.Sprintf("cannot read workbook: %v", e.Cause)
}

func (e *SourceParseError) Unwrap() error {
	return e.Cause
}

// LoadError rejects a roster workbook that decoded but lacks a required
// column. The load is aborted entirely.
type LoadError struct {
	// Column is the missing required column header.
	Column string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("roster is missing required column %q", e.Column)
}

// IsSourceParse reports whether err is a SourceParseError.
func IsSourceParse(err error) bool {
	var pe *SourceParseError
	return errors.As(err, &pe)
}

// IsLoad reports whether err is a LoadError.
func IsLoad(err error) bool {
	var le *LoadError
	return errors.As(err, &le)
}

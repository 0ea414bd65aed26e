package utils

import "strings"

// CanonicalID normalizes a raw identifier to its canonical string form.
// Spreadsheet numeric cells often surface with a float artifact ("10051.0");
// the fractional part is stripped when the value is otherwise numeric so that
// the same identifier compares equal regardless of its original cell type.
func CanonicalID(raw string) string {
	s := strings.TrimSpace(raw)

	dot := strings.IndexByte(s, '.')
	if dot <= 0 {
		return s
	}
	if !isDigits(s[:dot]) || !isZeros(s[dot+1:]) {
		return s
	}
	return s[:dot]
}

// IsBlank reports whether a raw cell value carries no identifier.
func IsBlank(raw string) bool {
	return strings.TrimSpace(raw) == ""
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isZeros(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] != '0' {
			return false
		}
	}
	return true
}

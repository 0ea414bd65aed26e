package roster

import (
	"errors"
	"fmt"
)

// ValidationError rejects user input before any mutation happens.
type ValidationError struct {
	// Field names the offending input field.
	Field string
	// Reason describes why the value was rejected.
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

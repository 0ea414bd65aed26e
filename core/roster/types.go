package roster

import "time"

// Affiliation categorizes an attendee.
type Affiliation string

const (
	// AffiliationGeneral is the default category for regular attendees.
	AffiliationGeneral Affiliation = "general"
	// AffiliationStaff marks event staff.
	AffiliationStaff Affiliation = "staff"
	// AffiliationGuest marks invited guests.
	AffiliationGuest Affiliation = "guest"
)

// ParseAffiliation maps a raw value to a known affiliation.
// Unknown or empty values fall back to general.
func ParseAffiliation(raw string) Affiliation {
	switch Affiliation(raw) {
	case AffiliationStaff:
		return AffiliationStaff
	case AffiliationGuest:
		return AffiliationGuest
	default:
		return AffiliationGeneral
	}
}

// Status is the attendance state of a record.
type Status string

const (
	// StatusAbsent means the attendee has not checked in yet.
	StatusAbsent Status = "absent"
	// StatusPresent means the attendee has checked in.
	StatusPresent Status = "present"
)

// Record is a single attendee row in the roster.
// Invariant: CheckedInAt is non-nil if and only if Status is present.
type Record struct {
	// ID is the canonical attendee identifier (e.g. a membership number).
	ID string `json:"id"`

	// Name is the attendee display name.
	Name string `json:"name"`

	// Affiliation is the attendee category.
	Affiliation Affiliation `json:"affiliation"`

	// Status is the current attendance state.
	Status Status `json:"status"`

	// CheckedInAt is the check-in time, minute resolution.
	// Nil while the attendee is absent.
	CheckedInAt *time.Time `json:"checked_in_at,omitempty"`
}

// Row is a raw ingestion row as delivered by the workbook codec.
// Status and CheckedIn are optional; empty values take the defaults
// (absent, no timestamp) at load time.
type Row struct {
	ID          string
	Name        string
	Affiliation string
	Status      string
	CheckedIn   string
}

// TimestampLayout is the wall-clock format used for check-in timestamps
// in workbook cells. Minute resolution is enough for a check-in desk.
const TimestampLayout = "2006/01/02 15:04"

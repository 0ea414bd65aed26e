package roster

import "time"

// OutcomeKind identifies the result branch of a check-in request.
type OutcomeKind string

const (
	// OutcomeCheckedIn means the attendee was absent and is now present.
	OutcomeCheckedIn OutcomeKind = "checked_in"
	// OutcomeAlreadyCheckedIn means the attendee was already present.
	// Informational, not an error; nothing was mutated.
	OutcomeAlreadyCheckedIn OutcomeKind = "already_checked_in"
	// OutcomeNotFound means no roster record matched the identifier.
	// The caller is expected to offer registration.
	OutcomeNotFound OutcomeKind = "not_found"
)

// Outcome is the result of a single check-in request.
type Outcome struct {
	// Kind is the result branch.
	Kind OutcomeKind `json:"outcome"`

	// ID is the canonical identifier that was looked up.
	ID string `json:"id"`

	// Name is the matched attendee name. Empty for not_found.
	Name string `json:"name,omitempty"`

	// Affiliation is the matched attendee category. Empty for not_found.
	Affiliation Affiliation `json:"affiliation,omitempty"`

	// CheckedInAt is the recorded timestamp: the new one for checked_in,
	// the prior one for already_checked_in, nil for not_found.
	CheckedInAt *time.Time `json:"checked_in_at,omitempty"`
}

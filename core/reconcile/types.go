package reconcile

// Summary is the immutable result of one reconciliation run between the
// delegation list and the roster. All counts are over canonicalized,
// non-blank identifiers.
type Summary struct {
	// UniqueDelegation is the number of distinct identifiers in the
	// delegation list.
	UniqueDelegation int `json:"unique_delegation"`

	// UniqueRoster is the number of distinct identifiers in the roster.
	UniqueRoster int `json:"unique_roster"`

	// DelegationDuplicateKeys counts distinct identifiers that occur more
	// than once in the delegation list. This is the primary duplicate
	// figure surfaced to callers.
	DelegationDuplicateKeys int `json:"delegation_duplicate_keys"`

	// DelegationExcess counts the total surplus occurrences in the
	// delegation list (occurrences beyond the first, summed per key).
	DelegationExcess int `json:"delegation_excess"`

	// RosterDuplicateKeys counts distinct identifiers that occur more than
	// once in the roster.
	RosterDuplicateKeys int `json:"roster_duplicate_keys"`

	// RosterExcess counts the total surplus occurrences in the roster.
	RosterExcess int `json:"roster_excess"`

	// TotalUnique is the size of the union of both identifier sets.
	TotalUnique int `json:"total_unique"`

	// BothPresent is the size of the intersection: identifiers appearing
	// in the delegation list and the roster.
	BothPresent int `json:"both_present"`

	// BaselineTotal is the externally configured population size, attached
	// unchanged for display and cross-checking. It is never derived from
	// the input data.
	BaselineTotal int `json:"baseline_total"`
}

// Config holds configuration for the reconciliation engine.
type Config struct {
	// BaselineTotal is the known total membership count used as the
	// default baseline for reconciliation reports.
	BaselineTotal int `mapstructure:"baseline_total" default:"10905"`
}

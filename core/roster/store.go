package roster

import (
	"strings"
	"sync"
	"time"

	"roster-manager/core/utils"
)

// Store is the authoritative in-memory attendee table for one session.
// It is created empty, populated by Load, and mutated only by CheckIn
// and Register. Records are never deleted.
type Store struct {
	mu      sync.RWMutex
	records []Record

	// now supplies check-in timestamps; overridable in tests.
	now func() time.Time
}

// NewStore creates an empty roster store.
func NewStore() *Store {
	return &Store{now: time.Now}
}

// Load replaces the current roster with the given rows. Later loads fully
// supersede earlier ones; there is no merge. Identifiers are canonicalized,
// missing status defaults to absent and missing timestamps to unset.
// Rows whose identifier is blank are skipped.
func (s *Store) Load(rows []Row) int {
	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		id := utils.CanonicalID(row.ID)
		if id == "" {
			continue
		}

		rec := Record{
			ID:          id,
			Name:        row.Name,
			Affiliation: ParseAffiliation(row.Affiliation),
			Status:      StatusAbsent,
		}
		if Status(row.Status) == StatusPresent {
			rec.Status = StatusPresent
			if ts, err := time.ParseInLocation(TimestampLayout, row.CheckedIn, time.Local); err == nil {
				rec.CheckedInAt = &ts
			} else {
				// Present without a readable timestamp: stamp load time so the
				// record invariant (present iff timestamped) holds.
				ts := s.now().Truncate(time.Minute)
				rec.CheckedInAt = &ts
			}
		}
		records = append(records, rec)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = records
	return len(records)
}

// CheckIn marks the attendee with the given identifier as present.
// The raw input is trimmed; an identifier that is empty after trimming is
// rejected with a ValidationError and nothing is recorded. Lookup takes the
// first record with a matching canonical identifier.
func (s *Store) CheckIn(raw string) (Outcome, error) {
	id := utils.CanonicalID(raw)
	if id == "" {
		return Outcome{}, &ValidationError{Field: "id", Reason: "identifier is empty"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		rec := &s.records[i]
		if rec.ID != id {
			continue
		}

		if rec.Status == StatusPresent {
			return Outcome{
				Kind:        OutcomeAlreadyCheckedIn,
				ID:          rec.ID,
				Name:        rec.Name,
				Affiliation: rec.Affiliation,
				CheckedInAt: rec.CheckedInAt,
			}, nil
		}

		ts := s.now().Truncate(time.Minute)
		rec.Status = StatusPresent
		rec.CheckedInAt = &ts
		return Outcome{
			Kind:        OutcomeCheckedIn,
			ID:          rec.ID,
			Name:        rec.Name,
			Affiliation: rec.Affiliation,
			CheckedInAt: rec.CheckedInAt,
		}, nil
	}

	return Outcome{Kind: OutcomeNotFound, ID: id}, nil
}

// Register appends a walk-in attendee as present with the current time.
// The identifier is expected to come from a prior not_found outcome; the
// store does not enforce that ordering. Shadowed reports whether the
// identifier already existed in the roster — the new row is appended anyway
// but lookups will keep returning the earlier record.
func (s *Store) Register(rawID, rawName string, aff Affiliation) (Record, bool, error) {
	id := utils.CanonicalID(rawID)
	if id == "" {
		return Record{}, false, &ValidationError{Field: "id", Reason: "identifier is empty"}
	}
	name := strings.TrimSpace(rawName)
	if name == "" {
		return Record{}, false, &ValidationError{Field: "name", Reason: "name is empty"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	shadowed := false
	for i := range s.records {
		if s.records[i].ID == id {
			shadowed = true
			break
		}
	}

	ts := s.now().Truncate(time.Minute)
	rec := Record{
		ID:          id,
		Name:        name,
		Affiliation: aff,
		Status:      StatusPresent,
		CheckedInAt: &ts,
	}
	s.records = append(s.records, rec)
	return rec, shadowed, nil
}

// Snapshot returns a copy of the roster in insertion order.
func (s *Store) Snapshot() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// IDs returns the canonical identifiers of every record in insertion order.
// Duplicates introduced at load or by shadowed registrations are included.
func (s *Store) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, len(s.records))
	for i, rec := range s.records {
		ids[i] = rec.ID
	}
	return ids
}

// Counts returns the number of present records and the roster size.
func (s *Store) Counts() (present, total int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, rec := range s.records {
		if rec.Status == StatusPresent {
			present++
		}
	}
	return present, len(s.records)
}

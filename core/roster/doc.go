// Package roster holds the canonical in-memory attendee table for a
// check-in session.
//
// The Store is loaded once from a workbook upload and then mutated only by
// sequential check-in and registration requests. Each record moves through
// a single transition (absent -> present); there is no reversal and no
// deletion. A later Load fully replaces the roster.
//
// # Check-in outcomes
//
// CheckIn distinguishes three non-error branches:
//
//   - checked_in: the attendee was absent and is now present with a fresh
//     minute-resolution timestamp.
//   - already_checked_in: idempotent no-op carrying the prior timestamp.
//   - not_found: no record matched; the caller should offer registration.
//
// Only an empty identifier is an actual error (ValidationError).
//
// # Identifier semantics
//
// Identifiers are compared as canonical text (see core/utils.CanonicalID).
// Duplicate identifiers are tolerated: the first match wins on lookup, so a
// shadowed registration or a duplicated load row never changes the record
// that check-ins resolve to.
package roster

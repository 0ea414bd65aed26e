// Package reconcile computes set-reconciliation summaries between two raw
// identifier collections: the externally supplied delegation list and the
// current roster.
//
// The engine is pure and stateless. Each run deduplicates both inputs,
// counts duplicates per input (both as distinct offending keys and as
// surplus occurrences), and reports union and intersection sizes together
// with a fixed externally configured baseline population count.
//
// Summaries are recomputed per run; the package holds no state between
// calls. Retention of the last summary is a concern of the caller.
package reconcile

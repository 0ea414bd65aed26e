package reconcile

import "roster-manager/core/utils"

// Summarize reconciles the delegation identifier list against the roster
// identifier list. Blank entries are discarded and the rest canonicalized
// before counting, so spreadsheet noise and representation differences do
// not affect the result. The inputs are not mutated and the output is
// independent of input ordering.
func Summarize(delegation, roster []string, baseline int) Summary {
	delegationCounts := countOccurrences(delegation)
	rosterCounts := countOccurrences(roster)

	dupKeysA, excessA := duplicateStats(delegationCounts)
	dupKeysB, excessB := duplicateStats(rosterCounts)

	both := 0
	union := len(delegationCounts)
	for id := range rosterCounts {
		if _, ok := delegationCounts[id]; ok {
			both++
		} else {
			union++
		}
	}

	return Summary{
		UniqueDelegation:        len(delegationCounts),
		UniqueRoster:            len(rosterCounts),
		DelegationDuplicateKeys: dupKeysA,
		DelegationExcess:        excessA,
		RosterDuplicateKeys:     dupKeysB,
		RosterExcess:            excessB,
		TotalUnique:             union,
		BothPresent:             both,
		BaselineTotal:           baseline,
	}
}

// countOccurrences builds a frequency table over canonical identifiers,
// dropping blank values.
func countOccurrences(values []string) map[string]int {
	counts := make(map[string]int, len(values))
	for _, v := range values {
		if utils.IsBlank(v) {
			continue
		}
		counts[utils.CanonicalID(v)]++
	}
	return counts
}

// duplicateStats returns the number of distinct keys occurring more than
// once and the total surplus occurrences beyond the first per key.
func duplicateStats(counts map[string]int) (dupKeys, excess int) {
	for _, n := range counts {
		if n > 1 {
			dupKeys++
			excess += n - 1
		}
	}
	return dupKeys, excess
}

package reconcile

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name       string
		delegation []string
		roster     []string
		baseline   int
		want       Summary
	}{
		{
			name:       "duplicate insensitive unique counts",
			delegation: []string{"x", "x", "y"},
			roster:     []string{"y", "z"},
			baseline:   100,
			want: Summary{
				UniqueDelegation:        2,
				UniqueRoster:            2,
				DelegationDuplicateKeys: 1,
				DelegationExcess:        1,
				TotalUnique:             3,
				BothPresent:             1,
				BaselineTotal:           100,
			},
		},
		{
			name:       "blank cells discarded",
			delegation: []string{"A1", "", "  ", "A2"},
			roster:     []string{"", "A2"},
			baseline:   10905,
			want: Summary{
				UniqueDelegation: 2,
				UniqueRoster:     1,
				TotalUnique:      2,
				BothPresent:      1,
				BaselineTotal:    10905,
			},
		},
		{
			name:       "numeric representation differences collapse",
			delegation: []string{"10051.0", "10051"},
			roster:     []string{" 10051 "},
			want: Summary{
				UniqueDelegation:        1,
				UniqueRoster:            1,
				DelegationDuplicateKeys: 1,
				DelegationExcess:        1,
				TotalUnique:             1,
				BothPresent:             1,
			},
		},
		{
			name:       "distinct keys vs excess occurrences",
			delegation: []string{"a", "a", "a", "b", "b", "c"},
			roster:     nil,
			want: Summary{
				UniqueDelegation:        3,
				DelegationDuplicateKeys: 2,
				DelegationExcess:        3,
				TotalUnique:             3,
			},
		},
		{
			name: "empty inputs",
			want: Summary{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.delegation, tt.roster, tt.baseline)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSummarizeOrderIndependent(t *testing.T) {
	delegation := []string{"A1", "A2", "A2", "A3", "A4", "A4", "A4"}
	roster := []string{"A3", "A5", "A1", "A1"}

	want := Summarize(delegation, roster, 500)

	r := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		d := append([]string(nil), delegation...)
		b := append([]string(nil), roster...)
		r.Shuffle(len(d), func(i, j int) { d[i], d[j] = d[j], d[i] })
		r.Shuffle(len(b), func(i, j int) { b[i], b[j] = b[j], b[i] })
		assert.Equal(t, want, Summarize(d, b, 500))
	}
}

func TestSummarizeDoesNotMutateInputs(t *testing.T) {
	delegation := []string{"b", "a", "a"}
	roster := []string{"c", "a"}

	Summarize(delegation, roster, 0)

	assert.Equal(t, []string{"b", "a", "a"}, delegation)
	assert.Equal(t, []string{"c", "a"}, roster)
}

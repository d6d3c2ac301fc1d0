package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lacquerai/pricenews/internal/catalog"
)

func TestQuota(t *testing.T) {
	tests := []struct {
		name   string
		total  int
		n      int
		policy RemainderPolicy
		want   []int
	}{
		{"even split", 12, 3, RemainderTruncate, []int{4, 4, 4}},
		{"truncate remainder", 14, 3, RemainderTruncate, []int{4, 4, 4}},
		{"distribute remainder", 14, 3, RemainderDistribute, []int{5, 5, 4}},
		{"fewer than categories", 2, 3, RemainderTruncate, []int{0, 0, 0}},
		{"fewer than categories distributed", 2, 3, RemainderDistribute, []int{1, 1, 0}},
		{"no categories", 10, 0, RemainderTruncate, nil},
		{"negative total", -5, 3, RemainderDistribute, []int{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Quota(tt.total, tt.n, tt.policy))
		})
	}
}

func TestParseRemainderPolicy(t *testing.T) {
	for in, want := range map[string]RemainderPolicy{
		"":            RemainderTruncate,
		"truncate":    RemainderTruncate,
		"Distribute":  RemainderDistribute,
		" distribute": RemainderDistribute,
	} {
		got, err := ParseRemainderPolicy(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseRemainderPolicy("round-robin")
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrConfiguration)
}

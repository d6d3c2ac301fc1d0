package dataset

import (
	"strings"

	"github.com/lacquerai/pricenews/internal/catalog"
)

// RemainderPolicy decides what happens to the samples left over when the
// requested total is not a multiple of the category count.
type RemainderPolicy string

const (
	// RemainderTruncate gives every category total/n records and drops the rest.
	RemainderTruncate RemainderPolicy = "truncate"
	// RemainderDistribute hands the leftover records, one each, to the first
	// categories in declared order.
	RemainderDistribute RemainderPolicy = "distribute"
)

// ParseRemainderPolicy accepts "truncate" or "distribute", case-insensitively.
// An empty string means truncate.
func ParseRemainderPolicy(s string) (RemainderPolicy, error) {
	switch p := RemainderPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "", RemainderTruncate:
		return RemainderTruncate, nil
	case RemainderDistribute:
		return RemainderDistribute, nil
	default:
		return "", catalog.NewConfigurationError("unknown remainder policy %q (want truncate or distribute)", s)
	}
}

func (p RemainderPolicy) String() string {
	return string(p)
}

// Quota returns the number of records to draw for each of n categories.
func Quota(total, n int, policy RemainderPolicy) []int {
	if n <= 0 {
		return nil
	}

	per := total / n
	if per < 0 {
		per = 0
	}

	quotas := make([]int, n)
	for i := range quotas {
		quotas[i] = per
	}

	if policy == RemainderDistribute && total > 0 {
		for i := 0; i < total%n; i++ {
			quotas[i]++
		}
	}
	return quotas
}

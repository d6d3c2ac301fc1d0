package dataset

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/lacquerai/pricenews/internal/catalog"
)

const terminator = "."

func trimTerminator(s string) string {
	return strings.TrimSuffix(s, terminator)
}

// CategoryCount is the number of records carrying a category label.
type CategoryCount struct {
	Category string `json:"category" yaml:"category"`
	Count    int    `json:"count" yaml:"count"`
}

// Summary describes a set of records against a catalog.
type Summary struct {
	Total      int             `json:"total" yaml:"total"`
	Categories []CategoryCount `json:"categories" yaml:"categories"`
	// Unknown counts records whose label is not in the catalog.
	Unknown  int      `json:"unknown,omitempty" yaml:"unknown,omitempty"`
	Examples []Record `json:"examples" yaml:"examples"`
}

// Summarize counts records per category in catalog order and keeps the first
// examples records verbatim. Labels are matched exactly after the trailing
// period is removed.
func Summarize(records []Record, cat *catalog.Catalog, examples int) *Summary {
	counts := lo.CountValuesBy(records, Record.Label)

	summary := &Summary{
		Total: len(records),
		Categories: lo.Map(cat.Categories, func(c catalog.Category, _ int) CategoryCount {
			return CategoryCount{Category: c.Name, Count: counts[c.Name]}
		}),
	}

	known := lo.SumBy(summary.Categories, func(c CategoryCount) int { return c.Count })
	summary.Unknown = summary.Total - known

	if examples > len(records) {
		examples = len(records)
	}
	if examples > 0 {
		summary.Examples = append([]Record(nil), records[:examples]...)
	}
	return summary
}

// Count returns the number of records summarized for the named category.
func (s *Summary) Count(category string) int {
	c, _ := lo.Find(s.Categories, func(c CategoryCount) bool {
		return c.Category == category
	})
	return c.Count
}

// Check reports rows that break the dataset format: news must contain the
// ticker and end in exactly one period, change must be a catalog category
// followed by exactly one period, and the ticker must be in the catalog.
func Check(records []Record, cat *catalog.Catalog) []string {
	var problems []string
	add := func(row int, format string, args ...interface{}) {
		problems = append(problems, fmt.Sprintf("row %d: ", row+1)+fmt.Sprintf(format, args...))
	}

	for i, r := range records {
		if !cat.HasTicker(catalog.Ticker(r.Ticker)) {
			add(i, "ticker %q is not in the catalog", r.Ticker)
		}
		if !strings.Contains(r.News, r.Ticker) {
			add(i, "news does not mention ticker %q", r.Ticker)
		}
		if !endsWithSinglePeriod(r.News) {
			add(i, "news must end with exactly one period")
		}
		if !endsWithSinglePeriod(r.Change) {
			add(i, "change must end with exactly one period")
		}
		if _, ok := cat.Lookup(r.Label()); !ok {
			add(i, "change %q is not a catalog category", r.Change)
		}
	}
	return problems
}

func endsWithSinglePeriod(s string) bool {
	return strings.HasSuffix(s, terminator) && !strings.HasSuffix(s, terminator+terminator)
}

package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lacquerai/pricenews/internal/catalog"
	"github.com/lacquerai/pricenews/internal/testhelper"
)

func TestSummarize(t *testing.T) {
	records := []Record{
		{Ticker: "AAA", News: "AAA goes up.", Change: "Up."},
		{Ticker: "BBB", News: "BBB goes down.", Change: "Down."},
		{Ticker: "AAA", News: "AAA rises, again.", Change: "Up."},
		{Ticker: "AAA", News: "AAA goes sideways.", Change: "Sideways."},
	}

	s := Summarize(records, testhelper.SmallCatalog(), 2)

	assert.Equal(t, 4, s.Total)
	assert.Equal(t, []CategoryCount{{"Up", 2}, {"Down", 1}}, s.Categories)
	assert.Equal(t, 1, s.Unknown)
	assert.Equal(t, records[:2], s.Examples)
	assert.Equal(t, 2, s.Count("Up"))
	assert.Equal(t, 0, s.Count("Sideways"))
}

func TestSummarizeMatchesLabelsExactly(t *testing.T) {
	// Labels are compared whole, not by substring.
	records := []Record{
		{Ticker: "V", News: "V gains slightly.", Change: "Gains slightly."},
		{Ticker: "V", News: "V gains slightly strongly.", Change: "Gains slightly strongly."},
	}

	s := Summarize(records, catalog.Default(), 0)
	assert.Equal(t, 1, s.Count("Gains slightly"))
	assert.Equal(t, 1, s.Unknown)
	assert.Empty(t, s.Examples)
}

func TestSummarizeClampsExamples(t *testing.T) {
	records := []Record{{Ticker: "AAA", News: "AAA goes up.", Change: "Up."}}

	s := Summarize(records, testhelper.SmallCatalog(), 3)
	assert.Len(t, s.Examples, 1)
}

func TestSummarizeGeneratedDataset(t *testing.T) {
	g, err := New(catalog.Default(), NewRand(42))
	require.NoError(t, err)
	ds, err := g.Generate(1200)
	require.NoError(t, err)

	s := Summarize(ds.Records, catalog.Default(), 3)
	assert.Equal(t, 1200, s.Total)
	assert.Zero(t, s.Unknown)
	for _, c := range s.Categories {
		assert.Equal(t, 100, c.Count, c.Category)
	}
	assert.Equal(t, ds.Records[:3], s.Examples)
}

func TestCheck(t *testing.T) {
	records := []Record{
		{Ticker: "AAA", News: "AAA goes up.", Change: "Up."},
		{Ticker: "ZZZ", News: "ZZZ goes up.", Change: "Up."},
		{Ticker: "AAA", News: "BBB goes up..", Change: "Up"},
		{Ticker: "BBB", News: "BBB goes sideways.", Change: "Sideways."},
	}

	assert.Equal(t, []string{
		`row 2: ticker "ZZZ" is not in the catalog`,
		`row 3: news does not mention ticker "AAA"`,
		"row 3: news must end with exactly one period",
		"row 3: change must end with exactly one period",
		`row 4: change "Sideways." is not a catalog category`,
	}, Check(records, testhelper.SmallCatalog()))
}

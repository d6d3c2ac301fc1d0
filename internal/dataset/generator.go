// Package dataset synthesizes labeled financial-news records from a catalog
// and reads and writes them as CSV.
package dataset

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lacquerai/pricenews/internal/catalog"
)

// Record is one output row. News ends with a period and contains Ticker;
// Change is the category name followed by a period.
type Record struct {
	Ticker string `json:"ticker" yaml:"ticker"`
	News   string `json:"news" yaml:"news"`
	Change string `json:"change" yaml:"change"`
}

// Label returns the category name carried by the record.
func (r Record) Label() string {
	return trimTerminator(r.Change)
}

// Dataset is the shuffled result of a generation run.
type Dataset struct {
	Records   []Record
	Requested int
	// Quotas holds the per-category record counts in catalog order.
	Quotas []int
}

// Len is the realized number of records.
func (d *Dataset) Len() int {
	return len(d.Records)
}

// Dropped is the number of requested records that were not generated.
func (d *Dataset) Dropped() int {
	return d.Requested - len(d.Records)
}

// Generator draws balanced, shuffled records from a catalog.
type Generator struct {
	catalog *catalog.Catalog
	rng     Rand
	policy  RemainderPolicy
	logger  zerolog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithRemainderPolicy sets how leftover samples are handled. The default is
// RemainderTruncate.
func WithRemainderPolicy(p RemainderPolicy) Option {
	return func(g *Generator) {
		g.policy = p
	}
}

// WithLogger sets the logger used for run diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(g *Generator) {
		g.logger = l
	}
}

// New validates the catalog and returns a generator that samples from it
// using rng.
func New(cat *catalog.Catalog, rng Rand, opts ...Option) (*Generator, error) {
	if cat == nil {
		return nil, catalog.NewConfigurationError("catalog is required")
	}
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, catalog.NewConfigurationError("random source is required")
	}

	g := &Generator{
		catalog: cat,
		rng:     rng,
		policy:  RemainderTruncate,
		logger:  log.Logger,
	}
	for _, opt := range opts {
		opt(g)
	}

	policy, err := ParseRemainderPolicy(string(g.policy))
	if err != nil {
		return nil, err
	}
	g.policy = policy
	return g, nil
}

// Generate draws the per-category quota of records for total requested
// samples, then shuffles the whole collection once.
func (g *Generator) Generate(total int) (*Dataset, error) {
	if total <= 0 {
		return nil, catalog.NewConfigurationError("total samples must be positive, got %d", total)
	}

	quotas := Quota(total, len(g.catalog.Categories), g.policy)
	size := 0
	for _, q := range quotas {
		size += q
	}

	logger := g.logger.With().
		Int("requested", total).
		Int("categories", len(quotas)).
		Str("remainder", g.policy.String()).
		Logger()

	if size == 0 {
		logger.Warn().Msg("Requested samples are fewer than categories; dataset will be empty")
	} else if size < total {
		logger.Debug().Int("dropped", total-size).Msg("Dropping samples that do not divide evenly across categories")
	}

	records := make([]Record, 0, size)
	for i, cat := range g.catalog.Categories {
		change := cat.Name + "."
		for n := 0; n < quotas[i]; n++ {
			ticker := g.catalog.Tickers[g.rng.IntN(len(g.catalog.Tickers))]
			template := cat.Templates[g.rng.IntN(len(cat.Templates))]

			records = append(records, Record{
				Ticker: string(ticker),
				News:   catalog.Fill(template, ticker) + ".",
				Change: change,
			})
		}

		logger.Debug().Str("category", cat.Name).Int("quota", quotas[i]).Msg("Sampled category")
	}

	g.rng.Shuffle(len(records), func(i, j int) {
		records[i], records[j] = records[j], records[i]
	})

	logger.Debug().Int("records", len(records)).Msg("Generated dataset")

	return &Dataset{
		Records:   records,
		Requested: total,
		Quotas:    quotas,
	}, nil
}

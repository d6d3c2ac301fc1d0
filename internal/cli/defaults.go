package cli

// Default values for the generate command. They reproduce the reference
// dataset: 1200 records, 100 per category, shuffled with seed 42.
const (
	DefaultSamples    = 1200
	DefaultOutputFile = "dummy_financial_news_no_ticker.csv"
	DefaultSeed       = 42
	DefaultRemainder  = "truncate"
	DefaultExamples   = 3
)

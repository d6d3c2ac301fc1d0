package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lacquerai/pricenews/internal/dataset"
	"github.com/lacquerai/pricenews/internal/metrics"
	"github.com/lacquerai/pricenews/internal/style"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a shuffled, balanced dataset CSV",
	Long: `Generate a labeled dataset of financial-news headlines.

Every category receives samples / categories records (integer division). With
the default --remainder truncate, leftover samples are dropped, so 1205 samples
over 12 categories writes 1200 rows. Use --remainder distribute to give the
leftovers to the first categories instead.

The same --seed, catalog and --samples always produce a byte-identical file.`,
	Example: `
  pricenews generate                              # 1200 rows to dummy_financial_news_no_ticker.csv
  pricenews generate -n 600 -o train.csv --seed 7
  pricenews generate --catalog catalog.yaml --remainder distribute
  pricenews generate --output json                # machine-readable report`,
	Args: cobra.NoArgs,
	PreRun: func(cmd *cobra.Command, args []string) {
		bindGenerateFlags(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd)
	},
}

var (
	samples     int
	outFile     string
	seed        uint64
	remainder   string
	examples    int
	metricsFile string
)

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().IntVarP(&samples, "samples", "n", DefaultSamples, "total number of samples to request")
	generateCmd.Flags().StringVarP(&outFile, "out", "o", DefaultOutputFile, "CSV file to write")
	generateCmd.Flags().Uint64Var(&seed, "seed", DefaultSeed, "random seed")
	generateCmd.Flags().StringVar(&remainder, "remainder", DefaultRemainder, "leftover samples policy (truncate, distribute)")
	generateCmd.Flags().IntVar(&examples, "examples", DefaultExamples, "number of sample records to show in the report")
	generateCmd.Flags().StringVar(&metricsFile, "metrics-file", "", "write Prometheus metrics in textfile format to this path")

	bindGenerateFlags(generateCmd)
}

func bindGenerateFlags(cmd *cobra.Command) {
	_ = viper.BindPFlag("samples", cmd.Flags().Lookup("samples"))
	_ = viper.BindPFlag("out", cmd.Flags().Lookup("out"))
	_ = viper.BindPFlag("seed", cmd.Flags().Lookup("seed"))
	_ = viper.BindPFlag("remainder", cmd.Flags().Lookup("remainder"))
	_ = viper.BindPFlag("examples", cmd.Flags().Lookup("examples"))
	_ = viper.BindPFlag("metrics-file", cmd.Flags().Lookup("metrics-file"))
}

// GenerateReport describes a completed generation run
type GenerateReport struct {
	RunID      string           `json:"run_id" yaml:"run_id"`
	Output     string           `json:"output" yaml:"output"`
	Seed       uint64           `json:"seed" yaml:"seed"`
	Remainder  string           `json:"remainder" yaml:"remainder"`
	Requested  int              `json:"requested" yaml:"requested"`
	Written    int              `json:"written" yaml:"written"`
	Dropped    int              `json:"dropped" yaml:"dropped"`
	DurationMS int64            `json:"duration_ms" yaml:"duration_ms"`
	Summary    *dataset.Summary `json:"summary" yaml:"summary"`
}

func runGenerate(cmd *cobra.Command) error {
	start := time.Now()

	total := viper.GetInt("samples")
	out := viper.GetString("out")
	runSeed := viper.GetUint64("seed")

	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	policy, err := dataset.ParseRemainderPolicy(viper.GetString("remainder"))
	if err != nil {
		return err
	}

	gen, err := dataset.New(cat, dataset.NewRand(runSeed),
		dataset.WithRemainderPolicy(policy),
		dataset.WithLogger(log.Logger),
	)
	if err != nil {
		return err
	}

	var spin style.Spinner
	if isTextOutput() && !viper.GetBool("quiet") {
		spin = style.NewSpinner(cmd.ErrOrStderr())
		spin.SetSuffix(fmt.Sprintf("Generating %d samples", total))
		spin.Start()
	}

	ds, err := gen.Generate(total)
	if err == nil {
		err = dataset.WriteFile(out, ds.Records)
	}
	if spin != nil {
		spin.Stop()
	}
	if err != nil {
		return err
	}

	report := GenerateReport{
		RunID:      uuid.NewString(),
		Output:     out,
		Seed:       runSeed,
		Remainder:  policy.String(),
		Requested:  ds.Requested,
		Written:    ds.Len(),
		Dropped:    ds.Dropped(),
		DurationMS: time.Since(start).Milliseconds(),
		Summary:    dataset.Summarize(ds.Records, cat, viper.GetInt("examples")),
	}

	log.Info().
		Str("run_id", report.RunID).
		Str("output", out).
		Int("written", report.Written).
		Int("dropped", report.Dropped).
		Msg("Dataset written")

	if path := viper.GetString("metrics-file"); path != "" {
		if err := writeRunMetrics(path, report, time.Since(start)); err != nil {
			return err
		}
	}

	return printGenerateReport(cmd.OutOrStdout(), report, len(cat.Categories))
}

func writeRunMetrics(path string, report GenerateReport, elapsed time.Duration) error {
	rec := metrics.NewRecorder()
	for _, c := range report.Summary.Categories {
		rec.Generated(c.Category, c.Count)
	}
	rec.Dropped(report.Dropped)
	rec.Succeeded(elapsed, time.Now())

	if err := rec.WriteTextfile(path); err != nil {
		return &dataset.IOError{Op: "write metrics", Path: path, Err: err}
	}
	log.Debug().Str("path", path).Msg("Metrics written")
	return nil
}

func printGenerateReport(w io.Writer, report GenerateReport, categories int) error {
	switch viper.GetString("output") {
	case "json":
		return style.PrintJSON(w, report)
	case "yaml":
		return style.PrintYAML(w, report)
	}

	style.Success(w, fmt.Sprintf("Generated %d examples in %s", report.Written, style.FormatFilePath(report.Output)))
	if viper.GetBool("quiet") {
		return nil
	}

	if report.Written == 0 {
		style.Warning(w, fmt.Sprintf("%d samples is fewer than %d categories; the dataset is empty", report.Requested, categories))
	} else if report.Dropped > 0 {
		style.Warning(w, fmt.Sprintf("Dropped %d samples: %d is not a multiple of %d categories (use --remainder distribute to keep them)",
			report.Dropped, report.Requested, categories))
	}

	printSummary(w, report.Summary, categories)
	return nil
}

func printSummary(w io.Writer, summary *dataset.Summary, categories int) {
	rows := make([]style.DistributionRow, 0, len(summary.Categories))
	for _, c := range summary.Categories {
		rows = append(rows, style.DistributionRow{Label: c.Category, Count: c.Count})
	}

	fmt.Fprintf(w, "\n%s\n", style.Title(fmt.Sprintf("Category distribution (%d categories):", categories)))
	fmt.Fprint(w, style.RenderDistribution(rows))
	if summary.Unknown > 0 {
		style.Warning(w, fmt.Sprintf("%d records carry a label outside the catalog", summary.Unknown))
	}

	if len(summary.Examples) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s\n", style.Title("Sample examples:"))
	for _, ex := range summary.Examples {
		fmt.Fprintf(w, "\n%s", style.RenderExample(ex.News, ex.Change))
	}
}

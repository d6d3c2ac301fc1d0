package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lacquerai/pricenews/internal/catalog"
	"github.com/lacquerai/pricenews/internal/dataset"
	"github.com/lacquerai/pricenews/internal/style"
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Summarize and check a generated dataset",
	Long: `Read a dataset CSV and report its category distribution against the active
catalog.

Each row is checked: the news must mention the ticker and end in one period,
the change must be a catalog category followed by one period, and the ticker
must be in the catalog. The command fails if any row breaks these rules.`,
	Example: `
  pricenews inspect dummy_financial_news_no_ticker.csv
  pricenews inspect --catalog catalog.yaml --output json train.csv`,
	Args: cobra.ExactArgs(1),
	PreRun: func(cmd *cobra.Command, args []string) {
		bindInspectFlags(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInspect(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().Int("examples", DefaultExamples, "number of records to show")
}

// bindInspectFlags points the shared "examples" key at inspect's own flag.
func bindInspectFlags(cmd *cobra.Command) {
	_ = viper.BindPFlag("examples", cmd.Flags().Lookup("examples"))
}

// InspectReport is the result of checking a dataset file
type InspectReport struct {
	File     string           `json:"file" yaml:"file"`
	Valid    bool             `json:"valid" yaml:"valid"`
	Summary  *dataset.Summary `json:"summary" yaml:"summary"`
	Problems []string         `json:"problems,omitempty" yaml:"problems,omitempty"`
}

func runInspect(cmd *cobra.Command, path string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	records, err := dataset.ReadFile(path)
	if err != nil {
		return err
	}

	problems := dataset.Check(records, cat)
	report := InspectReport{
		File:     path,
		Valid:    len(problems) == 0,
		Summary:  dataset.Summarize(records, cat, viper.GetInt("examples")),
		Problems: problems,
	}

	if err := printInspectReport(cmd.OutOrStdout(), report, cat); err != nil {
		return err
	}
	if !report.Valid {
		return fmt.Errorf("%s: %d problems found", path, len(problems))
	}
	return nil
}

func printInspectReport(w io.Writer, report InspectReport, cat *catalog.Catalog) error {
	switch viper.GetString("output") {
	case "json":
		return style.PrintJSON(w, report)
	case "yaml":
		return style.PrintYAML(w, report)
	}

	fmt.Fprintf(w, "%s %s: %d records\n", style.InfoIcon(), style.FormatFilePath(report.File), report.Summary.Total)
	printSummary(w, report.Summary, len(cat.Categories))

	if len(report.Problems) > 0 {
		fmt.Fprintln(w)
		for _, p := range report.Problems {
			style.Warning(w, p)
		}
	} else if !viper.GetBool("quiet") {
		fmt.Fprintln(w)
		style.Success(w, "All rows pass format checks")
	}
	return nil
}

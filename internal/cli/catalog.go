package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lacquerai/pricenews/internal/catalog"
	"github.com/lacquerai/pricenews/internal/style"
)

// catalogCmd represents the catalog command
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Show the tickers and category templates used for generation",
	Long: `Print the active catalog: the built-in one, or the file given with --catalog.

Use --output yaml to dump the built-in catalog as a starting point for a custom
catalog file.`,
	Example: `
  pricenews catalog
  pricenews catalog --output yaml > catalog.yaml
  pricenews catalog --catalog catalog.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		return printCatalog(cmd.OutOrStdout(), cat)
	},
}

// catalogSchemaCmd prints the JSON Schema for catalog files
var catalogSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Output the JSON Schema for catalog files",
	Example: `
  pricenews catalog schema > catalog.schema.json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := catalog.Schema()
		if err != nil {
			return fmt.Errorf("error generating schema: %w", err)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogSchemaCmd)
}

func printCatalog(w io.Writer, cat *catalog.Catalog) error {
	switch viper.GetString("output") {
	case "json":
		return style.PrintJSON(w, cat)
	case "yaml":
		return style.PrintYAML(w, cat)
	}

	tickers := lo.Map(cat.Tickers, func(t catalog.Ticker, _ int) string { return string(t) })
	fmt.Fprintf(w, "%s\n  %s\n", style.Title(fmt.Sprintf("Tickers (%d):", len(tickers))), strings.Join(tickers, ", "))

	fmt.Fprintf(w, "\n%s\n", style.Title(fmt.Sprintf("Categories (%d, %d templates):", len(cat.Categories), cat.TemplateCount())))
	for _, c := range cat.Categories {
		fmt.Fprintf(w, "  %s\n", style.Render(style.AccentStyle, c.Name))
		for _, tpl := range c.Templates {
			fmt.Fprintf(w, "    - %s\n", tpl)
		}
	}
	return nil
}

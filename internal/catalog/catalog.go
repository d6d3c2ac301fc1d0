// Package catalog holds the ticker symbols and the price-movement categories,
// each with the sentence templates used to synthesize news headlines.
package catalog

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Placeholder marks the single point in a template where the ticker is substituted.
const Placeholder = "{ticker}"

// The generator appends the terminator to templates and category names, so
// neither may carry one already.
const terminator = "."

// Ticker is an opaque stock symbol such as "NVDA".
type Ticker string

// Category is a discretized price-movement outcome and the templates that
// describe it. The label text of a record is the category name.
type Category struct {
	Name      string   `json:"name" yaml:"name" jsonschema:"minLength=1,description=Label written to the change column"`
	Templates []string `json:"templates" yaml:"templates" jsonschema:"minItems=1,description=Sentences containing the {ticker} placeholder exactly once"`
}

// Catalog is the immutable input of a generation run.
type Catalog struct {
	Tickers    []Ticker   `json:"tickers" yaml:"tickers" jsonschema:"minItems=1"`
	Categories []Category `json:"categories" yaml:"categories" jsonschema:"minItems=1"`
}

// Fill substitutes the ticker into the template.
func Fill(template string, ticker Ticker) string {
	return strings.Replace(template, Placeholder, string(ticker), 1)
}

// CategoryNames returns the category names in declared order.
func (c *Catalog) CategoryNames() []string {
	return lo.Map(c.Categories, func(cat Category, _ int) string {
		return cat.Name
	})
}

// Lookup finds a category by exact name.
func (c *Catalog) Lookup(name string) (Category, bool) {
	return lo.Find(c.Categories, func(cat Category) bool {
		return cat.Name == name
	})
}

// HasTicker reports whether the ticker belongs to the catalog.
func (c *Catalog) HasTicker(t Ticker) bool {
	return lo.Contains(c.Tickers, t)
}

// TemplateCount is the total number of templates across all categories.
func (c *Catalog) TemplateCount() int {
	return lo.SumBy(c.Categories, func(cat Category) int {
		return len(cat.Templates)
	})
}

// Validate checks the catalog can be sampled from. All problems are collected
// into a single ConfigurationError.
func (c *Catalog) Validate() error {
	cerr := &ConfigurationError{}

	if len(c.Tickers) == 0 {
		cerr.add("ticker catalog is empty")
	}
	for i, t := range c.Tickers {
		if strings.TrimSpace(string(t)) == "" {
			cerr.add("tickers[%d] is empty", i)
		}
	}

	if len(c.Categories) == 0 {
		cerr.add("category catalog is empty")
	}
	for i, cat := range c.Categories {
		path := fmt.Sprintf("categories[%d]", i)
		if cat.Name == "" {
			cerr.add("%s.name is required", path)
		} else {
			path = fmt.Sprintf("category %q", cat.Name)
			if strings.HasSuffix(cat.Name, terminator) {
				cerr.add("%s name must not end with a period", path)
			}
		}

		if len(cat.Templates) == 0 {
			cerr.add("%s has no templates", path)
			continue
		}
		for j, tpl := range cat.Templates {
			switch n := strings.Count(tpl, Placeholder); n {
			case 1:
			case 0:
				cerr.add("%s template %d is missing the %s placeholder", path, j, Placeholder)
			default:
				cerr.add("%s template %d has %d %s placeholders, want exactly one", path, j, n, Placeholder)
			}
			if strings.HasSuffix(tpl, terminator) {
				cerr.add("%s template %d must not end with a period", path, j)
			}
		}
	}

	for _, dup := range lo.FindDuplicates(c.CategoryNames()) {
		if dup != "" {
			cerr.add("category %q is declared more than once", dup)
		}
	}

	return cerr.orNil()
}

// Package testhelper holds shared fixtures for package tests. Importing it
// silences zerolog unless PRICENEWS_TEST_LOG is set.
package testhelper

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lacquerai/pricenews/internal/catalog"
)

func init() {
	if testing.Testing() && os.Getenv("PRICENEWS_TEST_LOG") == "" {
		zerolog.SetGlobalLevel(zerolog.Disabled)
	}
}

// SmallCatalog is a two-ticker, two-category catalog. "Up" has two templates,
// the second containing a comma; "Down" has one.
func SmallCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		Tickers: []catalog.Ticker{"AAA", "BBB"},
		Categories: []catalog.Category{
			{Name: "Up", Templates: []string{"{ticker} goes up", "{ticker} rises, again"}},
			{Name: "Down", Templates: []string{"{ticker} goes down"}},
		},
	}
}

// WriteFile writes content under dir and returns the full path.
func WriteFile(t testing.TB, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

package cli

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lacquerai/pricenews/internal/catalog"
)

func TestCatalogCommandText(t *testing.T) {
	output, err := executeCommand(t, "--catalog", filepath.Join("testdata", "catalogs", "small.yaml"), "catalog")
	require.NoError(t, err)
	snaps.MatchSnapshot(t, output)
}

func TestCatalogCommandDefault(t *testing.T) {
	output, err := executeCommand(t, "catalog")
	require.NoError(t, err)
	assert.Contains(t, output, "Tickers (30):")
	assert.Contains(t, output, "Categories (12, 60 templates):")
	assert.Contains(t, output, "    - {ticker} ")
}

func TestCatalogCommandYAMLRoundTrip(t *testing.T) {
	output, err := executeCommand(t, "--output", "yaml", "catalog")
	require.NoError(t, err)

	cat, err := catalog.Parse([]byte(output))
	require.NoError(t, err)
	assert.Equal(t, catalog.Default(), cat)
}

func TestCatalogCommandJSON(t *testing.T) {
	output, err := executeCommand(t, "--output", "json", "--catalog", filepath.Join("testdata", "catalogs", "small.yaml"), "catalog")
	require.NoError(t, err)

	var cat catalog.Catalog
	require.NoError(t, json.Unmarshal([]byte(output), &cat))
	assert.Equal(t, []catalog.Ticker{"AAA", "BBB"}, cat.Tickers)
	assert.Equal(t, []string{"Up", "Down"}, cat.CategoryNames())
}

func TestCatalogCommandInvalid(t *testing.T) {
	_, err := executeCommand(t, "--catalog", filepath.Join("testdata", "catalogs", "empty_templates.yaml"), "catalog")
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrConfiguration)
}

func TestCatalogSchemaCommand(t *testing.T) {
	output, err := executeCommand(t, "catalog", "schema")
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(output), &doc))
	assert.Equal(t, "pricenews catalog", doc["title"])
	assert.Contains(t, doc, "$defs")
}

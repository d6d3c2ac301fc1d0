package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML catalog file and validates it.
//
// The file layout mirrors the Catalog struct:
//
//	tickers: [NVDA, AAPL]
//	categories:
//	  - name: Gains sharply
//	    templates:
//	      - "{ticker} jumps sharply after landmark deal"
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewConfigurationError("catalog file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}

	cat, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return cat, nil
}

// Parse decodes and validates a YAML catalog. Unknown keys are rejected.
func Parse(data []byte) (*Catalog, error) {
	var file struct {
		Tickers    []Ticker   `yaml:"tickers"`
		Categories []Category `yaml:"categories"`
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, NewConfigurationError("catalog document is empty")
		}
		return nil, NewConfigurationError("invalid catalog YAML: %v", err)
	}

	cat := &Catalog{Tickers: file.Tickers, Categories: file.Categories}
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return cat, nil
}

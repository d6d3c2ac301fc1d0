package catalog

import (
	"encoding/json"
	"reflect"

	"github.com/invopop/jsonschema"
	"github.com/stoewer/go-strcase"
)

// Schema returns the JSON Schema of a catalog document. Unknown keys are
// rejected, matching Parse.
func Schema() ([]byte, error) {
	r := &jsonschema.Reflector{
		KeyNamer: strcase.SnakeCase,
		Namer: func(t reflect.Type) string {
			return strcase.SnakeCase(t.Name())
		},
		ExpandedStruct: true,
	}

	s := r.Reflect(&Catalog{})
	s.Title = "pricenews catalog"
	s.Description = "Ticker symbols and price-movement categories used to generate news datasets."
	return json.MarshalIndent(s, "", "  ")
}

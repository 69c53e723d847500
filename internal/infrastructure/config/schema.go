package config

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"

	"github.com/bnema/vitrine/internal/domain/entity"
)

// PreferenceSchema returns the JSON schema of the persisted preference record,
// with the theme field restricted to the configured palette set.
func PreferenceSchema(themes entity.ThemeSet) ([]byte, error) {
	r := &jsonschema.Reflector{
		DoNotReference:             true,
		RequiredFromJSONSchemaTags: false,
	}
	schema := r.Reflect(&entity.PreferenceRecord{})

	schema.ID = "https://github.com/bnema/vitrine/preference.schema.json"
	schema.Title = "Vitrine Appearance Preference"
	schema.Description = "Persisted palette and light/dark mode of a visitor"

	if prop, ok := schema.Properties.Get("theme"); ok {
		prop.Enum = make([]any, 0, themes.Len())
		for _, id := range themes.IDs() {
			prop.Enum = append(prop.Enum, string(id))
		}
	}

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// ConfigSchema returns the JSON schema of the configuration file.
func ConfigSchema() ([]byte, error) {
	r := new(jsonschema.Reflector)
	schema := r.Reflect(&Config{})
	schema.Title = "Vitrine Configuration"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

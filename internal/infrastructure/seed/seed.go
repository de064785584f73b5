// Package seed decodes the embedded YAML seed documents of the persistence
// façades.
package seed

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Decode reads a YAML document into out using out's JSON field tags, so seed
// files use the same names as the stored JSON. Timestamps must be quoted.
func Decode(data []byte, out any) error {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("invalid seed yaml: %w", err)
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("seed is not json compatible: %w", err)
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("seed does not match target: %w", err)
	}
	return nil
}

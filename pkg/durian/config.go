package durian

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Overrides maps fully-qualified capability names to factory names.
type Overrides map[string]string

// overridesFile is the on-disk schema for plugin overrides.
type overridesFile struct {
	Plugins map[string]string `yaml:"plugins" json:"plugins"`
}

// OverridesFromFile loads plugin overrides from a file, auto-detecting format
// by extension. Supported extensions: .yaml, .yml, .json
func OverridesFromFile(path string) (Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read overrides file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return OverridesFromYAML(data)
	case ".json":
		return OverridesFromJSON(data)
	default:
		return nil, fmt.Errorf("unsupported overrides file extension: %s", ext)
	}
}

// OverridesFromYAML parses YAML data into Overrides.
func OverridesFromYAML(data []byte) (Overrides, error) {
	var f overridesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return Overrides(f.Plugins), nil
}

// OverridesFromJSON parses JSON data into Overrides.
func OverridesFromJSON(data []byte) (Overrides, error) {
	var f overridesFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return Overrides(f.Plugins), nil
}

// LoadOverrides reads an overrides file and applies every entry to the
// registry. Part of startup wiring: entries only affect capabilities that
// have not yet resolved, and factory names are checked when the capability
// resolves, not here.
func LoadOverrides(r *Registry, path string) error {
	overrides, err := OverridesFromFile(path)
	if err != nil {
		return err
	}
	for capability, factory := range overrides {
		r.SetOverride(capability, factory)
	}
	return nil
}

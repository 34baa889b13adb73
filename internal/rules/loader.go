package rules

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// OverlayFileName is the name of the dataset overlay file.
const OverlayFileName = "zoning.yaml"

// OverlayFileNameAlt is the alternate name of the dataset overlay file.
const OverlayFileNameAlt = "zoning.yml"

// Load builds the rule table from the built-in dataset, with an optional
// YAML overlay merged on top key by key from dir. An empty dir or a dir
// without an overlay file loads the built-ins alone; a malformed overlay
// is a configuration error that must abort startup, never a per-request
// condition.
func Load(dir string) (*Table, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(builtinDataset(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load built-in zoning dataset: %w", err)
	}

	if dir != "" {
		if path := findOverlayFile(dir); path != "" {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load zoning overlay %s: %w", path, err)
			}
		}
	}

	var spec datasetSpec
	if err := k.Unmarshal("", &spec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal zoning dataset: %w", err)
	}

	table, err := buildTable(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid zoning dataset: %w", err)
	}

	return table, nil
}

// findOverlayFile finds the overlay file in the given directory.
// Returns empty string if not found.
func findOverlayFile(dir string) string {
	yamlPath := filepath.Join(dir, OverlayFileName)
	if _, err := os.Stat(yamlPath); err == nil {
		return yamlPath
	}

	ymlPath := filepath.Join(dir, OverlayFileNameAlt)
	if _, err := os.Stat(ymlPath); err == nil {
		return ymlPath
	}

	return ""
}

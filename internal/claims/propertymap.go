// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package claims orchestrates harvesting: it loads the property map,
// drains the endpoint per property, and writes the per-property CSVs.
package claims

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/ror-wikidata-claims/pkg/types"
)

// LoadPropertyMap reads a property-map file: a flat mapping from
// Wikidata property IDs to display labels. JSON is the default format;
// files ending in .yaml or .yml are parsed as YAML. The result is
// ordered by property ID so runs are deterministic.
func LoadPropertyMap(path string) ([]types.PropertySpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading property map: %w", err)
	}

	mapping := make(map[string]string)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &mapping); err != nil {
			return nil, fmt.Errorf("parsing property map %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &mapping); err != nil {
			return nil, fmt.Errorf("parsing property map %s: %w", path, err)
		}
	}

	if len(mapping) == 0 {
		return nil, fmt.Errorf("property map %s contains no properties", path)
	}

	ids := make([]string, 0, len(mapping))
	for id := range mapping {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	specs := make([]types.PropertySpec, 0, len(ids))
	for _, id := range ids {
		label := strings.TrimSpace(mapping[id])
		if strings.TrimSpace(id) == "" || label == "" {
			return nil, fmt.Errorf("property map %s: entry %q → %q has a blank ID or label", path, id, mapping[id])
		}
		specs = append(specs, types.PropertySpec{ID: id, Label: label})
	}
	return specs, nil
}

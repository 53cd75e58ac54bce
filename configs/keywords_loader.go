package config

import (
	"fmt"
	"os"

	"smart-assets-api/pkg/models"

	"gopkg.in/yaml.v3"
)

// LoadKeywordTables reads interpreter keyword tables from a YAML file.
// Sections missing from the file are left empty so callers can merge them over defaults.
func LoadKeywordTables(path string) (*models.KeywordTables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read keywords file %s: %w", path, err)
	}
	return ParseKeywordTables(data)
}

// ParseKeywordTables decodes YAML keyword tables.
func ParseKeywordTables(data []byte) (*models.KeywordTables, error) {
	var tables models.KeywordTables
	if err := yaml.Unmarshal(data, &tables); err != nil {
		return nil, fmt.Errorf("failed to parse keywords YAML: %w", err)
	}
	for i, loc := range tables.Locations {
		if loc.Keyword == "" || loc.City == "" {
			return nil, fmt.Errorf("locations[%d]: keyword and city are required", i)
		}
	}
	for i, category := range tables.AssetTypes {
		if category.Name == "" {
			return nil, fmt.Errorf("asset_types[%d]: name is required", i)
		}
	}
	return &tables, nil
}

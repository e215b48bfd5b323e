package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"MarketAnalytic/internal/model"
)

type fileCatalog struct {
	Platforms []struct {
		ID       string          `yaml:"id"`
		Name     string          `yaml:"name"`
		Products []model.Product `yaml:"products"`
	} `yaml:"platforms"`
}

// LoadFile reads a catalog from a YAML file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML catalog document.
func Parse(data []byte) (*Catalog, error) {
	var fc fileCatalog
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(fc.Platforms) == 0 {
		return nil, fmt.Errorf("parse catalog: no platforms")
	}
	entries := make([]PlatformEntry, 0, len(fc.Platforms))
	for _, p := range fc.Platforms {
		entries = append(entries, PlatformEntry{
			Platform: model.Platform{ID: p.ID, Name: p.Name},
			Products: p.Products,
		})
	}
	c, err := New(entries)
	if err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return c, nil
}

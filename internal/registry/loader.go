package registry

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/catalog.yaml
var defaultCatalogYAML []byte

// Load reads and validates the creature catalog.
// Search order: customPath -> ~/.typecatch/configs/catalog.yaml -> ./configs/catalog.yaml -> embedded default
func Load(customPath string) (*Catalog, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog %s: %w", customPath, err)
		}
		cat, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("catalog %s: %w", customPath, err)
		}
		return cat, nil
	}

	for _, p := range []string{userCatalogPath(), filepath.Join("configs", "catalog.yaml")} {
		if p == "" {
			continue
		}
		if data, err := os.ReadFile(p); err == nil {
			if cat, err := Parse(data); err == nil {
				return cat, nil
			}
		}
	}

	return Default()
}

// Default returns the embedded catalog.
func Default() (*Catalog, error) {
	cat, err := Parse(defaultCatalogYAML)
	if err != nil {
		return nil, fmt.Errorf("embedded catalog: %w", err)
	}
	return cat, nil
}

// Parse decodes a YAML catalog and validates it.
func Parse(data []byte) (*Catalog, error) {
	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return &cat, nil
}

func userCatalogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".typecatch", "configs", "catalog.yaml")
}

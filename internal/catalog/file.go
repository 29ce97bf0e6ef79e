package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// yamlCatalog represents the catalog file structure.
type yamlCatalog struct {
	Services []Service `yaml:"services"`
}

// LoadFile reads a YAML catalog file and returns its validated services.
func LoadFile(path string) ([]Service, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var doc yamlCatalog
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	if err := validate(doc.Services); err != nil {
		return nil, err
	}
	return doc.Services, nil
}

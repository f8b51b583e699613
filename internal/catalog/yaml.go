package catalog

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	appErrors "drawer/internal/errors"

	"go.yaml.in/yaml/v3"
)

// yamlFile is the on-disk layout of a YAML catalog:
//
//	apps:
//	  - package: org.example.maps
//	    name: Maps
type yamlFile struct {
	Apps []App `yaml:"apps"`
}

type yamlSource struct {
	path string
}

// NewYAMLSource returns a Source reading the YAML catalog at path.
func NewYAMLSource(path string) Source {
	return &yamlSource{path: strings.TrimSpace(path)}
}

func (s *yamlSource) List(ctx context.Context) ([]App, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := requireFile(s.path); err != nil {
		return nil, err
	}
	//nolint:gosec // G304: catalog path comes from config or flags
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, unreadable(s.path, err)
	}
	return parseYAML(s.path, data)
}

func parseYAML(path string, data []byte) ([]App, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	var doc yamlFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, appErrors.Wrapf(appErrors.CodeCatalogFormat, err, "parse %s", path)
	}
	return doc.Apps, nil
}

// MarshalYAML renders apps in the YAML catalog layout.
func MarshalYAML(apps []App) ([]byte, error) {
	out, err := yaml.Marshal(yamlFile{Apps: apps})
	if err != nil {
		return nil, fmt.Errorf("marshal catalog: %w", err)
	}
	return out, nil
}

// Package catalog reads option catalogs from disk and watches them for changes.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"selectdrop/internal/domain"
)

// ErrUnsupportedFormat is returned for catalog files that are neither TOML nor YAML
var ErrUnsupportedFormat = errors.New("unsupported catalog format")

// tomlCatalog is the on-disk TOML layout:
//
//	[[options]]
//	label = "Javascript"
//	value = "javascript"
type tomlCatalog struct {
	Options []domain.Option `toml:"options"`
}

// Load reads a catalog file. The format is chosen by extension.
func Load(path string) ([]domain.Option, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(data, filepath.Ext(path))
}

// Parse decodes catalog data; ext is a file extension such as ".yaml"
func Parse(data []byte, ext string) ([]domain.Option, error) {
	switch strings.ToLower(ext) {
	case ".toml":
		var c tomlCatalog
		if err := toml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("failed to parse catalog: %w", err)
		}
		return nonNil(c.Options), nil
	case ".yaml", ".yml":
		var options []domain.Option
		if err := yaml.Unmarshal(data, &options); err != nil {
			return nil, fmt.Errorf("failed to parse catalog: %w", err)
		}
		return nonNil(options), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

func nonNil(options []domain.Option) []domain.Option {
	if options == nil {
		return []domain.Option{}
	}
	return options
}

// Builtin is the catalog used when no file is configured
func Builtin() []domain.Option {
	return []domain.Option{
		{Label: "Javascript", Value: "javascript"},
		{Label: "Typescript", Value: "typescript"},
		{Label: "Nextjs", Value: "nextjs"},
		{Label: "Reactjs", Value: "reactjs"},
		{Label: "Spring Boot", Value: "spring_boot"},
		{Label: "Nodejs", Value: "nodejs"},
		{Label: "PostgreSQL", Value: "postgresql"},
	}
}

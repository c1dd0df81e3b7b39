package product

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a supported file encoding for configurations and catalogs
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the encoding from the file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unsupported file type: %s (expected .toml, .yaml or .json)", filepath.Ext(path))
}

func decode(r io.Reader, format Format, v any) error {
	switch format {
	case FormatTOML:
		_, err := toml.NewDecoder(r).Decode(v)
		return err
	case FormatYAML:
		err := yaml.NewDecoder(r).Decode(v)
		if err == io.EOF {
			return nil
		}
		return err
	case FormatJSON:
		return json.NewDecoder(r).Decode(v)
	}
	return fmt.Errorf("unsupported format: %q", format)
}

// DecodeConfiguration reads a configuration. Fields missing from the input
// keep the values of DefaultConfiguration.
func DecodeConfiguration(r io.Reader, format Format) (Configuration, error) {
	cfg := DefaultConfiguration()
	if err := decode(r, format, &cfg); err != nil {
		return Configuration{}, fmt.Errorf("failed to decode configuration: %w", err)
	}
	return cfg, nil
}

// LoadConfiguration reads a configuration file
func LoadConfiguration(path string) (Configuration, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Configuration{}, err
	}

	file, err := os.Open(path)
	if err != nil {
		return Configuration{}, fmt.Errorf("failed to open configuration: %w", err)
	}
	defer file.Close()

	return DecodeConfiguration(file, format)
}

// DecodeCatalog reads catalog tables and indexes them
func DecodeCatalog(r io.Reader, format Format) (*Catalog, error) {
	var cat Catalog
	if err := decode(r, format, &cat); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	if len(cat.Colors) == 0 {
		return nil, fmt.Errorf("catalog has no colors")
	}
	cat.reindex()
	return &cat, nil
}

// LoadCatalog reads a catalog file
func LoadCatalog(path string) (*Catalog, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer file.Close()

	return DecodeCatalog(file, format)
}

func encode(w io.Writer, format Format, v any) error {
	switch format {
	case FormatTOML:
		return toml.NewEncoder(w).Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(v)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	return fmt.Errorf("unsupported format: %q", format)
}

// WriteConfiguration encodes cfg in the given format
func WriteConfiguration(w io.Writer, cfg Configuration, format Format) error {
	return encode(w, format, cfg)
}

// WriteCatalog encodes the catalog tables in the given format
func WriteCatalog(w io.Writer, cat *Catalog, format Format) error {
	return encode(w, format, cat)
}

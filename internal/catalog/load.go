package catalog

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// LoadFile reads a catalog from a YAML, JSON or TOML file, normalizes and validates it.
func LoadFile(path string) (Catalog, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Catalog{}, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return decode(v, path)
}

// Decode reads a catalog in the given format ("yaml", "json", "toml").
// name only labels errors.
func Decode(r io.Reader, format, name string) (Catalog, error) {
	v := viper.New()
	v.SetConfigType(format)
	if err := v.ReadConfig(r); err != nil {
		return Catalog{}, fmt.Errorf("read catalog %s: %w", name, err)
	}
	return decode(v, name)
}

// FormatOf returns the viper config type implied by a file or object key.
func FormatOf(name string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if ext == "yml" {
		return "yaml"
	}
	return ext
}

func decode(v *viper.Viper, name string) (Catalog, error) {
	var cat Catalog
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cat,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return Catalog{}, err
	}
	raw := map[string]any{
		"skills": v.Get("skills"),
		"jobs":   v.Get("jobs"),
	}
	if err := dec.Decode(raw); err != nil {
		return Catalog{}, fmt.Errorf("decode catalog %s: %w", name, err)
	}

	if err := cat.Validate(); err != nil {
		return Catalog{}, fmt.Errorf("catalog %s: %w", name, err)
	}
	return cat.Normalize(), nil
}

// Resolve returns the catalog at path, or the built-in one when path is blank.
func Resolve(path string) (Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and declares a catalog from a YAML file.
func Load(path string, funcs Funcs) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Op: "config.load", Path: path, Err: errors.Join(ErrNotFound, err)}
	}
	return parse(path, b, funcs)
}

// Parse declares a catalog from YAML bytes.
func Parse(b []byte, funcs Funcs) (*Catalog, error) {
	return parse("", b, funcs)
}

func parse(path string, b []byte, funcs Funcs) (*Catalog, error) {
	var dto YAMLCatalog
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return nil, &Error{Op: "config.parse", Path: path, Err: errors.Join(ErrInvalidConfig, err)}
	}
	return MapCatalog(path, dto, funcs)
}

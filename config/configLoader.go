package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/sunwei/docs-playground/parser/metadecoders"
)

var (
	ValidConfigFileExtensions = []string{"toml", "yaml", "yml", "json", "xml"}
)

// IsValidConfigFilename returns whether filename is one of the supported
// config formats.
func IsValidConfigFilename(filename string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	for _, valid := range ValidConfigFileExtensions {
		if ext == valid {
			return true
		}
	}
	return false
}

// FromFile loads the configuration from the given filename.
func FromFile(fs afero.Fs, filename string) (Provider, error) {
	m, err := metadecoders.Default.UnmarshalFileToMap(fs, filename)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %q: %w", filename, err)
	}
	return NewFrom(m), nil
}

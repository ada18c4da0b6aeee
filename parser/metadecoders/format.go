package metadecoders

import (
	"path/filepath"
	"strings"
)

type Format string

const (
	// These are the supported metadata formats.

	JSON Format = "json"
	TOML Format = "toml"
	YAML Format = "yaml"
	XML  Format = "xml"
)

// FormatFromString turns formatStr, typically a file extension without any ".",
// into a Format. It returns an empty string for unknown formats.
func FormatFromString(formatStr string) Format {
	formatStr = strings.ToLower(formatStr)
	if strings.Contains(formatStr, ".") {
		// Assume a filename
		formatStr = strings.TrimPrefix(filepath.Ext(formatStr), ".")
	}
	switch formatStr {
	case "yaml", "yml":
		return YAML
	case "json":
		return JSON
	case "toml":
		return TOML
	case "xml":
		return XML
	}

	return ""
}

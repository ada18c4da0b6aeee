package docsconf

import (
	"errors"
	"fmt"
	"strings"
)

// Problem describes one violated constraint.
type Problem struct {
	// The setting key, e.g. "project" or "source_suffix[1]".
	Field  string
	Reason string
}

func (p Problem) String() string {
	return p.Field + ": " + p.Reason
}

// ConfigError is returned when a documentation config is malformed.
// The documentation build cannot proceed with it.
type ConfigError struct {
	// Filename is the config file the values were read from, if any.
	Filename string
	Problems []Problem
}

func (e *ConfigError) Error() string {
	var sb strings.Builder
	sb.WriteString("invalid documentation config")
	if e.Filename != "" {
		fmt.Fprintf(&sb, " %q", e.Filename)
	}
	sb.WriteString(": ")
	for i, p := range e.Problems {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(p.String())
	}
	return sb.String()
}

// Has reports whether a problem was recorded for field.
func (e *ConfigError) Has(field string) bool {
	for _, p := range e.Problems {
		if p.Field == field || strings.HasPrefix(p.Field, field+"[") {
			return true
		}
	}
	return false
}

func (e *ConfigError) add(field, format string, args ...any) {
	e.Problems = append(e.Problems, Problem{Field: field, Reason: fmt.Sprintf(format, args...)})
}

// IsConfigError reports whether err is or wraps a *ConfigError.
func IsConfigError(err error) bool {
	var cerr *ConfigError
	return errors.As(err, &cerr)
}

package docsconf

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/sunwei/docs-playground/hugofs/glob"
)

// Validate checks c and returns a *ConfigError describing every violated
// constraint, or nil if c is valid.
func (c DocumentationConfig) Validate() error {
	cerr := &ConfigError{}

	requireString(cerr, KeyProject, c.Project)
	requireString(cerr, KeyCopyright, c.Copyright)
	requireString(cerr, KeyAuthor, c.Author)
	requireString(cerr, KeyHTMLTheme, c.HTMLTheme)

	requireEntries(cerr, KeyExtensions, c.Extensions, nil)
	requireEntries(cerr, KeyTemplatesPath, c.TemplatesPath, checkRelative)
	requireEntries(cerr, KeyExcludePatterns, c.ExcludePatterns, checkPattern)
	requireEntries(cerr, KeyHTMLStaticPath, c.HTMLStaticPath, checkRelative)
	requireEntries(cerr, KeySourceSuffix, c.SourceSuffix, checkSuffix)

	if len(cerr.Problems) == 0 {
		return nil
	}
	return cerr
}

func requireString(cerr *ConfigError, key, v string) {
	if strings.TrimSpace(v) == "" {
		cerr.add(key, "must not be empty")
	}
}

func requireEntries(cerr *ConfigError, key string, vs []string, check func(string) string) {
	for i, v := range vs {
		field := fmt.Sprintf("%s[%d]", key, i)
		if strings.TrimSpace(v) == "" {
			cerr.add(field, "must not be empty")
			continue
		}
		if check == nil {
			continue
		}
		if reason := check(v); reason != "" {
			cerr.add(field, "%s", reason)
		}
	}
}

func checkRelative(v string) string {
	if filepath.IsAbs(v) || path.IsAbs(filepath.ToSlash(v)) {
		return fmt.Sprintf("%q must be a relative path", v)
	}
	return ""
}

func checkPattern(v string) string {
	if filepath.IsAbs(v) || path.IsAbs(filepath.ToSlash(v)) {
		return fmt.Sprintf("%q must be a relative pattern", v)
	}
	if _, err := glob.GetGlob(v); err != nil {
		return fmt.Sprintf("invalid pattern %q: %s", v, err)
	}
	return ""
}

func checkSuffix(v string) string {
	if !strings.HasPrefix(v, ".") || len(v) < 2 {
		return fmt.Sprintf("%q must start with a \".\" followed by an extension", v)
	}
	return ""
}

package docsconf

import (
	"path/filepath"
	"strings"

	"github.com/sunwei/docs-playground/hugofs/glob"
)

// SourceExcludes returns the patterns excluded from source discovery:
// the exclude patterns plus the template and static dirs, which hold
// no documents.
func (c DocumentationConfig) SourceExcludes() []string {
	var excludes []string
	excludes = append(excludes, c.ExcludePatterns...)
	excludes = append(excludes, c.TemplatesPath...)
	excludes = append(excludes, c.HTMLStaticPath...)
	return excludes
}

// ExcludeFilter compiles SourceExcludes into a filter.
func (c DocumentationConfig) ExcludeFilter() (*glob.FilenameFilter, error) {
	excludes := c.SourceExcludes()
	if len(excludes) == 0 {
		return nil, nil
	}
	return glob.NewFilenameFilter(excludes)
}

// IsExcluded reports whether the path p, relative to the project dir,
// is skipped when looking for sources.
// Invalid patterns never match, Validate reports them.
func (c DocumentationConfig) IsExcluded(p string) bool {
	var valid []string
	for _, pattern := range c.SourceExcludes() {
		if _, err := glob.GetGlob(pattern); err == nil {
			valid = append(valid, pattern)
		}
	}
	f, _ := glob.NewFilenameFilter(valid)
	return f.Excluded(p)
}

// SourceSuffixOf returns the source suffix name ends with, and whether there
// is one. The longest matching suffix wins, so ".rst.txt" beats ".txt".
func (c DocumentationConfig) SourceSuffixOf(name string) (string, bool) {
	base := filepath.Base(name)
	var match string
	for _, suffix := range c.SourceSuffix {
		if suffix == "" || len(base) <= len(suffix) {
			continue
		}
		if strings.HasSuffix(base, suffix) && len(suffix) > len(match) {
			match = suffix
		}
	}
	return match, match != ""
}

// IsSourceFile reports whether name has one of the source suffixes.
func (c DocumentationConfig) IsSourceFile(name string) bool {
	_, ok := c.SourceSuffixOf(name)
	return ok
}

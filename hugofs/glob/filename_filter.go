package glob

import (
	"path"
	"strings"

	"github.com/gobwas/glob"
)

// FilenameFilter matches relative paths against a set of exclusion globs.
type FilenameFilter struct {
	exclusions []glob.Glob
}

// NewFilenameFilter compiles exclusions into a filter.
// It returns a nil filter, which excludes nothing, for no exclusions.
func NewFilenameFilter(exclusions []string) (*FilenameFilter, error) {
	if len(exclusions) == 0 {
		return nil, nil
	}
	filter := &FilenameFilter{}

	for _, exclude := range exclusions {
		g, err := GetGlob(exclude)
		if err != nil {
			return nil, err
		}
		filter.exclusions = append(filter.exclusions, g)
	}

	return filter, nil
}

// Excluded reports whether filename, or any of its parent directories,
// matches one of the exclusion globs. A path relative to the project root
// like "_build/html/index.html" is excluded by the pattern "_build".
func (f *FilenameFilter) Excluded(filename string) bool {
	if f == nil || len(f.exclusions) == 0 {
		return false
	}
	p := NormalizePath(filename)
	if p == "" {
		return false
	}
	for {
		for _, exclusion := range f.exclusions {
			if exclusion.Match(p) || exclusion.Match(path.Base(p)) {
				return true
			}
		}
		i := strings.LastIndex(p, "/")
		if i < 0 {
			return false
		}
		p = p[:i]
	}
}

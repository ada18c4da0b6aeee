package source

import (
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/sunwei/docs-playground/common/loggers"
	"github.com/sunwei/docs-playground/docsconf"
	"github.com/sunwei/docs-playground/hugofs/glob"
)

// SourceSpec decides which files in a documentation project are sources.
type SourceSpec struct {
	SourceFs afero.Fs
	Conf     docsconf.DocumentationConfig

	exclusions *glob.FilenameFilter
	logger     loggers.Logger
}

// NewSourceSpec creates a SourceSpec for conf reading from fs.
func NewSourceSpec(conf docsconf.DocumentationConfig, fs afero.Fs, logger loggers.Logger) (*SourceSpec, error) {
	exclusions, err := conf.ExcludeFilter()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = loggers.NewErrorLogger()
	}

	return &SourceSpec{
		SourceFs:   fs,
		Conf:       conf,
		exclusions: exclusions,
		logger:     logger,
	}, nil
}

// IgnoreFile returns whether a given file should be ignored.
// relPath is relative to the source root.
func (s *SourceSpec) IgnoreFile(relPath string) bool {
	if relPath == "" {
		return false
	}

	base := filepath.Base(relPath)

	if len(base) > 0 {
		first := base[0]
		last := base[len(base)-1]
		if first == '#' ||
			last == '~' {
			return true
		}
	}

	return s.exclusions.Excluded(relPath)
}

package source

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/spf13/afero"
)

// Filesystem represents a source filesystem.
type Filesystem struct {
	files        []File
	filesInit    sync.Once
	filesInitErr error

	Base string

	*SourceSpec
}

// NewFilesystem creates a Filesystem rooted at base.
func (sp *SourceSpec) NewFilesystem(base string) *Filesystem {
	return &Filesystem{SourceSpec: sp, Base: base}
}

// Files returns the source files, sorted by path.
// The file system is walked once.
func (f *Filesystem) Files() ([]File, error) {
	f.filesInit.Do(func() {
		err := f.captureFiles()
		if err != nil {
			f.filesInitErr = fmt.Errorf("capture files: %w", err)
		}
	})
	return f.files, f.filesInitErr
}

func (f *Filesystem) captureFiles() error {
	walker := func(filename string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(f.Base, filename)
		if err != nil {
			return err
		}
		if relPath == "." {
			return nil
		}
		relPath = filepath.ToSlash(relPath)

		b, err := f.shouldRead(relPath, fi)
		if err != nil {
			return err
		}

		if b {
			f.add(filename, relPath)
		}

		return nil
	}

	if err := afero.Walk(f.SourceFs, f.Base, walker); err != nil {
		return err
	}

	sort.Slice(f.files, func(i, j int) bool {
		return f.files[i].Path() < f.files[j].Path()
	})

	f.logger.Info().Printf("Found %d source files in %q", len(f.files), f.Base)

	return nil
}

func (f *Filesystem) shouldRead(relPath string, fi os.FileInfo) (bool, error) {
	ignore := f.SourceSpec.IgnoreFile(relPath)

	if fi.IsDir() {
		if ignore {
			f.logger.Debug().Printf("Skip dir %q", relPath)
			return false, filepath.SkipDir
		}
		return false, nil
	}

	if ignore {
		f.logger.Debug().Printf("Skip file %q", relPath)
		return false, nil
	}

	return f.Conf.IsSourceFile(relPath), nil
}

// add populates a file in the Filesystem.files
func (f *Filesystem) add(filename, relPath string) {
	suffix, _ := f.Conf.SourceSuffixOf(relPath)
	f.files = append(f.files, newFileInfo(filename, relPath, suffix))
}

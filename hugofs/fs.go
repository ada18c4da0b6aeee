// Package hugofs provides the file systems used by the documentation tooling.
package hugofs

import (
	"github.com/spf13/afero"
)

// Os points to the (real) Os filesystem.
var Os = &afero.OsFs{}

// Fs holds the core filesystems used when reading a documentation project.
type Fs struct {
	// Source is the source file system.
	// Note that this will always be a "plain" Afero filesystem:
	// * afero.OsFs when running in production
	// * afero.MemMapFs for many of the tests.
	Source afero.Fs

	// WorkingDirReadOnly is a read-only file system
	// restricted to the project working dir.
	WorkingDirReadOnly afero.Fs

	// WorkingDir is the absolute project dir, empty for the Fs root.
	WorkingDir string
}

// NewDefault creates a new Fs with the OS file system
// as source.
func NewDefault(wd string) *Fs {
	return NewFrom(Os, wd)
}

// NewFrom creates a new Fs based on the provided Afero Fs
// as source file system.
// Useful for testing.
func NewFrom(fs afero.Fs, wd string) *Fs {
	return &Fs{
		Source:             fs,
		WorkingDirReadOnly: getWorkingDirFsReadOnly(fs, wd),
		WorkingDir:         wd,
	}
}

func getWorkingDirFsReadOnly(base afero.Fs, workingDir string) afero.Fs {
	if workingDir == "" {
		return afero.NewReadOnlyFs(base)
	}
	return afero.NewBasePathFs(afero.NewReadOnlyFs(base), workingDir)
}

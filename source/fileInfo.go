package source

import (
	"path"
	"strings"

	"github.com/sunwei/docs-playground/helpers"
)

// File represents a documentation source file.
type File interface {
	// Filename gets the path and filename to the file in the source
	// file system.
	Filename() string

	// Path gets the relative path including file name and suffix, using
	// forward slashes. The directory is relative to the source root.
	Path() string

	// Dir gets the name of the directory that contains this file,
	// relative to the source root. Empty for files in the root.
	Dir() string

	// Section is first directory below the source root.
	Section() string

	// Suffix is the source suffix the file matched, e.g. ".md".
	Suffix() string

	// DocName is the path without the source suffix, e.g. "guide/intro".
	// This is how documents refer to each other.
	DocName() string

	// UniqueID is the MD5 hash of the file's path.
	UniqueID() string
}

// FileInfo describes a source file.
type FileInfo struct {
	// Filename in the source file system.
	filename string

	relPath string
	suffix  string
}

func newFileInfo(filename, relPath, suffix string) *FileInfo {
	return &FileInfo{
		filename: filename,
		relPath:  relPath,
		suffix:   suffix,
	}
}

func (fi *FileInfo) Filename() string { return fi.filename }

func (fi *FileInfo) Path() string { return fi.relPath }

func (fi *FileInfo) Dir() string {
	dir := path.Dir(fi.relPath)
	if dir == "." {
		return ""
	}
	return dir
}

func (fi *FileInfo) Section() string {
	dir := fi.Dir()
	if i := strings.Index(dir, "/"); i >= 0 {
		return dir[:i]
	}
	return dir
}

func (fi *FileInfo) Suffix() string { return fi.suffix }

func (fi *FileInfo) DocName() string {
	return strings.TrimSuffix(fi.relPath, fi.suffix)
}

func (fi *FileInfo) UniqueID() string {
	return helpers.MD5String(fi.relPath)
}

func (fi *FileInfo) String() string { return fi.DocName() }

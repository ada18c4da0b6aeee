package glob

import (
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/gobwas/glob"
)

var (
	isWindows        = runtime.GOOS == "windows"
	defaultGlobCache = &globCache{
		isCaseSensitive: false,
		isWindows:       isWindows,
		cache:           make(map[string]globErr),
	}
)

type globErr struct {
	glob glob.Glob
	err  error
}

type globCache struct {
	// Config
	isCaseSensitive bool
	isWindows       bool

	// Cache
	sync.RWMutex
	cache map[string]globErr
}

func (gc *globCache) GetGlob(pattern string) (glob.Glob, error) {
	var eg globErr

	gc.RLock()
	var found bool
	eg, found = gc.cache[pattern]
	gc.RUnlock()
	if found {
		return eg.glob, eg.err
	}

	var g glob.Glob
	var err error

	pattern = filepath.ToSlash(pattern)

	if gc.isCaseSensitive {
		g, err = glob.Compile(pattern, '/')
	} else {
		g, err = glob.Compile(strings.ToLower(pattern), '/')
	}

	eg = globErr{
		globDecorator{
			g:               g,
			isCaseSensitive: gc.isCaseSensitive,
			isWindows:       gc.isWindows},
		err,
	}

	gc.Lock()
	gc.cache[pattern] = eg
	gc.Unlock()

	return eg.glob, eg.err
}

type globDecorator struct {
	// Whether both pattern and the strings to match will be matched
	// by their original case.
	isCaseSensitive bool

	// On Windows we may get filenames with Windows slashes to match,
	// which we need to normalize.
	isWindows bool

	g glob.Glob
}

func (g globDecorator) Match(s string) bool {
	if g.isWindows {
		s = filepath.ToSlash(s)
	}
	if !g.isCaseSensitive {
		s = strings.ToLower(s)
	}
	return g.g.Match(s)
}

// GetGlob returns the compiled, cached glob for pattern.
// Matching is case insensitive.
func GetGlob(pattern string) (glob.Glob, error) {
	return defaultGlobCache.GetGlob(pattern)
}

// NormalizePath cleans path and uses forward slashes without
// leading or trailing separators.
func NormalizePath(p string) string {
	p = strings.ToLower(filepath.ToSlash(filepath.Clean(p)))
	if p == "." {
		return ""
	}
	return strings.Trim(p, "/")
}

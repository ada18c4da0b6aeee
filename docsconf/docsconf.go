// Package docsconf holds the configuration of a documentation project:
// project metadata, enabled extensions and the paths and patterns the
// documentation generator reads its sources and assets from.
package docsconf

import (
	"github.com/sunwei/docs-playground/common/maps"
	"github.com/sunwei/docs-playground/types"
)

// Setting keys as they appear in config files.
const (
	KeyProject         = "project"
	KeyCopyright       = "copyright"
	KeyAuthor          = "author"
	KeyExtensions      = "extensions"
	KeyTemplatesPath   = "templates_path"
	KeyExcludePatterns = "exclude_patterns"
	KeyHTMLTheme       = "html_theme"
	KeyHTMLStaticPath  = "html_static_path"
	KeySourceSuffix    = "source_suffix"
)

// Keys lists all recognized setting keys in declaration order.
var Keys = []string{
	KeyProject,
	KeyCopyright,
	KeyAuthor,
	KeyExtensions,
	KeyTemplatesPath,
	KeyExcludePatterns,
	KeyHTMLTheme,
	KeyHTMLStaticPath,
	KeySourceSuffix,
}

// DocumentationConfig configures a documentation build.
// A loaded value is never modified by this package; Load and the loaders
// hand out fresh slices so callers cannot alter each other's copy.
type DocumentationConfig struct {
	Project   string `mapstructure:"project"`
	Copyright string `mapstructure:"copyright"`
	Author    string `mapstructure:"author"`

	// Extension identifiers resolved by the documentation generator,
	// e.g. "myst_parser".
	Extensions []string `mapstructure:"extensions"`

	// Directories holding templates, relative to the project dir.
	TemplatesPath []string `mapstructure:"templates_path"`

	// Glob patterns, relative to the project dir, of files and
	// directories to skip when looking for sources.
	ExcludePatterns []string `mapstructure:"exclude_patterns"`

	HTMLTheme string `mapstructure:"html_theme"`

	// Directories with static assets copied into the HTML output.
	HTMLStaticPath []string `mapstructure:"html_static_path"`

	// File suffixes of source files, each starting with a ".".
	SourceSuffix []string `mapstructure:"source_suffix"`
}

// Load returns the project's documentation configuration.
func Load() DocumentationConfig {
	return DocumentationConfig{
		Project:         "ChiselStrike",
		Copyright:       "2021, ChiselStrike Inc.",
		Author:          "ChiselStrike Inc.",
		Extensions:      []string{"myst_parser"},
		TemplatesPath:   []string{"_templates"},
		ExcludePatterns: []string{"_build", "Thumbs.db", ".DS_Store"},
		HTMLTheme:       "alabaster",
		HTMLStaticPath:  []string{"_static"},
		SourceSuffix:    []string{".rst", ".md"},
	}
}

// Clone returns a deep copy of c.
func (c DocumentationConfig) Clone() DocumentationConfig {
	c.Extensions = types.CloneStrings(c.Extensions)
	c.TemplatesPath = types.CloneStrings(c.TemplatesPath)
	c.ExcludePatterns = types.CloneStrings(c.ExcludePatterns)
	c.HTMLStaticPath = types.CloneStrings(c.HTMLStaticPath)
	c.SourceSuffix = types.CloneStrings(c.SourceSuffix)
	return c
}

// ToParams returns c as a params map keyed by the setting keys.
func (c DocumentationConfig) ToParams() maps.Params {
	c = c.Clone()
	return maps.Params{
		KeyProject:         c.Project,
		KeyCopyright:       c.Copyright,
		KeyAuthor:          c.Author,
		KeyExtensions:      nonNil(c.Extensions),
		KeyTemplatesPath:   nonNil(c.TemplatesPath),
		KeyExcludePatterns: nonNil(c.ExcludePatterns),
		KeyHTMLTheme:       c.HTMLTheme,
		KeyHTMLStaticPath:  nonNil(c.HTMLStaticPath),
		KeySourceSuffix:    nonNil(c.SourceSuffix),
	}
}

// Encoders write nil slices as null, which would not survive a round trip
// through TOML.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

package glob

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetGlob(t *testing.T) {
	g, err := GetGlob("**.md")
	require.NoError(t, err)
	assert.True(t, g.Match("docs/Intro.MD"))
	assert.False(t, g.Match("docs/intro.rst"))

	_, err = GetGlob("[")
	assert.Error(t, err)
}

func TestNormalizePath(t *testing.T) {
	assert.Equal(t, "", NormalizePath("."))
	assert.Equal(t, "a/b", NormalizePath("/a/b/"))
	assert.Equal(t, ".ds_store", NormalizePath("./.DS_Store"))
}

func TestNewFilenameFilter(t *testing.T) {
	var nilFilter *FilenameFilter
	assert.False(t, nilFilter.Excluded("anything"))

	nf, err := NewFilenameFilter(nil)
	require.NoError(t, err)
	assert.Nil(t, nf)

	_, err = NewFilenameFilter([]string{"["})
	assert.Error(t, err)
}

func TestFilenameFilterExcluded(t *testing.T) {
	f, err := NewFilenameFilter([]string{"_build", "Thumbs.db", ".DS_Store", "drafts/*.md"})
	require.NoError(t, err)

	for _, p := range []string{
		"_build",
		"_build/html/index.html",
		"Thumbs.db",
		"images/thumbs.db",
		".DS_Store",
		"drafts/wip.md",
	} {
		assert.True(t, f.Excluded(p), p)
	}

	for _, p := range []string{
		"index.md",
		"guide/_build.md",
		"drafts/nested/wip.md",
		"",
	} {
		assert.False(t, f.Excluded(p), p)
	}
}

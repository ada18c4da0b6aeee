package docsconf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceSuffixOf(t *testing.T) {
	c := Load()
	c.SourceSuffix = []string{".txt", ".rst.txt", ".md"}

	s, ok := c.SourceSuffixOf("guide/intro.rst.txt")
	assert.True(t, ok)
	assert.Equal(t, ".rst.txt", s)

	s, ok = c.SourceSuffixOf("index.md")
	assert.True(t, ok)
	assert.Equal(t, ".md", s)

	_, ok = c.SourceSuffixOf(".md")
	assert.False(t, ok)
	_, ok = c.SourceSuffixOf("index.MD")
	assert.False(t, ok)
}

func TestIsSourceFile(t *testing.T) {
	c := Load()

	assert.True(t, c.IsSourceFile("index.rst"))
	assert.True(t, c.IsSourceFile("guide/setup.md"))
	assert.False(t, c.IsSourceFile("conf.py"))
	assert.False(t, c.IsSourceFile("logo.png"))
}

func TestIsExcluded(t *testing.T) {
	c := Load()

	assert.True(t, c.IsExcluded("_build/html/index.html"))
	assert.True(t, c.IsExcluded(".DS_Store"))
	assert.True(t, c.IsExcluded("img/Thumbs.db"))
	assert.True(t, c.IsExcluded("_templates/layout.html"))
	assert.True(t, c.IsExcluded("_static/custom.css"))
	assert.False(t, c.IsExcluded("index.md"))
	assert.False(t, c.IsExcluded("guide/build.md"))

	c.ExcludePatterns = append(c.ExcludePatterns, "[", "drafts/**")
	assert.True(t, c.IsExcluded("drafts/a/b.md"))
	assert.False(t, c.IsExcluded("index.md"))
}

func TestExcludeFilter(t *testing.T) {
	f, err := Load().ExcludeFilter()
	require.NoError(t, err)
	assert.True(t, f.Excluded("_build"))

	f, err = DocumentationConfig{}.ExcludeFilter()
	require.NoError(t, err)
	assert.Nil(t, f)

	_, err = DocumentationConfig{ExcludePatterns: []string{"["}}.ExcludeFilter()
	assert.Error(t, err)
}

package docsconf

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
	jww "github.com/spf13/jwalterweatherman"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunwei/docs-playground/common/loggers"
	"github.com/sunwei/docs-playground/common/maps"
	"github.com/sunwei/docs-playground/config"
	"github.com/sunwei/docs-playground/parser/metadecoders"
)

func writeFile(t *testing.T, fs afero.Fs, filename, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, filename, []byte(content), 0666))
}

func TestLoadConfigBuiltin(t *testing.T) {
	fs := afero.NewMemMapFs()

	c, files, err := LoadConfig(ConfigSourceDescriptor{Fs: fs, WorkingDir: "/docs"})
	require.NoError(t, err)
	assert.Empty(t, files)
	assert.Equal(t, "", cmp.Diff(Load(), c))
}

func TestLoadConfigFileOverridesBuiltin(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/docs/conf.toml", `
project = "Playground"
html_theme = "furo"
source_suffix = ".md"
Extensions = ["myst_parser", " sphinx.ext.autodoc "]
`)

	c, files, err := LoadConfig(ConfigSourceDescriptor{Fs: fs, WorkingDir: "/docs"})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join("/docs", "conf.toml")}, files)

	assert.Equal(t, "Playground", c.Project)
	assert.Equal(t, "furo", c.HTMLTheme)
	assert.Equal(t, []string{".md"}, c.SourceSuffix)
	assert.Equal(t, []string{"myst_parser", "sphinx.ext.autodoc"}, c.Extensions)
	// Not in file.
	assert.Equal(t, "ChiselStrike Inc.", c.Author)
	assert.Equal(t, []string{"_build", "Thumbs.db", ".DS_Store"}, c.ExcludePatterns)
}

func TestLoadConfigDefaultNamesOrder(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/docs/conf.json", `{"project": "from json"}`)
	writeFile(t, fs, "/docs/conf.yaml", "project: from yaml\n")

	c, files, err := LoadConfig(ConfigSourceDescriptor{Fs: fs, WorkingDir: "/docs"})
	require.NoError(t, err)
	assert.Equal(t, "from yaml", c.Project)
	assert.Equal(t, []string{filepath.Join("/docs", "conf.yaml")}, files)
}

func TestLoadConfigXML(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/docs/site.xml", `<conf>
  <project>XML Docs</project>
  <source_suffix>.md</source_suffix>
  <source_suffix>.txt</source_suffix>
</conf>`)

	c, _, err := LoadConfig(ConfigSourceDescriptor{Fs: fs, WorkingDir: "/docs", Filename: "site.xml"})
	require.NoError(t, err)
	assert.Equal(t, "XML Docs", c.Project)
	assert.Equal(t, []string{".md", ".txt"}, c.SourceSuffix)
}

func TestLoadConfigInvalid(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/docs/conf.yaml", "project: \"\"\nsource_suffix: [md]\n")

	_, _, err := LoadConfig(ConfigSourceDescriptor{Fs: fs, WorkingDir: "/docs"})
	require.Error(t, err)

	var cerr *ConfigError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, filepath.Join("/docs", "conf.yaml"), cerr.Filename)
	assert.True(t, cerr.Has(KeyProject))
	assert.True(t, cerr.Has(KeySourceSuffix))
}

func TestLoadConfigFileErrors(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, _, err := LoadConfig(ConfigSourceDescriptor{Fs: fs, WorkingDir: "/docs", Filename: "conf.ini"})
	require.Error(t, err)
	assert.False(t, IsConfigError(err))
	assert.Contains(t, err.Error(), "not a supported config file")

	_, _, err = LoadConfig(ConfigSourceDescriptor{Fs: fs, WorkingDir: "/docs", Filename: "missing.toml"})
	require.Error(t, err)

	writeFile(t, fs, "/docs/broken.toml", "project = ")
	_, _, err = LoadConfig(ConfigSourceDescriptor{Fs: fs, WorkingDir: "/docs", Filename: "broken.toml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.toml")
}

func TestLoadConfigOverrides(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/docs/conf.toml", `html_theme = "furo"
author = "Docs Team"`)

	c, _, err := LoadConfig(ConfigSourceDescriptor{
		Fs:         fs,
		WorkingDir: "/docs",
		Overrides:  maps.Params{"HTML_Theme": "alabaster", "extensions": []string{"a", "b"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "alabaster", c.HTMLTheme)
	assert.Equal(t, "Docs Team", c.Author)
	assert.Equal(t, []string{"a", "b"}, c.Extensions)
}

func TestLoadConfigUnknownSetting(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/docs/conf.toml", `latex_engine = "xelatex"`)
	var buf bytes.Buffer
	logger := loggers.NewBasicLoggerForWriter(jww.LevelWarn, &buf)

	_, _, err := LoadConfig(ConfigSourceDescriptor{Fs: fs, WorkingDir: "/docs", Logger: logger})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `Unknown setting "latex_engine"`)
}

func TestRoundTrip(t *testing.T) {
	for _, f := range []metadecoders.Format{metadecoders.TOML, metadecoders.YAML, metadecoders.JSON} {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Load().Marshal(&buf, f))

			m, err := metadecoders.Default.UnmarshalToMap(buf.Bytes(), f)
			require.NoError(t, err)
			decoded, err := Decode(config.NewFrom(m))
			require.NoError(t, err)
			assert.Equal(t, "", cmp.Diff(Load(), decoded))

			fs := afero.NewMemMapFs()
			writeFile(t, fs, "/docs/conf."+string(f), buf.String())
			loaded, _, err := LoadConfig(ConfigSourceDescriptor{Fs: fs, WorkingDir: "/docs"})
			require.NoError(t, err)
			assert.Equal(t, "", cmp.Diff(Load(), loaded))

			// Idempotent.
			var again bytes.Buffer
			require.NoError(t, loaded.Marshal(&again, f))
			assert.Equal(t, buf.String(), again.String())
		})
	}
}

func TestDecode(t *testing.T) {
	c, err := Decode(nil)
	require.NoError(t, err)
	assert.Equal(t, DocumentationConfig{}, c)

	cfg := config.New()
	cfg.Set("project", "P")
	cfg.Set("templates_path", "_tpl")
	cfg.Set("source_suffix", []any{".rst", ".md"})

	c, err = Decode(cfg)
	require.NoError(t, err)
	assert.Equal(t, "P", c.Project)
	assert.Equal(t, []string{"_tpl"}, c.TemplatesPath)
	assert.Equal(t, []string{".rst", ".md"}, c.SourceSuffix)

	cfg.Set("extensions", map[string]any{"a": 1})
	_, err = Decode(cfg)
	assert.Error(t, err)
}

func TestLoadConfigUnknownSettingWithoutFile(t *testing.T) {
	var buf bytes.Buffer
	logger := loggers.NewBasicLoggerForWriter(jww.LevelWarn, &buf)

	_, files, err := LoadConfig(ConfigSourceDescriptor{
		Fs:         afero.NewMemMapFs(),
		WorkingDir: "/docs",
		Overrides:  maps.Params{"latex_engine": "xelatex"},
		Logger:     logger,
	})
	require.NoError(t, err)
	assert.Empty(t, files)
	assert.Contains(t, buf.String(), `Unknown setting "latex_engine" ignored`)
	assert.NotContains(t, buf.String(), `in ""`)
}

func TestLoadConfigTrimsValues(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/docs/conf.toml", `
project = "  Playground "
author = "Docs Team\n"
html_theme = " furo "
extensions = [" myst_parser "]
`)

	c, _, err := LoadConfig(ConfigSourceDescriptor{Fs: fs, WorkingDir: "/docs"})
	require.NoError(t, err)
	assert.Equal(t, "Playground", c.Project)
	assert.Equal(t, "Docs Team", c.Author)
	assert.Equal(t, "furo", c.HTMLTheme)
	assert.Equal(t, []string{"myst_parser"}, c.Extensions)
}

func TestDecodeLists(t *testing.T) {
	cfg := config.New()
	cfg.Set("exclude_patterns", []any{"_build", 42})
	cfg.Set("html_static_path", [1]string{"_static"})

	c, err := Decode(cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"_build", "42"}, c.ExcludePatterns)
	assert.Equal(t, []string{"_static"}, c.HTMLStaticPath)

	cfg.Set("source_suffix", []any{".md", []any{".rst"}})
	_, err = Decode(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "source_suffix")
}

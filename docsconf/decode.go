package docsconf

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/mitchellh/hashstructure"
	"github.com/mitchellh/mapstructure"
	"github.com/sunwei/docs-playground/common/maps"
	"github.com/sunwei/docs-playground/config"
	"github.com/sunwei/docs-playground/parser"
	"github.com/sunwei/docs-playground/parser/metadecoders"
	"github.com/sunwei/docs-playground/types"
)

// The settings holding lists of strings.
var listKeys = []string{
	KeyExtensions,
	KeyTemplatesPath,
	KeyExcludePatterns,
	KeyHTMLStaticPath,
	KeySourceSuffix,
}

// Decode creates a DocumentationConfig from the settings in cfg.
// Settings missing in cfg are left empty. A single string given for a
// list setting is treated as a list with one entry. Surrounding whitespace
// is removed from all values.
func Decode(cfg config.Provider) (DocumentationConfig, error) {
	conf, _, err := decode(cfg)
	return conf, err
}

// decode also returns the keys in cfg that are not documentation settings.
func decode(cfg config.Provider) (DocumentationConfig, []string, error) {
	var conf DocumentationConfig
	if cfg == nil {
		return conf, nil, nil
	}

	var md mapstructure.Metadata
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Metadata:         &md,
		Result:           &conf,
	})
	if err != nil {
		return conf, nil, err
	}

	m := maps.ToStringMap(cfg.Get(""))
	for _, key := range listKeys {
		v, found := m[key]
		if !found {
			continue
		}
		list, err := types.ToStringListE(v)
		if err != nil {
			return conf, nil, fmt.Errorf("failed to decode %s: %w", key, err)
		}
		m[key] = list
	}

	if err := dec.Decode(m); err != nil {
		return conf, nil, fmt.Errorf("failed to decode documentation config: %w", err)
	}

	conf = conf.trimmed()

	sort.Strings(md.Unused)

	return conf, md.Unused, nil
}

func (c DocumentationConfig) trimmed() DocumentationConfig {
	c.Project = strings.TrimSpace(c.Project)
	c.Copyright = strings.TrimSpace(c.Copyright)
	c.Author = strings.TrimSpace(c.Author)
	c.HTMLTheme = strings.TrimSpace(c.HTMLTheme)
	c.Extensions = types.TrimStrings(c.Extensions)
	c.TemplatesPath = types.TrimStrings(c.TemplatesPath)
	c.ExcludePatterns = types.TrimStrings(c.ExcludePatterns)
	c.HTMLStaticPath = types.TrimStrings(c.HTMLStaticPath)
	c.SourceSuffix = types.TrimStrings(c.SourceSuffix)
	return c
}

// Marshal writes c to w in the given format.
func (c DocumentationConfig) Marshal(w io.Writer, f metadecoders.Format) error {
	return parser.InterfaceToConfig(c.ToParams(), f, w)
}

// Hash returns a fingerprint of c. Equal configs have equal hashes.
func (c DocumentationConfig) Hash() (uint64, error) {
	return hashstructure.Hash(c.ToParams(), nil)
}

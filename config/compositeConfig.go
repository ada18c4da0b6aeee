package config

import "github.com/sunwei/docs-playground/common/maps"

// NewCompositeConfig creates a new composite Provider with a read-only base
// and a writeable layer.
func NewCompositeConfig(base, layer Provider) Provider {
	return &compositeConfig{
		base:  base,
		layer: layer,
	}
}

// compositeConfig contains a read only config base with
// a possibly writeable config layer on top.
type compositeConfig struct {
	base  Provider
	layer Provider
}

func (c *compositeConfig) Get(key string) any {
	if key == "" {
		// Both providers hand out copies, merging into them is safe.
		merged, _ := c.base.Get("").(maps.Params)
		if merged == nil {
			merged = make(maps.Params)
		}
		if p, ok := c.layer.Get("").(maps.Params); ok {
			merged.Set(p)
		}
		return merged
	}
	if c.layer.IsSet(key) {
		return c.layer.Get(key)
	}
	return c.base.Get(key)
}

func (c *compositeConfig) IsSet(key string) bool {
	if c.layer.IsSet(key) {
		return true
	}
	return c.base.IsSet(key)
}

func (c *compositeConfig) Set(key string, value any) {
	c.layer.Set(key, value)
}

func (c *compositeConfig) SetDefaults(params maps.Params) {
	c.layer.SetDefaults(params)
}

package config

import (
	"github.com/sunwei/docs-playground/common/maps"
)

// Provider provides the configuration settings for a documentation build.
// Keys are case insensitive and may be dotted to reach into nested maps.
type Provider interface {
	// Get returns the value for key. The empty key returns a copy of
	// all settings as maps.Params.
	Get(key string) any
	Set(key string, value any)
	SetDefaults(params maps.Params)
	IsSet(key string) bool
}

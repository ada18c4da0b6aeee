package maps

import (
	"strings"

	"github.com/spf13/cast"
)

// Params is a map where all keys are lower case.
type Params map[string]any

// Set overwrites values in p with values in pp for common or new keys.
// This is done recursively.
func (p Params) Set(pp Params) {
	for k, v := range pp {
		vv, found := p[k]
		if !found {
			p[k] = v
			continue
		}
		if vvv, ok := vv.(Params); ok {
			if pv, ok := v.(Params); ok {
				vvv.Set(pv)
				continue
			}
		}
		p[k] = v
	}
}

// Clone returns a deep copy of p. Nested Params are copied, other
// values are shared.
func (p Params) Clone() Params {
	if p == nil {
		return nil
	}
	c := make(Params, len(p))
	for k, v := range p {
		if pv, ok := v.(Params); ok {
			v = pv.Clone()
		}
		c[k] = v
	}
	return c
}

// PrepareParams
// * makes all the keys in the given map lower cased and will do so recursively.
// * This will modify the map given.
// * Any nested map[interface{}]interface{}, map[string]interface{},map[string]string  will be converted to Params.
func PrepareParams(m Params) {
	for k, v := range m {
		var retyped bool
		lKey := strings.ToLower(k)

		switch vv := v.(type) {
		case map[any]any:
			var p Params = cast.ToStringMap(v)
			v = p
			PrepareParams(p)
			retyped = true
		case map[string]any:
			var p Params = vv
			v = p
			PrepareParams(p)
			retyped = true
		case map[string]string:
			p := make(Params)
			for k, v := range vv {
				p[k] = v
			}
			v = p
			PrepareParams(p)
			retyped = true
		case Params:
			PrepareParams(vv)
		}

		if retyped || k != lKey {
			delete(m, k)
			m[lKey] = v
		}
	}
}

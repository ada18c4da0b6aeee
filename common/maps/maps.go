package maps

import (
	"fmt"

	"github.com/spf13/cast"
	"github.com/sunwei/docs-playground/types"
)

// ToParamsAndPrepare converts in to Params and prepares it for use.
// If in is nil, an empty map is returned.
// See PrepareParams.
func ToParamsAndPrepare(in any) (Params, bool) {
	if types.IsNil(in) {
		return Params{}, true
	}
	m, err := ToStringMapE(in)
	if err != nil {
		return nil, false
	}
	PrepareParams(m)
	return m, true
}

// MustToParamsAndPrepare calls ToParamsAndPrepare and panics if it fails.
func MustToParamsAndPrepare(in any) Params {
	p, ok := ToParamsAndPrepare(in)
	if !ok {
		panic(fmt.Sprintf("cannot convert %T to maps.Params", in))
	}
	return p
}

// ToStringMapE converts in to map[string]interface{}.
func ToStringMapE(in any) (map[string]any, error) {
	switch vv := in.(type) {
	case Params:
		return vv, nil
	case map[string]string:
		m := make(map[string]any, len(vv))
		for k, v := range vv {
			m[k] = v
		}
		return m, nil
	default:
		return cast.ToStringMapE(in)
	}
}

// ToStringMap converts in to map[string]interface{}.
func ToStringMap(in any) map[string]any {
	m, _ := ToStringMapE(in)
	return m
}

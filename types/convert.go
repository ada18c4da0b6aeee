package types

import (
	"fmt"
	"reflect"

	"github.com/spf13/cast"
)

// ToStringListE converts a setting value to a list of strings.
// A lone string becomes a list with one entry and is never split on
// whitespace. Scalars inside a list are converted with cast, nested lists
// and maps are rejected.
func ToStringListE(v any) ([]string, error) {
	switch vv := v.(type) {
	case nil:
		return nil, nil
	case string:
		return []string{vv}, nil
	case []string:
		return CloneStrings(vv), nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, fmt.Errorf("expected a string or a list of strings, got %T", v)
	}

	list := make([]string, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		elem := rv.Index(i).Interface()
		switch reflect.ValueOf(elem).Kind() {
		case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
			return nil, fmt.Errorf("entry %d: expected a string, got %T", i, elem)
		}
		s, err := cast.ToStringE(elem)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		list[i] = s
	}
	return list, nil
}

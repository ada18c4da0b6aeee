package metadecoders

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/clbanning/mxj/v2"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"github.com/spf13/cast"
	yaml "gopkg.in/yaml.v2"
)

// Decoder provides some configuration options for the decoders.
type Decoder struct {
	// XMLRoot, when set, is the root element unwrapped from XML documents.
	// When empty, a document with a single root element is unwrapped.
	XMLRoot string
}

// Default is a Decoder in its default configuration.
var Default = Decoder{}

// UnmarshalToMap will unmarshall data in format f into a new map. This is
// what's needed for configuration files.
func (d Decoder) UnmarshalToMap(data []byte, f Format) (map[string]any, error) {
	m := make(map[string]any)
	if data == nil {
		return m, nil
	}

	err := d.unmarshal(data, f, &m)

	return m, err
}

// UnmarshalFileToMap is the same as UnmarshalToMap, but reads the data from
// the given filename.
func (d Decoder) UnmarshalFileToMap(fs afero.Fs, filename string) (map[string]any, error) {
	format := FormatFromString(filename)
	if format == "" {
		return nil, fmt.Errorf("%q is not a valid configuration format", filename)
	}

	data, err := afero.ReadFile(fs, filename)
	if err != nil {
		return nil, err
	}
	return d.UnmarshalToMap(data, format)
}

func (d Decoder) unmarshal(data []byte, f Format, v *map[string]any) error {
	var err error

	switch f {
	case JSON:
		err = json.Unmarshal(data, v)
	case TOML:
		err = toml.Unmarshal(data, v)
	case YAML:
		err = yaml.Unmarshal(data, v)
		if err != nil {
			return toFileError(f, err)
		}
		// yaml.v2 nests map[interface{}]interface{}, which the rest of
		// the code base cannot work with.
		for k, vv := range *v {
			(*v)[k] = stringifyMapKeys(vv)
		}
	case XML:
		var xmlRoot mxj.Map
		xmlRoot, err = mxj.NewMapXml(data)
		if err != nil {
			return toFileError(f, err)
		}
		*v, err = d.unwrapXML(xmlRoot)
	default:
		return fmt.Errorf("unmarshal of format %q is not supported", f)
	}

	if err == nil {
		return nil
	}

	return toFileError(f, err)
}

func (d Decoder) unwrapXML(root mxj.Map) (map[string]any, error) {
	key := d.XMLRoot
	if key == "" {
		if len(root) != 1 {
			return nil, errors.New("XML document must have exactly one root element")
		}
		for k := range root {
			key = k
		}
	}
	inner, found := root[key]
	if !found {
		return nil, fmt.Errorf("XML root element %q not found", key)
	}
	if s, ok := inner.(string); inner == nil || (ok && s == "") {
		return make(map[string]any), nil
	}
	m, err := cast.ToStringMapE(inner)
	if err != nil {
		return nil, fmt.Errorf("XML root element %q: %w", key, err)
	}
	return m, nil
}

func toFileError(f Format, err error) error {
	return fmt.Errorf("failed to unmarshal %s: %w", f, err)
}

// stringifyMapKeys recurses into in and changes all instances of
// map[interface{}]interface{} to map[string]interface{}. This is useful to
// work around the impedance mismatch between JSON and YAML unmarshaling that's
// described here: https://github.com/go-yaml/yaml/issues/139
func stringifyMapKeys(in any) any {
	switch in := in.(type) {
	case []any:
		res := make([]any, len(in))
		for i, v := range in {
			res[i] = stringifyMapKeys(v)
		}
		return res
	case map[any]any:
		res := make(map[string]any, len(in))
		for k, v := range in {
			res[cast.ToString(k)] = stringifyMapKeys(v)
		}
		return res
	case map[string]any:
		for k, v := range in {
			in[k] = stringifyMapKeys(v)
		}
		return in
	default:
		return in
	}
}

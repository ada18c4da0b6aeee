package parser

import (
	"encoding/json"
	"errors"
	"io"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/sunwei/docs-playground/parser/metadecoders"
	yaml "gopkg.in/yaml.v2"
)

// InterfaceToConfig encodes a given input based upon the format and writes
// the result to w.
func InterfaceToConfig(in any, format metadecoders.Format, w io.Writer) error {
	if in == nil {
		return errors.New("input was nil")
	}

	switch format {
	case metadecoders.YAML:
		b, err := yaml.Marshal(in)
		if err != nil {
			return err
		}

		_, err = w.Write(b)
		return err

	case metadecoders.TOML:
		enc := toml.NewEncoder(w)
		enc.SetIndentTables(true)
		return enc.Encode(in)

	case metadecoders.JSON:
		b, err := json.MarshalIndent(in, "", "   ")
		if err != nil {
			return err
		}

		_, err = w.Write(b)
		if err != nil {
			return err
		}

		_, err = w.Write([]byte{'\n'})
		return err

	default:
		return errors.New("unsupported Format provided")
	}
}

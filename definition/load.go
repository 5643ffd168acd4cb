package definition

import (
	"fmt"
	"io"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Load reads a YAML definition from r. Unknown keys are rejected.
//
// Example:
//
//	name: mod3
//	start: "0"
//	final: ["0"]
//	states: ["0", "1", "2"]
//	transitions:
//	  - {from: "0", to: "1", guard: any}
//	  - {from: "1", to: "2", guard: any}
//	  - {from: "2", to: "0", guard: any}
func Load(r io.Reader) (*Definition, error) {
	var raw map[string]any
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidDefinition)
		}
		return nil, fmt.Errorf("parse definition: %w", err)
	}
	return Decode(raw)
}

// LoadFile reads a YAML definition from path.
func LoadFile(path string) (*Definition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Decode converts a generic map, as produced by YAML or JSON decoders, into a
// validated Definition.
func Decode(raw map[string]any) (*Definition, error) {
	var d Definition
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           &d,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// Marshal renders d as YAML.
func Marshal(d *Definition) ([]byte, error) {
	return yaml.Marshal(d)
}

package params

import (
	"fmt"

	"gopkg.in/yaml.v2"
)

// yamlSnapshot is the serialized form of the scalar parameter categories.
// The object-valued category (namer functions) is not serializable and is
// left untouched by Load.
type yamlSnapshot struct {
	Doubles map[string]float64 `yaml:"doubles,omitempty"`
	Ints    map[string]int     `yaml:"ints,omitempty"`
	Strings map[string]string  `yaml:"strings,omitempty"`
}

// MarshalSnapshot serializes the explicitly set scalar parameters as YAML.
func (p *Params) MarshalSnapshot() ([]byte, error) {
	snap := yamlSnapshot{}
	if len(p.doubles) > 0 {
		snap.Doubles = make(map[string]float64, len(p.doubles))
		for k, v := range p.doubles {
			snap.Doubles[k.String()] = v
		}
	}
	if len(p.ints) > 0 {
		snap.Ints = make(map[string]int, len(p.ints))
		for k, v := range p.ints {
			snap.Ints[k.String()] = v
		}
	}
	if len(p.strings) > 0 {
		snap.Strings = make(map[string]string, len(p.strings))
		for k, v := range p.strings {
			snap.Strings[k.String()] = v
		}
	}
	return yaml.Marshal(snap)
}

// LoadSnapshot replaces the scalar parameter categories with the contents
// of a YAML snapshot. Unrecognized keys and out-of-range values fail before
// any state is replaced.
func (p *Params) LoadSnapshot(data []byte) error {
	var snap yamlSnapshot
	if err := yaml.UnmarshalStrict(data, &snap); err != nil {
		return fmt.Errorf("parameter snapshot: %w", err)
	}
	next := New(WithCPUTimeProbe(p.cpuProbe))
	for name, v := range snap.Doubles {
		k, ok := doubleKeyNamed(name)
		if !ok {
			return &ValueError{Key: name, Detail: "unrecognized double parameter"}
		}
		if _, err := next.SetDouble(k, v); err != nil {
			return err
		}
	}
	for name, v := range snap.Ints {
		k, ok := intKeyNamed(name)
		if !ok {
			return &ValueError{Key: name, Detail: "unrecognized integer parameter"}
		}
		if _, err := next.SetInt(k, v); err != nil {
			return err
		}
	}
	for name, v := range snap.Strings {
		k, ok := stringKeyNamed(name)
		if !ok {
			return &ValueError{Key: name, Detail: "unrecognized string parameter"}
		}
		next.SetString(k, v)
	}
	p.doubles = next.doubles
	p.ints = next.ints
	p.strings = next.strings
	return nil
}

func doubleKeyNamed(name string) (DoubleKey, bool) {
	for _, k := range doubleKeys {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}

func intKeyNamed(name string) (IntKey, bool) {
	for _, k := range intKeys {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}

func stringKeyNamed(name string) (StringKey, bool) {
	for _, k := range stringKeys {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}

package mapping

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Reserved keys of a structured rule object.
const (
	keyPath      = "path"
	keyConverter = "converter"
	keyMapping   = "mapping"
)

// --- FieldRule JSON methods ---

// UnmarshalJSON accepts either a bare path string or a rule object.
func (r *FieldRule) UnmarshalJSON(data []byte) error {
	var path string
	if err := json.Unmarshal(data, &path); err == nil {
		*r = FieldRule{Path: path}
		return nil
	}

	var raw map[string]json.RawMessage

	err := json.Unmarshal(data, &raw)
	if err != nil {
		return errors.New("expected path string or rule object")
	}

	rule := FieldRule{}

	for key, value := range raw {
		switch key {
		case keyPath:
			err = json.Unmarshal(value, &rule.Path)
		case keyConverter:
			err = json.Unmarshal(value, &rule.Converter)
		case keyMapping:
			var nested Schema

			err = json.Unmarshal(value, &nested)
			rule.Mapping = rule.Mapping.Merge(nested)
		default:
			var nested FieldRule

			err = json.Unmarshal(value, &nested)
			if rule.Mapping == nil {
				rule.Mapping = Schema{}
			}

			rule.Mapping[key] = nested
		}

		if err != nil {
			return fmt.Errorf("invalid rule key %q: %w", key, err)
		}
	}

	*r = rule

	return nil
}

// MarshalJSON outputs a bare path string for verbatim rules, an object otherwise.
func (r FieldRule) MarshalJSON() ([]byte, error) {
	if r.isBare() {
		return json.Marshal(r.Path)
	}

	out := map[string]any{}
	if r.Path != "" {
		out[keyPath] = r.Path
	}

	if r.Converter != "" {
		out[keyConverter] = r.Converter
	}

	if len(r.Mapping) > 0 {
		out[keyMapping] = r.Mapping
	}

	return json.Marshal(out)
}

// --- FieldRule YAML methods ---

// UnmarshalYAML accepts either a scalar path or a rule mapping.
func (r *FieldRule) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var path string

		err := node.Decode(&path)
		if err != nil {
			return err
		}

		*r = FieldRule{Path: path}

		return nil

	case yaml.MappingNode:
		rule := FieldRule{}

		for i := 0; i+1 < len(node.Content); i += 2 {
			var key string

			err := node.Content[i].Decode(&key)
			if err != nil {
				return fmt.Errorf("invalid rule key: %w", err)
			}

			value := node.Content[i+1]

			switch key {
			case keyPath:
				err = value.Decode(&rule.Path)
			case keyConverter:
				err = value.Decode(&rule.Converter)
			case keyMapping:
				var nested Schema

				err = value.Decode(&nested)
				rule.Mapping = rule.Mapping.Merge(nested)
			default:
				var nested FieldRule

				err = value.Decode(&nested)
				if rule.Mapping == nil {
					rule.Mapping = Schema{}
				}

				rule.Mapping[key] = nested
			}

			if err != nil {
				return fmt.Errorf("invalid rule key %q: %w", key, err)
			}
		}

		*r = rule

		return nil

	default:
		return fmt.Errorf("expected path string or rule mapping, got %v", node.Kind)
	}
}

// MarshalYAML mirrors MarshalJSON.
func (r FieldRule) MarshalYAML() (any, error) {
	if r.isBare() {
		return r.Path, nil
	}

	out := map[string]any{}
	if r.Path != "" {
		out[keyPath] = r.Path
	}

	if r.Converter != "" {
		out[keyConverter] = r.Converter
	}

	if len(r.Mapping) > 0 {
		out[keyMapping] = r.Mapping
	}

	return out, nil
}

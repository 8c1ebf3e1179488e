package content

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// isYAMLPath reports whether path names a YAML content file.
func isYAMLPath(path string) bool {
	return strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")
}

// yamlToJSON re-encodes YAML content as JSON so both formats flow through a
// single translation path.
func yamlToJSON(data []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	doc, err := stringifyKeys(doc)
	if err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}

// stringifyKeys converts YAML's map[any]any nodes into map[string]any so the
// document can be marshalled as JSON.
func stringifyKeys(v any) (any, error) {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			converted, err := stringifyKeys(val)
			if err != nil {
				return nil, err
			}
			t[k] = converted
		}
		return t, nil
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("non-string key %v in YAML mapping", k)
			}
			converted, err := stringifyKeys(val)
			if err != nil {
				return nil, err
			}
			out[key] = converted
		}
		return out, nil
	case []any:
		for i, val := range t {
			converted, err := stringifyKeys(val)
			if err != nil {
				return nil, err
			}
			t[i] = converted
		}
		return t, nil
	default:
		return v, nil
	}
}

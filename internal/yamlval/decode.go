// Package yamlval decodes YAML documents into renderer values. It works on
// yaml.Node trees instead of map[string]any so mapping keys keep their
// authored order, which is the enumeration order the renderer guarantees
// for objects.
package yamlval

import (
	"fmt"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-valueview/pkg/literal"
)

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// DecodeBytes parses a YAML document and returns its value.
func DecodeBytes(data []byte) (any, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("yamlval: parse document: %w", err)
	}
	return Decode(&root)
}

// Decode converts a yaml.Node into a renderer value: scalars become
// string/int64/float64/bool/time.Time/nil, sequences become []any, and
// mappings become insertion-ordered literal.Object values.
func Decode(n *yaml.Node) (any, error) {
	return decode(n, make(map[*yaml.Node]bool))
}

func decode(n *yaml.Node, active map[*yaml.Node]bool) (any, error) {
	if n == nil || n.Kind == 0 {
		// Zero-valued nodes come from empty documents.
		return nil, nil
	}
	if active[n] {
		return nil, fmt.Errorf("yamlval: alias cycle at line %d", n.Line)
	}
	active[n] = true
	defer delete(active, n)

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return decode(n.Content[0], active)

	case yaml.AliasNode:
		return decode(n.Alias, active)

	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, item := range n.Content {
			v, err := decode(item, active)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil

	case yaml.MappingNode:
		obj := literal.NewObject()
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i].Value
			v, err := decode(n.Content[i+1], active)
			if err != nil {
				return nil, err
			}
			obj.Set(key, v)
		}
		return obj, nil

	case yaml.ScalarNode:
		return decodeScalar(n)
	}
	return nil, fmt.Errorf("yamlval: unsupported node kind %d at line %d", n.Kind, n.Line)
}

func decodeScalar(n *yaml.Node) (any, error) {
	switch n.Tag {
	case "!!null", "":
		if n.Tag == "!!null" {
			return nil, nil
		}
		return n.Value, nil
	case "!!bool":
		v, err := strconv.ParseBool(n.Value)
		if err != nil {
			return nil, fmt.Errorf("yamlval: bool %q at line %d: %w", n.Value, n.Line, err)
		}
		return v, nil
	case "!!int":
		if v, err := strconv.ParseInt(n.Value, 0, 64); err == nil {
			return v, nil
		}
		v, err := strconv.ParseUint(n.Value, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("yamlval: int %q at line %d: %w", n.Value, n.Line, err)
		}
		return v, nil
	case "!!float":
		v, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("yamlval: float %q at line %d: %w", n.Value, n.Line, err)
		}
		return v, nil
	case "!!timestamp":
		for _, layout := range timestampLayouts {
			if t, err := time.Parse(layout, n.Value); err == nil {
				return t, nil
			}
		}
		return nil, fmt.Errorf("yamlval: timestamp %q at line %d", n.Value, n.Line)
	default:
		return n.Value, nil
	}
}

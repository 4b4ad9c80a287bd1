package ir

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// FromYAML decodes a YAML document, keeping mapping key order.
func FromYAML(d []byte) (*Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return FromAny(v)
}

// ToYAML encodes y as block style YAML, keeping object key order.
func ToYAML(y *Node) ([]byte, error) {
	return yaml.Marshal(toYAMLValue(y))
}

func toYAMLValue(y *Node) any {
	switch y.Type {
	case ObjectType:
		res := make(yaml.MapSlice, len(y.Fields))
		for i := range y.Fields {
			res[i] = yaml.MapItem{Key: y.Fields[i].String, Value: toYAMLValue(y.Values[i])}
		}
		return res
	case ArrayType:
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			res[i] = toYAMLValue(v)
		}
		return res
	default:
		return ToAny(y)
	}
}

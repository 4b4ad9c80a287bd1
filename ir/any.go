package ir

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/goccy/go-yaml"
)

// ToAny converts y to plain Go values: map[string]any, []any, string,
// int64, float64, bool or nil. Object key order is lost.
func ToAny(y *Node) any {
	switch y.Type {
	case ObjectType:
		res := make(map[string]any, len(y.Fields))
		for i := range y.Fields {
			res[y.Fields[i].String] = ToAny(y.Values[i])
		}
		return res
	case ArrayType:
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			res[i] = ToAny(v)
		}
		return res
	case StringType:
		return y.String
	case NumberType:
		if y.Int64 != nil {
			return *y.Int64
		}
		if y.Float64 != nil {
			return *y.Float64
		}
		return json.Number(y.Number)
	case BoolType:
		return y.Bool
	default:
		return nil
	}
}

// FromAny converts plain Go values, including the ordered yaml.MapSlice,
// into a Node tree.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return x.Clone(), nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int8:
		return FromInt(int64(x)), nil
	case int16:
		return FromInt(int64(x)), nil
	case int32:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint:
		return fromUint(uint64(x)), nil
	case uint8:
		return FromInt(int64(x)), nil
	case uint16:
		return FromInt(int64(x)), nil
	case uint32:
		return FromInt(int64(x)), nil
	case uint64:
		return fromUint(x), nil
	case float32:
		return FromFloat(float64(x)), nil
	case float64:
		return FromFloat(x), nil
	case json.Number:
		return fromNumber(string(x)), nil
	case time.Time:
		return FromString(x.Format(time.RFC3339)), nil
	case []any:
		vals := make([]*Node, len(x))
		for i := range x {
			n, err := FromAny(x[i])
			if err != nil {
				return nil, err
			}
			vals[i] = n
		}
		return FromSlice(vals), nil
	case yaml.MapSlice:
		kvs := make([]KeyVal, len(x))
		for i := range x {
			n, err := FromAny(x[i].Value)
			if err != nil {
				return nil, err
			}
			kvs[i] = KeyVal{Key: fmt.Sprint(x[i].Key), Val: n}
		}
		return FromKeyVals(kvs), nil
	case map[string]any:
		kvs := make([]KeyVal, 0, len(x))
		for _, k := range slices.Sorted(maps.Keys(x)) {
			n, err := FromAny(x[k])
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, KeyVal{Key: k, Val: n})
		}
		return FromKeyVals(kvs), nil
	case map[any]any:
		m := make(map[string]any, len(x))
		for k, v := range x {
			m[fmt.Sprint(k)] = v
		}
		return FromAny(m)
	default:
		return nil, fmt.Errorf("%w: unsupported value type %T", ErrType, v)
	}
}

func fromUint(u uint64) *Node {
	if u > 1<<63-1 {
		return FromFloat(float64(u))
	}
	return FromInt(int64(u))
}

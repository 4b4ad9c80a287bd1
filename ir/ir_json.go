package ir

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
)

// FromJSON decodes a JSON document, keeping object keys in document order.
func FromJSON(d []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	node, err := decodeJSON(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after document", ErrParse)
	}
	return node, nil
}

func decodeJSON(dec *json.Decoder) (*Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			var kvs []KeyVal
			for dec.More() {
				kt, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := kt.(string)
				if !ok {
					return nil, fmt.Errorf("expected object key, got %v", kt)
				}
				val, err := decodeJSON(dec)
				if err != nil {
					return nil, err
				}
				kvs = append(kvs, KeyVal{Key: key, Val: val})
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return FromKeyVals(kvs), nil
		case '[':
			vals := []*Node{}
			for dec.More() {
				val, err := decodeJSON(dec)
				if err != nil {
					return nil, err
				}
				vals = append(vals, val)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return FromSlice(vals), nil
		}
		return nil, fmt.Errorf("unexpected delimiter %s", v)
	case string:
		return FromString(v), nil
	case json.Number:
		return fromNumber(string(v)), nil
	case bool:
		return FromBool(v), nil
	case nil:
		return Null(), nil
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

func fromNumber(s string) *Node {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return FromInt(i)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return FromFloat(f)
	}
	return &Node{Type: NumberType, Number: s}
}

// ToJSON encodes y as compact JSON, keeping object key order.
func ToJSON(y *Node) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := encodeJSON(buf, y); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeJSON(buf *bytes.Buffer, y *Node) error {
	switch y.Type {
	case ObjectType:
		buf.WriteByte('{')
		for i := range y.Fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeJSONString(buf, y.Fields[i].String)
			buf.WriteByte(':')
			if err := encodeJSON(buf, y.Values[i]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case ArrayType:
		buf.WriteByte('[')
		for i, v := range y.Values {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeJSON(buf, v); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case StringType:
		writeJSONString(buf, y.String)
	case NumberType:
		switch {
		case y.Int64 != nil:
			buf.WriteString(strconv.FormatInt(*y.Int64, 10))
		case y.Float64 != nil:
			f := *y.Float64
			if math.IsNaN(f) || math.IsInf(f, 0) {
				return fmt.Errorf("cannot encode %v as JSON", f)
			}
			buf.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
		default:
			buf.WriteString(y.Number)
		}
	case BoolType:
		buf.WriteString(strconv.FormatBool(y.Bool))
	case NullType:
		buf.WriteString("null")
	default:
		return fmt.Errorf("cannot encode %s as JSON", y.Type)
	}
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) {
	d, _ := json.Marshal(s)
	buf.Write(d)
}

func (y *Node) MarshalJSON() ([]byte, error) {
	return ToJSON(y)
}

func (y *Node) UnmarshalJSON(d []byte) error {
	tmp, err := FromJSON(d)
	if err != nil {
		return err
	}
	parent, pi, pf := y.Parent, y.ParentIndex, y.ParentField
	tmp.CloneTo(y)
	y.Parent, y.ParentIndex, y.ParentField = parent, pi, pf
	return nil
}

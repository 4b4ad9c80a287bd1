// Package encode renders ir nodes as indented JSON or YAML, optionally in
// color.
package encode

import (
	"bytes"
	"io"
	"strings"

	"github.com/signadot/plistkvc/format"
	"github.com/signadot/plistkvc/ir"
)

type encodeOpts struct {
	format format.Format
	indent int
	colors *Colors
}

type EncodeOption func(*encodeOpts)

func EncodeFormat(f format.Format) EncodeOption {
	return func(o *encodeOpts) { o.format = f }
}

func EncodeIndent(n int) EncodeOption {
	return func(o *encodeOpts) { o.indent = n }
}

// EncodeColors colors JSON output. YAML output is never colored.
func EncodeColors(c *Colors) EncodeOption {
	return func(o *encodeOpts) { o.colors = c }
}

// Encode writes node to w followed by a newline.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	o := &encodeOpts{indent: 2}
	for _, opt := range opts {
		opt(o)
	}
	if !o.format.IsJSON() {
		d, err := ir.ToYAML(node)
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	}
	buf := &bytes.Buffer{}
	e := &jsonEncoder{buf: buf, indent: strings.Repeat(" ", o.indent), colors: o.colors}
	if err := e.encode(node, 0); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err := w.Write(buf.Bytes())
	return err
}

type jsonEncoder struct {
	buf    *bytes.Buffer
	indent string
	colors *Colors
}

func (e *jsonEncoder) newline(depth int) {
	e.buf.WriteByte('\n')
	for range depth {
		e.buf.WriteString(e.indent)
	}
}

func (e *jsonEncoder) encode(node *ir.Node, depth int) error {
	switch node.Type {
	case ir.ObjectType:
		if len(node.Fields) == 0 {
			e.buf.WriteString("{}")
			return nil
		}
		e.buf.WriteByte('{')
		for i := range node.Fields {
			if i > 0 {
				e.buf.WriteByte(',')
			}
			e.newline(depth + 1)
			if err := e.leaf(node.Fields[i], KeyColor); err != nil {
				return err
			}
			e.buf.WriteString(": ")
			if err := e.encode(node.Values[i], depth+1); err != nil {
				return err
			}
		}
		e.newline(depth)
		e.buf.WriteByte('}')
	case ir.ArrayType:
		if len(node.Values) == 0 {
			e.buf.WriteString("[]")
			return nil
		}
		e.buf.WriteByte('[')
		for i, v := range node.Values {
			if i > 0 {
				e.buf.WriteByte(',')
			}
			e.newline(depth + 1)
			if err := e.encode(v, depth+1); err != nil {
				return err
			}
		}
		e.newline(depth)
		e.buf.WriteByte(']')
	default:
		return e.leaf(node, ValueColor)
	}
	return nil
}

func (e *jsonEncoder) leaf(node *ir.Node, attr ColorAttr) error {
	d, err := ir.ToJSON(node)
	if err != nil {
		return err
	}
	if e.colors == nil {
		e.buf.Write(d)
		return nil
	}
	e.buf.WriteString(e.colors.Color(Colorable{Type: node.Type, Attr: attr}, string(d)))
	return nil
}

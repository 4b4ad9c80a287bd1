// Package parse decodes documents into ir nodes.
package parse

import (
	"bytes"

	"github.com/signadot/plistkvc/format"
	"github.com/signadot/plistkvc/ir"
)

type parseOpts struct {
	format *format.Format
}

type ParseOption func(*parseOpts)

// ParseFormat fixes the input format. Without it, input starting with '{'
// or '[' is read as JSON and anything else as YAML.
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = &f }
}

func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	o := &parseOpts{}
	for _, opt := range opts {
		opt(o)
	}
	f := Detect(d)
	if o.format != nil {
		f = *o.format
	}
	if f.IsJSON() {
		return ir.FromJSON(d)
	}
	return ir.FromYAML(d)
}

// Value parses a command line value. Values are YAML, so JSON is accepted
// and bare words are strings.
func Value(s string) (*ir.Node, error) {
	return ir.FromYAML([]byte(s))
}

// Detect guesses the format of d from its first non-space byte.
func Detect(d []byte) format.Format {
	d = bytes.TrimSpace(d)
	if len(d) > 0 && (d[0] == '{' || d[0] == '[') {
		return format.JSONFormat
	}
	return format.YAMLFormat
}

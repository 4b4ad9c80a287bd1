package parse

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/plistkvc/format"
	"github.com/signadot/plistkvc/ir"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		opts []ParseOption
		want string
	}{
		{"detect json", ` {"b": 1, "a": [true]}`, nil, `{"b":1,"a":[true]}`},
		{"detect yaml", "b: 1\na: [true]\n", nil, `{"b":1,"a":[true]}`},
		{"forced yaml", `{"k": "v"}`, []ParseOption{ParseFormat(format.YAMLFormat)}, `{"k":"v"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := Parse([]byte(tt.in), tt.opts...)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			got, err := ir.ToJSON(node)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, string(got)); diff != "" {
				t.Errorf("Parse mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseForcedJSON(t *testing.T) {
	_, err := Parse([]byte("k: v\n"), ParseFormat(format.JSONFormat))
	if !errors.Is(err, ir.ErrParse) {
		t.Errorf("Parse error = %v, want ErrParse", err)
	}
}

func TestValue(t *testing.T) {
	tests := []struct {
		in   string
		want ir.Type
	}{
		{"hello", ir.StringType},
		{"42", ir.NumberType},
		{"true", ir.BoolType},
		{"null", ir.NullType},
		{`{"a": 1}`, ir.ObjectType},
		{"[1, 2]", ir.ArrayType},
		{`"42"`, ir.StringType},
	}
	for _, tt := range tests {
		node, err := Value(tt.in)
		if err != nil {
			t.Fatalf("Value(%q): %v", tt.in, err)
		}
		if node.Type != tt.want {
			t.Errorf("Value(%q).Type = %s, want %s", tt.in, node.Type, tt.want)
		}
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		in   string
		want format.Format
	}{
		{"{}", format.JSONFormat},
		{"\n  [1]", format.JSONFormat},
		{"a: 1", format.YAMLFormat},
		{"", format.YAMLFormat},
	}
	for _, tt := range tests {
		if got := Detect([]byte(tt.in)); got != tt.want {
			t.Errorf("Detect(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

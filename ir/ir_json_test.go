package ir

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFromJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"keeps key order", `{"z": 1, "a": {"y": 2, "b": 3}}`, `{"z":1,"a":{"y":2,"b":3}}`},
		{"numbers", `[1, -2, 2.5, 1e3, 123456789012345678901234567890]`, `[1,-2,2.5,1000,1.2345678901234568e+29]`},
		{"scalars", `[true, false, null, "s"]`, `[true,false,null,"s"]`},
		{"escapes", `{"a\"b": "é\n"}`, `{"a\"b":"é\n"}`},
		{"empty containers", `{"a": [], "b": {}}`, `{"a":[],"b":{}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := FromJSON([]byte(tt.in))
			if err != nil {
				t.Fatalf("FromJSON: %v", err)
			}
			got, err := ToJSON(node)
			if err != nil {
				t.Fatalf("ToJSON: %v", err)
			}
			if diff := cmp.Diff(tt.want, string(got)); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFromJSONErrors(t *testing.T) {
	for _, in := range []string{`{`, `{"a": }`, `[1] [2]`, ``} {
		t.Run(in, func(t *testing.T) {
			_, err := FromJSON([]byte(in))
			if !errors.Is(err, ErrParse) {
				t.Errorf("FromJSON(%q) error = %v, want ErrParse", in, err)
			}
		})
	}
}

func TestFromJSONParentLinks(t *testing.T) {
	node := mustJSON(t, `{"a": [{"b": 1}]}`)
	b := node.Values[0].Values[0].Values[0]
	if b.ParentField != "b" || b.Parent.Parent.ParentField != "a" {
		t.Errorf("bad parent links: %q %q", b.ParentField, b.Parent.Parent.ParentField)
	}
	if got := b.KVCPath().String(); got != "a[0].b" {
		t.Errorf("KVCPath() = %q", got)
	}
}

func TestNode_JSONMarshaler(t *testing.T) {
	type wrapper struct {
		Doc *Node `json:"doc"`
	}
	var w wrapper
	if err := json.Unmarshal([]byte(`{"doc": {"k": [1, "x"]}}`), &w); err != nil {
		t.Fatal(err)
	}
	if w.Doc.Type != ObjectType {
		t.Fatalf("Type = %s", w.Doc.Type)
	}
	d, err := json.Marshal(w)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(`{"doc":{"k":[1,"x"]}}`, string(d)); diff != "" {
		t.Errorf("Marshal mismatch (-want +got):\n%s", diff)
	}
}

func TestToJSONRejectsNaN(t *testing.T) {
	nan := 0.0
	nan = nan / nan
	if _, err := ToJSON(FromFloat(nan)); err == nil {
		t.Error("ToJSON(NaN) succeeded")
	}
}

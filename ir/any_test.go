package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFromYAML(t *testing.T) {
	in := `
name: plist
version: 3
ratio: 0.5
enabled: true
nothing: null
items:
  - zed: 1
    alpha: 2
  - b
`
	node, err := FromYAML([]byte(in))
	if err != nil {
		t.Fatalf("FromYAML: %v", err)
	}
	want := `{"name":"plist","version":3,"ratio":0.5,"enabled":true,"nothing":null,"items":[{"zed":1,"alpha":2},"b"]}`
	if diff := cmp.Diff(want, mustEncode(t, node)); diff != "" {
		t.Errorf("FromYAML mismatch (-want +got):\n%s", diff)
	}
	got, err := node.Get("items[0].alpha")
	if err != nil {
		t.Fatal(err)
	}
	if *got.Int64 != 2 {
		t.Errorf("items[0].alpha = %d", *got.Int64)
	}
}

func TestToYAMLRoundTrip(t *testing.T) {
	node := mustJSON(t, `{"z": [1, 2.5, "x", null, true], "a": {"k": "v"}}`)
	d, err := ToYAML(node)
	if err != nil {
		t.Fatalf("ToYAML: %v", err)
	}
	back, err := FromYAML(d)
	if err != nil {
		t.Fatalf("FromYAML(%s): %v", d, err)
	}
	if diff := cmp.Diff(mustEncode(t, node), mustEncode(t, back)); diff != "" {
		t.Errorf("YAML round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestFromYAMLError(t *testing.T) {
	if _, err := FromYAML([]byte("a: [1, 2")); err == nil {
		t.Error("FromYAML accepted unterminated flow sequence")
	}
}

func TestToAny(t *testing.T) {
	node := mustJSON(t, `{"a": [1, 2.5, "s", true, null], "b": {"c": 1}}`)
	want := map[string]any{
		"a": []any{int64(1), 2.5, "s", true, nil},
		"b": map[string]any{"c": int64(1)},
	}
	if diff := cmp.Diff(want, ToAny(node)); diff != "" {
		t.Errorf("ToAny mismatch (-want +got):\n%s", diff)
	}
}

func TestFromAny(t *testing.T) {
	node, err := FromAny(map[string]any{
		"b": []any{1, uint64(2), float32(0.5), "x"},
		"a": nil,
		"c": map[any]any{"k": false},
	})
	if err != nil {
		t.Fatal(err)
	}
	want := `{"a":null,"b":[1,2,0.5,"x"],"c":{"k":false}}`
	if diff := cmp.Diff(want, mustEncode(t, node)); diff != "" {
		t.Errorf("FromAny mismatch (-want +got):\n%s", diff)
	}
	if _, err := FromAny(struct{}{}); err == nil {
		t.Error("FromAny(struct{}{}) succeeded")
	}
}

package locate

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/plistkvc/kvcpath"
)

const plist = `name: app
items:
  - id: 1
    tags: [a, b]
  - id: 2
meta:
  "a.b": true
`

func TestKeys(t *testing.T) {
	keys, err := Keys([]byte(plist))
	if err != nil {
		t.Fatal(err)
	}
	type pos struct {
		Path string
		Line int
	}
	var got []pos
	for _, k := range keys {
		got = append(got, pos{k.Path.String(), k.Line})
	}
	want := []pos{
		{"name", 0},
		{"items", 1},
		{"items[0].id", 2},
		{"items[0].tags", 3},
		{"items[1].id", 4},
		{"meta", 5},
		{`meta.a\.b`, 6},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Keys mismatch (-want +got):\n%s", diff)
	}
	if keys[2].Col != 4 || keys[2].Len != 2 {
		t.Errorf("items[0].id at col %d len %d", keys[2].Col, keys[2].Len)
	}
}

func TestKeysUTF16(t *testing.T) {
	keys, err := Keys([]byte("clé: 1\n𝄞: {été: 2}\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := []Key{
		{Path: kvcpath.Components{kvcpath.Key("clé")}, Line: 0, Col: 0, Len: 3},
		{Path: kvcpath.Components{kvcpath.Key("𝄞")}, Line: 1, Col: 0, Len: 2},
		{Path: kvcpath.Components{kvcpath.Key("𝄞"), kvcpath.Key("été")}, Line: 1, Col: 5, Len: 3},
	}
	if diff := cmp.Diff(want, keys); diff != "" {
		t.Errorf("Keys mismatch (-want +got):\n%s", diff)
	}
}

func TestKeysJSON(t *testing.T) {
	keys, err := Keys([]byte(`[{"a": {"b": 1}}, {"c": 2}]`))
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, k := range keys {
		got = append(got, k.Path.String())
	}
	if diff := cmp.Diff([]string{"[0].a", "[0].a.b", "[1].c"}, got); diff != "" {
		t.Errorf("Keys mismatch (-want +got):\n%s", diff)
	}
}

func TestAt(t *testing.T) {
	keys := []Key{
		{Line: 0, Col: 0, Len: 4},
		{Line: 2, Col: 4, Len: 2},
		{Line: 2, Col: 10, Len: 3},
	}
	tests := []struct {
		line, col int
		want      int
	}{
		{0, 2, 0},
		{2, 5, 1},
		{2, 11, 2},
		{2, 8, -1},
		{1, 0, -1},
	}
	for _, tt := range tests {
		got := At(keys, tt.line, tt.col)
		switch {
		case tt.want == -1 && got != nil:
			t.Errorf("At(%d, %d) = %+v, want nil", tt.line, tt.col, *got)
		case tt.want >= 0 && got != &keys[tt.want]:
			t.Errorf("At(%d, %d) = %v, want key %d", tt.line, tt.col, got, tt.want)
		}
	}
}

func TestKeysError(t *testing.T) {
	if _, err := Keys([]byte("a: [1, 2")); err == nil {
		t.Error("Keys accepted unterminated flow sequence")
	}
}

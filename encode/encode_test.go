package encode

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/plistkvc/format"
	"github.com/signadot/plistkvc/ir"
)

func doc(t *testing.T) *ir.Node {
	t.Helper()
	node, err := ir.FromJSON([]byte(`{"z": [1, "s", {}], "a": {"b": null, "c": []}}`))
	if err != nil {
		t.Fatal(err)
	}
	return node
}

func TestEncodeJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := Encode(doc(t), buf); err != nil {
		t.Fatal(err)
	}
	want := `{
  "z": [
    1,
    "s",
    {}
  ],
  "a": {
    "b": null,
    "c": []
  }
}
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("Encode mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeJSONScalar(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := Encode(ir.FromInt(3), buf, EncodeIndent(4)); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "3\n" {
		t.Errorf("Encode(3) = %q", buf.String())
	}
}

func TestEncodeYAML(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := Encode(doc(t), buf, EncodeFormat(format.YAMLFormat), EncodeColors(NewColors())); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if strings.Contains(out, "\x1b[") {
		t.Errorf("YAML output colored: %q", out)
	}
	if strings.Index(out, "z:") > strings.Index(out, "a:") {
		t.Errorf("YAML output lost key order:\n%s", out)
	}
	back, err := ir.FromYAML(buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	got, _ := ir.ToJSON(back)
	if diff := cmp.Diff(`{"z":[1,"s",{}],"a":{"b":null,"c":[]}}`, string(got)); diff != "" {
		t.Errorf("YAML round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeColors(t *testing.T) {
	plain := &bytes.Buffer{}
	colored := &bytes.Buffer{}
	if err := Encode(doc(t), plain); err != nil {
		t.Fatal(err)
	}
	if err := Encode(doc(t), colored, EncodeColors(NewColors())); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(colored.String(), "\x1b[") {
		t.Errorf("no color escapes in %q", colored.String())
	}
	if colored.Len() <= plain.Len() {
		t.Errorf("colored output not longer than plain")
	}
}

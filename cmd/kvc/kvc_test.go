package main

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/plistkvc/edit"
	"github.com/signadot/plistkvc/kvcpath"
)

func TestComponentArg(t *testing.T) {
	tests := []struct {
		arg  string
		want kvcpath.Component
	}{
		{"name", kvcpath.Key("name")},
		{"a.b", kvcpath.Key("a.b")},
		{"[0]", kvcpath.Index("0")},
		{"[x", kvcpath.Index("x")},
		{"@count", kvcpath.Operator("count")},
		{"@", kvcpath.Key("@")},
		{"", kvcpath.Key("")},
	}
	for _, tt := range tests {
		if got := componentArg(tt.arg); got != tt.want {
			t.Errorf("componentArg(%q) = %#v, want %#v", tt.arg, got, tt.want)
		}
	}
}

func TestJoinArgs(t *testing.T) {
	args := []string{"a.b", "[0]", "@count"}
	cs := make([]kvcpath.Component, len(args))
	for i, a := range args {
		cs[i] = componentArg(a)
	}
	if got := kvcpath.Join(cs...); got != `a\.b[0]@count` {
		t.Errorf("Join = %q", got)
	}
}

func TestComponentLine(t *testing.T) {
	var got []string
	for _, c := range kvcpath.Split("items[0].@sum.price") {
		got = append(got, componentLine(c))
	}
	want := []string{"key\titems", "index\t0", "key\t", "operator\t@sum", "key\tprice"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("componentLine mismatch (-want +got):\n%s", diff)
	}
}

func TestSetKind(t *testing.T) {
	tests := []struct {
		path string
		add  bool
		want edit.Kind
	}{
		{"a.b", false, edit.Add},
		{"a[0]", false, edit.Replace},
		{"a[-]", false, edit.Add},
		{"a[0]", true, edit.Add},
		{"", false, edit.Add},
	}
	for _, tt := range tests {
		if got := setKind(tt.path, tt.add); got != tt.want {
			t.Errorf("setKind(%q, %t) = %s, want %s", tt.path, tt.add, got, tt.want)
		}
	}
}

func TestFiles(t *testing.T) {
	if diff := cmp.Diff([]string{"-"}, files(nil)); diff != "" {
		t.Errorf("files(nil) mismatch:\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a", "b"}, files([]string{"a", "b"})); diff != "" {
		t.Errorf("files mismatch:\n%s", diff)
	}
}

func TestColors(t *testing.T) {
	cfg := &MainConfig{}
	if cfg.colors(&bytes.Buffer{}) {
		t.Error("colors on a buffer without -color")
	}
	cfg.Color = true
	if !cfg.colors(&bytes.Buffer{}) {
		t.Error("no colors with -color")
	}
	if count(true, false, true) != 2 {
		t.Error("count")
	}
}

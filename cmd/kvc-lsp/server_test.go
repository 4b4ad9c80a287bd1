package main

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/plistkvc/format"

	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
)

const uri = "file:///tmp/Info.yaml"

func open(t *testing.T, s *Server, uri, text string) {
	t.Helper()
	err := s.DidOpen(context.Background(), &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: protocol.DocumentURI(uri), Text: text, Version: 1},
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestHover(t *testing.T) {
	s := NewServer()
	open(t, s, uri, "name: app\nitems:\n  - price: 3\n")
	h, err := s.Hover(context.Background(), &protocol.HoverParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: uri},
			Position:     protocol.Position{Line: 2, Character: 5},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if h == nil {
		t.Fatal("no hover")
	}
	want := "**Path:** `items[0].price`\n\n**Type:** integer\n\n**Value:** `3`"
	if diff := cmp.Diff(want, h.Contents.Value); diff != "" {
		t.Errorf("hover mismatch (-want +got):\n%s", diff)
	}
}

func TestDiagnostics(t *testing.T) {
	s := NewServer()
	open(t, s, "file:///tmp/bad.json", "{\n  \"a\": ,\n}")
	doc := s.docs.get("file:///tmp/bad.json")
	if doc.format != format.JSONFormat {
		t.Errorf("format = %s", doc.format)
	}
	ds := diagnostics(doc)
	if len(ds) != 1 {
		t.Fatalf("got %d diagnostics", len(ds))
	}
	if ds[0].Range.Start.Line != 1 {
		t.Errorf("diagnostic on line %d, want 1", ds[0].Range.Start.Line)
	}
}

func TestDidChange(t *testing.T) {
	s := NewServer()
	open(t, s, uri, "a: 1\nb: 2\n")
	err := s.DidChange(context.Background(), &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
			Version:                2,
		},
		ContentChanges: []protocol.TextDocumentContentChangeEvent{{
			Range: protocol.Range{
				Start: protocol.Position{Line: 1, Character: 3},
				End:   protocol.Position{Line: 1, Character: 4},
			},
			Text: "20",
		}},
	})
	if err != nil {
		t.Fatal(err)
	}
	doc := s.docs.get(uri)
	if doc.content != "a: 1\nb: 20\n" || doc.version != 2 {
		t.Errorf("content %q version %d", doc.content, doc.version)
	}
}

func TestDidChangeAtOrigin(t *testing.T) {
	s := NewServer()
	open(t, s, uri, "b: 2\n")
	err := s.DidChange(context.Background(), &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
			Version:                2,
		},
		ContentChanges: []protocol.TextDocumentContentChangeEvent{{Text: "a: 1\n"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := s.docs.get(uri).content; got != "a: 1\nb: 2\n" {
		t.Errorf("content = %q", got)
	}
}

func TestHandlerDidChange(t *testing.T) {
	tests := []struct {
		name    string
		changes []contentChange
		want    string
	}{
		{
			name:    "no range replaces the text",
			changes: []contentChange{{Text: "c: 3\n"}},
			want:    "c: 3\n",
		},
		{
			name:    "range at the origin inserts",
			changes: []contentChange{{Range: &protocol.Range{}, Text: "a: 1\n"}},
			want:    "a: 1\nb: 2\n",
		},
		{
			name: "replace then edit",
			changes: []contentChange{
				{Text: "x: 1\n"},
				{Range: &protocol.Range{
					Start: protocol.Position{Line: 0, Character: 3},
					End:   protocol.Position{Line: 0, Character: 4},
				}, Text: "9"},
			},
			want: "x: 9\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewServer()
			open(t, s, uri, "b: 2\n")
			req, err := jsonrpc2.NewNotification(protocol.MethodTextDocumentDidChange, &didChangeParams{
				TextDocument: protocol.VersionedTextDocumentIdentifier{
					TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
					Version:                2,
				},
				ContentChanges: tt.changes,
			})
			if err != nil {
				t.Fatal(err)
			}
			reply := func(ctx context.Context, result any, err error) error { return err }
			if err := s.handler()(context.Background(), reply, req); err != nil {
				t.Fatal(err)
			}
			doc := s.docs.get(uri)
			if doc.content != tt.want || doc.version != 2 {
				t.Errorf("content %q version %d, want %q", doc.content, doc.version, tt.want)
			}
		})
	}
}

func TestHoverUTF16(t *testing.T) {
	s := NewServer()
	open(t, s, uri, "𝄞: {été: 2}\n")
	h, err := s.Hover(context.Background(), &protocol.HoverParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: uri},
			Position:     protocol.Position{Line: 0, Character: 6},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if h == nil {
		t.Fatal("no hover")
	}
	if !strings.HasPrefix(h.Contents.Value, "**Path:** `𝄞.été`") {
		t.Errorf("hover = %q", h.Contents.Value)
	}
	want := protocol.Range{
		Start: protocol.Position{Line: 0, Character: 5},
		End:   protocol.Position{Line: 0, Character: 8},
	}
	if diff := cmp.Diff(want, *h.Range); diff != "" {
		t.Errorf("range mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatting(t *testing.T) {
	s := NewServer()
	open(t, s, "file:///tmp/x.json", `{"b":[1,2],"a":{}}`)
	edits, err := s.Formatting(context.Background(), &protocol.DocumentFormattingParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: "file:///tmp/x.json"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(edits) != 1 || !strings.HasPrefix(edits[0].NewText, "{\n  \"b\": [") {
		t.Errorf("edits = %+v", edits)
	}
}

func TestOffsets(t *testing.T) {
	content := "ab\ncd\n"
	if got := lineColToOffset(content, 1, 1); got != 4 {
		t.Errorf("lineColToOffset = %d", got)
	}
	if l, c := offsetToLineCol(content, 4); l != 1 || c != 1 {
		t.Errorf("offsetToLineCol = %d, %d", l, c)
	}
	wide := "𝄞a\nb"
	if got := lineColToOffset(wide, 0, 2); got != 4 {
		t.Errorf("lineColToOffset after surrogate pair = %d", got)
	}
	if got := lineColToOffset(wide, 0, 3); got != 5 {
		t.Errorf("lineColToOffset at line end = %d", got)
	}
	if l, c := offsetToLineCol(wide, 4); l != 0 || c != 2 {
		t.Errorf("offsetToLineCol after surrogate pair = %d, %d", l, c)
	}
	if got := runeColToUTF16("x\n𝄞b", 1, 1); got != 2 {
		t.Errorf("runeColToUTF16 = %d", got)
	}
}

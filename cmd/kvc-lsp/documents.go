package main

import (
	"context"
	"encoding/json"
	"errors"
	"path"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"unicode/utf16"

	"github.com/signadot/plistkvc/format"
	"github.com/signadot/plistkvc/ir"
	"github.com/signadot/plistkvc/locate"
	"github.com/signadot/plistkvc/parse"

	"go.lsp.dev/protocol"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri     string
	content string
	version int32
	format  format.Format
	node    *ir.Node
	keys    []locate.Key
	err     error
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) *document {
	doc := &document{
		uri:     uri,
		content: content,
		version: version,
		format:  uriFormat(uri, []byte(content)),
	}
	doc.node, doc.err = parse.Parse([]byte(content), parse.ParseFormat(doc.format))
	if doc.err == nil {
		doc.keys, doc.err = locate.Keys([]byte(content))
	}
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[uri] = doc
	return doc
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func uriFormat(uri string, d []byte) format.Format {
	switch strings.ToLower(path.Ext(uri)) {
	case ".json":
		return format.JSONFormat
	case ".yaml", ".yml":
		return format.YAMLFormat
	}
	return parse.Detect(d)
}

func (s *Server) publishDiagnostics(ctx context.Context, doc *document) {
	if s.conn == nil {
		return
	}
	s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentURI(doc.uri),
		Diagnostics: diagnostics(doc),
	})
}

func diagnostics(doc *document) []protocol.Diagnostic {
	res := []protocol.Diagnostic{}
	if doc.err == nil {
		return res
	}
	line, col := errorPosition(doc.content, doc.err)
	return append(res, protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: uint32(line), Character: uint32(col)},
			End:   protocol.Position{Line: uint32(line), Character: uint32(col + 1)},
		},
		Severity: protocol.DiagnosticSeverityError,
		Message:  doc.err.Error(),
		Source:   lsName,
	})
}

var yamlErrPos = regexp.MustCompile(`\[(\d+):(\d+)\]`)

// errorPosition returns the 0-based line and column of a parse error, or
// 0, 0 when the error carries no position.
func errorPosition(content string, err error) (int, int) {
	var serr *json.SyntaxError
	if errors.As(err, &serr) {
		return offsetToLineCol(content, int(serr.Offset))
	}
	m := yamlErrPos.FindStringSubmatch(err.Error())
	if m == nil {
		return 0, 0
	}
	line, _ := strconv.Atoi(m[1])
	col, _ := strconv.Atoi(m[2])
	line, col = max(line-1, 0), max(col-1, 0)
	return line, runeColToUTF16(content, line, col)
}

// runeColToUTF16 converts a column counted in runes, as YAML errors report
// it, to UTF-16 code units.
func runeColToUTF16(content string, line, col int) int {
	lines := strings.Split(content, "\n")
	if line >= len(lines) {
		return col
	}
	n := 0
	for i, r := range []rune(lines[line]) {
		if i >= col {
			break
		}
		n += utf16Len(r)
	}
	return n
}

// offsetToLineCol converts a byte offset to a position whose column counts
// UTF-16 code units.
func offsetToLineCol(content string, off int) (int, int) {
	line, col := 0, 0
	for i, r := range content {
		if i >= off {
			break
		}
		if r == '\n' {
			line++
			col = 0
		} else {
			col += utf16Len(r)
		}
	}
	return line, col
}

// lineColToOffset converts a position to a byte offset. A column inside a
// surrogate pair resolves to the following rune; one past the end of its
// line resolves to the line end.
func lineColToOffset(content string, line, col int) int {
	currentLine := 0
	currentCol := 0
	for i, r := range content {
		if currentLine == line && currentCol >= col {
			return i
		}
		if r == '\n' {
			if currentLine == line {
				return i
			}
			currentLine++
			currentCol = 0
		} else {
			currentCol += utf16Len(r)
		}
	}
	return len(content)
}

func utf16Len(r rune) int {
	if n := utf16.RuneLen(r); n > 0 {
		return n
	}
	return 1
}

// contentChange is a content change event. A nil Range replaces the whole
// text.
type contentChange struct {
	Range *protocol.Range `json:"range,omitempty"`
	Text  string          `json:"text"`
}

type didChangeParams struct {
	TextDocument   protocol.VersionedTextDocumentIdentifier `json:"textDocument"`
	ContentChanges []contentChange                          `json:"contentChanges"`
}

func applyChange(content string, change contentChange) string {
	r := change.Range
	if r == nil {
		return change.Text
	}
	start := lineColToOffset(content, int(r.Start.Line), int(r.Start.Character))
	end := lineColToOffset(content, int(r.End.Line), int(r.End.Character))
	if start > end {
		return content
	}
	return content[:start] + change.Text + content[end:]
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	doc := s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, doc)
	return nil
}

// DidChange applies every event as a ranged edit, which is what the
// advertised incremental sync sends. Whole text replacements are routed
// through handler, where an absent range can still be seen.
func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	changes := make([]contentChange, len(params.ContentChanges))
	for i := range params.ContentChanges {
		changes[i] = contentChange{
			Range: &params.ContentChanges[i].Range,
			Text:  params.ContentChanges[i].Text,
		}
	}
	return s.change(ctx, params.TextDocument, changes)
}

func (s *Server) change(ctx context.Context, id protocol.VersionedTextDocumentIdentifier, changes []contentChange) error {
	uri := string(id.URI)
	doc := s.docs.get(uri)
	if doc == nil {
		return nil
	}
	content := doc.content
	for _, change := range changes {
		content = applyChange(content, change)
	}
	doc = s.docs.put(uri, content, id.Version)
	s.publishDiagnostics(ctx, doc)
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}

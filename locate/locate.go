// Package locate finds the KVC paths of mapping keys in JSON or YAML text.
package locate

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/signadot/plistkvc/ir"
	"github.com/signadot/plistkvc/kvcpath"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
)

// Key is a mapping key in a text. Line and Col are 0-based, and Col and Len
// count UTF-16 code units as editors do. Len is the width of the key as
// written, quotes included.
type Key struct {
	Path kvcpath.Components
	Line int
	Col  int
	Len  int
}

// Keys returns the keys of every mapping in d, in document order. Only the
// first document of a stream is read.
func Keys(d []byte) ([]Key, error) {
	f, err := parser.ParseBytes(d, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ir.ErrParse, err)
	}
	if len(f.Docs) == 0 || f.Docs[0].Body == nil {
		return nil, nil
	}
	w := &walker{lines: strings.Split(string(d), "\n")}
	w.walk(f.Docs[0].Body, kvcpath.Components{})
	return w.res, nil
}

type walker struct {
	lines []string
	res   []Key
}

func (w *walker) walk(node ast.Node, prefix kvcpath.Components) {
	switch n := node.(type) {
	case *ast.MappingNode:
		for _, mv := range n.Values {
			w.walk(mv, prefix)
		}
	case *ast.MappingValueNode:
		tok := n.Key.GetToken()
		if tok == nil || tok.Position == nil {
			return
		}
		path := prefix.Append(kvcpath.Key(tok.Value))
		width := utf16Width([]rune(tok.Value))
		if isQuoted(tok.Origin) {
			width += 2
		}
		w.res = append(w.res, Key{
			Path: path,
			Line: tok.Position.Line - 1,
			Col:  w.column(tok.Position.Line-1, tok.Position.Column-1),
			Len:  width,
		})
		w.walk(n.Value, path)
	case *ast.SequenceNode:
		if len(prefix) == 0 {
			prefix = kvcpath.Components{kvcpath.Key("")}
		}
		for i, v := range n.Values {
			w.walk(v, prefix.Append(kvcpath.Index(strconv.Itoa(i))))
		}
	case *ast.AnchorNode:
		w.walk(n.Value, prefix)
	case *ast.TagNode:
		w.walk(n.Value, prefix)
	}
}

// column converts a rune column, as the scanner reports it, to UTF-16
// code units.
func (w *walker) column(line, runeCol int) int {
	if line < 0 || line >= len(w.lines) {
		return runeCol
	}
	rs := []rune(w.lines[line])
	return utf16Width(rs[:min(max(runeCol, 0), len(rs))])
}

func utf16Width(rs []rune) int {
	n := 0
	for _, r := range rs {
		if k := utf16.RuneLen(r); k > 0 {
			n += k
		} else {
			n++
		}
	}
	return n
}

func isQuoted(origin string) bool {
	for i := 0; i < len(origin); i++ {
		switch origin[i] {
		case ' ', '\t', '\n', '\r':
			continue
		case '"', '\'':
			return true
		}
		return false
	}
	return false
}

// At returns the key written at line and col, or nil.
func At(keys []Key, line, col int) *Key {
	var best *Key
	for i := range keys {
		k := &keys[i]
		if k.Line != line || col < k.Col || col > k.Col+k.Len {
			continue
		}
		if best == nil || k.Col > best.Col {
			best = k
		}
	}
	return best
}

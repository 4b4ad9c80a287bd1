package kvcpath

import (
	"slices"
	"strings"
)

// Components is an ordered sequence of path components, in walk order.
type Components []Component

// Split breaks a KVC path into its components.
//
// Split is total: it never fails and never panics.
//
//   - "a.b.c"         → [a b c]
//   - "items[3].name" → [items [3] name]
//   - `a\.b`          → [a.b]
//   - "a..b"          → [a "" b]
//   - ".a"            → ["" a]
//   - "a[2"           → [a [2]]
//   - "a@count"       → [a @count]
//   - "a.@count"      → [a "" @count]
//   - "@count"        → ["" @count]
//   - ""              → []
//
// An unescaped '.', '@' or '[' closes the key being built even when it is
// empty, so a key-only path has one more component than it has delimiters.
// The empty key a walker sees right before an operator is left for it to
// skip. No key is pending right after ']', so "a[0].b" and "a[0]@count"
// carry no empty keys, while text directly after ']' starts a new key
// ("a[0]b" → [a [0] b]).
// Inside brackets only an unescaped ']' is special. A backslash makes the
// next byte literal anywhere; a trailing backslash is itself literal.
func Split(path string) Components {
	if path == "" {
		return Components{}
	}
	var (
		res  Components
		acc  strings.Builder
		open = true
		op   = false
	)
	flush := func() {
		if open {
			res = append(res, Component{Kind: KeyKind, Text: acc.String(), Operator: op})
		}
		acc.Reset()
		op = false
	}
	n := len(path)
	for i := 0; i < n; i++ {
		c := path[i]
		switch c {
		case '\\':
			if i+1 < n {
				i++
				c = path[i]
			}
			acc.WriteByte(c)
			open = true
		case '.':
			flush()
			open = true
		case '@':
			flush()
			open, op = true, true
			acc.WriteByte('@')
		case '[':
			flush()
			j := i + 1
			for ; j < n; j++ {
				b := path[j]
				if b == ']' {
					break
				}
				if b == '\\' && j+1 < n {
					j++
					b = path[j]
				}
				acc.WriteByte(b)
			}
			res = append(res, Index(acc.String()))
			acc.Reset()
			open = false
			i = j
		default:
			acc.WriteByte(c)
			open = true
		}
	}
	flush()
	return res
}

// Join recomposes components into a path. Keys after the first component
// are preceded by '.', operators carry only their '@', indices are
// bracketed, and delimiters inside texts are escaped. For every path p,
// Split(Join(Split(p)...)) equals Split(p).
func Join(cs ...Component) string {
	var b strings.Builder
	for i := range cs {
		c := &cs[i]
		if c.Kind == KeyKind && !c.Operator && i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(c.String())
	}
	return b.String()
}

func (cs Components) String() string {
	return Join(cs...)
}

// Keys returns the unescaped text of every component.
func (cs Components) Keys() []string {
	res := make([]string, len(cs))
	for i := range cs {
		res[i] = cs[i].Text
	}
	return res
}

// Parent returns all components but the last, or nil for an empty
// sequence.
func (cs Components) Parent() Components {
	if len(cs) == 0 {
		return nil
	}
	return slices.Clone(cs[:len(cs)-1])
}

// Last returns the final component and whether there is one.
func (cs Components) Last() (Component, bool) {
	if len(cs) == 0 {
		return Component{}, false
	}
	return cs[len(cs)-1], true
}

// Append returns a new sequence; cs is not modified.
func (cs Components) Append(more ...Component) Components {
	res := make(Components, 0, len(cs)+len(more))
	res = append(res, cs...)
	return append(res, more...)
}

func (cs Components) Equal(other Components) bool {
	return slices.Equal(cs, other)
}

// TrimRoot drops the empty key that Split places before a leading index,
// so that "[0]" addresses the first element of a root array.
func (cs Components) TrimRoot() Components {
	if len(cs) >= 2 && cs[0] == Key("") && cs[1].Kind == IndexKind {
		return cs[1:]
	}
	return cs
}

// HasOperator reports whether any component is a collection operator.
func (cs Components) HasOperator() bool {
	return slices.ContainsFunc(cs, func(c Component) bool { return c.Operator })
}

// Pointer renders cs as an RFC 6901 JSON Pointer. Keys and indices are
// both plain reference tokens there.
//
//   - [a [0] b/c] → "/a/0/b~1c"
//   - []          → ""
func (cs Components) Pointer() string {
	var b strings.Builder
	r := strings.NewReplacer("~", "~0", "/", "~1")
	for i := range cs {
		b.WriteByte('/')
		b.WriteString(r.Replace(cs[i].Text))
	}
	return b.String()
}

func (cs Components) MarshalText() ([]byte, error) {
	return []byte(cs.String()), nil
}

func (cs *Components) UnmarshalText(d []byte) error {
	*cs = Split(string(d))
	return nil
}

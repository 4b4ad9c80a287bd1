package kvcpath

import (
	"fmt"
	"strings"
)

type Kind int

const (
	KeyKind Kind = iota
	IndexKind
)

func (k Kind) String() string {
	switch k {
	case KeyKind:
		return "key"
	case IndexKind:
		return "index"
	default:
		return "<unknown kind>"
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"key":   KeyKind,
		"index": IndexKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

// Component is one addressing step of a path.
//
// Text is unescaped. For an operator component Text keeps its leading '@'.
type Component struct {
	Kind     Kind
	Text     string
	Operator bool
}

func Key(name string) Component {
	return Component{Kind: KeyKind, Text: name}
}

func Index(s string) Component {
	return Component{Kind: IndexKind, Text: s}
}

// Operator returns an operator component. The leading '@' is added if name
// does not already carry it.
func Operator(name string) Component {
	if !strings.HasPrefix(name, "@") {
		name = "@" + name
	}
	return Component{Kind: KeyKind, Text: name, Operator: true}
}

// OperatorName returns the operator name without its '@', or "" if c is
// not an operator.
func (c Component) OperatorName() string {
	if !c.Operator {
		return ""
	}
	return strings.TrimPrefix(c.Text, "@")
}

// String returns the escaped segment text of c, without any leading
// separator:
//   - Key("a.b")       → `a\.b`
//   - Index("3")       → "[3]"
//   - Operator("count") → "@count"
func (c Component) String() string {
	switch c.Kind {
	case IndexKind:
		return "[" + EscapeIndex(c.Text) + "]"
	default:
		if c.Operator {
			return "@" + EscapeKey(strings.TrimPrefix(c.Text, "@"))
		}
		return EscapeKey(c.Text)
	}
}

// EscapeKey escapes every delimiter in s so that it reads back as a single
// key.
func EscapeKey(s string) string {
	if !strings.ContainsAny(s, `.@[]\`) {
		return s
	}
	return escape(s, `.@[]\`)
}

// EscapeIndex escapes s for use between brackets. Only ']' and '\' need it.
func EscapeIndex(s string) string {
	if !strings.ContainsAny(s, `]\`) {
		return s
	}
	return escape(s, `]\`)
}

func escape(s, special string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(special, s[i]) != -1 {
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

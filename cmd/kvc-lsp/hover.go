package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/signadot/plistkvc/ir"
	"github.com/signadot/plistkvc/locate"

	"go.lsp.dev/protocol"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.node == nil {
		return nil, nil
	}
	key := locate.At(doc.keys, int(params.Position.Line), int(params.Position.Character))
	if key == nil {
		return nil, nil
	}
	text := hoverText(doc.node, key)
	if text == "" {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: text,
		},
		Range: &protocol.Range{
			Start: protocol.Position{Line: uint32(key.Line), Character: uint32(key.Col)},
			End:   protocol.Position{Line: uint32(key.Line), Character: uint32(key.Col + key.Len)},
		},
	}, nil
}

func hoverText(root *ir.Node, key *locate.Key) string {
	parts := []string{fmt.Sprintf("**Path:** `%s`", key.Path)}
	node, err := root.GetComponents(key.Path)
	if err != nil {
		return parts[0]
	}
	parts = append(parts, fmt.Sprintf("**Type:** %s", typeInfo(node)))
	if v := valueInfo(node); v != "" {
		parts = append(parts, fmt.Sprintf("**Value:** %s", v))
	}
	return strings.Join(parts, "\n\n")
}

func typeInfo(node *ir.Node) string {
	switch node.Type {
	case ir.NumberType:
		if node.Int64 != nil {
			return "integer"
		}
		return "real"
	case ir.BoolType:
		return "boolean"
	case ir.ArrayType:
		return "array"
	case ir.ObjectType:
		return "dictionary"
	case ir.StringType:
		return "string"
	default:
		return "null"
	}
}

func valueInfo(node *ir.Node) string {
	switch node.Type {
	case ir.ArrayType:
		return fmt.Sprintf("array with %d elements", len(node.Values))
	case ir.ObjectType:
		return fmt.Sprintf("dictionary with %d keys", len(node.Fields))
	case ir.StringType:
		val := node.String
		if len(val) > 50 {
			val = val[:50] + "..."
		}
		return fmt.Sprintf("`%s`", val)
	default:
		d, err := ir.ToJSON(node)
		if err != nil {
			return ""
		}
		return fmt.Sprintf("`%s`", d)
	}
}

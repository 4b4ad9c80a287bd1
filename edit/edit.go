// Package edit mutates documents with RFC 6902 JSON patches addressed by
// KVC paths.
package edit

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/signadot/plistkvc/debug"
	"github.com/signadot/plistkvc/ir"
	"github.com/signadot/plistkvc/kvcpath"

	jsonpatch "github.com/evanphx/json-patch"
)

type Kind string

const (
	Add     Kind = "add"
	Replace Kind = "replace"
	Remove  Kind = "remove"
)

var (
	ErrOperatorPath = errors.New("operator in mutation path")
	ErrPatch        = errors.New("patch failed")
)

// Op is one mutation. Value is ignored for Remove.
type Op struct {
	Kind  Kind
	Path  string
	Value *ir.Node
}

type patchOp struct {
	Op    Kind     `json:"op"`
	Path  string   `json:"path"`
	Value *ir.Node `json:"value,omitempty"`
}

// Pointer renders a KVC path as a JSON Pointer. An index "-" addresses the
// end of an array, as in RFC 6902.
func Pointer(path string) (string, error) {
	cs := kvcpath.Split(path).TrimRoot()
	if cs.HasOperator() {
		return "", fmt.Errorf("%w: %q", ErrOperatorPath, path)
	}
	return cs.Pointer(), nil
}

// Patch encodes ops as an RFC 6902 document.
func Patch(ops ...Op) ([]byte, error) {
	p := make([]patchOp, len(ops))
	for i := range ops {
		op := &ops[i]
		ptr, err := Pointer(op.Path)
		if err != nil {
			return nil, err
		}
		p[i] = patchOp{Op: op.Kind, Path: ptr}
		switch op.Kind {
		case Add, Replace:
			p[i].Value = op.Value
			if p[i].Value == nil {
				p[i].Value = ir.Null()
			}
		case Remove:
		default:
			return nil, fmt.Errorf("%w: unknown op %q", ErrPatch, op.Kind)
		}
	}
	return json.Marshal(p)
}

// Apply applies ops to a copy of doc and returns the result. Object keys
// keep the order they had in doc; added keys follow.
func Apply(doc *ir.Node, ops ...Op) (*ir.Node, error) {
	d, err := Patch(ops...)
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("patch %s\n", d)
	}
	p, err := jsonpatch.DecodePatch(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	in, err := ir.ToJSON(doc)
	if err != nil {
		return nil, err
	}
	out, err := p.Apply(in)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	res, err := ir.FromJSON(out)
	if err != nil {
		return nil, err
	}
	reorder(doc, res)
	return res, nil
}

// reorder sorts the fields of res after those of orig.
func reorder(orig, res *ir.Node) {
	switch {
	case orig.Type == ir.ObjectType && res.Type == ir.ObjectType:
		pos := make(map[string]int, len(orig.Fields))
		for i, f := range orig.Fields {
			pos[f.String] = i
		}
		rank := func(k string) int {
			if i, ok := pos[k]; ok {
				return i
			}
			return len(pos)
		}
		idx := make([]int, len(res.Fields))
		for i := range idx {
			idx[i] = i
		}
		slices.SortStableFunc(idx, func(a, b int) int {
			return rank(res.Fields[a].String) - rank(res.Fields[b].String)
		})
		fields := make([]*ir.Node, len(idx))
		values := make([]*ir.Node, len(idx))
		for i, j := range idx {
			fields[i], values[i] = res.Fields[j], res.Values[j]
			fields[i].ParentIndex, values[i].ParentIndex = i, i
		}
		res.Fields, res.Values = fields, values
		for _, v := range res.Values {
			if o := ir.Get(orig, v.ParentField); o != nil {
				reorder(o, v)
			}
		}
	case orig.Type == ir.ArrayType && res.Type == ir.ArrayType && len(orig.Values) == len(res.Values):
		for i := range res.Values {
			reorder(orig.Values[i], res.Values[i])
		}
	}
}

package ir

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/signadot/plistkvc/debug"
	"github.com/signadot/plistkvc/kvcpath"
)

// KVCPath returns the components addressing node from its root.
//
// Examples:
//   - Root node → []
//   - Object field "a" → [a]
//   - Element 0 of a root array → ["" [0]], which is what "[0]" splits to
//   - Mixed → [a [0] b]
//
// A root dictionary field named "" has no path of its own: [""] renders as
// "", the root, and ["" [0]] reads back as element 0 of a root array.
func (node *Node) KVCPath() kvcpath.Components {
	if node.Parent == nil {
		return kvcpath.Components{}
	}
	prefix := node.Parent.KVCPath()
	switch node.Parent.Type {
	case ObjectType:
		return prefix.Append(kvcpath.Key(node.ParentField))
	case ArrayType:
		if len(prefix) == 0 {
			prefix = kvcpath.Components{kvcpath.Key("")}
		}
		return prefix.Append(kvcpath.Index(strconv.Itoa(node.ParentIndex)))
	default:
		panic("parent but not in container")
	}
}

// Get walks node with a KVC path and returns a copy of what it addresses.
//
// A key on an object selects the field. An index on an array selects the
// element. A key on an array applies the rest of the path to every element
// and collects the results, missing keys becoming null. An operator such as
// @count or @sum aggregates the array it is applied to.
//
// Example:
//
//	doc.Get("items[0].name")
//	doc.Get("items.name")       // names of all items
//	doc.Get("items.@sum.price") // total price
func (node *Node) Get(path string) (*Node, error) {
	return node.GetComponents(kvcpath.Split(path))
}

func (node *Node) GetComponents(cs kvcpath.Components) (*Node, error) {
	if debug.Walk() {
		debug.Logf("get %s\n", cs)
	}
	res, err := walk(node, cs.TrimRoot(), 0)
	if err != nil {
		return nil, err
	}
	return res.Clone(), nil
}

func walk(node *Node, cs kvcpath.Components, i int) (*Node, error) {
	if i == len(cs) {
		return node, nil
	}
	c := cs[i]
	if debug.Walk() {
		debug.Logf("  %s at %s (%s)\n", c, cs[:i], node.Type)
	}
	if beforeOperator(cs, i) {
		return walk(node, cs, i+1)
	}
	if c.Operator {
		return applyOperator(node, cs, i)
	}
	if c.Kind == kvcpath.IndexKind {
		if node.Type != ArrayType {
			return nil, fmt.Errorf("%w: index %s into %s at %q", ErrType, c, node.Type, cs[:i].String())
		}
		idx, err := arrayIndex(c, len(node.Values), false)
		if err != nil {
			return nil, fmt.Errorf("%w at %q", err, cs[:i].String())
		}
		return walk(node.Values[idx], cs, i+1)
	}
	switch node.Type {
	case ObjectType:
		v := Get(node, c.Text)
		if v == nil {
			return nil, fmt.Errorf("%w: key %q at %q", ErrNotFound, c.Text, cs[:i].String())
		}
		return walk(v, cs, i+1)
	case ArrayType:
		res := make([]*Node, 0, len(node.Values))
		for _, elt := range node.Values {
			v, err := walk(elt, cs, i)
			if errors.Is(err, ErrNotFound) {
				res = append(res, Null())
				continue
			}
			if err != nil {
				return nil, err
			}
			res = append(res, v.Clone())
		}
		return FromSlice(res), nil
	default:
		return nil, fmt.Errorf("%w: key %q into %s at %q", ErrType, c.Text, node.Type, cs[:i].String())
	}
}

// beforeOperator reports whether cs[i] is the empty key that "a.@count"
// and "@count" place before their operator. It addresses nothing.
func beforeOperator(cs kvcpath.Components, i int) bool {
	return i+1 < len(cs) && cs[i+1].Operator && cs[i] == kvcpath.Key("")
}

func arrayIndex(c kvcpath.Component, n int, allowEnd bool) (int, error) {
	i, err := strconv.Atoi(c.Text)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrIndex, c.Text)
	}
	lim := n
	if allowEnd {
		lim++
	}
	if i < 0 || i >= lim {
		return 0, fmt.Errorf("%w: %d out of range (len %d)", ErrIndex, i, n)
	}
	return i, nil
}

// Set stores v at path, taking ownership of v. Missing keys are created
// as dictionaries, or as arrays when the next component is an index. An
// index equal to the array length appends.
func (node *Node) Set(path string, v *Node) error {
	return node.SetComponents(kvcpath.Split(path), v)
}

func (node *Node) SetComponents(cs kvcpath.Components, v *Node) error {
	if debug.Walk() {
		debug.Logf("set %s\n", cs)
	}
	cs = cs.TrimRoot()
	if cs.HasOperator() {
		return fmt.Errorf("%w: cannot set through operator in %q", ErrOperator, cs.String())
	}
	if len(cs) == 0 {
		parent, pi, pf := node.Parent, node.ParentIndex, node.ParentField
		v.CloneTo(node)
		node.Parent, node.ParentIndex, node.ParentField = parent, pi, pf
		return nil
	}
	parent := node
	for i := 0; i < len(cs)-1; i++ {
		child, err := parent.child(cs, i, true)
		if err != nil {
			return err
		}
		parent = child
	}
	return parent.put(cs, len(cs)-1, v)
}

// Delete removes what path addresses from its parent container.
func (node *Node) Delete(path string) error {
	return node.DeleteComponents(kvcpath.Split(path))
}

func (node *Node) DeleteComponents(cs kvcpath.Components) error {
	if debug.Walk() {
		debug.Logf("delete %s\n", cs)
	}
	cs = cs.TrimRoot()
	if len(cs) == 0 {
		return ErrEmptyPath
	}
	if cs.HasOperator() {
		return fmt.Errorf("%w: cannot delete through operator in %q", ErrOperator, cs.String())
	}
	parent := node
	for i := 0; i < len(cs)-1; i++ {
		child, err := parent.child(cs, i, false)
		if err != nil {
			return err
		}
		parent = child
	}
	last := len(cs) - 1
	c := cs[last]
	switch {
	case c.Kind == kvcpath.IndexKind && parent.Type == ArrayType:
		idx, err := arrayIndex(c, len(parent.Values), false)
		if err != nil {
			return fmt.Errorf("%w at %q", err, cs[:last].String())
		}
		parent.Values = append(parent.Values[:idx], parent.Values[idx+1:]...)
	case c.Kind == kvcpath.KeyKind && parent.Type == ObjectType:
		idx := parent.fieldIndex(c.Text)
		if idx == -1 {
			return fmt.Errorf("%w: key %q at %q", ErrNotFound, c.Text, cs[:last].String())
		}
		parent.Fields = append(parent.Fields[:idx], parent.Fields[idx+1:]...)
		parent.Values = append(parent.Values[:idx], parent.Values[idx+1:]...)
	default:
		return fmt.Errorf("%w: %s %s in %s at %q", ErrType, c.Kind, c, parent.Type, cs[:last].String())
	}
	parent.reindex()
	return nil
}

// child returns the container addressed by cs[i] under node, creating it
// when create is set.
func (node *Node) child(cs kvcpath.Components, i int, create bool) (*Node, error) {
	c := cs[i]
	if create && node.Type == NullType {
		node.Type = containerFor(c)
	}
	switch {
	case c.Kind == kvcpath.IndexKind && node.Type == ArrayType:
		idx, err := arrayIndex(c, len(node.Values), create)
		if err != nil {
			return nil, fmt.Errorf("%w at %q", err, cs[:i].String())
		}
		if idx < len(node.Values) {
			return node.Values[idx], nil
		}
		v := &Node{Type: containerFor(cs[i+1])}
		node.appendValue(v)
		return v, nil
	case c.Kind == kvcpath.KeyKind && node.Type == ObjectType:
		if v := Get(node, c.Text); v != nil {
			return v, nil
		}
		if !create {
			return nil, fmt.Errorf("%w: key %q at %q", ErrNotFound, c.Text, cs[:i].String())
		}
		v := &Node{Type: containerFor(cs[i+1])}
		node.appendField(c.Text, v)
		return v, nil
	default:
		return nil, fmt.Errorf("%w: %s %s into %s at %q", ErrType, c.Kind, c, node.Type, cs[:i].String())
	}
}

func (node *Node) put(cs kvcpath.Components, i int, v *Node) error {
	c := cs[i]
	if node.Type == NullType {
		node.Type = containerFor(c)
	}
	switch {
	case c.Kind == kvcpath.IndexKind && node.Type == ArrayType:
		idx, err := arrayIndex(c, len(node.Values), true)
		if err != nil {
			return fmt.Errorf("%w at %q", err, cs[:i].String())
		}
		if idx == len(node.Values) {
			node.appendValue(v)
			return nil
		}
		v.Parent = node
		v.ParentIndex = idx
		v.ParentField = ""
		node.Values[idx] = v
		return nil
	case c.Kind == kvcpath.KeyKind && node.Type == ObjectType:
		idx := node.fieldIndex(c.Text)
		if idx == -1 {
			node.appendField(c.Text, v)
			return nil
		}
		v.Parent = node
		v.ParentIndex = idx
		v.ParentField = c.Text
		node.Values[idx] = v
		return nil
	default:
		return fmt.Errorf("%w: %s %s into %s at %q", ErrType, c.Kind, c, node.Type, cs[:i].String())
	}
}

func containerFor(c kvcpath.Component) Type {
	if c.Kind == kvcpath.IndexKind {
		return ArrayType
	}
	return ObjectType
}

func (node *Node) appendValue(v *Node) {
	v.Parent = node
	v.ParentIndex = len(node.Values)
	v.ParentField = ""
	node.Values = append(node.Values, v)
}

func (node *Node) appendField(key string, v *Node) {
	i := len(node.Values)
	f := FromString(key)
	f.Parent, f.ParentIndex, f.ParentField = node, i, key
	v.Parent, v.ParentIndex, v.ParentField = node, i, key
	node.Fields = append(node.Fields, f)
	node.Values = append(node.Values, v)
}

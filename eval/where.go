package eval

import (
	"errors"
	"fmt"
	"maps"

	"github.com/signadot/plistkvc/debug"
	"github.com/signadot/plistkvc/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

var ErrExpr = errors.New("where expression error")

// Program is a compiled where expression. It is not safe for concurrent
// use.
type Program struct {
	src   string
	prg   *vm.Program
	scope *scope
}

// Compile compiles a boolean where expression. Besides the variables from
// Env, expressions may call
//
//	whereami()      the KVC path of the value being tested
//	getpath(path)   the value at path from the document root
//	getenv(name)    an environment variable
func Compile(src string) (*Program, error) {
	sc := &scope{}
	prg, err := expr.Compile(src, exprOpts(sc)...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExpr, err)
	}
	return &Program{src: src, prg: prg, scope: sc}, nil
}

// Env returns the expression environment for node. Object fields are
// variables; the whole value is always available as "it".
func Env(node *ir.Node) map[string]any {
	v := ir.ToAny(node)
	env := map[string]any{}
	if m, ok := v.(map[string]any); ok {
		maps.Copy(env, m)
	}
	env["it"] = v
	return env
}

// Match reports whether p is true for node.
func (p *Program) Match(node *ir.Node) (bool, error) {
	p.scope.node = node
	out, err := expr.Run(p.prg, Env(node))
	if err != nil {
		return false, fmt.Errorf("%w: at %q: %w", ErrExpr, node.KVCPath().String(), err)
	}
	if debug.Eval() {
		debug.Logf("where %s at %s -> %v\n", p.src, node.KVCPath(), out)
	}
	b, _ := out.(bool)
	return b, nil
}

// Where returns the nodes for which src is true.
func Where(nodes []*ir.Node, src string) ([]*ir.Node, error) {
	p, err := Compile(src)
	if err != nil {
		return nil, err
	}
	res := make([]*ir.Node, 0, len(nodes))
	for _, node := range nodes {
		ok, err := p.Match(node)
		if err != nil {
			return nil, err
		}
		if ok {
			res = append(res, node)
		}
	}
	return res, nil
}

// Filter keeps the elements of array for which src is true and returns a
// new array.
func Filter(array *ir.Node, src string) (*ir.Node, error) {
	if array.Type != ir.ArrayType {
		return nil, fmt.Errorf("%w: where on %s", ir.ErrType, array.Type)
	}
	kept, err := Where(array.Values, src)
	if err != nil {
		return nil, err
	}
	res := make([]*ir.Node, len(kept))
	for i, k := range kept {
		res[i] = k.Clone()
	}
	return ir.FromSlice(res), nil
}

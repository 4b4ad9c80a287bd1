package eval

import (
	"os"

	"github.com/signadot/plistkvc/ir"

	"github.com/expr-lang/expr"
)

// scope holds the node an expression is currently evaluated against.
type scope struct {
	node *ir.Node
}

func exprOpts(sc *scope) []expr.Option {
	return []expr.Option{
		expr.AsBool(),
		expr.AllowUndefinedVariables(),
		expr.Function("whereami", func(params ...any) (any, error) {
			return sc.node.KVCPath().String(), nil
		},
			new(func() string)),
		expr.Function("getpath", func(params ...any) (any, error) {
			path := params[0].(string)
			res, err := sc.node.Root().Get(path)
			if err != nil {
				return nil, err
			}
			return ir.ToAny(res), nil
		},
			new(func(string) any)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}

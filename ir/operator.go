package ir

import (
	"errors"
	"fmt"
	"strings"

	"github.com/signadot/plistkvc/kvcpath"
)

// Operators lists the supported collection operators.
func Operators() []string {
	return []string{"@count", "@sum", "@avg", "@min", "@max", "@unionOfObjects", "@distinctUnionOfObjects"}
}

// applyOperator applies cs[i], an operator, to the array node. The
// components after the operator are walked on each element first.
func applyOperator(node *Node, cs kvcpath.Components, i int) (*Node, error) {
	c := cs[i]
	if node.Type != ArrayType {
		return nil, fmt.Errorf("%w: %s on %s at %q", ErrType, c.Text, node.Type, cs[:i].String())
	}
	name := c.OperatorName()
	if name == "count" {
		return FromInt(int64(len(node.Values))), nil
	}
	vals, err := collect(node, cs[i+1:])
	if err != nil {
		return nil, err
	}
	switch name {
	case "sum":
		return sum(vals, c)
	case "avg":
		if len(vals) == 0 {
			return Null(), nil
		}
		total, err := sum(vals, c)
		if err != nil {
			return nil, err
		}
		f, _ := total.Float()
		return FromFloat(f / float64(len(vals))), nil
	case "min":
		return extreme(vals, c, -1)
	case "max":
		return extreme(vals, c, 1)
	case "unionOfObjects":
		return FromSlice(cloneAll(vals)), nil
	case "distinctUnionOfObjects":
		seen := map[string]bool{}
		res := make([]*Node, 0, len(vals))
		for _, v := range vals {
			d, err := ToJSON(v)
			if err != nil {
				return nil, err
			}
			if seen[string(d)] {
				continue
			}
			seen[string(d)] = true
			res = append(res, v.Clone())
		}
		return FromSlice(res), nil
	default:
		return nil, fmt.Errorf("%w: unknown operator %q", ErrOperator, c.Text)
	}
}

// collect walks rest on every element of node, skipping missing and null
// values.
func collect(node *Node, rest kvcpath.Components) ([]*Node, error) {
	res := make([]*Node, 0, len(node.Values))
	for _, elt := range node.Values {
		v, err := walk(elt, rest, 0)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if v.Type == NullType {
			continue
		}
		res = append(res, v)
	}
	return res, nil
}

func sum(vals []*Node, c kvcpath.Component) (*Node, error) {
	var (
		isum   int64
		fsum   float64
		floats bool
	)
	for _, v := range vals {
		switch {
		case v.Type == NumberType && v.Int64 != nil:
			isum += *v.Int64
		case v.Type == NumberType && v.Float64 != nil:
			fsum += *v.Float64
			floats = true
		default:
			return nil, fmt.Errorf("%w: %s over %s value", ErrType, c.Text, v.Type)
		}
	}
	if floats {
		return FromFloat(fsum + float64(isum)), nil
	}
	return FromInt(isum), nil
}

// extreme returns the smallest (dir -1) or largest (dir 1) value. Values
// must be all numbers or all strings.
func extreme(vals []*Node, c kvcpath.Component, dir int) (*Node, error) {
	if len(vals) == 0 {
		return Null(), nil
	}
	best := vals[0]
	for _, v := range vals[1:] {
		cmp, err := compareScalars(v, best)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrType, c.Text, err)
		}
		if cmp == dir {
			best = v
		}
	}
	if _, err := compareScalars(best, best); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrType, c.Text, err)
	}
	return best.Clone(), nil
}

func compareScalars(a, b *Node) (int, error) {
	if a.Type != b.Type {
		return 0, fmt.Errorf("cannot compare %s with %s", a.Type, b.Type)
	}
	switch a.Type {
	case NumberType:
		af, aok := a.Float()
		bf, bok := b.Float()
		if !aok || !bok {
			return 0, fmt.Errorf("unrepresentable number")
		}
		switch {
		case af < bf:
			return -1, nil
		case af > bf:
			return 1, nil
		}
		return 0, nil
	case StringType:
		return strings.Compare(a.String, b.String), nil
	default:
		return 0, fmt.Errorf("cannot order %s values", a.Type)
	}
}

func cloneAll(vals []*Node) []*Node {
	res := make([]*Node, len(vals))
	for i, v := range vals {
		res[i] = v.Clone()
	}
	return res
}

// Package eval implements spec.md §4.5 (the evaluator) and §4.6 (the
// call protocol): reducing Values to Values under an environment.
package eval

import (
	"github.com/sirupsen/logrus"

	"github.com/cumunisp/cumunisp/internal/env"
	"github.com/cumunisp/cumunisp/internal/value"
)

// Eval reduces v to a value under env. Symbols are looked up;
// s-expressions are reduced as combinations; everything else
// (numbers, strings, errors, q-expressions, functions) evaluates to
// itself.
func Eval(e *env.Env, v value.Value) value.Value {
	switch x := v.(type) {
	case value.Sym:
		return e.LookupValue(x.Name)
	case value.SExpr:
		return evalSExpr(e, x)
	default:
		return v
	}
}

// evalSExpr implements spec.md §4.5's s-expression reduction: evaluate
// children left to right, short-circuit on the first Err, collapse a
// single-element form, and otherwise apply the head as a function to
// the rest via the call protocol.
func evalSExpr(e *env.Env, x value.SExpr) value.Value {
	elems := make([]value.Value, len(x.Elems))
	for i, child := range x.Elems {
		elems[i] = Eval(e, child)
		if errVal, ok := elems[i].(value.Err); ok {
			return errVal
		}
	}

	switch len(elems) {
	case 0:
		return value.SExpr{}
	case 1:
		return Eval(e, elems[0])
	}

	head, rest := elems[0], elems[1:]
	fn, ok := head.(value.Fun)
	if !ok {
		return value.Err{Msg: "S-Expression starts with incorrect type. Got " +
			value.TypeName(head) + ", Expected Function."}
	}

	logrus.WithFields(logrus.Fields{
		"args": len(rest),
	}).Debug("eval: applying function")

	return Call(e, fn, value.SExpr{Elems: rest})
}

package eval

import (
	"fmt"

	"github.com/cumunisp/cumunisp/internal/env"
	"github.com/cumunisp/cumunisp/internal/value"
)

// Call implements spec.md §4.6: builtins are invoked directly against
// the caller's environment; user lambdas bind positional arguments
// left-to-right against their formals, supporting a "&"-prefixed
// variadic rest parameter and partial application when fewer
// arguments are supplied than formals.
func Call(callerEnv *env.Env, f value.Fun, args value.SExpr) value.Value {
	if f.IsBuiltin() {
		return f.Builtin(callerEnv, args)
	}
	return callLambda(callerEnv, f, args)
}

func callLambda(callerEnv *env.Env, f value.Fun, args value.SExpr) value.Value {
	fnEnv, ok := f.Env.(*env.Env)
	if !ok {
		return value.Err{Msg: "internal error: lambda has no environment"}
	}

	formals := append([]value.Value(nil), f.Formals.Elems...)
	argq := append([]value.Value(nil), args.Elems...)
	given, total := len(argq), len(formals)

	for len(argq) > 0 {
		if len(formals) == 0 {
			return value.Err{Msg: fmt.Sprintf(
				"Function passed too many arguments! Got: %d, Expected: %d", given, total)}
		}

		sym, ok := formals[0].(value.Sym)
		if !ok {
			return value.Err{Msg: "Function format invalid! Formal is not a Symbol"}
		}
		formals = formals[1:]

		if sym.Name == "&" {
			if len(formals) != 1 {
				return value.Err{Msg: "Function format invalid! Symbol '&' not followed by single symbol"}
			}
			rest, ok := formals[0].(value.Sym)
			if !ok {
				return value.Err{Msg: "Function format invalid! Symbol '&' not followed by single symbol"}
			}
			formals = formals[1:]
			fnEnv.Put(rest.Name, value.QExpr{Elems: argq})
			argq = nil
			break
		}

		val := argq[0]
		argq = argq[1:]
		fnEnv.Put(sym.Name, val)
	}

	if len(formals) > 0 {
		if sym, ok := formals[0].(value.Sym); ok && sym.Name == "&" {
			if len(formals) != 2 {
				return value.Err{Msg: "Function format invalid. Symbol '&' not followed by single symbol."}
			}
			rest, ok := formals[1].(value.Sym)
			if !ok {
				return value.Err{Msg: "Function format invalid. Symbol '&' not followed by single symbol."}
			}
			fnEnv.Put(rest.Name, value.QExpr{})
			formals = nil
		}
	}

	if len(formals) == 0 {
		// Fully applied: the body evaluates under the closure's own
		// frame, re-linked to the caller's lexical context for this one
		// evaluation (spec.md §9 — a call-time parameter, not a mutated
		// parent field, so other holders of fnEnv are unaffected).
		callEnv := fnEnv.WithParent(callerEnv)
		return Eval(callEnv, value.SExpr{Elems: f.Body.Elems})
	}

	// Partially applied: return a callable still awaiting the
	// remaining formals, sharing the bindings already made so far.
	return value.Fun{
		Env:     fnEnv,
		Formals: value.QExpr{Elems: formals},
		Body:    f.Body,
	}
}

package builtin

import (
	"fmt"

	"github.com/cumunisp/cumunisp/internal/env"
	"github.com/cumunisp/cumunisp/internal/value"
)

// lambda implements "\": constructs a user function from a QExpr of
// formal symbols and a QExpr body. The formals are validated here
// (spec.md §3's "structurally validated at lambda construction") —
// call.go re-validates as it consumes them.
func lambda(e value.Env, args value.SExpr) value.Value {
	if errv, bad := assertCount("\\", args, 2); bad {
		return errv
	}
	if errv, bad := assertType("\\", args, 0, kindQExpr); bad {
		return errv
	}
	if errv, bad := assertType("\\", args, 1, kindQExpr); bad {
		return errv
	}

	formals := args.Elems[0].(value.QExpr)
	for _, f := range formals.Elems {
		if _, ok := f.(value.Sym); !ok {
			return value.Err{Msg: fmt.Sprintf(
				"Cannot define non-symbol. Got: %s, Expected: %s!", value.TypeName(f), kindSym)}
		}
	}

	body := args.Elems[1].(value.QExpr)
	return value.Fun{
		Env:     env.New(nil),
		Formals: formals,
		Body:    body,
	}
}

// def implements the global binder: walks to the root environment.
func def(e value.Env, args value.SExpr) value.Value {
	return bindVar(e, args, "def")
}

// put implements "=": the local binder, scoped to the current frame.
func put(e value.Env, args value.SExpr) value.Value {
	return bindVar(e, args, "=")
}

func bindVar(e value.Env, args value.SExpr, funcName string) value.Value {
	if errv, bad := assertType(funcName, args, 0, kindQExpr); bad {
		return errv
	}

	syms := args.Elems[0].(value.QExpr)
	for _, s := range syms.Elems {
		if _, ok := s.(value.Sym); !ok {
			return value.Err{Msg: fmt.Sprintf(
				"Function '%s' cannot define non-symbol!  Got: %s, Expected: %s",
				funcName, value.TypeName(s), kindSym)}
		}
	}

	if len(syms.Elems) != len(args.Elems)-1 {
		return value.Err{Msg: fmt.Sprintf(
			"Function '%s', passed too many arguments for symbols. Got: %d, Expected: %d",
			funcName, len(syms.Elems), len(args.Elems)-1)}
	}

	for i, s := range syms.Elems {
		name := s.(value.Sym).Name
		v := args.Elems[i+1]
		switch funcName {
		case "def":
			e.Def(name, v)
		case "=":
			e.Put(name, v)
		}
	}

	return value.SExpr{}
}

package builtin

import (
	"github.com/cumunisp/cumunisp/internal/eval"
	"github.com/cumunisp/cumunisp/internal/value"
)

func list(e value.Env, args value.SExpr) value.Value {
	return value.QExpr{Elems: args.Elems}
}

func head(e value.Env, args value.SExpr) value.Value {
	if errv, bad := assertCount("head", args, 1); bad {
		return errv
	}
	if errv, bad := assertType("head", args, 0, kindQExpr); bad {
		return errv
	}
	if errv, bad := assertNotEmptyQExpr("head", args, 0); bad {
		return errv
	}
	q := args.Elems[0].(value.QExpr)
	return value.QExpr{Elems: q.Elems[:1]}
}

func tail(e value.Env, args value.SExpr) value.Value {
	if errv, bad := assertCount("tail", args, 1); bad {
		return errv
	}
	if errv, bad := assertType("tail", args, 0, kindQExpr); bad {
		return errv
	}
	if errv, bad := assertNotEmptyQExpr("tail", args, 0); bad {
		return errv
	}
	q := args.Elems[0].(value.QExpr)
	return value.QExpr{Elems: q.Elems[1:]}
}

// initList implements "init" per spec.md's corrected semantics: all
// elements but the last. The original source's builtin_init instead
// pops from the front until one remains, which yields the last
// element alone (flagged as buggy in spec.md §9) — not implemented.
func initList(e value.Env, args value.SExpr) value.Value {
	if errv, bad := assertCount("init", args, 1); bad {
		return errv
	}
	if errv, bad := assertType("init", args, 0, kindQExpr); bad {
		return errv
	}
	if errv, bad := assertNotEmptyQExpr("init", args, 0); bad {
		return errv
	}
	q := args.Elems[0].(value.QExpr)
	return value.QExpr{Elems: q.Elems[:len(q.Elems)-1]}
}

func evalBuiltin(e value.Env, args value.SExpr) value.Value {
	if errv, bad := assertCount("eval", args, 1); bad {
		return errv
	}
	if errv, bad := assertType("eval", args, 0, kindQExpr); bad {
		return errv
	}
	q := args.Elems[0].(value.QExpr)
	return eval.Eval(asEnv(e), value.SExpr{Elems: q.Elems})
}

func join(e value.Env, args value.SExpr) value.Value {
	for i := range args.Elems {
		if errv, bad := assertType("join", args, i, kindQExpr); bad {
			return errv
		}
	}
	var out []value.Value
	for _, a := range args.Elems {
		out = append(out, a.(value.QExpr).Elems...)
	}
	return value.QExpr{Elems: out}
}

func cons(e value.Env, args value.SExpr) value.Value {
	if errv, bad := assertCount("cons", args, 2); bad {
		return errv
	}
	if errv, bad := assertType("cons", args, 1, kindQExpr); bad {
		return errv
	}
	q := args.Elems[1].(value.QExpr)
	out := make([]value.Value, 0, len(q.Elems)+1)
	out = append(out, args.Elems[0])
	out = append(out, q.Elems...)
	return value.QExpr{Elems: out}
}

func length(e value.Env, args value.SExpr) value.Value {
	if errv, bad := assertCount("len", args, 1); bad {
		return errv
	}
	if errv, bad := assertType("len", args, 0, kindQExpr); bad {
		return errv
	}
	q := args.Elems[0].(value.QExpr)
	return value.Num{N: float64(len(q.Elems))}
}

package builtin

import "github.com/cumunisp/cumunisp/internal/value"

func ordOp(funcName string, args value.SExpr, cmp func(a, b float64) bool) value.Value {
	if errv, bad := assertCount(funcName, args, 2); bad {
		return errv
	}
	if errv, bad := assertType(funcName, args, 0, kindNum); bad {
		return errv
	}
	if errv, bad := assertType(funcName, args, 1, kindNum); bad {
		return errv
	}
	a := args.Elems[0].(value.Num).N
	b := args.Elems[1].(value.Num).N
	return boolNum(cmp(a, b))
}

func boolNum(b bool) value.Value {
	if b {
		return value.Num{N: 1}
	}
	return value.Num{N: 0}
}

func gt(e value.Env, args value.SExpr) value.Value {
	return ordOp(">", args, func(a, b float64) bool { return a > b })
}

func ge(e value.Env, args value.SExpr) value.Value {
	return ordOp(">=", args, func(a, b float64) bool { return a >= b })
}

func lt(e value.Env, args value.SExpr) value.Value {
	return ordOp("<", args, func(a, b float64) bool { return a < b })
}

func le(e value.Env, args value.SExpr) value.Value {
	return ordOp("<=", args, func(a, b float64) bool { return a <= b })
}

// cmpOp implements "==" and "!=": any two values, compared
// structurally, unlike ordOp which requires two Num.
func cmpOp(funcName string, args value.SExpr, negate bool) value.Value {
	if errv, bad := assertCount(funcName, args, 2); bad {
		return errv
	}
	eq := value.Equal(args.Elems[0], args.Elems[1])
	if negate {
		eq = !eq
	}
	return boolNum(eq)
}

func eq(e value.Env, args value.SExpr) value.Value {
	return cmpOp("==", args, false)
}

func neq(e value.Env, args value.SExpr) value.Value {
	return cmpOp("!=", args, true)
}

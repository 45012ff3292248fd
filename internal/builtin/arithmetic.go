package builtin

import (
	"math"

	"github.com/cumunisp/cumunisp/internal/value"
)

// arithFold implements spec.md §4.7's arithmetic family: left-fold
// over one-or-more Num arguments. unaryNegate enables "-"'s special
// case of negating a single argument rather than folding.
func arithFold(funcName string, args value.SExpr, unaryNegate bool, fold func(acc, y float64) (float64, *value.Err)) value.Value {
	if errv, bad := assertMinCount(funcName, args); bad {
		return errv
	}
	for i := range args.Elems {
		if errv, bad := assertType(funcName, args, i, kindNum); bad {
			return errv
		}
	}

	acc := args.Elems[0].(value.Num).N
	rest := args.Elems[1:]

	if unaryNegate && len(rest) == 0 {
		return value.Num{N: -acc}
	}

	for _, a := range rest {
		y := a.(value.Num).N
		res, errv := fold(acc, y)
		if errv != nil {
			return *errv
		}
		acc = res
	}
	return value.Num{N: acc}
}

func add(e value.Env, args value.SExpr) value.Value {
	return arithFold("+", args, false, func(acc, y float64) (float64, *value.Err) { return acc + y, nil })
}

func sub(e value.Env, args value.SExpr) value.Value {
	return arithFold("-", args, true, func(acc, y float64) (float64, *value.Err) { return acc - y, nil })
}

func mul(e value.Env, args value.SExpr) value.Value {
	return arithFold("*", args, false, func(acc, y float64) (float64, *value.Err) { return acc * y, nil })
}

func div(e value.Env, args value.SExpr) value.Value {
	return arithFold("/", args, false, func(acc, y float64) (float64, *value.Err) {
		if y == 0 {
			return 0, &value.Err{Msg: "Division by zero!"}
		}
		return acc / y, nil
	})
}

func rem(e value.Env, args value.SExpr) value.Value {
	return arithFold("%", args, false, func(acc, y float64) (float64, *value.Err) { return math.Mod(acc, y), nil })
}

func pow(e value.Env, args value.SExpr) value.Value {
	return arithFold("^", args, false, func(acc, y float64) (float64, *value.Err) { return math.Pow(acc, y), nil })
}

func minOp(e value.Env, args value.SExpr) value.Value {
	return arithFold("min", args, false, func(acc, y float64) (float64, *value.Err) { return math.Min(acc, y), nil })
}

func maxOp(e value.Env, args value.SExpr) value.Value {
	return arithFold("max", args, false, func(acc, y float64) (float64, *value.Err) { return math.Max(acc, y), nil })
}

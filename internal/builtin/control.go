package builtin

import (
	"github.com/cumunisp/cumunisp/internal/eval"
	"github.com/cumunisp/cumunisp/internal/value"
)

// ifBuiltin implements spec.md §4.7's "if": (Num, QExpr, QExpr),
// retagging whichever branch matches truthiness (nonzero = true) as
// an SExpr before evaluating it.
func ifBuiltin(e value.Env, args value.SExpr) value.Value {
	if errv, bad := assertCount("if", args, 3); bad {
		return errv
	}
	if errv, bad := assertType("if", args, 0, kindNum); bad {
		return errv
	}
	if errv, bad := assertType("if", args, 1, kindQExpr); bad {
		return errv
	}
	if errv, bad := assertType("if", args, 2, kindQExpr); bad {
		return errv
	}

	cond := args.Elems[0].(value.Num).N
	var branch value.QExpr
	if cond != 0 {
		branch = args.Elems[1].(value.QExpr)
	} else {
		branch = args.Elems[2].(value.QExpr)
	}
	return eval.Eval(asEnv(e), value.SExpr{Elems: branch.Elems})
}

// Package builtin implements spec.md §4.7: the built-in operation
// library registered into the root environment at startup.
package builtin

import (
	"fmt"

	"github.com/cumunisp/cumunisp/internal/env"
	"github.com/cumunisp/cumunisp/internal/value"
)

// asEnv recovers the concrete *env.Env backing a value.Env, which
// every builtin that needs to call eval.Eval or re-bind formals
// requires. env.Env is the only type implementing value.Env, so this
// assertion cannot fail in a correctly wired interpreter.
func asEnv(e value.Env) *env.Env {
	concrete, ok := e.(*env.Env)
	if !ok {
		panic("builtin: value.Env is not backed by *env.Env")
	}
	return concrete
}

// assertCount mirrors the source's LASSERT_NUM macro.
func assertCount(funcName string, args value.SExpr, want int) (value.Err, bool) {
	if len(args.Elems) != want {
		return value.Err{Msg: fmt.Sprintf(
			"Function '%s' passed incorrect number of arguments. Got: %d, Expected: %d!",
			funcName, len(args.Elems), want)}, true
	}
	return value.Err{}, false
}

// assertMinCount requires at least one argument, used by the
// arithmetic family which folds over "one or more" numbers.
func assertMinCount(funcName string, args value.SExpr) (value.Err, bool) {
	if len(args.Elems) == 0 {
		return value.Err{Msg: fmt.Sprintf(
			"Function '%s' passed incorrect number of arguments. Got: 0, Expected: at least 1!", funcName)}, true
	}
	return value.Err{}, false
}

// assertType mirrors LASSERT_TYPE.
func assertType(funcName string, args value.SExpr, idx int, want string) (value.Err, bool) {
	got := value.TypeName(args.Elems[idx])
	if got != want {
		return value.Err{Msg: fmt.Sprintf(
			"Function '%s' passed incorrect type for argument %d. Got: %s, Expected: %s!",
			funcName, idx, got, want)}, true
	}
	return value.Err{}, false
}

// assertNotEmptyQExpr mirrors LASSERT_NOT_EMPTY, emitted per spec.md
// §7's corrected text (the source's macro is missing a comma before
// the format string, producing malformed output; this is the
// intended message).
func assertNotEmptyQExpr(funcName string, args value.SExpr, idx int) (value.Err, bool) {
	q := args.Elems[idx].(value.QExpr)
	if len(q.Elems) == 0 {
		return value.Err{Msg: fmt.Sprintf("Function '%s' passed {} for argument %d!", funcName, idx)}, true
	}
	return value.Err{}, false
}

const (
	kindNum   = "Number"
	kindSym   = "Symbol"
	kindStr   = "String"
	kindQExpr = "Q-Expression"
)

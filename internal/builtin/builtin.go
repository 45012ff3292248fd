package builtin

import (
	"github.com/cumunisp/cumunisp/internal/env"
	"github.com/cumunisp/cumunisp/internal/value"
)

// Register installs every built-in from spec.md §4.7 into root,
// under its symbol name (and, for arithmetic, its word alias).
func Register(root *env.Env) {
	register := func(name string, fn value.BuiltinFunc) {
		root.Def(name, value.Fun{Builtin: fn})
	}

	// Variable forms
	register("\\", lambda)
	register("def", def)
	register("=", put)

	// List forms
	register("list", list)
	register("head", head)
	register("tail", tail)
	register("init", initList)
	register("eval", evalBuiltin)
	register("join", join)
	register("cons", cons)
	register("len", length)

	// Arithmetic
	register("+", add)
	register("add", add)
	register("-", sub)
	register("sub", sub)
	register("*", mul)
	register("mul", mul)
	register("/", div)
	register("div", div)
	register("%", rem)
	register("rem", rem)
	register("^", pow)
	register("pow", pow)
	register("min", minOp)
	register("max", maxOp)

	// Comparison
	register(">", gt)
	register(">=", ge)
	register("<", lt)
	register("<=", le)
	register("==", eq)
	register("!=", neq)

	// Control
	register("if", ifBuiltin)

	// I/O and meta
	register("print", printBuiltin)
	register("err", errBuiltin)
	register("load", load)
}

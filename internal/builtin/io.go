package builtin

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/cumunisp/cumunisp/internal/env"
	"github.com/cumunisp/cumunisp/internal/eval"
	"github.com/cumunisp/cumunisp/internal/parser"
	"github.com/cumunisp/cumunisp/internal/reader"
	"github.com/cumunisp/cumunisp/internal/value"
)

// print implements spec.md §4.7's "print": each argument rendered and
// followed by a space, then a trailing newline (matching
// original_source/cumunisp.c's builtin_print, which never suppresses
// the final separator).
func printBuiltin(e value.Env, args value.SExpr) value.Value {
	var b strings.Builder
	for _, a := range args.Elems {
		b.WriteString(value.Sprint(a))
		b.WriteByte(' ')
	}
	fmt.Println(b.String())
	return value.SExpr{}
}

func errBuiltin(e value.Env, args value.SExpr) value.Value {
	if errv, bad := assertCount("err", args, 1); bad {
		return errv
	}
	if errv, bad := assertType("err", args, 0, kindStr); bad {
		return errv
	}
	return value.Err{Msg: args.Elems[0].(value.Str).S}
}

// load implements spec.md §4.7's "load": read a file, parse it with
// the external parser, and evaluate every top-level form in the
// global environment, printing (not returning) any Err it produces.
func load(e value.Env, args value.SExpr) value.Value {
	if errv, bad := assertCount("load", args, 1); bad {
		return errv
	}
	if errv, bad := assertType("load", args, 0, kindStr); bad {
		return errv
	}
	filename := args.Elems[0].(value.Str).S

	data, readErr := os.ReadFile(filename)
	if readErr != nil {
		wrapped := errors.Wrapf(readErr, "load %q", filename)
		logrus.WithError(wrapped).Warn("load: could not read file")
		return value.Err{Msg: fmt.Sprintf("Could not load Library %s", readErr.Error())}
	}

	root, parseErr := parser.Parse(string(data))
	if parseErr != nil {
		wrapped := errors.Wrap(parseErr, "parse")
		logrus.WithError(wrapped).Warn("load: parse failure")
		return value.Err{Msg: fmt.Sprintf("Could not load Library %s", parseErr.Error())}
	}

	global := rootOf(asEnv(e))
	logrus.WithFields(logrus.Fields{"file": filename, "forms": len(root.Children)}).
		Debug("load: evaluating top-level forms")

	for _, child := range root.Children {
		form := reader.Read(child)
		result := eval.Eval(global, form)
		if errv, ok := result.(value.Err); ok {
			fmt.Println(value.Sprint(errv))
		}
	}
	return value.SExpr{}
}

func rootOf(e *env.Env) *env.Env {
	for e.Parent() != nil {
		e = e.Parent()
	}
	return e
}

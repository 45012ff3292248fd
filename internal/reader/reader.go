// Package reader implements spec.md §4.3: translating the external
// AST contract (internal/ast.Node) into runtime Values. This is the
// one specified half of "parsing" — the grammar that produced the
// Node tree (internal/parser) is out of scope.
package reader

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/cumunisp/cumunisp/internal/ast"
	"github.com/cumunisp/cumunisp/internal/value"
)

// Read maps a single AST node to a Value, recursively reading
// children for sexpr/qexpr/root nodes. Comment nodes and literal
// punctuation nodes are skipped by the caller (readChildren), never
// reaching here as a direct Read argument.
func Read(n *ast.Node) value.Value {
	switch {
	case tagContains(n.Tag, "number"):
		return readNumber(n)
	case tagContains(n.Tag, "string"):
		return readString(n)
	case tagContains(n.Tag, "symbol"):
		return value.Sym{Name: n.Contents}
	case n.Tag == ast.RootTag || tagContains(n.Tag, "sexpr"):
		return value.SExpr{Elems: readChildren(n)}
	case tagContains(n.Tag, "qexpr"):
		return value.QExpr{Elems: readChildren(n)}
	default:
		// Comments and bare punctuation nodes are inert; a direct Read
		// of one (should the external parser ever hand us one) folds to
		// the empty s-expression rather than propagating a Value kind
		// the language has no tag for.
		return value.SExpr{}
	}
}

func readChildren(n *ast.Node) []value.Value {
	var out []value.Value
	for _, c := range n.Children {
		if skip(c) {
			continue
		}
		out = append(out, Read(c))
	}
	return out
}

// skip reports whether a child node is comment/punctuation/whitespace
// noise the Reader ignores, per spec.md §4.3.
func skip(n *ast.Node) bool {
	if tagContains(n.Tag, "comment") {
		return true
	}
	switch n.Contents {
	case "(", ")", "{", "}":
		return true
	}
	return n.Tag == "regex" && strings.TrimSpace(n.Contents) == ""
}

func tagContains(tag, want string) bool {
	return strings.Contains(tag, want)
}

func readNumber(n *ast.Node) value.Value {
	f, err := strconv.ParseFloat(n.Contents, 64)
	if err != nil {
		wrapped := errors.Wrapf(err, "invalid number %q", n.Contents)
		logrus.WithError(wrapped).Debug("reader: number out of range")
		return value.Err{Msg: "Invalid number!"}
	}
	return value.Num{N: f}
}

func readString(n *ast.Node) value.Value {
	// Contents carries the surrounding quotes (parser.scanString keeps
	// them, matching the mpc_ast_t contents the original source reads);
	// strip them before unescaping.
	raw := n.Contents
	if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
		raw = raw[1 : len(raw)-1]
	}
	return value.Str{S: value.Unescape(raw)}
}

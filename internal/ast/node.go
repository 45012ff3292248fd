// Package ast defines the external AST contract the Reader consumes
// (spec.md §6): a tree of nodes carrying a grammar-production tag, a
// leaf's textual contents, and an ordered list of children. Nothing
// in this package performs parsing — that lives in internal/parser,
// which is out of the interpreter's specified core.
package ast

// Node is one parse-tree node. Tag identifies the grammar production
// that produced it (e.g. "number", "symbol", "string", "comment",
// "sexpr", "qexpr", or a root marker); Contents holds a leaf's raw
// text; Children holds, in order, the node's sub-expressions.
type Node struct {
	Tag      string
	Contents string
	Children []*Node
}

// RootTag marks the top-level node produced for an entire parsed
// source file or REPL line.
const RootTag = "root"

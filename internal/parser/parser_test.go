package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cumunisp/cumunisp/internal/ast"
)

func TestParseSimpleSExpr(t *testing.T) {
	root, err := Parse("+ 1 2")
	require.NoError(t, err)
	require.Equal(t, ast.RootTag, root.Tag)
	require.Len(t, root.Children, 3)
	require.Equal(t, "symbol", root.Children[0].Tag)
	require.Equal(t, "+", root.Children[0].Contents)
	require.Equal(t, "number", root.Children[1].Tag)
}

func TestParseNestedSexprAndQexpr(t *testing.T) {
	root, err := Parse("(\\ {x y} {+ x y})")
	require.NoError(t, err)
	require.Len(t, root.Children, 1)

	sexpr := root.Children[0]
	require.Equal(t, "sexpr", sexpr.Tag)
	require.Len(t, sexpr.Children, 3)
	require.Equal(t, "qexpr", sexpr.Children[1].Tag)
}

func TestParseStringLiteralKeepsQuotes(t *testing.T) {
	root, err := Parse(`"hi\n"`)
	require.NoError(t, err)
	require.Equal(t, "string", root.Children[0].Tag)
	require.Equal(t, `"hi\n"`, root.Children[0].Contents)
}

func TestParseSkipsComments(t *testing.T) {
	root, err := Parse("+ 1 2 ; trailing comment\n")
	require.NoError(t, err)
	require.Len(t, root.Children, 3)
}

func TestParseUnclosedListErrors(t *testing.T) {
	_, err := Parse("(+ 1 2")
	require.Error(t, err)
}

func TestParseIllegalTokenErrors(t *testing.T) {
	_, err := Parse("@")
	require.Error(t, err)
}

package reader

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cumunisp/cumunisp/internal/ast"
	"github.com/cumunisp/cumunisp/internal/parser"
	"github.com/cumunisp/cumunisp/internal/value"
)

func parseRead(t *testing.T, src string) value.Value {
	t.Helper()
	root, err := parser.Parse(src)
	require.NoError(t, err)
	return Read(root)
}

func TestReadNumber(t *testing.T) {
	v := parseRead(t, "42")
	sexpr := v.(value.SExpr)
	require.Equal(t, value.Num{N: 42}, sexpr.Elems[0])
}

func TestReadSymbol(t *testing.T) {
	v := parseRead(t, "foo-bar")
	sexpr := v.(value.SExpr)
	require.Equal(t, value.Sym{Name: "foo-bar"}, sexpr.Elems[0])
}

func TestReadStringUnescapes(t *testing.T) {
	v := parseRead(t, `"a\nb"`)
	sexpr := v.(value.SExpr)
	require.Equal(t, value.Str{S: "a\nb"}, sexpr.Elems[0])
}

func TestReadQExprAndSExprNesting(t *testing.T) {
	v := parseRead(t, "(\\ {x y} {+ x y})")
	sexpr := v.(value.SExpr)
	inner := sexpr.Elems[0].(value.SExpr)
	require.Len(t, inner.Elems, 3)
	formals := inner.Elems[1].(value.QExpr)
	require.Equal(t, value.Sym{Name: "x"}, formals.Elems[0])
}

func TestReadInvalidNumberProducesErr(t *testing.T) {
	huge := "1" + stringsRepeat("0", 400)
	n := &ast.Node{Tag: "number", Contents: huge}
	got := readNumber(n)
	require.Equal(t, value.Err{Msg: "Invalid number!"}, got)
}

func stringsRepeat(s string, n int) string {
	out := make([]byte, 0, len(s)*n)
	for i := 0; i < n; i++ {
		out = append(out, s...)
	}
	return string(out)
}

func TestPrintReadRoundTripProperty(t *testing.T) {
	v := value.Str{S: "x\ty\n\"z\"\\w"}
	printed := value.Sprint(v)
	reparsed, err := parser.Parse(printed)
	require.NoError(t, err)
	got := Read(reparsed).(value.SExpr).Elems[0]
	require.True(t, value.Equal(v, got))
	require.Equal(t, printed, value.Sprint(got))
}

package builtin

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cumunisp/cumunisp/internal/env"
	"github.com/cumunisp/cumunisp/internal/eval"
	"github.com/cumunisp/cumunisp/internal/parser"
	"github.com/cumunisp/cumunisp/internal/reader"
	"github.com/cumunisp/cumunisp/internal/value"
)

// run parses, reads, and evaluates source against a fresh root
// environment with all builtins registered — the same path the CLI
// takes, exercised end to end for each scenario in spec.md §8.
func run(t *testing.T, src string) value.Value {
	t.Helper()
	root := env.New(nil)
	Register(root)

	ast, err := parser.Parse(src)
	require.NoError(t, err)

	form := reader.Read(ast)
	return eval.Eval(root, form)
}

func TestScenarioBasicArithmetic(t *testing.T) {
	require.Equal(t, value.Num{N: 6}, run(t, "+ 1 2 3"))
}

func TestScenarioImmediateLambdaCall(t *testing.T) {
	require.Equal(t, value.Num{N: 30}, run(t, "(\\ {x y} {+ x y}) 10 20"))
}

func TestScenarioDefAndCallNamedFunction(t *testing.T) {
	root := env.New(nil)
	Register(root)

	astDef, err := parser.Parse("def {add-mul} (\\ {x y} {+ x (* x y)})")
	require.NoError(t, err)
	eval.Eval(root, reader.Read(astDef))

	astCall, err := parser.Parse("add-mul 10 20")
	require.NoError(t, err)
	got := eval.Eval(root, reader.Read(astCall))
	require.Equal(t, value.Num{N: 210}, got)
}

func TestScenarioVariadicRest(t *testing.T) {
	got := run(t, "(\\ {x & xs} {xs}) 1 2 3 4")
	require.Equal(t, "{2 3 4}", value.Sprint(got))
}

func TestScenarioHeadOfEmptyIsErr(t *testing.T) {
	got := run(t, "head {}")
	require.Equal(t, "Error: Function 'head' passed {} for argument 0!", value.Sprint(got))
}

func TestScenarioDivisionByZero(t *testing.T) {
	got := run(t, "/ 10 0")
	require.Equal(t, "Error: Division by zero!", value.Sprint(got))
}

func TestScenarioIfBranches(t *testing.T) {
	got := run(t, "if (== 1 1) {+ 1 1} {+ 2 2}")
	require.Equal(t, value.Num{N: 2}, got)
}

func TestScenarioStructuralEquality(t *testing.T) {
	got := run(t, "== {1 2 3} {1 2 3}")
	require.Equal(t, value.Num{N: 1}, got)
}

func TestScenarioEvalHeadOfSexprList(t *testing.T) {
	got := run(t, "eval (head {(+ 1 2) (+ 10 20)})")
	require.Equal(t, value.Num{N: 3}, got)
}

func TestDefIsObservableAtRootFromNestedScope(t *testing.T) {
	root := env.New(nil)
	Register(root)
	child := env.New(root)

	form := value.SExpr{Elems: []value.Value{
		value.Sym{Name: "def"},
		value.QExpr{Elems: []value.Value{value.Sym{Name: "g"}}},
		value.Num{N: 7},
	}}
	eval.Eval(child, form)

	got, err := root.Lookup("g")
	require.NoError(t, err)
	require.Equal(t, value.Num{N: 7}, got)
}

func TestPutIsNotObservableOutsideScope(t *testing.T) {
	root := env.New(nil)
	Register(root)
	child := env.New(root)

	form := value.SExpr{Elems: []value.Value{
		value.Sym{Name: "="},
		value.QExpr{Elems: []value.Value{value.Sym{Name: "local"}}},
		value.Num{N: 7},
	}}
	eval.Eval(child, form)

	_, err := root.Lookup("local")
	require.Error(t, err)
}

func TestInitIsAllButLast(t *testing.T) {
	got := run(t, "init {1 2 3 4}")
	require.Equal(t, "{1 2 3}", value.Sprint(got))
}

func TestUnaryMinusNegates(t *testing.T) {
	got := run(t, "- 5")
	require.Equal(t, value.Num{N: -5}, got)
}

func TestLenOfQExpr(t *testing.T) {
	got := run(t, "len {1 2 3}")
	require.Equal(t, value.Num{N: 3}, got)
}

func TestConsPrepends(t *testing.T) {
	got := run(t, "cons 1 {2 3}")
	require.Equal(t, "{1 2 3}", value.Sprint(got))
}

func TestJoinConcatenates(t *testing.T) {
	got := run(t, "join {1 2} {3 4}")
	require.Equal(t, "{1 2 3 4}", value.Sprint(got))
}

func TestErrBuiltinConstructsErrValue(t *testing.T) {
	got := run(t, `err "boom"`)
	require.Equal(t, value.Err{Msg: "boom"}, got)
}

package builtin

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cumunisp/cumunisp/internal/env"
	"github.com/cumunisp/cumunisp/internal/eval"
	"github.com/cumunisp/cumunisp/internal/parser"
	"github.com/cumunisp/cumunisp/internal/reader"
	"github.com/cumunisp/cumunisp/internal/value"
)

func TestLoadEvaluatesTopLevelFormsInGlobalEnv(t *testing.T) {
	root := env.New(nil)
	Register(root)

	path := filepath.Join(t.TempDir(), "lib.cum")
	require.NoError(t, os.WriteFile(path, []byte(`(def {square} (\ {x} {* x x}))`), 0o644))

	got := run(t, `load "`+path+`"`)
	// load itself returns unit...
	require.Equal(t, value.SExpr{}, got)

	// ...but the child eval used a throwaway root, so rerun load on the
	// shared root and check the definition stuck there.
	astLoad, err := parser.Parse(`load "` + path + `"`)
	require.NoError(t, err)
	eval.Eval(root, reader.Read(astLoad))

	astCall, err := parser.Parse("square 5")
	require.NoError(t, err)
	result := eval.Eval(root, reader.Read(astCall))
	require.Equal(t, value.Num{N: 25}, result)
}

func TestLoadMissingFileProducesErr(t *testing.T) {
	got := run(t, `load "/no/such/file.cum"`)
	errv, ok := got.(value.Err)
	require.True(t, ok)
	require.Contains(t, errv.Msg, "Could not load Library")
}

// Command cumunisp is the interactive interpreter's CLI entry point
// (spec.md §6): no arguments starts a REPL, one or more arguments are
// treated as filenames and loaded in order.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cumunisp/cumunisp/internal/builtin"
	"github.com/cumunisp/cumunisp/internal/env"
	"github.com/cumunisp/cumunisp/internal/eval"
	"github.com/cumunisp/cumunisp/internal/value"
)

const version = "Cumunisp Version 0.0.0.0.3"

func newRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:           "cumunisp [files...]",
		Short:         "An interactive interpreter for the cumunisp language",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			} else {
				logrus.SetLevel(logrus.WarnLevel)
			}

			root := env.New(nil)
			builtin.Register(root)

			if len(args) == 0 {
				return runREPL(root)
			}
			return loadFiles(root, args)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log interpreter-internal debug diagnostics")
	return cmd
}

// loadFiles invokes the "load" builtin on each filename in order, the
// same way the REPL's `load "file"` form would, and prints any Err it
// returns directly (spec.md §6's file-argument CLI surface).
func loadFiles(root *env.Env, files []string) error {
	loadFn, lookupErr := root.Lookup("load")
	if lookupErr != nil {
		return lookupErr
	}
	fn := loadFn.(value.Fun)

	for _, name := range files {
		args := value.SExpr{Elems: []value.Value{value.Str{S: name}}}
		result := eval.Call(root, fn, args)
		if errv, ok := result.(value.Err); ok {
			fmt.Println(value.Sprint(errv))
		}
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"github.com/cumunisp/cumunisp/internal/env"
	"github.com/cumunisp/cumunisp/internal/eval"
	"github.com/cumunisp/cumunisp/internal/parser"
	"github.com/cumunisp/cumunisp/internal/reader"
	"github.com/cumunisp/cumunisp/internal/value"
)

// runREPL drives the interactive read-eval-print loop (spec.md §6):
// prints a version banner, then reads lines with history/line-editing
// until EOF or interrupt, evaluating each against root.
func runREPL(root *env.Env) error {
	color.New(color.Bold).Println(version)
	fmt.Println("Press Ctrl+c to Exit")
	fmt.Println()

	rl, err := readline.New("cumunisp> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if len(line) == 0 {
				return nil
			}
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		evalLine(root, line)
	}
}

func evalLine(root *env.Env, line string) {
	ast, err := parser.Parse(line)
	if err != nil {
		color.Red("Error: %s", err)
		return
	}

	form := reader.Read(ast)
	result := eval.Eval(root, form)
	logrus.WithField("input", line).Debug("repl: evaluated line")

	if errv, ok := result.(value.Err); ok {
		color.Red("%s", value.Sprint(errv))
		return
	}
	fmt.Println(value.Sprint(result))
}

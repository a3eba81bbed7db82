package main

// This is an interpreter for a restricted dialect of the Lox programming
// language written in Go.

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/peterh/liner"

	"github.com/stevesweetney/rox/internal/lox"
)

const historyFile = ".rox_history"

func main() {
	args := os.Args[1:]
	if len(args) > 1 {
		fmt.Println("Usage: rox [script]")
		os.Exit(64)
	}

	reporter := lox.NewSimpleReporter(os.Stderr)
	interpreter := lox.NewInterpreter(os.Stdout, reporter)
	if len(args) == 1 {
		runFile(args[0], interpreter, reporter)
	} else {
		runPrompt(interpreter, reporter)
	}
}

func run(script string, interpreter *lox.Interpreter, reporter lox.Reporter) {
	scanner := lox.NewScanner([]rune(script), reporter)
	tokens := scanner.Scan()
	parser := lox.NewParser(tokens, reporter)
	statements := parser.Parse()
	if reporter.HadError() {
		return
	}
	interpreter.Interpret(statements)
}

// Run the interpreter in REPL mode. The environment persists across lines,
// the reporter is reset so one bad line does not block the next.
func runPrompt(interpreter *lox.Interpreter, reporter lox.Reporter) {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := ""
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, historyFile)
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
	}
	defer func() {
		if histPath == "" {
			return
		}
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		line, err := ln.Prompt("> ")
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Println()
			return
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		ln.AppendHistory(line)
		run(line, interpreter, reporter)
		reporter.Reset()
	}
}

// Run the given file as a script. Parse and runtime failures are written to
// the diagnostic stream, the exit status stays zero.
func runFile(fpath string, interpreter *lox.Interpreter, reporter lox.Reporter) {
	bytes, err := os.ReadFile(fpath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	run(string(bytes), interpreter, reporter)
}

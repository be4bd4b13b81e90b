// Command mython runs a single Mython program read from standard
// input to completion, writing its output to standard output.
package main

import (
	"fmt"
	"os"

	"github.com/mythonlang/mython/internal/lexer"
	"github.com/mythonlang/mython/internal/object"
	"github.com/mythonlang/mython/internal/parser"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	tokens, err := lexer.Lex(os.Stdin)
	if err != nil {
		return fmt.Errorf("mython: %w", err)
	}
	program, err := parser.Parse(tokens)
	if err != nil {
		return fmt.Errorf("mython: %w", err)
	}
	closure := object.NewClosure()
	ctx := object.NewContext(os.Stdout)
	if _, _, err := program.Execute(closure, ctx); err != nil {
		return fmt.Errorf("mython: %w", err)
	}
	return nil
}

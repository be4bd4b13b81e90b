// Package mytest provides utilities for testing Mython programs in Go.
package mytest

import (
	"bytes"
	"testing"

	"github.com/mythonlang/mython/internal/lexer"
	"github.com/mythonlang/mython/internal/object"
	"github.com/mythonlang/mython/internal/parser"
)

// Run lexes, parses, and executes source against a fresh closure and
// context, then asserts its captured standard output equals want. It
// fails the test immediately on any lex, parse, or runtime error.
func Run(t *testing.T, source, want string) {
	t.Helper()
	got, err := Eval(source)
	if err != nil {
		t.Fatalf("%q: unexpected error: %v", source, err)
	}
	if got != want {
		t.Errorf("%q: got output %q, want %q", source, got, want)
	}
}

// Eval lexes, parses, and executes source, returning its captured
// standard output.
func Eval(source string) (string, error) {
	out, _, err := EvalReachable(source)
	return out, err
}

// EvalReachable runs source like Eval and additionally sweeps the
// instance graph from the program's top-level scope when it finishes,
// reporting how many instances remain reachable. The sweep must
// terminate even when field assignment has closed a cycle between
// instances.
func EvalReachable(source string) (string, int, error) {
	tokens, err := lexer.Lex(bytes.NewBufferString(source))
	if err != nil {
		return "", 0, err
	}
	program, err := parser.Parse(tokens)
	if err != nil {
		return "", 0, err
	}
	var out bytes.Buffer
	ctx := object.NewContext(&out)
	closure := object.NewClosure()
	if _, _, err := program.Execute(closure, ctx); err != nil {
		return out.String(), 0, err
	}
	return out.String(), object.Reachable(closure), nil
}

// RunError runs source and asserts that it fails, returning the error
// for further inspection (e.g. its concrete type).
func RunError(t *testing.T, source string) error {
	t.Helper()
	_, err := Eval(source)
	if err == nil {
		t.Fatalf("%q: expected an error, got none", source)
	}
	return err
}

package parser

import (
	"fmt"

	"github.com/mythonlang/mython/internal/token"
)

// Error reports a parse-time syntax error: a token mismatch naming
// what production wanted and what it actually found, or a semantic
// violation (duplicate/unknown class name, wrong call arity) detected
// while building the AST.
type Error struct {
	Pos  token.Pos
	Want string
	Got  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: expected %s, got %s", e.Pos, e.Want, e.Got)
}

func errAt(pos token.Pos, want, got string) error {
	return &Error{Pos: pos, Want: want, Got: got}
}

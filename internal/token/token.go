// Package token defines the lexical tokens of Mython source.
package token

import "fmt"

// Kind identifies which variant of the token union a Token holds.
type Kind int

// The closed set of token kinds, per the language grammar.
const (
	Number Kind = iota
	Id
	Char
	String
	Class
	Return
	If
	Else
	Def
	Newline
	Print
	Indent
	Dedent
	And
	Or
	Not
	Eq
	NotEq
	LessOrEq
	GreaterOrEq
	None
	True
	False
	Eof
)

var kindNames = [...]string{
	Number: "Number", Id: "Id", Char: "Char", String: "String",
	Class: "class", Return: "return", If: "if", Else: "else", Def: "def",
	Newline: "Newline", Print: "print", Indent: "Indent", Dedent: "Dedent",
	And: "and", Or: "or", Not: "not",
	Eq: "==", NotEq: "!=", LessOrEq: "<=", GreaterOrEq: ">=",
	None: "None", True: "True", False: "False", Eof: "Eof",
}

func (k Kind) String() string {
	if k < Number || k > Eof {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Pos is a source position used for diagnostics.
type Pos struct {
	Line, Col int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Token is one lexeme: a tagged union of Kind plus whichever payload
// that kind carries. Valueless kinds leave Num/Text at their zero value.
type Token struct {
	Kind Kind
	Num  int64
	Text string // Id, Char (single byte), and String payload
	Pos  Pos
}

// Equal implements the token equality rule from the data model: same
// variant and, for valued variants, equal value.
func (t Token) Equal(o Token) bool {
	if t.Kind != o.Kind {
		return false
	}
	switch t.Kind {
	case Number:
		return t.Num == o.Num
	case Id, Char, String:
		return t.Text == o.Text
	default:
		return true
	}
}

func (t Token) String() string {
	switch t.Kind {
	case Number:
		return fmt.Sprintf("Number(%d)", t.Num)
	case Id:
		return fmt.Sprintf("Id(%s)", t.Text)
	case Char:
		return fmt.Sprintf("Char(%s)", t.Text)
	case String:
		return fmt.Sprintf("String(%q)", t.Text)
	default:
		return t.Kind.String()
	}
}

// MakeChar builds a Char token carrying the single operator byte c.
func MakeChar(c byte, pos Pos) Token {
	return Token{Kind: Char, Text: string(c), Pos: pos}
}

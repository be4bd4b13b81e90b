// Package parser implements Mython's recursive-descent parser: one
// function per grammar production, consuming a flat token sequence
// and producing a self-evaluating AST.
package parser

import (
	"github.com/mythonlang/mython/internal/ast"
	"github.com/mythonlang/mython/internal/object"
	"github.com/mythonlang/mython/internal/token"
)

// Parser walks a fixed token slice and maintains the class table:
// classes registered so far, keyed by name, consulted to resolve base
// classes and to disambiguate Id(args) in Mult.
type Parser struct {
	tokens  []token.Token
	pos     int
	classes map[string]*object.Class
}

// Parse builds the root Compound node for a full, normalized token
// sequence (as produced by internal/lexer.Lex).
func Parse(tokens []token.Token) (ast.Node, error) {
	p := &Parser{tokens: tokens, classes: make(map[string]*object.Class)}
	return p.parseProgram()
}

func (p *Parser) cur() token.Token {
	return p.tokens[p.pos]
}

func (p *Parser) advance() token.Token {
	t := p.tokens[p.pos]
	if t.Kind != token.Eof {
		p.pos++
	}
	return t
}

func (p *Parser) isChar(c byte) bool {
	t := p.cur()
	return t.Kind == token.Char && len(t.Text) == 1 && t.Text[0] == c
}

func (p *Parser) expectKind(k token.Kind) (token.Token, error) {
	t := p.cur()
	if t.Kind != k {
		return t, errAt(t.Pos, k.String(), t.String())
	}
	p.advance()
	return t, nil
}

func (p *Parser) expectChar(c byte) error {
	if !p.isChar(c) {
		t := p.cur()
		return errAt(t.Pos, string(c), t.String())
	}
	p.advance()
	return nil
}

// parseProgram consumes statements (skipping blank Newlines between
// them) until Eof.
func (p *Parser) parseProgram() (ast.Node, error) {
	var children []ast.Node
	for p.cur().Kind != token.Eof {
		if p.cur().Kind == token.Newline {
			p.advance()
			continue
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		children = append(children, stmt)
	}
	return &ast.Compound{Children: children}, nil
}

// parseSuite consumes Newline Indent Statement+ Dedent.
func (p *Parser) parseSuite() (ast.Node, error) {
	if _, err := p.expectKind(token.Newline); err != nil {
		return nil, err
	}
	if _, err := p.expectKind(token.Indent); err != nil {
		return nil, err
	}
	var children []ast.Node
	for p.cur().Kind != token.Dedent {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		children = append(children, stmt)
	}
	if _, err := p.expectKind(token.Dedent); err != nil {
		return nil, err
	}
	return &ast.Compound{Children: children}, nil
}

// parseStatement dispatches on the leading token: class, if, or a
// simple statement terminated by a newline.
func (p *Parser) parseStatement() (ast.Node, error) {
	switch p.cur().Kind {
	case token.Class:
		p.advance()
		return p.parseClassDef()
	case token.If:
		return p.parseCondition()
	default:
		stmt, err := p.parseSimpleStatement()
		if err != nil {
			return nil, err
		}
		// The terminating newline is optional: normalization strips
		// trailing newlines, so the last statement of the program or
		// of a suite ends directly at Eof or Dedent.
		if p.cur().Kind == token.Newline {
			p.advance()
		}
		return stmt, nil
	}
}

// parseSimpleStatement parses return, print, or an assignment/call.
func (p *Parser) parseSimpleStatement() (ast.Node, error) {
	switch p.cur().Kind {
	case token.Return:
		p.advance()
		expr, err := p.parseTest()
		if err != nil {
			return nil, err
		}
		return &ast.Return{Expr: expr}, nil
	case token.Print:
		p.advance()
		var args []ast.Node
		if k := p.cur().Kind; k != token.Newline && k != token.Eof && k != token.Dedent {
			var err error
			args, err = p.parseTestList()
			if err != nil {
				return nil, err
			}
		}
		return &ast.Print{Args: args}, nil
	default:
		return p.parseAssignOrCall()
	}
}

// parseCondition parses 'if' Test ':' Suite ['else' ':' Suite].
func (p *Parser) parseCondition() (ast.Node, error) {
	if _, err := p.expectKind(token.If); err != nil {
		return nil, err
	}
	cond, err := p.parseTest()
	if err != nil {
		return nil, err
	}
	if err := p.expectChar(':'); err != nil {
		return nil, err
	}
	thenBody, err := p.parseSuite()
	if err != nil {
		return nil, err
	}
	var elseBody ast.Node
	if p.cur().Kind == token.Else {
		p.advance()
		if err := p.expectChar(':'); err != nil {
			return nil, err
		}
		elseBody, err = p.parseSuite()
		if err != nil {
			return nil, err
		}
	}
	return &ast.IfElse{Condition: cond, Then: thenBody, Else: elseBody}, nil
}

package parser

import (
	"github.com/mythonlang/mython/internal/ast"
	"github.com/mythonlang/mython/internal/object"
	"github.com/mythonlang/mython/internal/token"
)

// parseTest parses Test := AndTest ('or' AndTest)*.
func (p *Parser) parseTest() (ast.Node, error) {
	result, err := p.parseAndTest()
	if err != nil {
		return nil, err
	}
	for p.cur().Kind == token.Or {
		p.advance()
		rhs, err := p.parseAndTest()
		if err != nil {
			return nil, err
		}
		result = &ast.Or{LHS: result, RHS: rhs}
	}
	return result, nil
}

// parseAndTest parses AndTest := NotTest ('and' NotTest)*.
func (p *Parser) parseAndTest() (ast.Node, error) {
	result, err := p.parseNotTest()
	if err != nil {
		return nil, err
	}
	for p.cur().Kind == token.And {
		p.advance()
		rhs, err := p.parseNotTest()
		if err != nil {
			return nil, err
		}
		result = &ast.And{LHS: result, RHS: rhs}
	}
	return result, nil
}

// parseNotTest parses NotTest := 'not' NotTest | Comparison.
func (p *Parser) parseNotTest() (ast.Node, error) {
	if p.cur().Kind == token.Not {
		p.advance()
		arg, err := p.parseNotTest()
		if err != nil {
			return nil, err
		}
		return &ast.Not{Arg: arg}, nil
	}
	return p.parseComparison()
}

// parseComparison parses Comparison := Expr [op Expr].
func (p *Parser) parseComparison() (ast.Node, error) {
	lhs, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	var cmp object.Comparator
	switch {
	case p.isChar('<'):
		cmp = object.Less
	case p.isChar('>'):
		cmp = object.Greater
	case p.cur().Kind == token.Eq:
		cmp = object.Equal
	case p.cur().Kind == token.NotEq:
		cmp = object.NotEqual
	case p.cur().Kind == token.LessOrEq:
		cmp = object.LessOrEqual
	case p.cur().Kind == token.GreaterOrEq:
		cmp = object.GreaterOrEqual
	default:
		return lhs, nil
	}
	p.advance()
	rhs, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.Comparison{LHS: lhs, RHS: rhs, Compare: cmp}, nil
}

// parseExpr parses Expr := Adder (('+'|'-') Adder)*.
func (p *Parser) parseExpr() (ast.Node, error) {
	result, err := p.parseAdder()
	if err != nil {
		return nil, err
	}
	for p.isChar('+') || p.isChar('-') {
		op := p.advance()
		rhs, err := p.parseAdder()
		if err != nil {
			return nil, err
		}
		if op.Text == "+" {
			result = &ast.Add{LHS: result, RHS: rhs}
		} else {
			result = &ast.Sub{LHS: result, RHS: rhs}
		}
	}
	return result, nil
}

// parseAdder parses Adder := Mult (('*'|'/') Mult)*.
func (p *Parser) parseAdder() (ast.Node, error) {
	result, err := p.parseMult()
	if err != nil {
		return nil, err
	}
	for p.isChar('*') || p.isChar('/') {
		op := p.advance()
		rhs, err := p.parseMult()
		if err != nil {
			return nil, err
		}
		if op.Text == "*" {
			result = &ast.Mul{LHS: result, RHS: rhs}
		} else {
			result = &ast.Div{LHS: result, RHS: rhs}
		}
	}
	return result, nil
}

// parseMult parses the grammar's Mult production: parenthesized Test,
// unary minus, literals, or a DottedIds form resolved by
// parseDottedIdsInMult.
func (p *Parser) parseMult() (ast.Node, error) {
	switch {
	case p.isChar('('):
		p.advance()
		inner, err := p.parseTest()
		if err != nil {
			return nil, err
		}
		if err := p.expectChar(')'); err != nil {
			return nil, err
		}
		return inner, nil
	case p.isChar('-'):
		p.advance()
		arg, err := p.parseMult()
		if err != nil {
			return nil, err
		}
		return &ast.Mul{LHS: arg, RHS: &ast.NumericConst{Value: -1}}, nil
	case p.cur().Kind == token.Number:
		t := p.advance()
		return &ast.NumericConst{Value: t.Num}, nil
	case p.cur().Kind == token.String:
		t := p.advance()
		return &ast.StringConst{Value: t.Text}, nil
	case p.cur().Kind == token.True:
		p.advance()
		return &ast.BoolConst{Value: true}, nil
	case p.cur().Kind == token.False:
		p.advance()
		return &ast.BoolConst{Value: false}, nil
	case p.cur().Kind == token.None:
		p.advance()
		return &ast.NoneConst{}, nil
	default:
		return p.parseDottedIdsInMult()
	}
}

// parseDottedIdsInMult resolves the DottedIds ['(' [TestList] ')']
// form: a trailing call disambiguates into NewInstance (leading id is
// a registered class), a method call (call with a non-empty dotted
// prefix), or Stringify (bare str(x)); without a trailing call it is a
// plain variable lookup.
func (p *Parser) parseDottedIdsInMult() (ast.Node, error) {
	names, err := p.parseDottedIds()
	if err != nil {
		return nil, err
	}
	if !p.isChar('(') {
		return &ast.VariableValue{Ids: names}, nil
	}
	p.advance()
	var args []ast.Node
	if !p.isChar(')') {
		args, err = p.parseTestList()
		if err != nil {
			return nil, err
		}
	}
	if err := p.expectChar(')'); err != nil {
		return nil, err
	}

	methodName := names[len(names)-1]
	prefix := names[:len(names)-1]

	if len(prefix) > 0 {
		return &ast.MethodCallExpr{Object: &ast.VariableValue{Ids: prefix}, Method: methodName, Args: args}, nil
	}
	if class, ok := p.classes[methodName]; ok {
		return &ast.NewInstance{Class: class, Args: args}, nil
	}
	if methodName == "str" {
		if len(args) != 1 {
			return nil, errAt(p.cur().Pos, "exactly one argument to str(...)", "a different number of arguments")
		}
		return &ast.Stringify{Arg: args[0]}, nil
	}
	return nil, errAt(p.cur().Pos, "a known class or str(...)", "call to undefined "+methodName+"(...)")
}

// parseDottedIds parses DottedIds := Id ('.' Id)*.
func (p *Parser) parseDottedIds() ([]string, error) {
	first, err := p.expectKind(token.Id)
	if err != nil {
		return nil, err
	}
	ids := []string{first.Text}
	for p.isChar('.') {
		p.advance()
		next, err := p.expectKind(token.Id)
		if err != nil {
			return nil, err
		}
		ids = append(ids, next.Text)
	}
	return ids, nil
}

// parseTestList parses TestList := Test (',' Test)*.
func (p *Parser) parseTestList() ([]ast.Node, error) {
	first, err := p.parseTest()
	if err != nil {
		return nil, err
	}
	list := []ast.Node{first}
	for p.isChar(',') {
		p.advance()
		next, err := p.parseTest()
		if err != nil {
			return nil, err
		}
		list = append(list, next)
	}
	return list, nil
}

// parseAssignOrCall parses AssignOrCall := DottedIds ('=' Test | '('
// [TestList] ')'). A call requires a non-empty dotted prefix (Mython
// has no bare functions, only methods); an assignment with an empty
// prefix binds a plain variable, otherwise it assigns an instance
// field.
func (p *Parser) parseAssignOrCall() (ast.Node, error) {
	names, err := p.parseDottedIds()
	if err != nil {
		return nil, err
	}
	last := names[len(names)-1]
	prefix := names[:len(names)-1]

	if p.isChar('=') {
		p.advance()
		rhs, err := p.parseTest()
		if err != nil {
			return nil, err
		}
		if len(prefix) == 0 {
			return &ast.Assignment{Name: last, RHS: rhs}, nil
		}
		return &ast.FieldAssignment{Object: &ast.VariableValue{Ids: prefix}, Field: last, RHS: rhs}, nil
	}

	if err := p.expectChar('('); err != nil {
		return nil, err
	}
	var args []ast.Node
	if !p.isChar(')') {
		args, err = p.parseTestList()
		if err != nil {
			return nil, err
		}
	}
	if err := p.expectChar(')'); err != nil {
		return nil, err
	}
	if len(prefix) == 0 {
		// No bare function calls, with one carve-out: str(x) is the
		// builtin stringify expression.
		if last == "str" {
			if len(args) != 1 {
				return nil, errAt(p.cur().Pos, "exactly one argument to str(...)", "a different number of arguments")
			}
			return &ast.Stringify{Arg: args[0]}, nil
		}
		return nil, errAt(p.cur().Pos, "a method call on a dotted object", "a bare call to "+last+"(...)")
	}
	return &ast.MethodCallStatement{Object: &ast.VariableValue{Ids: prefix}, Method: last, Args: args}, nil
}

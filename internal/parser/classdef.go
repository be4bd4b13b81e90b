package parser

import (
	"github.com/mythonlang/mython/internal/ast"
	"github.com/mythonlang/mython/internal/object"
	"github.com/mythonlang/mython/internal/token"
)

// parseClassDef parses the body of a class statement: Id ['(' Id ')']
// ':' Newline Indent Def+ Dedent. The class's own keyword has already
// been consumed by parseStatement.
func (p *Parser) parseClassDef() (ast.Node, error) {
	nameTok, err := p.expectKind(token.Id)
	if err != nil {
		return nil, err
	}
	className := nameTok.Text

	var base *object.Class
	if p.isChar('(') {
		p.advance()
		baseTok, err := p.expectKind(token.Id)
		if err != nil {
			return nil, err
		}
		if err := p.expectChar(')'); err != nil {
			return nil, err
		}
		b, ok := p.classes[baseTok.Text]
		if !ok {
			return nil, errAt(baseTok.Pos, "a declared class", "base class "+baseTok.Text+" is not defined")
		}
		base = b
	}

	if err := p.expectChar(':'); err != nil {
		return nil, err
	}
	if _, err := p.expectKind(token.Newline); err != nil {
		return nil, err
	}
	if _, err := p.expectKind(token.Indent); err != nil {
		return nil, err
	}
	if p.cur().Kind != token.Def {
		t := p.cur()
		return nil, errAt(t.Pos, token.Def.String(), t.String())
	}

	methods, err := p.parseMethods()
	if err != nil {
		return nil, err
	}

	if _, err := p.expectKind(token.Dedent); err != nil {
		return nil, err
	}

	if _, exists := p.classes[className]; exists {
		return nil, errAt(nameTok.Pos, "a new class name", "class "+className+" already exists")
	}
	class := object.NewClass(className, methods, base)
	p.classes[className] = class

	return &ast.ClassDefinition{Class: class}, nil
}

// parseMethods parses zero or more 'def' Id '(' [Id (',' Id)*] ')' ':'
// Suite definitions, the only statement kind a class body may contain.
func (p *Parser) parseMethods() ([]object.Method, error) {
	var methods []object.Method
	for p.cur().Kind == token.Def {
		p.advance()
		nameTok, err := p.expectKind(token.Id)
		if err != nil {
			return nil, err
		}
		if err := p.expectChar('('); err != nil {
			return nil, err
		}
		var params []string
		if p.cur().Kind == token.Id {
			idTok := p.advance()
			params = append(params, idTok.Text)
			for p.isChar(',') {
				p.advance()
				idTok, err := p.expectKind(token.Id)
				if err != nil {
					return nil, err
				}
				params = append(params, idTok.Text)
			}
		}
		if err := p.expectChar(')'); err != nil {
			return nil, err
		}
		if err := p.expectChar(':'); err != nil {
			return nil, err
		}
		body, err := p.parseSuite()
		if err != nil {
			return nil, err
		}
		methods = append(methods, object.Method{
			Name:   nameTok.Text,
			Params: params,
			Body:   &ast.MethodBody{Body: body},
		})
	}
	return methods, nil
}

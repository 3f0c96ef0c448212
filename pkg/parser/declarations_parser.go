package parser

import (
	"rox/interpreter-go/pkg/ast"
	"rox/interpreter-go/pkg/lexer"
)

func (p *Parser) parseDeclaration() (ast.Statement, error) {
	switch {
	case p.match(lexer.KindVar):
		return p.parseVarDeclaration()
	case p.match(lexer.KindFun):
		return p.parseFunctionDefinition()
	default:
		return p.parseStatement()
	}
}

func (p *Parser) parseVarDeclaration() (ast.Statement, error) {
	keyword := p.previous()
	name, err := p.consume(lexer.KindIdentifier, "after 'var'")
	if err != nil {
		return nil, err
	}
	var initializer ast.Expression
	if p.match(lexer.KindEqual) {
		initializer, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(lexer.KindSemicolon, "after variable declaration"); err != nil {
		return nil, err
	}
	decl := ast.NewVarDeclaration(identifierFromToken(name), initializer)
	ast.SetLine(decl, keyword.Line)
	return decl, nil
}

func (p *Parser) parseFunctionDefinition() (ast.Statement, error) {
	keyword := p.previous()
	name, err := p.consume(lexer.KindIdentifier, "after 'fun'")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.KindLeftParen, "after function name"); err != nil {
		return nil, err
	}
	params, err := p.parseParameterList()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.KindLeftBrace, "before function body"); err != nil {
		return nil, err
	}
	body, err := p.parseBlockBody()
	if err != nil {
		return nil, err
	}
	fn := ast.NewFunctionDefinition(identifierFromToken(name), params, body)
	ast.SetLine(fn, keyword.Line)
	return fn, nil
}

// parseParameterList reads `a, b, c )` after the opening paren.
func (p *Parser) parseParameterList() ([]*ast.Identifier, error) {
	params := make([]*ast.Identifier, 0)
	seen := make(map[string]bool)
	if !p.check(lexer.KindRightParen) {
		for {
			if len(params) >= MaxParameters {
				return nil, p.errorAt(p.peek(), TooManyParameters)
			}
			tok, err := p.consume(lexer.KindIdentifier, "in parameter list")
			if err != nil {
				return nil, err
			}
			if seen[tok.Lexeme] {
				return nil, p.errorAt(tok, DuplicateParameter)
			}
			seen[tok.Lexeme] = true
			params = append(params, identifierFromToken(tok))
			if !p.match(lexer.KindComma) {
				break
			}
		}
	}
	if _, err := p.consume(lexer.KindRightParen, "after parameters"); err != nil {
		return nil, err
	}
	return params, nil
}

func identifierFromToken(tok lexer.Token) *ast.Identifier {
	id := ast.NewIdentifier(tok.Lexeme)
	ast.SetLine(id, tok.Line)
	return id
}

package parser

import (
	"rox/interpreter-go/pkg/ast"
	"rox/interpreter-go/pkg/lexer"
)

func (p *Parser) parseStatement() (ast.Statement, error) {
	switch {
	case p.match(lexer.KindPrint):
		return p.parsePrintStatement()
	case p.match(lexer.KindIf):
		return p.parseIfStatement()
	case p.match(lexer.KindWhile):
		return p.parseWhileLoop()
	case p.match(lexer.KindFor):
		return p.parseForLoop()
	case p.match(lexer.KindReturn):
		return p.parseReturnStatement()
	case p.match(lexer.KindLeftBrace):
		brace := p.previous()
		body, err := p.parseBlockBody()
		if err != nil {
			return nil, err
		}
		block := ast.NewBlockStatement(body)
		ast.SetLine(block, brace.Line)
		return block, nil
	default:
		return p.parseExpressionStatement()
	}
}

// parseBlockBody reads declarations up to and including the closing brace.
// Errors inside the block are recovered per declaration so the rest of the
// block still parses.
func (p *Parser) parseBlockBody() ([]ast.Statement, error) {
	body := make([]ast.Statement, 0)
	for !p.check(lexer.KindRightBrace) && !p.atEnd() {
		if stmt := p.declaration(); stmt != nil {
			body = append(body, stmt)
		}
	}
	if _, err := p.consume(lexer.KindRightBrace, "after block"); err != nil {
		return nil, err
	}
	return body, nil
}

func (p *Parser) parsePrintStatement() (ast.Statement, error) {
	keyword := p.previous()
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.KindSemicolon, "after value"); err != nil {
		return nil, err
	}
	stmt := ast.NewPrintStatement(value)
	ast.SetLine(stmt, keyword.Line)
	return stmt, nil
}

func (p *Parser) parseExpressionStatement() (ast.Statement, error) {
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.KindSemicolon, "after expression"); err != nil {
		return nil, err
	}
	stmt := ast.NewExpressionStatement(expr)
	ast.SetLine(stmt, expr.Line())
	return stmt, nil
}

func (p *Parser) parseReturnStatement() (ast.Statement, error) {
	keyword := p.previous()
	var value ast.Expression
	if !p.check(lexer.KindSemicolon) {
		var err error
		value, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(lexer.KindSemicolon, "after return value"); err != nil {
		return nil, err
	}
	stmt := ast.NewReturnStatement(value)
	ast.SetLine(stmt, keyword.Line)
	return stmt, nil
}

// parseCondition reads `( expr )` following a keyword.
func (p *Parser) parseCondition(keyword string) (ast.Expression, error) {
	if _, err := p.consume(lexer.KindLeftParen, "after '"+keyword+"'"); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.KindRightParen, "after "+keyword+" condition"); err != nil {
		return nil, err
	}
	return cond, nil
}

func (p *Parser) parseIfStatement() (ast.Statement, error) {
	keyword := p.previous()
	cond, err := p.parseCondition("if")
	if err != nil {
		return nil, err
	}
	thenBranch, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	var elseBranch ast.Statement
	// The else binds to the nearest if.
	if p.match(lexer.KindElse) {
		elseBranch, err = p.parseStatement()
		if err != nil {
			return nil, err
		}
	}
	stmt := ast.NewIfStatement(cond, thenBranch, elseBranch)
	ast.SetLine(stmt, keyword.Line)
	return stmt, nil
}

func (p *Parser) parseWhileLoop() (ast.Statement, error) {
	keyword := p.previous()
	cond, err := p.parseCondition("while")
	if err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	loop := ast.NewWhileLoop(cond, body)
	ast.SetLine(loop, keyword.Line)
	return loop, nil
}

// parseForLoop desugars `for (init; cond; incr) body` into
// `{ init; while (cond) { body; incr; } }`. A missing condition becomes
// `true`; wrappers are only added for the clauses that are present.
func (p *Parser) parseForLoop() (ast.Statement, error) {
	keyword := p.previous()
	if _, err := p.consume(lexer.KindLeftParen, "after 'for'"); err != nil {
		return nil, err
	}

	var (
		initializer ast.Statement
		err         error
	)
	switch {
	case p.match(lexer.KindSemicolon):
	case p.match(lexer.KindVar):
		initializer, err = p.parseVarDeclaration()
	default:
		initializer, err = p.parseExpressionStatement()
	}
	if err != nil {
		return nil, err
	}

	var cond ast.Expression
	if !p.check(lexer.KindSemicolon) {
		if cond, err = p.parseExpression(); err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(lexer.KindSemicolon, "after loop condition"); err != nil {
		return nil, err
	}

	var increment ast.Expression
	if !p.check(lexer.KindRightParen) {
		if increment, err = p.parseExpression(); err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(lexer.KindRightParen, "after for clauses"); err != nil {
		return nil, err
	}

	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	if increment != nil {
		incrStmt := ast.NewExpressionStatement(increment)
		ast.SetLine(incrStmt, increment.Line())
		block := ast.NewBlockStatement([]ast.Statement{body, incrStmt})
		ast.SetLine(block, keyword.Line)
		body = block
	}
	if cond == nil {
		lit := ast.NewBooleanLiteral(true)
		ast.SetLine(lit, keyword.Line)
		cond = lit
	}
	var loop ast.Statement = ast.NewWhileLoop(cond, body)
	ast.SetLine(loop, keyword.Line)
	if initializer != nil {
		block := ast.NewBlockStatement([]ast.Statement{initializer, loop})
		ast.SetLine(block, keyword.Line)
		loop = block
	}
	return loop, nil
}

package parser

import (
	"rox/interpreter-go/pkg/ast"
	"rox/interpreter-go/pkg/lexer"
)

// binaryLevels lists the left-associative binary precedence levels from
// loosest to tightest.
var binaryLevels = [][]lexer.Kind{
	{lexer.KindBangEqual, lexer.KindEqualEqual},
	{lexer.KindGreater, lexer.KindGreaterEqual, lexer.KindLess, lexer.KindLessEqual},
	{lexer.KindMinus, lexer.KindPlus},
	{lexer.KindSlash, lexer.KindStar},
}

var binaryOperators = map[lexer.Kind]ast.BinaryOperator{
	lexer.KindBangEqual:    ast.BinaryOperatorNotEqual,
	lexer.KindEqualEqual:   ast.BinaryOperatorEqual,
	lexer.KindGreater:      ast.BinaryOperatorGreater,
	lexer.KindGreaterEqual: ast.BinaryOperatorGreaterEqual,
	lexer.KindLess:         ast.BinaryOperatorLess,
	lexer.KindLessEqual:    ast.BinaryOperatorLessEqual,
	lexer.KindMinus:        ast.BinaryOperatorSubtract,
	lexer.KindPlus:         ast.BinaryOperatorAdd,
	lexer.KindSlash:        ast.BinaryOperatorDivide,
	lexer.KindStar:         ast.BinaryOperatorMultiply,
}

func (p *Parser) parseExpression() (ast.Expression, error) {
	return p.parseAssignment()
}

func (p *Parser) parseAssignment() (ast.Expression, error) {
	expr, err := p.parseLogical(lexer.KindOr)
	if err != nil {
		return nil, err
	}
	if !p.match(lexer.KindEqual) {
		return expr, nil
	}
	equals := p.previous()
	value, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}
	target, ok := expr.(*ast.Identifier)
	if !ok {
		return nil, p.errorAt(equals, InvalidAssignmentTarget)
	}
	assign := ast.NewAssignmentExpression(target, value)
	ast.SetLine(assign, equals.Line)
	return assign, nil
}

// parseLogical handles `or` (looser) and `and` (tighter).
func (p *Parser) parseLogical(kind lexer.Kind) (ast.Expression, error) {
	next := func() (ast.Expression, error) {
		if kind == lexer.KindOr {
			return p.parseLogical(lexer.KindAnd)
		}
		return p.parseBinary(0)
	}
	expr, err := next()
	if err != nil {
		return nil, err
	}
	for p.match(kind) {
		operator := p.previous()
		right, err := next()
		if err != nil {
			return nil, err
		}
		op := ast.LogicalOperatorAnd
		if kind == lexer.KindOr {
			op = ast.LogicalOperatorOr
		}
		logical := ast.NewLogicalExpression(op, expr, right)
		ast.SetLine(logical, operator.Line)
		expr = logical
	}
	return expr, nil
}

func (p *Parser) parseBinary(level int) (ast.Expression, error) {
	if level >= len(binaryLevels) {
		return p.parseUnary()
	}
	expr, err := p.parseBinary(level + 1)
	if err != nil {
		return nil, err
	}
	for p.match(binaryLevels[level]...) {
		operator := p.previous()
		right, err := p.parseBinary(level + 1)
		if err != nil {
			return nil, err
		}
		binary := ast.NewBinaryExpression(binaryOperators[operator.Kind], expr, right)
		ast.SetLine(binary, operator.Line)
		expr = binary
	}
	return expr, nil
}

func (p *Parser) parseUnary() (ast.Expression, error) {
	if p.match(lexer.KindBang, lexer.KindMinus) {
		operator := p.previous()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		op := ast.UnaryOperatorNegate
		if operator.Kind == lexer.KindBang {
			op = ast.UnaryOperatorNot
		}
		unary := ast.NewUnaryExpression(op, operand)
		ast.SetLine(unary, operator.Line)
		return unary, nil
	}
	return p.parseCall()
}

func (p *Parser) parseCall() (ast.Expression, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.KindLeftParen) {
		args, err := p.parseCallArguments()
		if err != nil {
			return nil, err
		}
		call := ast.NewFunctionCall(expr, args)
		ast.SetLine(call, p.previous().Line)
		expr = call
	}
	return expr, nil
}

// parseCallArguments reads `a, b )` after the opening paren.
func (p *Parser) parseCallArguments() ([]ast.Expression, error) {
	args := make([]ast.Expression, 0)
	if !p.check(lexer.KindRightParen) {
		for {
			if len(args) >= MaxArguments {
				return nil, p.errorAt(p.peek(), TooManyArguments)
			}
			arg, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.match(lexer.KindComma) {
				break
			}
		}
	}
	if _, err := p.consume(lexer.KindRightParen, "after arguments"); err != nil {
		return nil, err
	}
	return args, nil
}

func (p *Parser) parsePrimary() (ast.Expression, error) {
	tok := p.peek()
	switch tok.Kind {
	case lexer.KindNumber:
		p.advance()
		return parseNumberLiteral(tok)
	case lexer.KindString:
		p.advance()
		return parseStringLiteral(tok), nil
	case lexer.KindTrue, lexer.KindFalse:
		p.advance()
		return parseBooleanLiteral(tok), nil
	case lexer.KindNil:
		p.advance()
		return parseNilLiteral(tok), nil
	case lexer.KindIdentifier:
		p.advance()
		return identifierFromToken(tok), nil
	case lexer.KindLeftParen:
		p.advance()
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(lexer.KindRightParen, "after expression"); err != nil {
			return nil, err
		}
		group := ast.NewGroupingExpression(inner)
		ast.SetLine(group, tok.Line)
		return group, nil
	default:
		return nil, p.errorAt(tok, MissingExpression)
	}
}

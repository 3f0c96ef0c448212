package parser

import (
	"errors"
	"strconv"

	"rox/interpreter-go/pkg/ast"
	"rox/interpreter-go/pkg/lexer"
)

// parseNumberLiteral saturates literals beyond float64 range to ±Inf.
func parseNumberLiteral(tok lexer.Token) (ast.Expression, error) {
	value, err := strconv.ParseFloat(tok.Lexeme, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, &ParseError{Kind: InvalidNumber, Token: tok}
	}
	lit := ast.NewNumberLiteral(value)
	ast.SetLine(lit, tok.Line)
	return lit, nil
}

func parseStringLiteral(tok lexer.Token) ast.Expression {
	lit := ast.NewStringLiteral(tok.Lexeme)
	ast.SetLine(lit, tok.Line)
	return lit
}

func parseBooleanLiteral(tok lexer.Token) ast.Expression {
	lit := ast.NewBooleanLiteral(tok.Kind == lexer.KindTrue)
	ast.SetLine(lit, tok.Line)
	return lit
}

func parseNilLiteral(tok lexer.Token) ast.Expression {
	lit := ast.NewNilLiteral()
	ast.SetLine(lit, tok.Line)
	return lit
}

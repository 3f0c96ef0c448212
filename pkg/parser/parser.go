package parser

import (
	"rox/interpreter-go/pkg/ast"
	"rox/interpreter-go/pkg/lexer"
)

const (
	// MaxArguments caps the argument list of a single call.
	MaxArguments = 255
	// MaxParameters caps the parameter list of a function declaration.
	MaxParameters = 255
)

// synchronizeStops are the tokens that can begin a new declaration or
// statement; error recovery resumes in front of them.
var synchronizeStops = map[lexer.Kind]bool{
	lexer.KindClass:  true,
	lexer.KindFun:    true,
	lexer.KindVar:    true,
	lexer.KindFor:    true,
	lexer.KindIf:     true,
	lexer.KindWhile:  true,
	lexer.KindPrint:  true,
	lexer.KindReturn: true,
}

// Parser is a recursive-descent parser over a scanned token list.
type Parser struct {
	tokens  []lexer.Token
	current int
	errors  []*ParseError
}

// New constructs a parser over tokens. The list is expected to end with an
// EOF token, as produced by the lexer.
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse parses tokens into a program.
func Parse(tokens []lexer.Token) ([]ast.Statement, []*ParseError) {
	return New(tokens).Parse()
}

// ParseSource scans and parses source in one step.
func ParseSource(source string) ([]ast.Statement, []lexer.Error, []*ParseError) {
	tokens, lexErrs := lexer.Scan(source)
	statements, parseErrs := Parse(tokens)
	return statements, lexErrs, parseErrs
}

// Parse consumes the whole token list. Every malformed declaration yields
// one error and is dropped from the result; parsing resumes at the next
// statement boundary.
func (p *Parser) Parse() ([]ast.Statement, []*ParseError) {
	p.current = 0
	p.errors = nil
	statements := make([]ast.Statement, 0)
	for !p.atEnd() {
		if stmt := p.declaration(); stmt != nil {
			statements = append(statements, stmt)
		}
	}
	return statements, p.errors
}

// declaration is the recovery point: failures below it are recorded and the
// token stream is resynchronized.
func (p *Parser) declaration() ast.Statement {
	stmt, err := p.parseDeclaration()
	if err != nil {
		p.record(err)
		p.synchronize()
		return nil
	}
	return stmt
}

func (p *Parser) record(err error) {
	if parseErr, ok := AsParseError(err); ok {
		p.errors = append(p.errors, parseErr)
		return
	}
	p.errors = append(p.errors, &ParseError{Kind: MissingExpression, Token: p.peek(), Context: err.Error()})
}

func (p *Parser) synchronize() {
	p.advance()
	for !p.atEnd() {
		if p.previous().Kind == lexer.KindSemicolon {
			return
		}
		if synchronizeStops[p.peek().Kind] {
			return
		}
		p.advance()
	}
}

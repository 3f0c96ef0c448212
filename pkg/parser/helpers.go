package parser

import "rox/interpreter-go/pkg/lexer"

func (p *Parser) match(kinds ...lexer.Kind) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(kind lexer.Kind) bool {
	if p.atEnd() {
		return kind == lexer.KindEOF
	}
	return p.peek().Kind == kind
}

func (p *Parser) advance() lexer.Token {
	if !p.atEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) atEnd() bool {
	return p.peek().Kind == lexer.KindEOF
}

// peek tolerates token slices without a trailing EOF by synthesizing one.
func (p *Parser) peek() lexer.Token {
	if p.current >= len(p.tokens) {
		var line uint = 1
		if n := len(p.tokens); n > 0 {
			line = p.tokens[n-1].Line
		}
		return lexer.NewToken(lexer.KindEOF, "", line)
	}
	return p.tokens[p.current]
}

func (p *Parser) previous() lexer.Token {
	if p.current == 0 || len(p.tokens) == 0 {
		return p.peek()
	}
	return p.tokens[p.current-1]
}

// consume advances past a token of the expected kind or fails with the
// Missing* error for that kind.
func (p *Parser) consume(kind lexer.Kind, context string) (lexer.Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}
	errKind, ok := missingKinds[kind]
	if !ok {
		errKind = MissingExpression
	}
	return lexer.Token{}, &ParseError{Kind: errKind, Expected: kind, Token: p.peek(), Context: context}
}

func (p *Parser) errorAt(tok lexer.Token, kind ErrorKind) *ParseError {
	return &ParseError{Kind: kind, Token: tok}
}

package parser

import (
	"errors"
	"fmt"

	"rox/interpreter-go/pkg/lexer"
)

// ErrorKind enumerates the syntactic failures. Each expected-but-absent
// construct has its own kind so diagnostics say exactly what was missing.
type ErrorKind uint8

const (
	MissingExpression ErrorKind = iota
	MissingSemicolon
	MissingLeftParen
	MissingRightParen
	MissingLeftBrace
	MissingRightBrace
	MissingIdentifier
	InvalidAssignmentTarget
	TooManyArguments
	TooManyParameters
	DuplicateParameter
	InvalidNumber
)

func (k ErrorKind) String() string {
	switch k {
	case MissingExpression:
		return "MissingExpression"
	case MissingSemicolon:
		return "MissingSemicolon"
	case MissingLeftParen:
		return "MissingLeftParen"
	case MissingRightParen:
		return "MissingRightParen"
	case MissingLeftBrace:
		return "MissingLeftBrace"
	case MissingRightBrace:
		return "MissingRightBrace"
	case MissingIdentifier:
		return "MissingIdentifier"
	case InvalidAssignmentTarget:
		return "InvalidAssignmentTarget"
	case TooManyArguments:
		return "TooManyArguments"
	case TooManyParameters:
		return "TooManyParameters"
	case DuplicateParameter:
		return "DuplicateParameter"
	case InvalidNumber:
		return "InvalidNumber"
	default:
		return fmt.Sprintf("unknown_parse_error_%d", int(k))
	}
}

var missingKinds = map[lexer.Kind]ErrorKind{
	lexer.KindSemicolon:  MissingSemicolon,
	lexer.KindLeftParen:  MissingLeftParen,
	lexer.KindRightParen: MissingRightParen,
	lexer.KindLeftBrace:  MissingLeftBrace,
	lexer.KindRightBrace: MissingRightBrace,
	lexer.KindIdentifier: MissingIdentifier,
}

// ParseError is a syntax diagnostic anchored at the token where parsing
// failed.
type ParseError struct {
	Kind ErrorKind
	// Expected is the token kind that was required, for Missing* kinds.
	Expected lexer.Kind
	// Token is the token found instead.
	Token lexer.Token
	// Context describes where the construct was expected, e.g.
	// "after if condition".
	Context string
}

// Line reports the source line of the offending token.
func (e *ParseError) Line() uint {
	return e.Token.Line
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s %s", e.describe(), e.location())
}

func (e *ParseError) describe() string {
	switch e.Kind {
	case MissingExpression:
		return "expected expression"
	case InvalidAssignmentTarget:
		return "invalid assignment target"
	case TooManyArguments:
		return fmt.Sprintf("can't have more than %d arguments", MaxArguments)
	case TooManyParameters:
		return fmt.Sprintf("can't have more than %d parameters", MaxParameters)
	case DuplicateParameter:
		return fmt.Sprintf("duplicate parameter '%s'", e.Token.Lexeme)
	case InvalidNumber:
		return "invalid number literal"
	}
	msg := fmt.Sprintf("expected '%s'", e.Expected.Symbol())
	if e.Expected == lexer.KindIdentifier {
		msg = "expected identifier"
	}
	if e.Context != "" {
		msg += " " + e.Context
	}
	return msg
}

func (e *ParseError) location() string {
	if e.Token.Kind == lexer.KindEOF {
		return "at end"
	}
	return fmt.Sprintf("at '%s'", e.Token.Lexeme)
}

// IsIncomplete reports whether every error was raised at the end of input,
// meaning more source could complete the program (an open block, call or
// statement). Interactive front ends use this to keep reading.
func IsIncomplete(errs []*ParseError) bool {
	if len(errs) == 0 {
		return false
	}
	for _, err := range errs {
		if err.Token.Kind != lexer.KindEOF {
			return false
		}
	}
	return true
}

// AsParseError unwraps err into a *ParseError when possible.
func AsParseError(err error) (*ParseError, bool) {
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return parseErr, true
	}
	return nil, false
}

package lexer

import "fmt"

// ErrorKind enumerates lexical failures.
type ErrorKind uint8

const (
	// UnexpectedCharacter is a character no lexical rule accepts.
	UnexpectedCharacter ErrorKind = iota
	// TokenMissing is input that ended in the middle of a token: an
	// unterminated string or a dangling operator prefix.
	TokenMissing
)

func (k ErrorKind) String() string {
	switch k {
	case UnexpectedCharacter:
		return "UnexpectedCharacter"
	case TokenMissing:
		return "TokenMissing"
	default:
		return fmt.Sprintf("unknown_lex_error_%d", int(k))
	}
}

// Error is a lexical diagnostic. Scanning continues after one is recorded.
type Error struct {
	Kind ErrorKind
	Line uint
	// Char is the offending character for UnexpectedCharacter, or the
	// unfinished prefix for TokenMissing.
	Char string
}

func (e Error) Error() string {
	switch e.Kind {
	case UnexpectedCharacter:
		return fmt.Sprintf("unexpected character %q", e.Char)
	case TokenMissing:
		if e.Char == "\"" {
			return "unterminated string"
		}
		return fmt.Sprintf("incomplete operator %q at end of input", e.Char)
	default:
		return e.Kind.String()
	}
}

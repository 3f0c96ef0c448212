package lexer

import "fmt"

// Kind identifies the lexical category of a token.
type Kind uint8

const (
	// single-character punctuation
	KindLeftParen Kind = iota
	KindRightParen
	KindLeftBrace
	KindRightBrace
	KindComma
	KindDot
	KindMinus
	KindPlus
	KindSemicolon
	KindSlash
	KindStar

	// one or two character operators
	KindBang
	KindBangEqual
	KindEqual
	KindEqualEqual
	KindGreater
	KindGreaterEqual
	KindLess
	KindLessEqual

	// literals
	KindIdentifier
	KindString
	KindNumber
	KindTrue
	KindFalse
	KindNil

	// keywords
	KindAnd
	KindClass
	KindElse
	KindFun
	KindFor
	KindIf
	KindOr
	KindPrint
	KindReturn
	KindSuper
	KindThis
	KindVar
	KindWhile

	KindEOF
)

var kindNames = [...]string{
	KindLeftParen:    "LeftParen",
	KindRightParen:   "RightParen",
	KindLeftBrace:    "LeftBrace",
	KindRightBrace:   "RightBrace",
	KindComma:        "Comma",
	KindDot:          "Dot",
	KindMinus:        "Minus",
	KindPlus:         "Plus",
	KindSemicolon:    "Semicolon",
	KindSlash:        "Slash",
	KindStar:         "Star",
	KindBang:         "Bang",
	KindBangEqual:    "BangEqual",
	KindEqual:        "Equal",
	KindEqualEqual:   "EqualEqual",
	KindGreater:      "Greater",
	KindGreaterEqual: "GreaterEqual",
	KindLess:         "Less",
	KindLessEqual:    "LessEqual",
	KindIdentifier:   "Identifier",
	KindString:       "String",
	KindNumber:       "Number",
	KindTrue:         "True",
	KindFalse:        "False",
	KindNil:          "Nil",
	KindAnd:          "And",
	KindClass:        "Class",
	KindElse:         "Else",
	KindFun:          "Fun",
	KindFor:          "For",
	KindIf:           "If",
	KindOr:           "Or",
	KindPrint:        "Print",
	KindReturn:       "Return",
	KindSuper:        "Super",
	KindThis:         "This",
	KindVar:          "Var",
	KindWhile:        "While",
	KindEOF:          "Eof",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("unknown_kind_%d", int(k))
}

// Symbol returns the source spelling for fixed-text kinds, used in
// diagnostics ("expected ';'"). Kinds without fixed text return their name.
func (k Kind) Symbol() string {
	switch k {
	case KindLeftParen:
		return "("
	case KindRightParen:
		return ")"
	case KindLeftBrace:
		return "{"
	case KindRightBrace:
		return "}"
	case KindComma:
		return ","
	case KindDot:
		return "."
	case KindMinus:
		return "-"
	case KindPlus:
		return "+"
	case KindSemicolon:
		return ";"
	case KindSlash:
		return "/"
	case KindStar:
		return "*"
	case KindBang:
		return "!"
	case KindBangEqual:
		return "!="
	case KindEqual:
		return "="
	case KindEqualEqual:
		return "=="
	case KindGreater:
		return ">"
	case KindGreaterEqual:
		return ">="
	case KindLess:
		return "<"
	case KindLessEqual:
		return "<="
	case KindEOF:
		return "end of input"
	}
	if kw, ok := keywordText[k]; ok {
		return kw
	}
	return k.String()
}

var keywords = map[string]Kind{
	"and":    KindAnd,
	"class":  KindClass,
	"else":   KindElse,
	"false":  KindFalse,
	"for":    KindFor,
	"fun":    KindFun,
	"if":     KindIf,
	"nil":    KindNil,
	"or":     KindOr,
	"print":  KindPrint,
	"return": KindReturn,
	"super":  KindSuper,
	"this":   KindThis,
	"true":   KindTrue,
	"var":    KindVar,
	"while":  KindWhile,
}

var keywordText = func() map[Kind]string {
	out := make(map[Kind]string, len(keywords))
	for text, kind := range keywords {
		out[kind] = text
	}
	return out
}()

// LookupIdentifier classifies an identifier-shaped lexeme against the
// keyword set.
func LookupIdentifier(text string) Kind {
	if kind, ok := keywords[text]; ok {
		return kind
	}
	return KindIdentifier
}

// Token is an immutable lexeme. For strings, Lexeme holds the contents
// without the surrounding quotes; EOF tokens have an empty Lexeme.
type Token struct {
	Kind   Kind
	Lexeme string
	Line   uint
}

// NewToken builds a token value.
func NewToken(kind Kind, lexeme string, line uint) Token {
	return Token{Kind: kind, Lexeme: lexeme, Line: line}
}

// String implements fmt.Stringer.
func (t Token) String() string {
	return fmt.Sprintf("%s %q line %d", t.Kind, t.Lexeme, t.Line)
}

// GoString implements fmt.GoStringer.
func (t Token) GoString() string {
	return fmt.Sprintf("{Kind: %s, Lexeme: %q, Line: %d}", t.Kind, t.Lexeme, t.Line)
}

var _ fmt.Stringer = Token{}
var _ fmt.GoStringer = Token{}

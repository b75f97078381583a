package token

type TokenType int

const (
	// Special tokens
	ILLEGAL TokenType = iota
	EOF

	// Identifiers + literals
	IDENTIFIER
	INTEGER
	STRING

	// Keywords
	LET
	FN
	TRUE
	FALSE
	IF
	ELSE
	RETURN

	// Operators
	PLUS
	INCREMENT
	MINUS
	DECREMENT
	STAR
	SLASH
	QUESTION
	PERCENT
	EQUAL
	BANG
	EQUAL_EQUAL
	BANG_EQUAL
	LESS
	GREATER
	LESS_EQUAL
	GREATER_EQUAL

	// Separators
	COMMA
	SEMICOLON
	COLON

	// Brackets
	LEFT_PAREN
	RIGHT_PAREN
	LEFT_BRACKET
	RIGHT_BRACKET
	LEFT_BRACE
	RIGHT_BRACE
)

var tokenNames = map[TokenType]string{
	ILLEGAL:       "ILLEGAL",
	EOF:           "EOF",
	IDENTIFIER:    "IDENTIFIER",
	INTEGER:       "INTEGER",
	STRING:        "STRING",
	LET:           "LET",
	FN:            "FN",
	TRUE:          "TRUE",
	FALSE:         "FALSE",
	IF:            "IF",
	ELSE:          "ELSE",
	RETURN:        "RETURN",
	PLUS:          "PLUS",
	INCREMENT:     "INCREMENT",
	MINUS:         "MINUS",
	DECREMENT:     "DECREMENT",
	STAR:          "STAR",
	SLASH:         "SLASH",
	QUESTION:      "QUESTION",
	PERCENT:       "PERCENT",
	EQUAL:         "EQUAL",
	BANG:          "BANG",
	EQUAL_EQUAL:   "EQUAL_EQUAL",
	BANG_EQUAL:    "BANG_EQUAL",
	LESS:          "LESS",
	GREATER:       "GREATER",
	LESS_EQUAL:    "LESS_EQUAL",
	GREATER_EQUAL: "GREATER_EQUAL",
	COMMA:         "COMMA",
	SEMICOLON:     "SEMICOLON",
	COLON:         "COLON",
	LEFT_PAREN:    "LEFT_PAREN",
	RIGHT_PAREN:   "RIGHT_PAREN",
	LEFT_BRACKET:  "LEFT_BRACKET",
	RIGHT_BRACKET: "RIGHT_BRACKET",
	LEFT_BRACE:    "LEFT_BRACE",
	RIGHT_BRACE:   "RIGHT_BRACE",
}

func (tt TokenType) String() string {
	if name, ok := tokenNames[tt]; ok {
		return name
	}
	return "UNKNOWN"
}

// Token is a classified lexical unit: its type and the literal source text it
// was scanned from. Tokens are plain values and are never mutated after the
// lexer produces them.
type Token struct {
	Type    TokenType
	Literal string
}

func New(tt TokenType, literal string) Token {
	return Token{Type: tt, Literal: literal}
}

var KEYWORDS = map[string]TokenType{
	"let":    LET,
	"fn":     FN,
	"true":   TRUE,
	"false":  FALSE,
	"if":     IF,
	"else":   ELSE,
	"return": RETURN,
}

// LookupIdentifier resolves scanned identifier text against the keyword table.
func LookupIdentifier(text string) TokenType {
	if tt, ok := KEYWORDS[text]; ok {
		return tt
	}
	return IDENTIFIER
}

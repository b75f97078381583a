package lsp

import (
	"sable/internal/token"
)

// Semantic token types advertised in the server legend; the indices below
// index into this slice.
var SemanticTokenTypes = []string{
	"keyword",
	"variable",
	"number",
	"string",
	"operator",
}

var SemanticTokenModifiers = []string{
	"declaration",
	"readonly",
}

const (
	semanticKeyword uint32 = iota
	semanticVariable
	semanticNumber
	semanticString
	semanticOperator
)

// SemanticToken is one entry before LSP delta encoding.
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      uint32
	TokenModifiers uint32
}

var semanticTypeFor = map[token.TokenType]uint32{
	token.LET:    semanticKeyword,
	token.FN:     semanticKeyword,
	token.TRUE:   semanticKeyword,
	token.FALSE:  semanticKeyword,
	token.IF:     semanticKeyword,
	token.ELSE:   semanticKeyword,
	token.RETURN: semanticKeyword,

	token.IDENTIFIER: semanticVariable,
	token.INTEGER:    semanticNumber,
	token.STRING:     semanticString,

	token.PLUS:          semanticOperator,
	token.INCREMENT:     semanticOperator,
	token.MINUS:         semanticOperator,
	token.DECREMENT:     semanticOperator,
	token.STAR:          semanticOperator,
	token.SLASH:         semanticOperator,
	token.QUESTION:      semanticOperator,
	token.PERCENT:       semanticOperator,
	token.EQUAL:         semanticOperator,
	token.BANG:          semanticOperator,
	token.EQUAL_EQUAL:   semanticOperator,
	token.BANG_EQUAL:    semanticOperator,
	token.LESS:          semanticOperator,
	token.GREATER:       semanticOperator,
	token.LESS_EQUAL:    semanticOperator,
	token.GREATER_EQUAL: semanticOperator,
}

// collectSemanticTokens classifies the document's token stream for semantic
// highlighting. Delimiters and ILLEGAL tokens are left unclassified.
func collectSemanticTokens(source string) []SemanticToken {
	var tokens []SemanticToken

	for _, span := range scanTokens(source) {
		semanticType, ok := semanticTypeFor[span.Tok.Type]
		if !ok {
			continue
		}
		tokens = append(tokens, SemanticToken{
			Line:      span.Line,
			StartChar: span.Character,
			Length:    span.Length,
			TokenType: semanticType,
		})
	}

	return tokens
}

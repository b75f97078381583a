package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

var SableLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Identifiers and keywords. Continuation deliberately excludes
		// digits to match the hand-written lexer.
		{Name: "Ident", Pattern: `[a-zA-Z_]+`, Action: nil},

		// Integer literals
		{Name: "Integer", Pattern: `[0-9]+`, Action: nil},

		// String literals, quotes kept in the token
		{Name: "String", Pattern: `"[^"\n]*"`, Action: nil},

		// Operators (two-character forms first)
		{Name: "Operator", Pattern: `(\+\+|--|==|!=|<=|>=|[-+*/%?=!<>])`, Action: nil},

		// Punctuation
		{Name: "Punct", Pattern: `[,;:()\[\]{}]`, Action: nil},

		// Whitespace
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`, Action: nil},
	},
})

package lsp

import (
	"fmt"
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"sable/internal/lexer"
	"sable/internal/parser"
	"sable/internal/token"
)

// tokenSpan pairs a lexed token with a resolved document position. Tokens do
// not carry positions themselves, so the resolver walks the source in step
// with the token stream and finds each literal from a moving cursor.
type tokenSpan struct {
	Tok       token.Token
	Line      uint32 // 0-based
	Character uint32 // 0-based
	Length    uint32
}

func scanTokens(source string) []tokenSpan {
	var spans []tokenSpan

	l := lexer.New(source)
	cursor := 0
	for tok, ok := l.Next(); ok; tok, ok = l.Next() {
		if tok.Type == token.EOF {
			break
		}
		idx := strings.Index(source[cursor:], tok.Literal)
		if idx < 0 {
			continue
		}
		offset := cursor + idx
		line, character := offsetToPosition(source, offset)
		spans = append(spans, tokenSpan{
			Tok:       tok,
			Line:      line,
			Character: character,
			Length:    uint32(len([]rune(tok.Literal))),
		})
		cursor = offset + len(tok.Literal)
	}

	return spans
}

func offsetToPosition(source string, offset int) (uint32, uint32) {
	var line, character uint32
	for _, c := range source[:offset] {
		if c == '\n' {
			line++
			character = 0
		} else {
			character++
		}
	}
	return line, character
}

// CollectDiagnostics reports every ILLEGAL token the lexer produced, plus the
// first parse error when the hand-written parser rejects the document. The
// lexical pass always completes, so all lexical problems surface at once even
// though parsing is fail-fast.
func CollectDiagnostics(source string) []protocol.Diagnostic {
	var diagnostics []protocol.Diagnostic

	spans := scanTokens(source)
	for _, span := range spans {
		if span.Tok.Type != token.ILLEGAL {
			continue
		}
		message := fmt.Sprintf("unrecognized character %q", span.Tok.Literal)
		if strings.HasPrefix(span.Tok.Literal, `"`) {
			message = "unterminated string literal"
		}
		diagnostics = append(diagnostics, makeDiagnostic(span, "sable-lexer", message))
	}

	p := parser.New(lexer.New(source))
	if _, err := p.ParseProgram(); err != nil {
		if parseErr, ok := err.(*parser.ParseError); ok {
			span := findErrorSpan(spans, parseErr.Token)
			diagnostics = append(diagnostics, makeDiagnostic(span, "sable-parser", parseErr.Message))
		}
	}

	return diagnostics
}

// findErrorSpan picks the first span matching the parse error's token. The
// match is by literal and type, so repeated literals can make the span point
// at an earlier occurrence; a rough location is still better than none.
func findErrorSpan(spans []tokenSpan, tok token.Token) tokenSpan {
	for _, span := range spans {
		if span.Tok.Type == tok.Type && span.Tok.Literal == tok.Literal {
			return span
		}
	}
	return tokenSpan{Length: 1}
}

func makeDiagnostic(span tokenSpan, source, message string) protocol.Diagnostic {
	length := span.Length
	if length == 0 {
		length = 1
	}
	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: span.Line, Character: span.Character},
			End:   protocol.Position{Line: span.Line, Character: span.Character + length},
		},
		Severity: ptrSeverity(protocol.DiagnosticSeverityError),
		Source:   ptrString(source),
		Message:  message,
	}
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}

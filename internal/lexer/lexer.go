package lexer

import (
	"unicode"

	"sable/internal/token"
)

// Lexer is a single-pass, pull-based scanner over an in-memory source string.
// It is not restartable: every call to Next advances the cursor and there is
// no rewinding. A NUL sentinel stands in for end of input, so the scan ends
// with exactly one EOF token before the sequence is exhausted.
type Lexer struct {
	input        []rune
	position     int
	readPosition int
	ch           rune
}

func New(input string) *Lexer {
	l := &Lexer{input: []rune(input)}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
}

func (l *Lexer) peek() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

// Next produces the next token, or ok=false once the scan is exhausted. The
// EOF token itself is produced once, while the cursor sits on the sentinel;
// the call after that reports exhaustion.
func (l *Lexer) Next() (token.Token, bool) {
	for unicode.IsSpace(l.ch) {
		l.readChar()
	}

	if l.readPosition > len(l.input)+1 {
		return token.Token{}, false
	}

	var tok token.Token
	switch l.ch {
	case '+':
		if l.peek() == '+' {
			l.readChar()
			tok = token.New(token.INCREMENT, "++")
		} else {
			tok = token.New(token.PLUS, string(l.ch))
		}
	case '-':
		if l.peek() == '-' {
			l.readChar()
			tok = token.New(token.DECREMENT, "--")
		} else {
			tok = token.New(token.MINUS, string(l.ch))
		}
	case '*':
		tok = token.New(token.STAR, string(l.ch))
	case '/':
		tok = token.New(token.SLASH, string(l.ch))
	case '?':
		tok = token.New(token.QUESTION, string(l.ch))
	case '%':
		tok = token.New(token.PERCENT, string(l.ch))
	case '=':
		if l.peek() == '=' {
			l.readChar()
			tok = token.New(token.EQUAL_EQUAL, "==")
		} else {
			tok = token.New(token.EQUAL, string(l.ch))
		}
	case '!':
		if l.peek() == '=' {
			l.readChar()
			tok = token.New(token.BANG_EQUAL, "!=")
		} else {
			tok = token.New(token.BANG, string(l.ch))
		}
	case '<':
		if l.peek() == '=' {
			l.readChar()
			tok = token.New(token.LESS_EQUAL, "<=")
		} else {
			tok = token.New(token.LESS, string(l.ch))
		}
	case '>':
		if l.peek() == '=' {
			l.readChar()
			tok = token.New(token.GREATER_EQUAL, ">=")
		} else {
			tok = token.New(token.GREATER, string(l.ch))
		}
	case ',':
		tok = token.New(token.COMMA, string(l.ch))
	case ';':
		tok = token.New(token.SEMICOLON, string(l.ch))
	case ':':
		tok = token.New(token.COLON, string(l.ch))
	case '(':
		tok = token.New(token.LEFT_PAREN, string(l.ch))
	case ')':
		tok = token.New(token.RIGHT_PAREN, string(l.ch))
	case '[':
		tok = token.New(token.LEFT_BRACKET, string(l.ch))
	case ']':
		tok = token.New(token.RIGHT_BRACKET, string(l.ch))
	case '{':
		tok = token.New(token.LEFT_BRACE, string(l.ch))
	case '}':
		tok = token.New(token.RIGHT_BRACE, string(l.ch))
	case 0:
		tok = token.New(token.EOF, string(l.ch))
	case '"':
		return l.scanString(), true
	default:
		if isAlpha(l.ch) {
			return l.scanIdentifier(), true
		}
		if isDigit(l.ch) {
			return l.scanNumber(), true
		}
		tok = token.New(token.ILLEGAL, string(l.ch))
	}

	l.readChar()
	return tok, true
}

// scanIdentifier consumes an identifier or keyword. Continuation re-checks
// alphabetic-or-underscore only, so a digit ends the identifier even though
// one may not start it either; "abc123" scans as IDENTIFIER("abc") followed
// by INTEGER("123").
func (l *Lexer) scanIdentifier() token.Token {
	var text []rune
	for isAlpha(l.ch) {
		text = append(text, l.ch)
		l.readChar()
	}
	return token.New(token.LookupIdentifier(string(text)), string(text))
}

func (l *Lexer) scanNumber() token.Token {
	var digits []rune
	for isDigit(l.ch) {
		digits = append(digits, l.ch)
		l.readChar()
	}
	return token.New(token.INTEGER, string(digits))
}

// scanString keeps both quotes in the literal verbatim; no escape handling.
// Hitting end of input or a newline before the closing quote yields an
// ILLEGAL token carrying the partial text, and scanning continues after it.
func (l *Lexer) scanString() token.Token {
	text := []rune{l.ch}
	l.readChar()
	for l.ch != '"' {
		if l.ch == 0 || l.ch == '\n' {
			return token.New(token.ILLEGAL, string(text))
		}
		text = append(text, l.ch)
		l.readChar()
	}
	text = append(text, l.ch)
	l.readChar()
	return token.New(token.STRING, string(text))
}

func isAlpha(c rune) bool {
	return unicode.IsLetter(c) || c == '_'
}

func isDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

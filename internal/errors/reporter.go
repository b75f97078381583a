package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"sable/internal/parser"
	"sable/internal/token"
)

// Reporter renders lexical and syntactic failures in a caret-underline style.
// Tokens deliberately carry no source positions, so the reporter locates the
// offending literal in the source text to place the caret; when the literal
// cannot be found the message is printed without a source excerpt.
type Reporter struct {
	path   string
	source string
	lines  []string
}

func NewReporter(path, source string) *Reporter {
	return &Reporter{
		path:   path,
		source: source,
		lines:  strings.Split(source, "\n"),
	}
}

// FormatParseError renders a parser failure, pointing at the token the
// parser stopped on.
func (r *Reporter) FormatParseError(err *parser.ParseError) string {
	return r.format(err.Message, err.Token.Literal)
}

// FormatIllegalToken renders a lexical failure carried by an ILLEGAL token.
func (r *Reporter) FormatIllegalToken(tok token.Token) string {
	message := fmt.Sprintf("unrecognized character %q", tok.Literal)
	if strings.HasPrefix(tok.Literal, `"`) {
		message = fmt.Sprintf("unterminated string literal %s", tok.Literal)
	}
	return r.format(message, tok.Literal)
}

func (r *Reporter) format(message, needle string) string {
	red := color.New(color.FgRed).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()

	line, col := r.locate(needle)
	if line == 0 {
		return fmt.Sprintf("%s: %s\n", red("error"), message)
	}

	lineContent := r.lines[line-1]
	marker := strings.Repeat(" ", col-1) + strings.Repeat("^", max(1, len([]rune(needle))))

	lineNumberWidth := max(3, len(fmt.Sprintf("%d", line)))
	indent := strings.Repeat(" ", lineNumberWidth)

	return fmt.Sprintf(
		"%s: %s\n%s┌─ %s:%d:%d\n%s│\n%*d│%s\n%s│%s\n\n",
		red("error"),
		message,
		indent,
		r.path, line, col,
		indent,
		lineNumberWidth, line, lineContent,
		indent,
		bold(marker),
	)
}

// locate finds the first occurrence of the literal and converts it to a
// 1-based line and column. Sentinel literals (the EOF NUL, empty text) fall
// back to the last line so end-of-input errors still point somewhere useful.
func (r *Reporter) locate(needle string) (int, int) {
	if needle == "" || needle == "\x00" {
		last := len(r.lines)
		if last == 0 {
			return 0, 0
		}
		return last, len(r.lines[last-1]) + 1
	}

	offset := strings.Index(r.source, needle)
	if offset < 0 {
		return 0, 0
	}

	line, col := 1, 1
	for _, c := range r.source[:offset] {
		if c == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

package grammar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sable/grammar"
	"sable/internal/lexer"
	"sable/internal/parser"
)

func TestParseDemoFile(t *testing.T) {
	program, err := grammar.ParseFile("../examples/demo.sbl")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	assert.NotNil(t, program)
	assert.Len(t, program.Statements, 8)

	assert.NotNil(t, program.Statements[0].Let)
	assert.Equal(t, "five", program.Statements[0].Let.Name)
	assert.NotNil(t, program.Statements[5].Expr)
	assert.NotNil(t, program.Statements[7].Return)

	assert.Equal(t, "let five = 5;", program.Statements[0].String())
	assert.Equal(t, "let total = (five + (ten * 2));", program.Statements[2].String())
	assert.Equal(t, "(counter++);", program.Statements[5].String())
	assert.Equal(t, "(--counter);", program.Statements[6].String())
	assert.Equal(t, "return (((total % 3) <= ten) != false);", program.Statements[7].String())
}

// The declarative grammar and the hand-written parser accept the same
// language and must render identical canonical text.
func TestGrammarMatchesHandWrittenParser(t *testing.T) {
	inputs := []string{
		"let x = 5;",
		"let total = a + b * c;",
		"return x % 2 == 0;",
		"a - b - c",
		"a + b / c;",
		"!-a",
		"!true;",
		"a++ + b + c--",
		"a + b++ * c + d / --e - f",
		`"te st";`,
		"5 > 4 == 3 < 4",
		"3 + 4; -5 * 5",
	}

	for _, input := range inputs {
		declarative, err := grammar.ParseSource("test.sbl", input)
		if err != nil {
			t.Fatalf("grammar failed on %q: %v", input, err)
		}

		p := parser.New(lexer.New(input))
		handWritten, err := p.ParseProgram()
		if err != nil {
			t.Fatalf("parser failed on %q: %v", input, err)
		}

		assert.Equal(t, handWritten.String(), declarative.String(), "input %q", input)
	}
}

func TestGrammarRejectsMalformedLet(t *testing.T) {
	_, err := grammar.ParseSource("test.sbl", "let = 5;")
	assert.Error(t, err)
}

// Both front-ends reject a unary prefix applied to a string literal.
func TestGrammarRejectsPrefixOnString(t *testing.T) {
	for _, input := range []string{`!"x"`, `-"abc";`, `++"x";`} {
		_, err := grammar.ParseSource("test.sbl", input)
		assert.Error(t, err, "input %q", input)

		p := parser.New(lexer.New(input))
		_, err = p.ParseProgram()
		assert.Error(t, err, "input %q", input)
	}
}

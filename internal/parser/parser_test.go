package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sable/internal/ast"
	"sable/internal/lexer"
	"sable/internal/token"
)

func parseProgram(t *testing.T, input string) *ast.Program {
	t.Helper()

	p := New(lexer.New(input))
	program, err := p.ParseProgram()
	if err != nil {
		t.Fatalf("ParseProgram() returned an error: %v", err)
	}
	return program
}

func TestLetStatements(t *testing.T) {
	input := `
let x = 5;
let y = 10;
let foobar = 838383;
`

	program := parseProgram(t, input)
	assert.Len(t, program.Statements, 3)

	assert.Equal(t, "let x = 5;", program.Statements[0].String())
	assert.Equal(t, "let y = 10;", program.Statements[1].String())
	assert.Equal(t, "let foobar = 838383;", program.Statements[2].String())

	for _, stmt := range program.Statements {
		_, ok := stmt.(*ast.LetStatement)
		assert.True(t, ok, "expected *ast.LetStatement, got %T", stmt)
	}
}

func TestReturnStatements(t *testing.T) {
	input := `
return 5;
return 993322;
`

	program := parseProgram(t, input)
	assert.Len(t, program.Statements, 2)

	assert.Equal(t, "return 5;", program.Statements[0].String())
	assert.Equal(t, "return 993322;", program.Statements[1].String())

	for _, stmt := range program.Statements {
		_, ok := stmt.(*ast.ReturnStatement)
		assert.True(t, ok, "expected *ast.ReturnStatement, got %T", stmt)
	}
}

func TestIdentifierExpression(t *testing.T) {
	program := parseProgram(t, "foobar;")
	assert.Len(t, program.Statements, 1)

	stmt, ok := program.Statements[0].(*ast.ExpressionStatement)
	assert.True(t, ok, "expected *ast.ExpressionStatement, got %T", program.Statements[0])

	ident, ok := stmt.Expression.(*ast.Identifier)
	assert.True(t, ok, "expected *ast.Identifier, got %T", stmt.Expression)
	assert.Equal(t, "foobar", ident.Value)
	assert.Equal(t, "foobar;", stmt.String())
}

func TestLiteralExpressions(t *testing.T) {
	program := parseProgram(t, `5; "test"; true; false;`)
	assert.Len(t, program.Statements, 4)

	intStmt := program.Statements[0].(*ast.ExpressionStatement)
	integer, ok := intStmt.Expression.(*ast.IntegerLiteral)
	assert.True(t, ok, "expected *ast.IntegerLiteral, got %T", intStmt.Expression)
	assert.Equal(t, int64(5), integer.Value)
	assert.Equal(t, "5;", intStmt.String())

	strStmt := program.Statements[1].(*ast.ExpressionStatement)
	str, ok := strStmt.Expression.(*ast.StringLiteral)
	assert.True(t, ok, "expected *ast.StringLiteral, got %T", strStmt.Expression)
	// Quotes are kept verbatim; the literal is never unescaped.
	assert.Equal(t, `"test"`, str.Token.Literal)
	assert.Equal(t, `"test";`, strStmt.String())

	assert.Equal(t, "true;", program.Statements[2].String())
	assert.Equal(t, "false;", program.Statements[3].String())
}

func TestPrefixExpressions(t *testing.T) {
	tests := []struct {
		input    string
		operator token.TokenType
		rendered string
	}{
		{"!5;", token.BANG, "(!5);"},
		{"-15;", token.MINUS, "(-15);"},
		{"++5;", token.INCREMENT, "(++5);"},
		{"--5;", token.DECREMENT, "(--5);"},
		{"!test;", token.BANG, "(!test);"},
	}

	for _, tt := range tests {
		program := parseProgram(t, tt.input)
		assert.Len(t, program.Statements, 1, "input %q", tt.input)

		stmt := program.Statements[0].(*ast.ExpressionStatement)
		prefix, ok := stmt.Expression.(*ast.PrefixExpression)
		assert.True(t, ok, "input %q: expected *ast.PrefixExpression, got %T", tt.input, stmt.Expression)
		assert.Equal(t, tt.operator, prefix.Operator.Type, "input %q", tt.input)
		assert.Equal(t, tt.rendered, stmt.String(), "input %q", tt.input)
	}
}

func TestInfixExpressions(t *testing.T) {
	tests := []struct {
		input    string
		operator token.TokenType
		rendered string
	}{
		{"5 + 5;", token.PLUS, "(5 + 5);"},
		{"5 - 5;", token.MINUS, "(5 - 5);"},
		{"5 * 5;", token.STAR, "(5 * 5);"},
		{"5 / 5;", token.SLASH, "(5 / 5);"},
		{"5 % 5;", token.PERCENT, "(5 % 5);"},
		{"5 == 5;", token.EQUAL_EQUAL, "(5 == 5);"},
		{"5 != 5;", token.BANG_EQUAL, "(5 != 5);"},
		{"5 < 5;", token.LESS, "(5 < 5);"},
		{"5 > 5;", token.GREATER, "(5 > 5);"},
		{"5 <= 5;", token.LESS_EQUAL, "(5 <= 5);"},
		{"5 >= 5;", token.GREATER_EQUAL, "(5 >= 5);"},
	}

	for _, tt := range tests {
		program := parseProgram(t, tt.input)
		assert.Len(t, program.Statements, 1, "input %q", tt.input)

		stmt := program.Statements[0].(*ast.ExpressionStatement)
		infix, ok := stmt.Expression.(*ast.InfixExpression)
		assert.True(t, ok, "input %q: expected *ast.InfixExpression, got %T", tt.input, stmt.Expression)
		assert.Equal(t, tt.operator, infix.Operator.Type, "input %q", tt.input)
		assert.Equal(t, tt.rendered, stmt.String(), "input %q", tt.input)
	}
}

func TestOperatorPrecedenceParsing(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"-a * b", "((-a) * b);"},
		{"!-a", "(!(-a));"},
		{"a + b + c", "((a + b) + c);"},
		{"a + b - c", "((a + b) - c);"},
		{"a - b - c", "((a - b) - c);"},
		{"a * b * c", "((a * b) * c);"},
		{"a * b / c", "((a * b) / c);"},
		{"a + b / c", "(a + (b / c));"},
		{"a + b * c", "(a + (b * c));"},
		{"a + b * c + d / e - f", "(((a + (b * c)) + (d / e)) - f);"},
		{"3 + 4; -5 * 5", "(3 + 4);((-5) * 5);"},
		{"5 > 4 == 3 < 4", "((5 > 4) == (3 < 4));"},
		{"5 < 4 != 3 > 4", "((5 < 4) != (3 > 4));"},
		{"3 + 4 * 5 == 3 * 1 + 4 * 5", "((3 + (4 * 5)) == ((3 * 1) + (4 * 5)));"},
		{"5 + 5 * 2;", "(5 + (5 * 2));"},
	}

	for _, tt := range tests {
		program := parseProgram(t, tt.input)
		assert.Equal(t, tt.expected, program.String(), "input %q", tt.input)
	}
}

func TestPostfixParsing(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"a++", "(a++);"},
		{"a++;", "(a++);"},
		{"!a--", "(!(a--));"},
		{"a++ + b", "((a++) + b);"},
		{"a++ + b + c--", "(((a++) + b) + (c--));"},
		{"a + b++ * c + d / --e - f", "(((a + ((b++) * c)) + (d / (--e))) - f);"},
	}

	for _, tt := range tests {
		program := parseProgram(t, tt.input)
		assert.Equal(t, tt.expected, program.String(), "input %q", tt.input)
	}
}

func TestMultipleExpressionStatementsWithoutSemicolons(t *testing.T) {
	program := parseProgram(t, "a b c")
	assert.Len(t, program.Statements, 3)
	assert.Equal(t, "a;b;c;", program.String())
}

func TestBareOperatorIsAnError(t *testing.T) {
	p := New(lexer.New("+"))
	program, err := p.ParseProgram()

	assert.Nil(t, program, "no partial AST on failure")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no expression can start with PLUS")
}

func TestPrefixOnStringIsAnError(t *testing.T) {
	for _, input := range []string{`!"x"`, `-"abc";`, `++"x";`} {
		p := New(lexer.New(input))
		program, err := p.ParseProgram()

		assert.Nil(t, program, "input %q", input)
		assert.Error(t, err, "input %q", input)
		assert.Contains(t, err.Error(), "string literal", "input %q", input)
	}
}

func TestExpectPeekFailure(t *testing.T) {
	p := New(lexer.New("let x 5;"))
	program, err := p.ParseProgram()

	assert.Nil(t, program)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "expected next token to be EQUAL")

	parseErr, ok := err.(*ParseError)
	assert.True(t, ok, "expected *ParseError, got %T", err)
	assert.Equal(t, token.INTEGER, parseErr.Token.Type)
}

func TestFirstErrorAbortsParsing(t *testing.T) {
	// The second statement is valid but is never reached.
	p := New(lexer.New("let = 5; let y = 10;"))
	program, err := p.ParseProgram()

	assert.Nil(t, program)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "expected next token to be IDENTIFIER")
}

func TestRenderingIsDeterministic(t *testing.T) {
	input := "let x = a + b * c; x++;"

	program := parseProgram(t, input)
	assert.Equal(t, program.String(), program.String())

	again := parseProgram(t, input)
	assert.Equal(t, program.String(), again.String())
}

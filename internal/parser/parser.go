package parser

import (
	"fmt"

	"sable/internal/ast"
	"sable/internal/lexer"
	"sable/internal/token"
)

// ParseError is a syntactic failure: a human-readable message plus the token
// the parser was looking at when it gave up. There is no error taxonomy and
// no resynchronization; the first ParseError aborts the whole parse.
type ParseError struct {
	Message string
	Token   token.Token
}

func (e *ParseError) Error() string {
	return e.Message
}

// Parser consumes tokens from a Lexer one at a time with a single token of
// lookahead. Statement dispatch is strictly LL(1); expression parsing layers
// precedence climbing on top of the same lookahead.
type Parser struct {
	l *lexer.Lexer

	curToken  token.Token
	curOk     bool
	peekToken token.Token
	peekOk    bool
}

func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l, curOk: true, peekOk: true}
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.curToken, p.curOk = p.peekToken, p.peekOk
	p.peekToken, p.peekOk = p.l.Next()
}

func (p *Parser) curTokenIs(tt token.TokenType) bool {
	return p.curOk && p.curToken.Type == tt
}

func (p *Parser) peekTokenIs(tt token.TokenType) bool {
	return p.peekOk && p.peekToken.Type == tt
}

func (p *Parser) expectPeek(tt token.TokenType) error {
	if p.peekTokenIs(tt) {
		p.nextToken()
		return nil
	}
	return p.errorAtPeek(fmt.Sprintf("expected next token to be %s, got %s (%q) instead",
		tt, p.peekToken.Type, p.peekToken.Literal))
}

func (p *Parser) errorAtPeek(message string) *ParseError {
	return &ParseError{Message: message, Token: p.peekToken}
}

func (p *Parser) errorAtCurrent(message string) *ParseError {
	return &ParseError{Message: message, Token: p.curToken}
}

// ParseProgram parses statements until EOF or stream exhaustion and returns
// the accumulated Program, or the first error encountered. No partial AST is
// returned on failure.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	program := &ast.Program{}

	for p.curOk && !p.curTokenIs(token.EOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		program.Statements = append(program.Statements, stmt)
		p.nextToken()
	}

	return program, nil
}

func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.curToken.Type {
	case token.LET:
		return p.parseLetStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseLetStatement() (ast.Statement, error) {
	letToken := p.curToken

	if err := p.expectPeek(token.IDENTIFIER); err != nil {
		return nil, err
	}
	name := &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

	if err := p.expectPeek(token.EQUAL); err != nil {
		return nil, err
	}
	p.nextToken()

	value, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}

	// The trailing semicolon is optional; consume it when present.
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}

	return &ast.LetStatement{Token: letToken, Name: name, Value: value}, nil
}

func (p *Parser) parseReturnStatement() (ast.Statement, error) {
	returnToken := p.curToken
	p.nextToken()

	value, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}

	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}

	return &ast.ReturnStatement{Token: returnToken, Value: value}, nil
}

func (p *Parser) parseExpressionStatement() (ast.Statement, error) {
	firstToken := p.curToken

	expr, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}

	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}

	return &ast.ExpressionStatement{Token: firstToken, Expression: expr}, nil
}

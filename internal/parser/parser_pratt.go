package parser

import (
	"fmt"
	"strconv"

	"sable/internal/ast"
	"sable/internal/token"
)

// Precedence levels, low to high. CALL and INDEX are reserved for future
// function-call and subscript productions; nothing consumes them yet, so
// LEFT_PAREN and LEFT_BRACKET never act as expression operators.
const (
	LOWEST int = iota
	TERNARY     // ?
	EQUALS      // == or !=
	LESSGREATER // < > <= >=
	SUM         // + -
	PRODUCT     // * / %
	PREFIX      // -x or !x
	CALL        // f(x)
	INDEX       // a[i]
)

var precedences = map[token.TokenType]int{
	token.QUESTION:      TERNARY,
	token.EQUAL_EQUAL:   EQUALS,
	token.BANG_EQUAL:    EQUALS,
	token.LESS:          LESSGREATER,
	token.GREATER:       LESSGREATER,
	token.LESS_EQUAL:    LESSGREATER,
	token.GREATER_EQUAL: LESSGREATER,
	token.PLUS:          SUM,
	token.MINUS:         SUM,
	token.STAR:          PRODUCT,
	token.SLASH:         PRODUCT,
	token.PERCENT:       PRODUCT,
	token.LEFT_PAREN:    CALL,
	token.LEFT_BRACKET:  INDEX,
}

func precedenceFor(tt token.TokenType) int {
	if prec, ok := precedences[tt]; ok {
		return prec
	}
	return LOWEST
}

func isInfixOp(tt token.TokenType) bool {
	switch tt {
	case token.PLUS, token.MINUS, token.STAR, token.SLASH, token.PERCENT,
		token.EQUAL_EQUAL, token.BANG_EQUAL,
		token.LESS, token.GREATER, token.LESS_EQUAL, token.GREATER_EQUAL:
		return true
	}
	return false
}

func isPostfixOp(tt token.TokenType) bool {
	return tt == token.INCREMENT || tt == token.DECREMENT
}

// parseExpression resolves a primary or prefix production for the current
// token, then climbs: while the lookahead is a recognized binary operator
// whose precedence strictly exceeds the caller's floor, it folds an infix
// node. Strictly-greater comparison makes equal-precedence chains group left.
func (p *Parser) parseExpression(precedence int) (ast.Expression, error) {
	current := p.curToken

	var left ast.Expression
	switch current.Type {
	case token.IDENTIFIER:
		left = &ast.Identifier{Token: current, Value: current.Literal}
		if isPostfixOp(p.peekToken.Type) {
			p.nextToken()
			left = p.parsePostfixExpression(left)
		}
	case token.INTEGER:
		value, err := strconv.ParseInt(current.Literal, 10, 64)
		if err != nil {
			return nil, p.errorAtCurrent(fmt.Sprintf("could not parse %q as an integer", current.Literal))
		}
		left = &ast.IntegerLiteral{Token: current, Value: value}
		if isPostfixOp(p.peekToken.Type) {
			p.nextToken()
			left = p.parsePostfixExpression(left)
		}
	case token.STRING:
		left = &ast.StringLiteral{Token: current}
	case token.TRUE, token.FALSE:
		left = &ast.BooleanLiteral{Token: current}
	case token.BANG, token.MINUS, token.INCREMENT, token.DECREMENT:
		prefix, err := p.parsePrefixExpression()
		if err != nil {
			return nil, err
		}
		left = prefix
		// A prefixed term can still take a postfix operator, except behind
		// logical not.
		if current.Type != token.BANG && isPostfixOp(p.peekToken.Type) {
			p.nextToken()
			left = p.parsePostfixExpression(left)
		}
	default:
		return nil, p.errorAtCurrent(fmt.Sprintf("no expression can start with %s (%q)",
			current.Type, current.Literal))
	}

	for !p.peekTokenIs(token.SEMICOLON) && precedence < p.peekPrecedence() {
		if !isInfixOp(p.peekToken.Type) {
			break
		}
		p.nextToken()
		infix, err := p.parseInfixExpression(left)
		if err != nil {
			return nil, err
		}
		left = infix
	}

	return left, nil
}

func (p *Parser) parsePrefixExpression() (ast.Expression, error) {
	// Strings cannot be operands of unary prefix operators.
	if p.peekTokenIs(token.STRING) {
		return nil, p.errorAtPeek(fmt.Sprintf("prefix operator %q cannot be applied to a string literal",
			p.curToken.Literal))
	}

	operator := p.curToken
	p.nextToken()

	right, err := p.parseExpression(PREFIX)
	if err != nil {
		return nil, err
	}

	return &ast.PrefixExpression{Operator: operator, Right: right}, nil
}

func (p *Parser) parseInfixExpression(left ast.Expression) (ast.Expression, error) {
	operator := p.curToken
	precedence := p.curPrecedence()
	p.nextToken()

	right, err := p.parseExpression(precedence)
	if err != nil {
		return nil, err
	}

	return &ast.InfixExpression{Left: left, Operator: operator, Right: right}, nil
}

func (p *Parser) parsePostfixExpression(left ast.Expression) ast.Expression {
	return &ast.PostfixExpression{Left: left, Operator: p.curToken}
}

func (p *Parser) peekPrecedence() int {
	if !p.peekOk {
		return LOWEST
	}
	return precedenceFor(p.peekToken.Type)
}

func (p *Parser) curPrecedence() int {
	return precedenceFor(p.curToken.Type)
}

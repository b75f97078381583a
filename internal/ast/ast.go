package ast

import "sable/internal/token"

// Node is anything that can render itself in the canonical textual form used
// for structural verification. The rendering is deterministic: the same tree
// always produces the same text.
type Node interface {
	String() string
}

// Statement nodes form the ordered body of a Program.
type Statement interface {
	Node
	isStmt()
}

// Expression nodes are pure data produced by the parser and never mutated
// afterwards. Every node exclusively owns its children; the tree has no
// sharing and no cycles.
type Expression interface {
	Node
	isExpr()
}

// Program is the top-level ordered collection of parsed statements. Order is
// source order and rendering concatenates the statements in that order.
type Program struct {
	Statements []Statement
}

// LetStatement represents a binding.
// Example: "let x = 5;"
type LetStatement struct {
	Token token.Token // the LET token
	Name  *Identifier
	Value Expression
}

// ReturnStatement represents an early return.
// Example: "return x + 1;"
type ReturnStatement struct {
	Token token.Token // the RETURN token
	Value Expression
}

// ExpressionStatement is a bare expression used in statement position.
// Example: "a + b;"
type ExpressionStatement struct {
	Token      token.Token // the first token of the expression
	Expression Expression
}

// Identifier represents a name in expression position.
type Identifier struct {
	Token token.Token
	Value string
}

// IntegerLiteral carries both the raw digit text and its converted value.
type IntegerLiteral struct {
	Token token.Token
	Value int64
}

// StringLiteral keeps the raw token text, quotes included verbatim; the
// literal is never unescaped.
type StringLiteral struct {
	Token token.Token
}

// BooleanLiteral keeps the raw "true"/"false" token text.
type BooleanLiteral struct {
	Token token.Token
}

// PrefixExpression represents a unary operator before its operand.
// Example: "!ok", "-x", "++n"
type PrefixExpression struct {
	Operator token.Token
	Right    Expression
}

// InfixExpression represents a binary operator between two operands.
// Example: "a + b", "x <= y"
type InfixExpression struct {
	Left     Expression
	Operator token.Token
	Right    Expression
}

// PostfixExpression represents a unary operator after its operand.
// Example: "a++", "n--"
type PostfixExpression struct {
	Left     Expression
	Operator token.Token
}

// TernaryExpression is a fully shaped conditional expression. No parser
// production builds one yet; QUESTION only holds its precedence slot.
type TernaryExpression struct {
	Condition Expression
	IfTrue    Expression
	IfFalse   Expression
}

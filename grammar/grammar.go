// Package grammar holds a declarative participle grammar for the same
// statement language the hand-written lexer and parser accept. Precedence is
// expressed structurally through layered rules instead of a climbing loop;
// the printer renders the identical canonical text, which the tests use to
// cross-check the two front-ends.
package grammar

type Program struct {
	Statements []*Statement `parser:"@@*"`
}

type Statement struct {
	Let    *LetStmt    `parser:"  @@"`
	Return *ReturnStmt `parser:"| @@"`
	Expr   *ExprStmt   `parser:"| @@"`
}

type LetStmt struct {
	Name  string `parser:"\"let\" @Ident \"=\""`
	Value *Expr  `parser:"@@ [ \";\" ]"`
}

type ReturnStmt struct {
	Value *Expr `parser:"\"return\" @@ [ \";\" ]"`
}

type ExprStmt struct {
	Value *Expr `parser:"@@ [ \";\" ]"`
}

type Expr struct {
	Equality *Equality `parser:"@@"`
}

type Equality struct {
	Left *Comparison   `parser:"@@"`
	Ops  []*EqualityOp `parser:"@@*"`
}

type EqualityOp struct {
	Operator string      `parser:"@(\"==\" | \"!=\")"`
	Right    *Comparison `parser:"@@"`
}

type Comparison struct {
	Left *Sum            `parser:"@@"`
	Ops  []*ComparisonOp `parser:"@@*"`
}

type ComparisonOp struct {
	Operator string `parser:"@(\"<=\" | \">=\" | \"<\" | \">\")"`
	Right    *Sum   `parser:"@@"`
}

type Sum struct {
	Left *Product `parser:"@@"`
	Ops  []*SumOp `parser:"@@*"`
}

type SumOp struct {
	Operator string   `parser:"@(\"+\" | \"-\")"`
	Right    *Product `parser:"@@"`
}

type Product struct {
	Left *Unary       `parser:"@@"`
	Ops  []*ProductOp `parser:"@@*"`
}

type ProductOp struct {
	Operator string `parser:"@(\"*\" | \"/\" | \"%\")"`
	Right    *Unary `parser:"@@"`
}

type Unary struct {
	Op      *UnaryOp `parser:"  @@"`
	Postfix *Postfix `parser:"| @@"`
}

// A string literal is not a valid unary operand; the lookahead keeps the
// declarative grammar's accepted language aligned with the hand-written
// parser.
type UnaryOp struct {
	Operator string `parser:"@(\"!\" | \"-\" | \"++\" | \"--\") (?! String)"`
	Value    *Unary `parser:"@@"`
}

type Postfix struct {
	Value *Primary `parser:"@@"`
	Ops   []string `parser:"@(\"++\" | \"--\")*"`
}

type Primary struct {
	Integer *string `parser:"  @Integer"`
	Str     *string `parser:"| @String"`
	Bool    *string `parser:"| @(\"true\" | \"false\")"`
	Ident   *string `parser:"| @Ident"`
}

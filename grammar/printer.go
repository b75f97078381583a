package grammar

import (
	"fmt"
	"strings"
)

// The String methods render the same canonical text as the hand-built AST:
// statements end in ";", every operator application is parenthesized, and
// equal-precedence chains group left.

func (p *Program) String() string {
	var b strings.Builder
	for _, stmt := range p.Statements {
		b.WriteString(stmt.String())
	}
	return b.String()
}

func (s *Statement) String() string {
	switch {
	case s.Let != nil:
		return s.Let.String()
	case s.Return != nil:
		return s.Return.String()
	default:
		return s.Expr.String()
	}
}

func (l *LetStmt) String() string {
	return fmt.Sprintf("let %s = %s;", l.Name, l.Value.String())
}

func (r *ReturnStmt) String() string {
	return fmt.Sprintf("return %s;", r.Value.String())
}

func (e *ExprStmt) String() string {
	return e.Value.String() + ";"
}

func (e *Expr) String() string {
	return e.Equality.String()
}

func (e *Equality) String() string {
	out := e.Left.String()
	for _, op := range e.Ops {
		out = fmt.Sprintf("(%s %s %s)", out, op.Operator, op.Right.String())
	}
	return out
}

func (c *Comparison) String() string {
	out := c.Left.String()
	for _, op := range c.Ops {
		out = fmt.Sprintf("(%s %s %s)", out, op.Operator, op.Right.String())
	}
	return out
}

func (s *Sum) String() string {
	out := s.Left.String()
	for _, op := range s.Ops {
		out = fmt.Sprintf("(%s %s %s)", out, op.Operator, op.Right.String())
	}
	return out
}

func (p *Product) String() string {
	out := p.Left.String()
	for _, op := range p.Ops {
		out = fmt.Sprintf("(%s %s %s)", out, op.Operator, op.Right.String())
	}
	return out
}

func (u *Unary) String() string {
	if u.Op != nil {
		return u.Op.String()
	}
	return u.Postfix.String()
}

func (u *UnaryOp) String() string {
	return fmt.Sprintf("(%s%s)", u.Operator, u.Value.String())
}

func (p *Postfix) String() string {
	out := p.Value.String()
	for _, op := range p.Ops {
		out = fmt.Sprintf("(%s%s)", out, op)
	}
	return out
}

func (p *Primary) String() string {
	switch {
	case p.Integer != nil:
		return *p.Integer
	case p.Str != nil:
		return *p.Str
	case p.Bool != nil:
		return *p.Bool
	default:
		return *p.Ident
	}
}

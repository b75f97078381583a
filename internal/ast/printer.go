package ast

import (
	"fmt"
	"strings"
)

func (p *Program) String() string {
	var b strings.Builder
	for _, stmt := range p.Statements {
		b.WriteString(stmt.String())
	}
	return b.String()
}

func (ls *LetStatement) String() string {
	return fmt.Sprintf("%s %s = %s;", ls.Token.Literal, ls.Name.Value, ls.Value.String())
}

func (rs *ReturnStatement) String() string {
	return fmt.Sprintf("%s %s;", rs.Token.Literal, rs.Value.String())
}

func (es *ExpressionStatement) String() string {
	return es.Expression.String() + ";"
}

func (i *Identifier) String() string {
	return i.Value
}

func (il *IntegerLiteral) String() string {
	return il.Token.Literal
}

func (sl *StringLiteral) String() string {
	return sl.Token.Literal
}

func (bl *BooleanLiteral) String() string {
	return bl.Token.Literal
}

func (pe *PrefixExpression) String() string {
	return fmt.Sprintf("(%s%s)", pe.Operator.Literal, pe.Right.String())
}

func (ie *InfixExpression) String() string {
	return fmt.Sprintf("(%s %s %s)", ie.Left.String(), ie.Operator.Literal, ie.Right.String())
}

func (pe *PostfixExpression) String() string {
	return fmt.Sprintf("(%s%s)", pe.Left.String(), pe.Operator.Literal)
}

func (te *TernaryExpression) String() string {
	return fmt.Sprintf("%s ? %s : %s", te.Condition.String(), te.IfTrue.String(), te.IfFalse.String())
}

package ast

func (*LetStatement) isStmt() {}

func (*ReturnStatement) isStmt() {}

func (*ExpressionStatement) isStmt() {}

func (*Identifier) isExpr() {}

func (*IntegerLiteral) isExpr() {}

func (*StringLiteral) isExpr() {}

func (*BooleanLiteral) isExpr() {}

func (*PrefixExpression) isExpr() {}

func (*InfixExpression) isExpr() {}

func (*PostfixExpression) isExpr() {}

func (*TernaryExpression) isExpr() {}

package ast

// Identifier and literal helpers.

func ID(name string) *Identifier {
	return NewIdentifier(name)
}

func Str(value string) *StringLiteral {
	return NewStringLiteral(value)
}

func Num(value float64) *NumberLiteral {
	return NewNumberLiteral(value)
}

func Bool(value bool) *BooleanLiteral {
	return NewBooleanLiteral(value)
}

func Nil() *NilLiteral {
	return NewNilLiteral()
}

// Expression helpers.

func Group(expr Expression) *GroupingExpression {
	return NewGroupingExpression(expr)
}

func Neg(operand Expression) *UnaryExpression {
	return NewUnaryExpression(UnaryOperatorNegate, operand)
}

func Not(operand Expression) *UnaryExpression {
	return NewUnaryExpression(UnaryOperatorNot, operand)
}

func Bin(operator string, left, right Expression) *BinaryExpression {
	return NewBinaryExpression(BinaryOperator(operator), left, right)
}

func And(left, right Expression) *LogicalExpression {
	return NewLogicalExpression(LogicalOperatorAnd, left, right)
}

func Or(left, right Expression) *LogicalExpression {
	return NewLogicalExpression(LogicalOperatorOr, left, right)
}

func Assign(name string, value Expression) *AssignmentExpression {
	return NewAssignmentExpression(ID(name), value)
}

func CallExpr(callee Expression, args ...Expression) *FunctionCall {
	return NewFunctionCall(callee, args)
}

func Call(name string, args ...Expression) *FunctionCall {
	return CallExpr(ID(name), args...)
}

// Statement helpers.

func Expr(expr Expression) *ExpressionStatement {
	return NewExpressionStatement(expr)
}

func PrintStmt(expr Expression) *PrintStatement {
	return NewPrintStatement(expr)
}

func Var(name string, initializer Expression) *VarDeclaration {
	return NewVarDeclaration(ID(name), initializer)
}

func Block(statements ...Statement) *BlockStatement {
	return NewBlockStatement(statements)
}

func If(condition Expression, thenBranch Statement) *IfStatement {
	return NewIfStatement(condition, thenBranch, nil)
}

func IfElse(condition Expression, thenBranch, elseBranch Statement) *IfStatement {
	return NewIfStatement(condition, thenBranch, elseBranch)
}

func While(condition Expression, body Statement) *WhileLoop {
	return NewWhileLoop(condition, body)
}

func Fn(name string, params []string, body ...Statement) *FunctionDefinition {
	ids := make([]*Identifier, 0, len(params))
	for _, p := range params {
		ids = append(ids, ID(p))
	}
	return NewFunctionDefinition(ID(name), ids, body)
}

func Ret(argument Expression) *ReturnStatement {
	return NewReturnStatement(argument)
}

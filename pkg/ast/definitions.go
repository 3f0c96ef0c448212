package ast

// Statements

type ExpressionStatement struct {
	nodeImpl
	statementMarker

	Expression Expression
}

func NewExpressionStatement(expr Expression) *ExpressionStatement {
	return &ExpressionStatement{nodeImpl: newNodeImpl(NodeExpressionStatement), Expression: expr}
}

type PrintStatement struct {
	nodeImpl
	statementMarker

	Expression Expression
}

func NewPrintStatement(expr Expression) *PrintStatement {
	return &PrintStatement{nodeImpl: newNodeImpl(NodePrintStatement), Expression: expr}
}

// VarDeclaration binds Name in the innermost scope. A nil Initializer
// binds nil.
type VarDeclaration struct {
	nodeImpl
	statementMarker

	Name        *Identifier
	Initializer Expression
}

func NewVarDeclaration(name *Identifier, initializer Expression) *VarDeclaration {
	return &VarDeclaration{nodeImpl: newNodeImpl(NodeVarDeclaration), Name: name, Initializer: initializer}
}

type BlockStatement struct {
	nodeImpl
	statementMarker

	Body []Statement
}

func NewBlockStatement(body []Statement) *BlockStatement {
	return &BlockStatement{nodeImpl: newNodeImpl(NodeBlockStatement), Body: body}
}

type IfStatement struct {
	nodeImpl
	statementMarker

	Condition  Expression
	ThenBranch Statement
	ElseBranch Statement
}

func NewIfStatement(condition Expression, thenBranch, elseBranch Statement) *IfStatement {
	return &IfStatement{nodeImpl: newNodeImpl(NodeIfStatement), Condition: condition, ThenBranch: thenBranch, ElseBranch: elseBranch}
}

// WhileLoop is the only looping node; `for` is desugared into it by the
// parser.
type WhileLoop struct {
	nodeImpl
	statementMarker

	Condition Expression
	Body      Statement
}

func NewWhileLoop(condition Expression, body Statement) *WhileLoop {
	return &WhileLoop{nodeImpl: newNodeImpl(NodeWhileLoop), Condition: condition, Body: body}
}

type FunctionDefinition struct {
	nodeImpl
	statementMarker

	ID     *Identifier
	Params []*Identifier
	Body   []Statement
}

func NewFunctionDefinition(id *Identifier, params []*Identifier, body []Statement) *FunctionDefinition {
	return &FunctionDefinition{nodeImpl: newNodeImpl(NodeFunctionDefinition), ID: id, Params: params, Body: body}
}

// ParamNames lists the parameter names in declaration order.
func (f *FunctionDefinition) ParamNames() []string {
	names := make([]string, 0, len(f.Params))
	for _, p := range f.Params {
		names = append(names, p.Name)
	}
	return names
}

type ReturnStatement struct {
	nodeImpl
	statementMarker

	Argument Expression
}

func NewReturnStatement(argument Expression) *ReturnStatement {
	return &ReturnStatement{nodeImpl: newNodeImpl(NodeReturnStatement), Argument: argument}
}

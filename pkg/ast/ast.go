package ast

type NodeType string

const (
	NodeIdentifier           NodeType = "Identifier"
	NodeStringLiteral        NodeType = "StringLiteral"
	NodeNumberLiteral        NodeType = "NumberLiteral"
	NodeBooleanLiteral       NodeType = "BooleanLiteral"
	NodeNilLiteral           NodeType = "NilLiteral"
	NodeGroupingExpression   NodeType = "GroupingExpression"
	NodeUnaryExpression      NodeType = "UnaryExpression"
	NodeBinaryExpression     NodeType = "BinaryExpression"
	NodeLogicalExpression    NodeType = "LogicalExpression"
	NodeAssignmentExpression NodeType = "AssignmentExpression"
	NodeFunctionCall         NodeType = "FunctionCall"
	NodeExpressionStatement  NodeType = "ExpressionStatement"
	NodePrintStatement       NodeType = "PrintStatement"
	NodeVarDeclaration       NodeType = "VarDeclaration"
	NodeBlockStatement       NodeType = "BlockStatement"
	NodeIfStatement          NodeType = "IfStatement"
	NodeWhileLoop            NodeType = "WhileLoop"
	NodeFunctionDefinition   NodeType = "FunctionDefinition"
	NodeReturnStatement      NodeType = "ReturnStatement"
)

type Node interface {
	NodeType() NodeType
	// Line is the source line of the token that introduced the node, or 0
	// for synthesized nodes.
	Line() uint
	isNode()
}

type nodeImpl struct {
	Type NodeType
	Pos  uint
}

func newNodeImpl(kind NodeType) nodeImpl {
	return nodeImpl{Type: kind}
}

func (n nodeImpl) NodeType() NodeType { return n.Type }
func (n nodeImpl) Line() uint         { return n.Pos }
func (nodeImpl) isNode()              {}

// SetLine annotates the node with the source line of its introducing token.
func SetLine(node Node, line uint) {
	if node == nil {
		return
	}
	if setter, ok := node.(interface{ setLine(uint) }); ok {
		setter.setLine(line)
	}
}

func (n *nodeImpl) setLine(line uint) { n.Pos = line }

// Marker interfaces.

type Expression interface {
	Node
	expressionNode()
}

type expressionMarker struct{}

func (expressionMarker) expressionNode() {}

type Statement interface {
	Node
	statementNode()
}

type statementMarker struct{}

func (statementMarker) statementNode() {}

type Literal interface {
	Expression
	literalNode()
}

type literalMarker struct{}

func (literalMarker) literalNode() {}

// Identifier is a variable reference.

type Identifier struct {
	nodeImpl
	expressionMarker

	Name string
}

func NewIdentifier(name string) *Identifier {
	return &Identifier{nodeImpl: newNodeImpl(NodeIdentifier), Name: name}
}

// Literals

type StringLiteral struct {
	nodeImpl
	expressionMarker
	literalMarker

	Value string
}

func NewStringLiteral(value string) *StringLiteral {
	return &StringLiteral{nodeImpl: newNodeImpl(NodeStringLiteral), Value: value}
}

type NumberLiteral struct {
	nodeImpl
	expressionMarker
	literalMarker

	Value float64
}

func NewNumberLiteral(value float64) *NumberLiteral {
	return &NumberLiteral{nodeImpl: newNodeImpl(NodeNumberLiteral), Value: value}
}

type BooleanLiteral struct {
	nodeImpl
	expressionMarker
	literalMarker

	Value bool
}

func NewBooleanLiteral(value bool) *BooleanLiteral {
	return &BooleanLiteral{nodeImpl: newNodeImpl(NodeBooleanLiteral), Value: value}
}

type NilLiteral struct {
	nodeImpl
	expressionMarker
	literalMarker
}

func NewNilLiteral() *NilLiteral {
	return &NilLiteral{nodeImpl: newNodeImpl(NodeNilLiteral)}
}

// Expressions

type GroupingExpression struct {
	nodeImpl
	expressionMarker

	Expression Expression
}

func NewGroupingExpression(expr Expression) *GroupingExpression {
	return &GroupingExpression{nodeImpl: newNodeImpl(NodeGroupingExpression), Expression: expr}
}

type UnaryOperator string

const (
	UnaryOperatorNegate UnaryOperator = "-"
	UnaryOperatorNot    UnaryOperator = "!"
)

type UnaryExpression struct {
	nodeImpl
	expressionMarker

	Operator UnaryOperator
	Operand  Expression
}

func NewUnaryExpression(operator UnaryOperator, operand Expression) *UnaryExpression {
	return &UnaryExpression{nodeImpl: newNodeImpl(NodeUnaryExpression), Operator: operator, Operand: operand}
}

type BinaryOperator string

const (
	BinaryOperatorAdd          BinaryOperator = "+"
	BinaryOperatorSubtract     BinaryOperator = "-"
	BinaryOperatorMultiply     BinaryOperator = "*"
	BinaryOperatorDivide       BinaryOperator = "/"
	BinaryOperatorLess         BinaryOperator = "<"
	BinaryOperatorLessEqual    BinaryOperator = "<="
	BinaryOperatorGreater      BinaryOperator = ">"
	BinaryOperatorGreaterEqual BinaryOperator = ">="
	BinaryOperatorEqual        BinaryOperator = "=="
	BinaryOperatorNotEqual     BinaryOperator = "!="
)

type BinaryExpression struct {
	nodeImpl
	expressionMarker

	Operator BinaryOperator
	Left     Expression
	Right    Expression
}

func NewBinaryExpression(operator BinaryOperator, left, right Expression) *BinaryExpression {
	return &BinaryExpression{nodeImpl: newNodeImpl(NodeBinaryExpression), Operator: operator, Left: left, Right: right}
}

type LogicalOperator string

const (
	LogicalOperatorAnd LogicalOperator = "and"
	LogicalOperatorOr  LogicalOperator = "or"
)

// LogicalExpression short-circuits; it is kept apart from BinaryExpression
// because its right operand is evaluated conditionally.
type LogicalExpression struct {
	nodeImpl
	expressionMarker

	Operator LogicalOperator
	Left     Expression
	Right    Expression
}

func NewLogicalExpression(operator LogicalOperator, left, right Expression) *LogicalExpression {
	return &LogicalExpression{nodeImpl: newNodeImpl(NodeLogicalExpression), Operator: operator, Left: left, Right: right}
}

// AssignmentExpression writes through an existing binding; the target is
// always a bare identifier.
type AssignmentExpression struct {
	nodeImpl
	expressionMarker

	Target *Identifier
	Value  Expression
}

func NewAssignmentExpression(target *Identifier, value Expression) *AssignmentExpression {
	return &AssignmentExpression{nodeImpl: newNodeImpl(NodeAssignmentExpression), Target: target, Value: value}
}

type FunctionCall struct {
	nodeImpl
	expressionMarker

	Callee    Expression
	Arguments []Expression
}

func NewFunctionCall(callee Expression, args []Expression) *FunctionCall {
	return &FunctionCall{nodeImpl: newNodeImpl(NodeFunctionCall), Callee: callee, Arguments: args}
}

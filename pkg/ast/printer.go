package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Print renders a node as a parenthesised prefix expression, e.g.
// `(+ 1 (* 2 3))`. The output is stable and is used for AST dumps and
// structural comparisons in tests.
func Print(node Node) string {
	var b strings.Builder
	writeNode(&b, node)
	return b.String()
}

// PrintProgram renders each statement on its own line.
func PrintProgram(statements []Statement) string {
	var b strings.Builder
	for idx, stmt := range statements {
		if idx > 0 {
			b.WriteByte('\n')
		}
		writeNode(&b, stmt)
	}
	return b.String()
}

func writeNode(b *strings.Builder, node Node) {
	switch n := node.(type) {
	case nil:
		b.WriteString("<nil>")
	case *Identifier:
		b.WriteString(n.Name)
	case *StringLiteral:
		b.WriteString(strconv.Quote(n.Value))
	case *NumberLiteral:
		b.WriteString(strconv.FormatFloat(n.Value, 'f', -1, 64))
	case *BooleanLiteral:
		b.WriteString(strconv.FormatBool(n.Value))
	case *NilLiteral:
		b.WriteString("nil")
	case *GroupingExpression:
		parenthesize(b, "group", n.Expression)
	case *UnaryExpression:
		parenthesize(b, string(n.Operator), n.Operand)
	case *BinaryExpression:
		parenthesize(b, string(n.Operator), n.Left, n.Right)
	case *LogicalExpression:
		parenthesize(b, string(n.Operator), n.Left, n.Right)
	case *AssignmentExpression:
		parenthesize(b, "=", n.Target, n.Value)
	case *FunctionCall:
		nodes := make([]Node, 0, len(n.Arguments)+1)
		nodes = append(nodes, n.Callee)
		for _, arg := range n.Arguments {
			nodes = append(nodes, arg)
		}
		parenthesize(b, "call", nodes...)
	case *ExpressionStatement:
		parenthesize(b, "expr", n.Expression)
	case *PrintStatement:
		parenthesize(b, "print", n.Expression)
	case *VarDeclaration:
		if n.Initializer == nil {
			parenthesize(b, "var", n.Name)
			return
		}
		parenthesize(b, "var", n.Name, n.Initializer)
	case *BlockStatement:
		parenthesize(b, "block", statementNodes(n.Body)...)
	case *IfStatement:
		if n.ElseBranch == nil {
			parenthesize(b, "if", n.Condition, n.ThenBranch)
			return
		}
		parenthesize(b, "if", n.Condition, n.ThenBranch, n.ElseBranch)
	case *WhileLoop:
		parenthesize(b, "while", n.Condition, n.Body)
	case *FunctionDefinition:
		b.WriteString("(fun ")
		b.WriteString(n.ID.Name)
		b.WriteString(" (")
		b.WriteString(strings.Join(n.ParamNames(), " "))
		b.WriteByte(')')
		for _, stmt := range n.Body {
			b.WriteByte(' ')
			writeNode(b, stmt)
		}
		b.WriteByte(')')
	case *ReturnStatement:
		if n.Argument == nil {
			b.WriteString("(return)")
			return
		}
		parenthesize(b, "return", n.Argument)
	default:
		fmt.Fprintf(b, "<%s>", node.NodeType())
	}
}

func parenthesize(b *strings.Builder, name string, nodes ...Node) {
	b.WriteByte('(')
	b.WriteString(name)
	for _, n := range nodes {
		b.WriteByte(' ')
		writeNode(b, n)
	}
	b.WriteByte(')')
}

func statementNodes(stmts []Statement) []Node {
	out := make([]Node, 0, len(stmts))
	for _, s := range stmts {
		out = append(out, s)
	}
	return out
}

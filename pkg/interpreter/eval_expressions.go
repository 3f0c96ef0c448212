package interpreter

import (
	"fmt"

	"rox/interpreter-go/pkg/ast"
	"rox/interpreter-go/pkg/runtime"
)

func (i *Interpreter) evaluateExpression(node ast.Expression, env *runtime.Environment) (runtime.Value, error) {
	switch n := node.(type) {
	case *ast.StringLiteral:
		return runtime.StringValue{Val: n.Value}, nil
	case *ast.NumberLiteral:
		return runtime.NumberValue{Val: n.Value}, nil
	case *ast.BooleanLiteral:
		return runtime.BoolValue{Val: n.Value}, nil
	case *ast.NilLiteral:
		return runtime.NilValue{}, nil
	case *ast.GroupingExpression:
		return i.evaluateExpression(n.Expression, env)
	case *ast.Identifier:
		val, err := env.Get(n.Name)
		if err != nil {
			return nil, undefinedVariable(n, err)
		}
		return val, nil
	case *ast.AssignmentExpression:
		return i.evaluateAssignment(n, env)
	case *ast.UnaryExpression:
		return i.evaluateUnaryExpression(n, env)
	case *ast.BinaryExpression:
		return i.evaluateBinaryExpression(n, env)
	case *ast.LogicalExpression:
		return i.evaluateLogicalExpression(n, env)
	case *ast.FunctionCall:
		return i.evaluateFunctionCall(n, env)
	case nil:
		return nil, fmt.Errorf("nil expression")
	default:
		return nil, fmt.Errorf("unsupported expression type: %s", n.NodeType())
	}
}

func (i *Interpreter) evaluateAssignment(assign *ast.AssignmentExpression, env *runtime.Environment) (runtime.Value, error) {
	val, err := i.evaluateExpression(assign.Value, env)
	if err != nil {
		return nil, err
	}
	if err := env.Assign(assign.Target.Name, val); err != nil {
		return nil, undefinedVariable(assign, err)
	}
	return val, nil
}

func (i *Interpreter) evaluateUnaryExpression(expr *ast.UnaryExpression, env *runtime.Environment) (runtime.Value, error) {
	operand, err := i.evaluateExpression(expr.Operand, env)
	if err != nil {
		return nil, err
	}
	switch expr.Operator {
	case ast.UnaryOperatorNegate:
		num, ok := operand.(runtime.NumberValue)
		if !ok {
			return nil, newRuntimeError(WrongValue, expr, "operand of '-' must be a number, got %s", operand.Kind())
		}
		return runtime.NumberValue{Val: -num.Val}, nil
	case ast.UnaryOperatorNot:
		if _, ok := operand.(runtime.Callable); ok {
			return nil, newRuntimeError(WrongValue, expr, "operand of '!' cannot be a %s", operand.Kind())
		}
		return runtime.BoolValue{Val: !runtime.IsTruthy(operand)}, nil
	default:
		return nil, fmt.Errorf("unsupported unary operator %s", expr.Operator)
	}
}

// evaluateBinaryExpression always evaluates both operands, left first,
// before checking their kinds.
func (i *Interpreter) evaluateBinaryExpression(expr *ast.BinaryExpression, env *runtime.Environment) (runtime.Value, error) {
	left, err := i.evaluateExpression(expr.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluateExpression(expr.Right, env)
	if err != nil {
		return nil, err
	}

	switch expr.Operator {
	case ast.BinaryOperatorEqual:
		return runtime.BoolValue{Val: runtime.ValuesEqual(left, right)}, nil
	case ast.BinaryOperatorNotEqual:
		return runtime.BoolValue{Val: !runtime.ValuesEqual(left, right)}, nil
	case ast.BinaryOperatorAdd:
		if ls, ok := left.(runtime.StringValue); ok {
			if rs, ok := right.(runtime.StringValue); ok {
				return runtime.StringValue{Val: ls.Val + rs.Val}, nil
			}
		}
		l, r, ok := numberOperands(left, right)
		if !ok {
			return nil, newRuntimeError(WrongValue, expr, "operands of '+' must be two numbers or two strings, got %s and %s", left.Kind(), right.Kind())
		}
		return runtime.NumberValue{Val: l + r}, nil
	}

	l, r, ok := numberOperands(left, right)
	if !ok {
		return nil, newRuntimeError(WrongValue, expr, "operands of '%s' must be numbers, got %s and %s", expr.Operator, left.Kind(), right.Kind())
	}
	switch expr.Operator {
	case ast.BinaryOperatorSubtract:
		return runtime.NumberValue{Val: l - r}, nil
	case ast.BinaryOperatorMultiply:
		return runtime.NumberValue{Val: l * r}, nil
	case ast.BinaryOperatorDivide:
		if r == 0 {
			return nil, newRuntimeError(DivisionByZero, expr, "division by zero")
		}
		return runtime.NumberValue{Val: l / r}, nil
	case ast.BinaryOperatorLess:
		return runtime.BoolValue{Val: l < r}, nil
	case ast.BinaryOperatorLessEqual:
		return runtime.BoolValue{Val: l <= r}, nil
	case ast.BinaryOperatorGreater:
		return runtime.BoolValue{Val: l > r}, nil
	case ast.BinaryOperatorGreaterEqual:
		return runtime.BoolValue{Val: l >= r}, nil
	default:
		return nil, fmt.Errorf("unsupported binary operator %s", expr.Operator)
	}
}

func numberOperands(left, right runtime.Value) (float64, float64, bool) {
	l, lok := left.(runtime.NumberValue)
	r, rok := right.(runtime.NumberValue)
	if !lok || !rok {
		return 0, 0, false
	}
	return l.Val, r.Val, true
}

// evaluateLogicalExpression yields the deciding operand itself, not a bool.
func (i *Interpreter) evaluateLogicalExpression(expr *ast.LogicalExpression, env *runtime.Environment) (runtime.Value, error) {
	left, err := i.evaluateExpression(expr.Left, env)
	if err != nil {
		return nil, err
	}
	switch expr.Operator {
	case ast.LogicalOperatorOr:
		if runtime.IsTruthy(left) {
			return left, nil
		}
	case ast.LogicalOperatorAnd:
		if !runtime.IsTruthy(left) {
			return left, nil
		}
	default:
		return nil, fmt.Errorf("unsupported logical operator %s", expr.Operator)
	}
	return i.evaluateExpression(expr.Right, env)
}

package interpreter

import (
	"fmt"

	"rox/interpreter-go/pkg/ast"
	"rox/interpreter-go/pkg/runtime"
)

func (i *Interpreter) evaluateStatement(node ast.Statement, env *runtime.Environment) (Signal, error) {
	switch n := node.(type) {
	case *ast.ExpressionStatement:
		if _, err := i.evaluateExpression(n.Expression, env); err != nil {
			return Signal{}, err
		}
		return continueSignal(), nil
	case *ast.PrintStatement:
		return i.evaluatePrintStatement(n, env)
	case *ast.VarDeclaration:
		return i.evaluateVarDeclaration(n, env)
	case *ast.BlockStatement:
		return i.evaluateBlock(n.Body, env.Extend())
	case *ast.IfStatement:
		return i.evaluateIfStatement(n, env)
	case *ast.WhileLoop:
		return i.evaluateWhileLoop(n, env)
	case *ast.FunctionDefinition:
		return i.evaluateFunctionDefinition(n, env)
	case *ast.ReturnStatement:
		return i.evaluateReturnStatement(n, env)
	case nil:
		return Signal{}, fmt.Errorf("nil statement")
	default:
		return Signal{}, fmt.Errorf("unsupported statement type: %s", n.NodeType())
	}
}

// evaluateBlock runs statements in scope, which the caller has already
// pushed. The scope is unreachable once this returns, whatever the exit
// path.
func (i *Interpreter) evaluateBlock(body []ast.Statement, scope *runtime.Environment) (Signal, error) {
	for _, stmt := range body {
		sig, err := i.evaluateStatement(stmt, scope)
		if err != nil {
			return Signal{}, err
		}
		if sig.IsBreak() {
			return sig, nil
		}
	}
	return continueSignal(), nil
}

func (i *Interpreter) evaluatePrintStatement(stmt *ast.PrintStatement, env *runtime.Environment) (Signal, error) {
	val, err := i.evaluateExpression(stmt.Expression, env)
	if err != nil {
		return Signal{}, err
	}
	if _, err := fmt.Fprintln(i.stdout, runtime.Format(val)); err != nil {
		return Signal{}, fmt.Errorf("print: %w", err)
	}
	return continueSignal(), nil
}

func (i *Interpreter) evaluateVarDeclaration(decl *ast.VarDeclaration, env *runtime.Environment) (Signal, error) {
	var val runtime.Value = runtime.NilValue{}
	if decl.Initializer != nil {
		var err error
		val, err = i.evaluateExpression(decl.Initializer, env)
		if err != nil {
			return Signal{}, err
		}
	}
	env.Define(decl.Name.Name, val)
	return continueSignal(), nil
}

func (i *Interpreter) evaluateIfStatement(stmt *ast.IfStatement, env *runtime.Environment) (Signal, error) {
	cond, err := i.evaluateExpression(stmt.Condition, env)
	if err != nil {
		return Signal{}, err
	}
	if runtime.IsTruthy(cond) {
		return i.evaluateStatement(stmt.ThenBranch, env)
	}
	if stmt.ElseBranch != nil {
		return i.evaluateStatement(stmt.ElseBranch, env)
	}
	return continueSignal(), nil
}

func (i *Interpreter) evaluateWhileLoop(loop *ast.WhileLoop, env *runtime.Environment) (Signal, error) {
	for {
		cond, err := i.evaluateExpression(loop.Condition, env)
		if err != nil {
			return Signal{}, err
		}
		if !runtime.IsTruthy(cond) {
			return continueSignal(), nil
		}
		sig, err := i.evaluateStatement(loop.Body, env)
		if err != nil {
			return Signal{}, err
		}
		if sig.IsBreak() {
			return sig, nil
		}
	}
}

func (i *Interpreter) evaluateFunctionDefinition(def *ast.FunctionDefinition, env *runtime.Environment) (Signal, error) {
	env.Define(def.ID.Name, &runtime.FunctionValue{Declaration: def, Closure: env})
	return continueSignal(), nil
}

func (i *Interpreter) evaluateReturnStatement(stmt *ast.ReturnStatement, env *runtime.Environment) (Signal, error) {
	if stmt.Argument == nil {
		return breakSignal(runtime.NilValue{}), nil
	}
	val, err := i.evaluateExpression(stmt.Argument, env)
	if err != nil {
		return Signal{}, err
	}
	return breakSignal(val), nil
}

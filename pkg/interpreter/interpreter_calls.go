package interpreter

import (
	"fmt"

	"rox/interpreter-go/pkg/ast"
	"rox/interpreter-go/pkg/runtime"
)

// evaluateFunctionCall checks the callee before evaluating any argument and
// checks arity only once every argument has been evaluated.
func (i *Interpreter) evaluateFunctionCall(call *ast.FunctionCall, env *runtime.Environment) (runtime.Value, error) {
	calleeVal, err := i.evaluateExpression(call.Callee, env)
	if err != nil {
		return nil, err
	}
	callee, ok := calleeVal.(runtime.Callable)
	if !ok {
		return nil, newRuntimeError(ValueIsNotCallable, call, "can only call functions, got %s", calleeVal.Kind())
	}

	args := make([]runtime.Value, 0, len(call.Arguments))
	for _, argExpr := range call.Arguments {
		val, err := i.evaluateExpression(argExpr, env)
		if err != nil {
			return nil, err
		}
		args = append(args, val)
	}
	if len(args) != callee.FunctionArity() {
		return nil, newRuntimeError(WrongArgumentsForFunction, call,
			"function '%s' expects %d arguments, got %d", callee.FunctionName(), callee.FunctionArity(), len(args))
	}

	switch fn := callee.(type) {
	case *runtime.FunctionValue:
		return i.invokeFunction(fn, args, call)
	case *runtime.NativeFunctionValue:
		return i.invokeNative(fn, args, call)
	default:
		return nil, fmt.Errorf("calling unsupported callable %T", callee)
	}
}

func (i *Interpreter) invokeFunction(fn *runtime.FunctionValue, args []runtime.Value, call *ast.FunctionCall) (runtime.Value, error) {
	if i.callDepth >= i.maxCallDepth {
		return nil, newRuntimeError(StackOverflow, call, "stack overflow: call depth exceeded %d", i.maxCallDepth)
	}
	i.callDepth++
	defer func() { i.callDepth-- }()

	decl := fn.Declaration
	localEnv := fn.Closure.Extend()
	for idx, param := range decl.Params {
		localEnv.Define(param.Name, args[idx])
	}
	sig, err := i.evaluateBlock(decl.Body, localEnv)
	if err != nil {
		return nil, err
	}
	if sig.IsBreak() {
		return sig.Value, nil
	}
	return runtime.NilValue{}, nil
}

func (i *Interpreter) invokeNative(fn *runtime.NativeFunctionValue, args []runtime.Value, call *ast.FunctionCall) (runtime.Value, error) {
	val, err := fn.Impl(args)
	if err != nil {
		if _, ok := AsRuntimeError(err); ok {
			return nil, err
		}
		rtErr := newRuntimeError(NativeFailure, call, "%s: %v", fn.Name, err)
		rtErr.Err = err
		return nil, rtErr
	}
	if val == nil {
		return runtime.NilValue{}, nil
	}
	return val, nil
}

package interpreter

import (
	"errors"
	"fmt"

	"rox/interpreter-go/pkg/ast"
	"rox/interpreter-go/pkg/runtime"
)

// ErrorKind classifies runtime failures.
type ErrorKind uint8

const (
	UndefinedVariable ErrorKind = iota
	WrongValue
	DivisionByZero
	ValueIsNotCallable
	WrongArgumentsForFunction
	StackOverflow
	NativeFailure
)

func (k ErrorKind) String() string {
	switch k {
	case UndefinedVariable:
		return "UndefinedVariable"
	case WrongValue:
		return "WrongValue"
	case DivisionByZero:
		return "DivisionByZero"
	case ValueIsNotCallable:
		return "ValueIsNotCallable"
	case WrongArgumentsForFunction:
		return "WrongArgumentsForFunction"
	case StackOverflow:
		return "StackOverflow"
	case NativeFailure:
		return "NativeFailure"
	default:
		return fmt.Sprintf("unknown_runtime_error_%d", int(k))
	}
}

// RuntimeError aborts the current top-level statement.
type RuntimeError struct {
	Kind    ErrorKind
	Line    uint
	Message string
	// Err is the underlying cause, when there is one.
	Err error
}

func (e *RuntimeError) Error() string {
	return e.Message
}

func (e *RuntimeError) Unwrap() error {
	return e.Err
}

// AsRuntimeError unwraps err into a *RuntimeError when possible.
func AsRuntimeError(err error) (*RuntimeError, bool) {
	var rtErr *RuntimeError
	if errors.As(err, &rtErr) {
		return rtErr, true
	}
	return nil, false
}

func newRuntimeError(kind ErrorKind, node ast.Node, format string, args ...any) *RuntimeError {
	var line uint
	if node != nil {
		line = node.Line()
	}
	return &RuntimeError{Kind: kind, Line: line, Message: fmt.Sprintf(format, args...)}
}

func undefinedVariable(node ast.Node, err error) error {
	var undef *runtime.UndefinedError
	if !errors.As(err, &undef) {
		return err
	}
	rtErr := newRuntimeError(UndefinedVariable, node, "undefined variable '%s'", undef.Name)
	rtErr.Err = err
	return rtErr
}

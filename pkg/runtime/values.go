package runtime

import (
	"fmt"
	"strconv"

	"rox/interpreter-go/pkg/ast"
)

// Kind identifies the runtime value category.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindBool
	KindNil
	KindFunction
	KindNativeFunction
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindNil:
		return "nil"
	case KindFunction:
		return "function"
	case KindNativeFunction:
		return "native_function"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the shared behaviour for all runtime values.
type Value interface {
	Kind() Kind
}

//-----------------------------------------------------------------------------
// Scalars
//-----------------------------------------------------------------------------

type StringValue struct {
	Val string
}

func (v StringValue) Kind() Kind { return KindString }

type NumberValue struct {
	Val float64
}

func (v NumberValue) Kind() Kind { return KindNumber }

type BoolValue struct {
	Val bool
}

func (v BoolValue) Kind() Kind { return KindBool }

type NilValue struct{}

func (NilValue) Kind() Kind { return KindNil }

//-----------------------------------------------------------------------------
// Functions & closures
//-----------------------------------------------------------------------------

// Callable is implemented only by *FunctionValue and *NativeFunctionValue.
type Callable interface {
	Value
	FunctionName() string
	FunctionArity() int
	callable()
}

// FunctionValue is a user-defined function closed over the environment
// that was active where it was declared.
type FunctionValue struct {
	Declaration *ast.FunctionDefinition
	Closure     *Environment
}

func (v *FunctionValue) Kind() Kind { return KindFunction }

func (v *FunctionValue) FunctionName() string {
	if v.Declaration == nil || v.Declaration.ID == nil {
		return "<anonymous>"
	}
	return v.Declaration.ID.Name
}

func (v *FunctionValue) FunctionArity() int {
	if v.Declaration == nil {
		return 0
	}
	return len(v.Declaration.Params)
}

func (*FunctionValue) callable() {}

// NativeFunc implements a built-in. args already has the declared arity.
type NativeFunc func(args []Value) (Value, error)

type NativeFunctionValue struct {
	Name  string
	Arity int
	Impl  NativeFunc
}

func (v *NativeFunctionValue) Kind() Kind { return KindNativeFunction }

func (v *NativeFunctionValue) FunctionName() string { return v.Name }

func (v *NativeFunctionValue) FunctionArity() int { return v.Arity }

func (*NativeFunctionValue) callable() {}

var (
	_ Callable = (*FunctionValue)(nil)
	_ Callable = (*NativeFunctionValue)(nil)
)

//-----------------------------------------------------------------------------
// Semantics shared by the evaluator and the driver
//-----------------------------------------------------------------------------

// IsTruthy maps a value to a condition result. false and nil are falsy, as
// is the number zero (either sign). Every string is truthy, the empty
// string included.
func IsTruthy(v Value) bool {
	switch val := v.(type) {
	case nil:
		return false
	case BoolValue:
		return val.Val
	case NilValue:
		return false
	case NumberValue:
		return val.Val != 0
	default:
		return true
	}
}

// ValuesEqual never fails: values of different kinds are unequal and
// callables are never equal to anything, themselves included.
func ValuesEqual(a, b Value) bool {
	switch av := a.(type) {
	case NumberValue:
		bv, ok := b.(NumberValue)
		return ok && av.Val == bv.Val
	case StringValue:
		bv, ok := b.(StringValue)
		return ok && av.Val == bv.Val
	case BoolValue:
		bv, ok := b.(BoolValue)
		return ok && av.Val == bv.Val
	case NilValue:
		_, ok := b.(NilValue)
		return ok
	default:
		return false
	}
}

// Format renders the display form used by print.
func Format(v Value) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case StringValue:
		return val.Val
	case NumberValue:
		return FormatNumber(val.Val)
	case BoolValue:
		return strconv.FormatBool(val.Val)
	case NilValue:
		return "nil"
	case Callable:
		return fmt.Sprintf("<fn %s>", val.FunctionName())
	default:
		return fmt.Sprintf("<%s>", v.Kind())
	}
}

// FormatNumber prints the shortest decimal that round-trips: 1, 2.5, 0.1.
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

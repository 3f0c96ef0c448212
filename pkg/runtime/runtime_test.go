package runtime

import (
	"errors"
	"math"
	"testing"

	"rox/interpreter-go/pkg/ast"
)

func TestEnvironmentScopeChain(t *testing.T) {
	global := NewEnvironment(nil)
	global.Define("x", NumberValue{Val: 1})
	inner := global.Extend()
	inner.Define("x", NumberValue{Val: 2})

	v, err := inner.Get("x")
	if err != nil || v.(NumberValue).Val != 2 {
		t.Fatalf("inner lookup = %v, %v", v, err)
	}
	v, err = global.Get("x")
	if err != nil || v.(NumberValue).Val != 1 {
		t.Fatalf("outer binding was clobbered: %v, %v", v, err)
	}
	if inner.Parent() != global || global.Parent() != nil {
		t.Fatalf("unexpected parent links")
	}
}

func TestEnvironmentAssignWritesNearestScope(t *testing.T) {
	global := NewEnvironment(nil)
	global.Define("count", NumberValue{Val: 0})
	inner := global.Extend().Extend()

	if err := inner.Assign("count", NumberValue{Val: 5}); err != nil {
		t.Fatalf("assign: %v", err)
	}
	v, _ := global.Get("count")
	if v.(NumberValue).Val != 5 {
		t.Fatalf("assign did not reach the defining scope: %v", v)
	}
	if keys := inner.Keys(); len(keys) != 0 {
		t.Fatalf("assign created a binding in the inner scope: %v", keys)
	}
}

func TestEnvironmentUndefined(t *testing.T) {
	env := NewEnvironment(nil)
	_, err := env.Get("missing")
	var undef *UndefinedError
	if !errors.As(err, &undef) || undef.Name != "missing" {
		t.Fatalf("expected UndefinedError, got %v", err)
	}
	if err := env.Assign("missing", NilValue{}); !errors.As(err, &undef) {
		t.Fatalf("expected UndefinedError from assign, got %v", err)
	}
	if len(env.Keys()) != 0 {
		t.Fatalf("failed assign must not define")
	}
}

func TestIsTruthy(t *testing.T) {
	fn := &FunctionValue{Declaration: ast.Fn("f", nil)}
	cases := []struct {
		value Value
		want  bool
	}{
		{BoolValue{Val: true}, true},
		{BoolValue{Val: false}, false},
		{NilValue{}, false},
		{NumberValue{Val: 0}, false},
		{NumberValue{Val: math.Copysign(0, -1)}, false},
		{NumberValue{Val: 0.5}, true},
		{NumberValue{Val: -3}, true},
		{StringValue{Val: ""}, true},
		{StringValue{Val: "0"}, true},
		{fn, true},
	}
	for _, tc := range cases {
		if got := IsTruthy(tc.value); got != tc.want {
			t.Fatalf("IsTruthy(%#v) = %v, want %v", tc.value, got, tc.want)
		}
	}
}

func TestValuesEqual(t *testing.T) {
	fn := &FunctionValue{Declaration: ast.Fn("f", nil)}
	cases := []struct {
		a, b Value
		want bool
	}{
		{NumberValue{Val: 1}, NumberValue{Val: 1}, true},
		{NumberValue{Val: 1}, NumberValue{Val: 2}, false},
		{StringValue{Val: "a"}, StringValue{Val: "a"}, true},
		{StringValue{Val: "1"}, NumberValue{Val: 1}, false},
		{BoolValue{Val: true}, BoolValue{Val: true}, true},
		{BoolValue{Val: false}, NilValue{}, false},
		{NilValue{}, NilValue{}, true},
		{fn, fn, false},
	}
	for _, tc := range cases {
		if got := ValuesEqual(tc.a, tc.b); got != tc.want {
			t.Fatalf("ValuesEqual(%#v, %#v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestFormat(t *testing.T) {
	clock := &NativeFunctionValue{Name: "clock"}
	cases := []struct {
		value Value
		want  string
	}{
		{NumberValue{Val: 1}, "1"},
		{NumberValue{Val: 2.5}, "2.5"},
		{NumberValue{Val: 0.1}, "0.1"},
		{NumberValue{Val: -4}, "-4"},
		{StringValue{Val: "hi there"}, "hi there"},
		{BoolValue{Val: false}, "false"},
		{NilValue{}, "nil"},
		{&FunctionValue{Declaration: ast.Fn("add", []string{"a", "b"})}, "<fn add>"},
		{clock, "<fn clock>"},
	}
	for _, tc := range cases {
		if got := Format(tc.value); got != tc.want {
			t.Fatalf("Format(%#v) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestCallableArity(t *testing.T) {
	var c Callable = &FunctionValue{Declaration: ast.Fn("add", []string{"a", "b"})}
	if c.FunctionArity() != 2 || c.FunctionName() != "add" || c.Kind() != KindFunction {
		t.Fatalf("unexpected callable %s/%d", c.FunctionName(), c.FunctionArity())
	}
	c = &NativeFunctionValue{Name: "clock", Arity: 0}
	if c.FunctionArity() != 0 || c.Kind().String() != "native_function" {
		t.Fatalf("unexpected native callable")
	}
}

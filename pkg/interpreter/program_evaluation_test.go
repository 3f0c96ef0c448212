package interpreter

import (
	"bytes"
	"io"
	"testing"

	"rox/interpreter-go/pkg/lexer"
	"rox/interpreter-go/pkg/parser"
)

func TestProgramBlockScoping(t *testing.T) {
	res := runSource(t, "var x = 1; { var x = 2; print x; } print x;")
	expectOutput(t, res, "2", "1")
}

func TestProgramForLoop(t *testing.T) {
	res := runSource(t, "for (var i = 0; i < 3; i = i + 1) { print i; }")
	if len(res.errors) != 0 {
		t.Fatalf("unexpected errors: %v", res.errors)
	}
	expectOutput(t, res, "0", "1", "2")
}

func TestProgramClosureOutlivesCall(t *testing.T) {
	source := `
fun makeCounter() {
  var count = 0;
  fun increment() {
    count = count + 1;
    return count;
  }
  return increment;
}
var counter = makeCounter();
print counter();
print counter();
var other = makeCounter();
print other();
print counter();
`
	res := runSource(t, source)
	if len(res.errors) != 0 {
		t.Fatalf("unexpected errors: %v", res.errors)
	}
	expectOutput(t, res, "1", "2", "1", "3")
}

func TestProgramClosuresShareCapturedScope(t *testing.T) {
	source := `
var get;
var set;
fun pair() {
  var value = "initial";
  fun g() { return value; }
  fun s(v) { value = v; }
  get = g;
  set = s;
}
pair();
print get();
set("changed");
print get();
`
	res := runSource(t, source)
	if len(res.errors) != 0 {
		t.Fatalf("unexpected errors: %v", res.errors)
	}
	expectOutput(t, res, "initial", "changed")
}

func TestProgramRecursion(t *testing.T) {
	source := `
fun fib(n) {
  if (n < 2) return n;
  return fib(n - 1) + fib(n - 2);
}
print fib(15);
`
	expectOutput(t, runSource(t, source), "610")
}

func TestProgramRuntimeErrorsAreNonFatal(t *testing.T) {
	source := `
print "before";
print "partial"; print 10 / 0;
var a = "a" - 1;
print a;
undefinedFn();
print "after";
`
	res := runSource(t, source)
	if len(res.errors) != 4 {
		t.Fatalf("expected 4 errors, got %d: %v", len(res.errors), res.errors)
	}
	expectRuntimeError(t, res.errors[0], DivisionByZero)
	expectRuntimeError(t, res.errors[1], WrongValue)
	expectRuntimeError(t, res.errors[2], UndefinedVariable)
	expectRuntimeError(t, res.errors[3], UndefinedVariable)
	expectOutput(t, res, "before", "partial", "after")
	if line := res.errors[0].(*RuntimeError).Line; line != 3 {
		t.Fatalf("division error line = %d, want 3", line)
	}
}

func TestProgramPartialSideEffectsPersist(t *testing.T) {
	source := `
var log = "";
fun note(s) { log = log + s; return s; }
note("a") + note("b") - 1;
print log;
`
	res := runSource(t, source)
	if len(res.errors) != 1 {
		t.Fatalf("expected 1 error, got %v", res.errors)
	}
	expectRuntimeError(t, res.errors[0], WrongValue)
	expectOutput(t, res, "ab")
}

func TestProgramScopeIsPoppedAfterErrorInBlock(t *testing.T) {
	interp, out := newTestInterpreter(Options{})
	res := runSourceWith(t, interp, out, `var x = "outer"; { var x = "inner"; print nope; }`)
	if len(res.errors) != 1 {
		t.Fatalf("expected 1 error, got %v", res.errors)
	}
	res = runSourceWith(t, interp, out, "print x;")
	expectOutput(t, res, "outer")
}

func TestProgramTruthiness(t *testing.T) {
	source := `
if (0) print "zero"; else print "zero is falsy";
if ("") print "empty string is truthy";
if (nil) print "nil"; else print "nil is falsy";
if (clock) print "functions are truthy";
print !"";
print !0;
`
	expectOutput(t, runSource(t, source),
		"zero is falsy",
		"empty string is truthy",
		"nil is falsy",
		"functions are truthy",
		"false",
		"true",
	)
}

func TestProgramWrongArityAndNotCallable(t *testing.T) {
	source := `
fun two(a, b) { return a + b; }
two(1);
"str"();
print two(1, 2);
`
	res := runSource(t, source)
	if len(res.errors) != 2 {
		t.Fatalf("expected 2 errors, got %v", res.errors)
	}
	expectRuntimeError(t, res.errors[0], WrongArgumentsForFunction)
	expectRuntimeError(t, res.errors[1], ValueIsNotCallable)
	expectOutput(t, res, "3")
}

func TestProgramStatePersistsAcrossRuns(t *testing.T) {
	interp, out := newTestInterpreter(Options{})
	runSourceWith(t, interp, out, "var total = 1; fun bump() { total = total * 2; }")
	runSourceWith(t, interp, out, "bump(); bump();")
	res := runSourceWith(t, interp, out, "print total;")
	expectOutput(t, res, "4")
}

const fibSource = `
fun fib(n) {
  if (n < 2) return n;
  return fib(n - 1) + fib(n - 2);
}
print fib(20);
`

func BenchmarkScan(b *testing.B) {
	for n := 0; n < b.N; n++ {
		lexer.Scan(fibSource)
	}
}

func BenchmarkParse(b *testing.B) {
	tokens, _ := lexer.Scan(fibSource)
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		parser.Parse(tokens)
	}
}

func BenchmarkInterpret(b *testing.B) {
	program, _, errs := parser.ParseSource(fibSource)
	if len(errs) != 0 {
		b.Fatalf("parse errors: %v", errs)
	}
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		interp := New(Options{Stdout: io.Discard})
		for _, stmt := range program {
			if _, err := interp.Evaluate(stmt); err != nil {
				b.Fatalf("evaluate: %v", err)
			}
		}
	}
}

func BenchmarkInterpretBuffered(b *testing.B) {
	program, _, _ := parser.ParseSource("var s = 0; for (var i = 0; i < 1000; i = i + 1) s = s + i; print s;")
	var out bytes.Buffer
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		out.Reset()
		interp := New(Options{Stdout: &out})
		for _, stmt := range program {
			if _, err := interp.Evaluate(stmt); err != nil {
				b.Fatalf("evaluate: %v", err)
			}
		}
	}
}

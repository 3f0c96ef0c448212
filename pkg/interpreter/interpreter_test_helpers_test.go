package interpreter

import (
	"bytes"
	"strings"
	"testing"

	"rox/interpreter-go/pkg/ast"
	"rox/interpreter-go/pkg/parser"
)

type runResult struct {
	output string
	errors []error
	halted bool
}

func (r runResult) lines() []string {
	trimmed := strings.TrimSuffix(r.output, "\n")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\n")
}

func newTestInterpreter(opts Options) (*Interpreter, *bytes.Buffer) {
	var out bytes.Buffer
	opts.Stdout = &out
	return New(opts), &out
}

// runStatements evaluates each top-level statement, continuing past
// runtime errors and stopping at a top-level return.
func runStatements(interp *Interpreter, out *bytes.Buffer, program []ast.Statement) runResult {
	var res runResult
	for _, stmt := range program {
		sig, err := interp.Evaluate(stmt)
		if err != nil {
			res.errors = append(res.errors, err)
			continue
		}
		if sig.IsBreak() {
			res.halted = true
			break
		}
	}
	res.output = out.String()
	return res
}

func runSource(t *testing.T, source string) runResult {
	t.Helper()
	interp, out := newTestInterpreter(Options{})
	return runSourceWith(t, interp, out, source)
}

func runSourceWith(t *testing.T, interp *Interpreter, out *bytes.Buffer, source string) runResult {
	t.Helper()
	program, lexErrs, parseErrs := parser.ParseSource(source)
	if len(lexErrs) != 0 {
		t.Fatalf("unexpected lex errors: %v", lexErrs)
	}
	if len(parseErrs) != 0 {
		t.Fatalf("unexpected parse errors: %v", parseErrs)
	}
	return runStatements(interp, out, program)
}

func expectOutput(t *testing.T, res runResult, want ...string) {
	t.Helper()
	got := res.lines()
	if len(got) != len(want) {
		t.Fatalf("output = %q, want %q", got, want)
	}
	for idx := range want {
		if got[idx] != want[idx] {
			t.Fatalf("output line %d = %q, want %q (all output %q)", idx, got[idx], want[idx], got)
		}
	}
}

func expectRuntimeError(t *testing.T, err error, kind ErrorKind) *RuntimeError {
	t.Helper()
	rtErr, ok := AsRuntimeError(err)
	if !ok {
		t.Fatalf("expected runtime error %s, got %v", kind, err)
	}
	if rtErr.Kind != kind {
		t.Fatalf("runtime error kind = %s, want %s (%v)", rtErr.Kind, kind, rtErr)
	}
	return rtErr
}

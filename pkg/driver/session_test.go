package driver

import (
	"bytes"
	"strings"
	"testing"

	"rox/interpreter-go/pkg/interpreter"
	"rox/interpreter-go/pkg/runtime"
)

func newTestSession() (*Session, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	reporter := NewReporter(&stderr, false, false)
	return NewSession(interpreter.Options{Stdout: &stdout}, reporter), &stdout, &stderr
}

func TestSessionRunsProgram(t *testing.T) {
	session, stdout, stderr := newTestSession()
	res := session.Run([]byte("var greeting = \"hi\";\nprint greeting + \" there\";\n"))
	if res.ExitCode() != ExitOK {
		t.Fatalf("exit code = %d, stderr %q", res.ExitCode(), stderr.String())
	}
	if stdout.String() != "hi there\n" {
		t.Fatalf("stdout = %q", stdout.String())
	}
	if len(res.Statements) != 2 || res.Tokens[len(res.Tokens)-1].Lexeme != "" {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestSessionDoesNotExecuteWithStaticErrors(t *testing.T) {
	session, stdout, stderr := newTestSession()
	res := session.Run([]byte("print \"side effect\";\nvar = 1;\nprint @;\n"))
	if res.ExitCode() != ExitStaticError {
		t.Fatalf("exit code = %d", res.ExitCode())
	}
	if stdout.Len() != 0 {
		t.Fatalf("program executed despite errors: %q", stdout.String())
	}
	if len(res.LexErrors) != 1 || len(res.ParseErrors) != 2 {
		t.Fatalf("lex %v parse %v", res.LexErrors, res.ParseErrors)
	}
	lines := strings.Split(strings.TrimSpace(stderr.String()), "\n")
	want := []string{
		`[line 3] lex error: unexpected character "@"`,
		`[line 2] parse error: expected identifier after 'var' at '='`,
		`[line 3] parse error: expected expression at ';'`,
	}
	if len(lines) != len(want) {
		t.Fatalf("stderr = %q", stderr.String())
	}
	for idx := range want {
		if lines[idx] != want[idx] {
			t.Fatalf("line %d = %q, want %q", idx, lines[idx], want[idx])
		}
	}
}

func TestSessionContinuesAfterRuntimeErrors(t *testing.T) {
	session, stdout, stderr := newTestSession()
	res := session.Run([]byte("print 1;\nprint 1 / 0;\nprint 2;\n"))
	if res.ExitCode() != ExitRuntimeError {
		t.Fatalf("exit code = %d", res.ExitCode())
	}
	if stdout.String() != "1\n2\n" {
		t.Fatalf("stdout = %q", stdout.String())
	}
	if got := strings.TrimSpace(stderr.String()); got != "[line 2] runtime error: division by zero" {
		t.Fatalf("stderr = %q", got)
	}
}

func TestSessionTopLevelReturnHalts(t *testing.T) {
	session, stdout, _ := newTestSession()
	res := session.Run([]byte("print 1; return; print 2;"))
	if !res.Halted || res.ExitCode() != ExitOK {
		t.Fatalf("expected halted clean run, got %+v", res)
	}
	if stdout.String() != "1\n" {
		t.Fatalf("stdout = %q", stdout.String())
	}
}

func TestSessionKeepsStateBetweenRuns(t *testing.T) {
	session, stdout, _ := newTestSession()
	session.Run([]byte("fun double(n) { return n * 2; }"))
	session.Run([]byte("var x = double(21);"))
	session.Run([]byte("print x;"))
	if stdout.String() != "42\n" {
		t.Fatalf("stdout = %q", stdout.String())
	}
	if _, err := session.Interpreter().GlobalEnvironment().Get("double"); err != nil {
		t.Fatalf("double not defined: %v", err)
	}
}

func TestSessionScanAndParseOnly(t *testing.T) {
	session, stdout, _ := newTestSession()
	res := session.Scan([]byte("print 1;"))
	if len(res.Tokens) != 4 || res.Statements != nil {
		t.Fatalf("scan result %+v", res)
	}
	res = session.Parse([]byte("print 1;"))
	if len(res.Statements) != 1 || stdout.Len() != 0 {
		t.Fatalf("parse executed or failed: %+v", res)
	}
}

func TestReporterVerboseAndColor(t *testing.T) {
	var stderr bytes.Buffer
	reporter := NewReporter(&stderr, false, true)
	session := NewSession(interpreter.Options{Stdout: &bytes.Buffer{}}, reporter)
	session.Run([]byte("print 1;"))
	out := stderr.String()
	if !strings.Contains(out, "scanned 4 tokens") || !strings.Contains(out, "parsed 1 statements") {
		t.Fatalf("verbose output missing: %q", out)
	}

	stderr.Reset()
	colored := NewReporter(&stderr, true, false)
	colored.Verbosef("hidden")
	colored.RuntimeError(&interpreter.RuntimeError{Kind: interpreter.WrongValue, Line: 4, Message: "bad"})
	out = stderr.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("verbose output printed when disabled: %q", out)
	}
	if !strings.Contains(out, "\x1b[") || !strings.Contains(out, "bad") {
		t.Fatalf("expected coloured diagnostic, got %q", out)
	}
}

func TestSessionRunInteractiveEchoesExpressions(t *testing.T) {
	session, stdout, stderr := newTestSession()
	if _, value := session.RunInteractive([]byte("var a = 2;")); value != nil {
		t.Fatalf("declaration echoed %v", value)
	}
	_, value := session.RunInteractive([]byte("a * 21"))
	if value != nil {
		t.Fatalf("incomplete statement evaluated: %v", value)
	}
	_, value = session.RunInteractive([]byte("a * 21;"))
	if value == nil || runtime.Format(value) != "42" {
		t.Fatalf("echo = %v", value)
	}
	if _, value := session.RunInteractive([]byte("print a;")); value != nil {
		t.Fatalf("print echoed %v", value)
	}
	res, value := session.RunInteractive([]byte("missing;"))
	if value != nil || res.ExitCode() != ExitRuntimeError {
		t.Fatalf("expected runtime error, got %v %+v", value, res)
	}
	if stdout.String() != "2\n" {
		t.Fatalf("stdout = %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "runtime error: undefined variable 'missing'") {
		t.Fatalf("stderr = %q", stderr.String())
	}
}

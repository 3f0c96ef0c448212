package driver

import (
	"time"

	"rox/interpreter-go/pkg/ast"
	"rox/interpreter-go/pkg/interpreter"
	"rox/interpreter-go/pkg/lexer"
	"rox/interpreter-go/pkg/parser"
	"rox/interpreter-go/pkg/runtime"
)

// Exit statuses returned by Result.ExitCode.
const (
	ExitOK           = 0
	ExitStaticError  = 65
	ExitRuntimeError = 70
)

// Result captures one run of source text through every stage.
type Result struct {
	Tokens        []lexer.Token
	Statements    []ast.Statement
	LexErrors     []lexer.Error
	ParseErrors   []*parser.ParseError
	RuntimeErrors []error
	// Halted is set when a top-level return stopped the run early.
	Halted bool
}

// StaticErrors reports whether scanning or parsing failed, in which case
// nothing was executed.
func (r *Result) StaticErrors() bool {
	return len(r.LexErrors) > 0 || len(r.ParseErrors) > 0
}

// ExitCode maps the result onto a process exit status.
func (r *Result) ExitCode() int {
	switch {
	case r.StaticErrors():
		return ExitStaticError
	case len(r.RuntimeErrors) > 0:
		return ExitRuntimeError
	default:
		return ExitOK
	}
}

// Session owns one interpreter across many runs, so definitions from one
// run stay visible to the next.
type Session struct {
	interp   *interpreter.Interpreter
	reporter *Reporter
}

// NewSession creates a session. A nil reporter suppresses diagnostics;
// they are still collected in each Result.
func NewSession(opts interpreter.Options, reporter *Reporter) *Session {
	return &Session{
		interp:   interpreter.New(opts),
		reporter: reporter,
	}
}

// Interpreter exposes the session's interpreter.
func (s *Session) Interpreter() *interpreter.Interpreter {
	return s.interp
}

// Scan runs only the lexer over source.
func (s *Session) Scan(source []byte) *Result {
	res := &Result{}
	res.Tokens, res.LexErrors = lexer.Scan(string(source))
	s.reportStatic(res)
	return res
}

// Parse scans and parses source without executing it.
func (s *Session) Parse(source []byte) *Result {
	start := time.Now()
	res := &Result{}
	res.Tokens, res.LexErrors = lexer.Scan(string(source))
	s.verbosef("scanned %d tokens in %s", len(res.Tokens), time.Since(start))

	start = time.Now()
	res.Statements, res.ParseErrors = parser.Parse(res.Tokens)
	s.verbosef("parsed %d statements in %s", len(res.Statements), time.Since(start))
	s.reportStatic(res)
	return res
}

// Run scans, parses, and, when both stages are clean, evaluates source.
// A failing statement is reported and the run moves on to the next one.
func (s *Session) Run(source []byte) *Result {
	res := s.Parse(source)
	if res.StaticErrors() {
		return res
	}
	s.execute(res)
	return res
}

// RunInteractive behaves like Run, except that input consisting of a single
// expression statement is evaluated for its value, which is returned so
// the caller can echo it. The value is nil when nothing is to be echoed.
func (s *Session) RunInteractive(source []byte) (*Result, runtime.Value) {
	res := s.Parse(source)
	if res.StaticErrors() {
		return res, nil
	}
	if len(res.Statements) != 1 {
		s.execute(res)
		return res, nil
	}
	stmt, ok := res.Statements[0].(*ast.ExpressionStatement)
	if !ok {
		s.execute(res)
		return res, nil
	}
	value, err := s.interp.EvaluateExpression(stmt.Expression)
	if err != nil {
		s.runtimeError(res, err)
		return res, nil
	}
	return res, value
}

func (s *Session) execute(res *Result) {
	start := time.Now()
	for _, stmt := range res.Statements {
		sig, err := s.interp.Evaluate(stmt)
		if err != nil {
			s.runtimeError(res, err)
			continue
		}
		if sig.IsBreak() {
			res.Halted = true
			break
		}
	}
	s.verbosef("evaluated in %s", time.Since(start))
}

func (s *Session) runtimeError(res *Result, err error) {
	res.RuntimeErrors = append(res.RuntimeErrors, err)
	if s.reporter != nil {
		s.reporter.RuntimeError(err)
	}
}

func (s *Session) reportStatic(res *Result) {
	if s.reporter == nil {
		return
	}
	for _, err := range res.LexErrors {
		s.reporter.LexError(err)
	}
	for _, err := range res.ParseErrors {
		s.reporter.ParseError(err)
	}
}

func (s *Session) verbosef(format string, args ...any) {
	if s.reporter != nil {
		s.reporter.Verbosef(format, args...)
	}
}

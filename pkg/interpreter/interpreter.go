package interpreter

import (
	"io"
	"os"
	"time"

	"rox/interpreter-go/pkg/ast"
	"rox/interpreter-go/pkg/runtime"
)

// DefaultMaxCallDepth bounds nested user-function calls when Options leaves
// MaxCallDepth at zero.
const DefaultMaxCallDepth = 1024

// Options configures an interpreter. Zero values select the defaults.
type Options struct {
	// Stdout receives print output. Defaults to os.Stdout.
	Stdout io.Writer
	// MaxCallDepth is the deepest permitted nesting of user-function calls.
	MaxCallDepth int
	// Now is the clock behind the clock() native. Defaults to time.Now.
	Now func() time.Time
}

// Interpreter evaluates top-level statements against one global
// environment that persists across calls.
type Interpreter struct {
	global       *runtime.Environment
	stdout       io.Writer
	maxCallDepth int
	now          func() time.Time
	callDepth    int
}

// New returns an interpreter whose global environment holds the natives.
func New(opts Options) *Interpreter {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.MaxCallDepth <= 0 {
		opts.MaxCallDepth = DefaultMaxCallDepth
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	i := &Interpreter{
		global:       runtime.NewEnvironment(nil),
		stdout:       opts.Stdout,
		maxCallDepth: opts.MaxCallDepth,
		now:          opts.Now,
	}
	i.initNatives()
	return i
}

// GlobalEnvironment returns the interpreter’s global environment.
func (i *Interpreter) GlobalEnvironment() *runtime.Environment {
	return i.global
}

// Evaluate runs one top-level statement. A break signal means a return
// statement executed outside any function.
func (i *Interpreter) Evaluate(stmt ast.Statement) (Signal, error) {
	i.callDepth = 0
	return i.evaluateStatement(stmt, i.global)
}

// EvaluateExpression evaluates an expression in the global scope.
func (i *Interpreter) EvaluateExpression(expr ast.Expression) (runtime.Value, error) {
	i.callDepth = 0
	return i.evaluateExpression(expr, i.global)
}

package driver

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"rox/interpreter-go/pkg/interpreter"
	"rox/interpreter-go/pkg/lexer"
	"rox/interpreter-go/pkg/parser"
)

// Reporter writes diagnostics as `[line N] <stage> error: <message>`.
type Reporter struct {
	out     io.Writer
	verbose bool

	errColor  *color.Color
	lineColor *color.Color
	dimColor  *color.Color
}

// NewReporter returns a reporter writing to out. Colour is applied only when
// useColor is set.
func NewReporter(out io.Writer, useColor, verbose bool) *Reporter {
	r := &Reporter{
		out:       out,
		verbose:   verbose,
		errColor:  color.New(color.FgRed, color.Bold),
		lineColor: color.New(color.FgYellow),
		dimColor:  color.New(color.Faint),
	}
	for _, c := range []*color.Color{r.errColor, r.lineColor, r.dimColor} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

// LexError reports a lexical error.
func (r *Reporter) LexError(err lexer.Error) {
	r.diagnostic(err.Line, "lex", err.Error())
}

// ParseError reports a syntax error.
func (r *Reporter) ParseError(err *parser.ParseError) {
	r.diagnostic(err.Line(), "parse", err.Error())
}

// RuntimeError reports a failed top-level statement. Errors that did not
// originate in the evaluator are reported without a line.
func (r *Reporter) RuntimeError(err error) {
	if rtErr, ok := interpreter.AsRuntimeError(err); ok {
		r.diagnostic(rtErr.Line, "runtime", rtErr.Error())
		return
	}
	r.diagnostic(0, "runtime", err.Error())
}

// Error reports a driver-level failure such as an unreadable file.
func (r *Reporter) Error(err error) {
	fmt.Fprintf(r.out, "%s %s\n", r.errColor.Sprint("error:"), err)
}

// Verbosef prints a dim progress line when verbose output is enabled.
func (r *Reporter) Verbosef(format string, args ...any) {
	if !r.verbose {
		return
	}
	fmt.Fprintln(r.out, r.dimColor.Sprintf(format, args...))
}

func (r *Reporter) diagnostic(line uint, stage, msg string) {
	prefix := ""
	if line > 0 {
		prefix = r.lineColor.Sprintf("[line %d]", line) + " "
	}
	fmt.Fprintf(r.out, "%s%s %s\n", prefix, r.errColor.Sprintf("%s error:", stage), msg)
}

package interpreter

import "rox/interpreter-go/pkg/runtime"

// SignalKind distinguishes normal completion from an executed return.
type SignalKind uint8

const (
	SignalContinue SignalKind = iota
	SignalBreak
)

func (k SignalKind) String() string {
	if k == SignalBreak {
		return "break"
	}
	return "continue"
}

// Signal is the control outcome of a statement. Blocks and loops hand a
// break upward untouched; the enclosing call turns it into its result.
// It never travels on the error channel.
type Signal struct {
	Kind  SignalKind
	Value runtime.Value
}

func continueSignal() Signal {
	return Signal{Kind: SignalContinue, Value: runtime.NilValue{}}
}

func breakSignal(value runtime.Value) Signal {
	if value == nil {
		value = runtime.NilValue{}
	}
	return Signal{Kind: SignalBreak, Value: value}
}

// IsBreak reports whether a return statement fired.
func (s Signal) IsBreak() bool {
	return s.Kind == SignalBreak
}

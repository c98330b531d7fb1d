// error.go — the unified error value for xgx-report.
//
// Scope:
//   - One exported contract (Error) over a CLOSED set of four concrete
//     variants, each describing where the failure entered this system:
//       • tracedErr  — a foreign error that carries its own backtrace
//                      (satisfies the Traced capability).
//       • messageErr — an opaque foreign error plus an optional attached
//                      message.
//       • chainErr   — an externally pre-aggregated causal chain (a
//                      pkg/errors-style value or a multierr combination).
//       • adhocErr   — an ad hoc message and/or a nested Error, for when
//                      no structured type is available.
//   - Every variant owns exactly one span trace and at most one backtrace,
//     both captured at construction and never retroactively. Values are
//     immutable once constructed and safe to move across goroutines.
//
// Interop:
//   - Unwrap() error is implemented on every variant so errors.Is/As
//     traverse the full causal chain.
package xgxreport

import (
	"github.com/xgx-io/xgx-report/backtrace"
	"github.com/xgx-io/xgx-report/spantrace"
)

// Traced is the backtrace capability contract: a foreign error that can
// hand over an already-normalized backtrace. Errors produced by this
// package satisfy it, as do any caller-defined types that captured their
// own stack.
//
// A nil return means the value had the capability but nothing was captured;
// it is treated the same as absence.
type Traced interface {
	error
	Backtrace() backtrace.Trace
}

// Error is the unified error value. It is implemented only by this
// package's four variants; callers construct values through the attachment
// layer in context.go and introspect them through Stack.
type Error interface {
	error

	// SpanTrace returns the span snapshot captured when the value was
	// created. The status may be "not captured"; that is not an error.
	SpanTrace() spantrace.SpanTrace

	// Backtrace returns the backtrace captured when the value was created,
	// or nil when none was captured.
	Backtrace() backtrace.Trace

	// Stack linearizes the value and everything it wraps into renderable
	// chain nodes, root marker first.
	Stack() []Node

	// Unwrap exposes the direct cause to stdlib traversal.
	Unwrap() error
}

// captured bundles the diagnostic snapshots every constructor takes.
type captured struct {
	span  spantrace.SpanTrace
	trace backtrace.Trace
}

// -----------------------------------------------------------------------------
// tracedErr — foreign cause with the backtrace capability
// -----------------------------------------------------------------------------

type tracedErr struct {
	source Traced
	captured
}

func (e *tracedErr) Error() string                  { return e.source.Error() }
func (e *tracedErr) Unwrap() error                  { return e.source }
func (e *tracedErr) SpanTrace() spantrace.SpanTrace { return e.span }
func (e *tracedErr) Backtrace() backtrace.Trace     { return e.trace }

// -----------------------------------------------------------------------------
// messageErr — opaque foreign cause, optional attached message
// -----------------------------------------------------------------------------

type messageErr struct {
	msg    string // may be empty: display falls back to the cause
	source error  // never nil
	captured
}

func (e *messageErr) Error() string {
	if e.msg == "" {
		return e.source.Error()
	}
	return e.msg + ": " + e.source.Error()
}

func (e *messageErr) Unwrap() error                  { return e.source }
func (e *messageErr) SpanTrace() spantrace.SpanTrace { return e.span }
func (e *messageErr) Backtrace() backtrace.Trace     { return e.trace }

// -----------------------------------------------------------------------------
// chainErr — externally pre-aggregated causal chain
// -----------------------------------------------------------------------------

type chainErr struct {
	source error // root of the external chain; never nil
	captured
}

func (e *chainErr) Error() string                  { return e.source.Error() }
func (e *chainErr) Unwrap() error                  { return e.source }
func (e *chainErr) SpanTrace() spantrace.SpanTrace { return e.span }
func (e *chainErr) Backtrace() backtrace.Trace     { return e.trace }

// -----------------------------------------------------------------------------
// adhocErr — optional message, optional nested Error
// -----------------------------------------------------------------------------

type adhocErr struct {
	msg   string
	cause Error // may be nil
	captured
}

func (e *adhocErr) Error() string {
	switch {
	case e.cause != nil && e.msg != "":
		return e.msg + ": " + e.cause.Error()
	case e.msg != "":
		return e.msg
	case e.cause != nil:
		return e.cause.Error()
	default:
		return "error"
	}
}

func (e *adhocErr) Unwrap() error {
	if e.cause == nil {
		return nil
	}
	return e.cause
}

func (e *adhocErr) SpanTrace() spantrace.SpanTrace { return e.span }
func (e *adhocErr) Backtrace() backtrace.Trace     { return e.trace }

// -----------------------------------------------------------------------------
// Interface conformance guards (kept with the types they guard)
// -----------------------------------------------------------------------------

var (
	_ Error = (*tracedErr)(nil)
	_ Error = (*messageErr)(nil)
	_ Error = (*chainErr)(nil)
	_ Error = (*adhocErr)(nil)
)

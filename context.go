// context.go — the context attachment layer for xgx-report.
//
// Purpose:
//   - Convert any failing outcome — a foreign error, an absent value, or an
//     existing unified value — into a unified error value, capturing a span
//     trace and a backtrace at that exact call site.
//   - Success passes through untouched: every attachment function returns
//     nil for a nil (or present) input, and lazy message producers are never
//     invoked on the success path.
//
// Capture is unconditional and synchronous: no caching, no deduplication of
// repeated captures. Spans reach a capture point only through an explicit
// context (WithSpans); without one the span trace records "unsupported",
// which renders as "not captured" and is never an error.
package xgxreport

import (
	"context"
	"errors"
	"fmt"

	"github.com/xgx-io/xgx-report/backtrace"
	"github.com/xgx-io/xgx-report/spantrace"
)

// Option adjusts how an attachment point captures its diagnostics.
type Option func(*options)

type options struct {
	ctx  context.Context
	skip int
}

// WithSpans captures the span stack carried by ctx alongside the backtrace.
// Without it the span trace records StatusUnsupported.
func WithSpans(ctx context.Context) Option {
	return func(o *options) { o.ctx = ctx }
}

// WithSkip drops n additional stack frames from the captured backtrace,
// for helpers that wrap the attachment functions.
func WithSkip(n int) Option {
	return func(o *options) { o.skip = n }
}

// snap takes the two snapshots every constructor owns. It MUST be called
// directly by an exported constructor: the skip arithmetic places the first
// captured frame at that constructor's caller.
func snap(opts []Option) captured {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	return captured{
		span:  spantrace.Capture(o.ctx),
		trace: backtrace.Capture(o.skip + 2),
	}
}

// Context attaches a fixed message to a failing outcome. A unified value is
// re-wrapped (its nodes flatten into the new chain); any other error becomes
// the opaque cause of a new value. Returns nil when err is nil.
func Context(err error, msg string, opts ...Option) error {
	if err == nil {
		return nil
	}
	c := snap(opts)
	if ue, ok := err.(Error); ok {
		return &adhocErr{msg: msg, cause: ue, captured: c}
	}
	return &messageErr{msg: msg, source: err, captured: c}
}

// Contextf is Context with fmt.Sprintf formatting.
func Contextf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	c := snap(nil)
	msg := fmt.Sprintf(format, args...)
	if ue, ok := err.(Error); ok {
		return &adhocErr{msg: msg, cause: ue, captured: c}
	}
	return &messageErr{msg: msg, source: err, captured: c}
}

// WithContext is Context with a lazily computed message: produce runs only
// on the failure path.
func WithContext(err error, produce func() string, opts ...Option) error {
	if err == nil {
		return nil
	}
	c := snap(opts)
	var msg string
	if produce != nil {
		msg = produce()
	}
	if ue, ok := err.(Error); ok {
		return &adhocErr{msg: msg, cause: ue, captured: c}
	}
	return &messageErr{msg: msg, source: err, captured: c}
}

// Wrap converts a failing outcome without attaching a message; display
// falls back to the wrapped cause's own text. A cause that proves the
// backtrace capability is preserved as such.
func Wrap(err error, opts ...Option) error {
	if err == nil {
		return nil
	}
	c := snap(opts)
	switch src := err.(type) {
	case Error:
		return &adhocErr{cause: src, captured: c}
	case Traced:
		return &tracedErr{source: src, captured: c}
	default:
		return &messageErr{source: err, captured: c}
	}
}

// Aggregate wraps an externally pre-aggregated causal chain — a pkg/errors
// value carrying its own pc stack, or a multierr combination — preserving
// the aggregate's own traversal rules during walking.
func Aggregate(err error, opts ...Option) error {
	if err == nil {
		return nil
	}
	return &chainErr{source: err, captured: snap(opts)}
}

// New constructs a unified value from a bare message.
func New(msg string, opts ...Option) Error {
	return &adhocErr{msg: msg, captured: snap(opts)}
}

// Errorf constructs a unified value from a formatted message.
func Errorf(format string, args ...any) Error {
	return &adhocErr{msg: fmt.Sprintf(format, args...), captured: snap(nil)}
}

// errAbsent is the synthesized cause for absent-value outcomes, so absence
// is reported uniformly with any other foreign failure.
var errAbsent = errors.New("expected a value, found none")

// Required converts a comma-ok outcome into a failing one: when ok is false
// it reports the synthesized absence cause wrapped with msg (msg may be
// empty). The value passes through unchanged when ok is true.
func Required[T any](v T, ok bool, msg string, opts ...Option) (T, error) {
	if ok {
		return v, nil
	}
	var zero T
	return zero, &messageErr{msg: msg, source: errAbsent, captured: snap(opts)}
}

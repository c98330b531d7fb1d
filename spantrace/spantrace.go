// Package spantrace captures snapshots of the logical execution contexts
// active at error-creation time.
//
// Instrumented regions are pushed onto a context.Context with With; Capture
// snapshots the stack once into an immutable SpanTrace. Go has no ambient
// subscriber, so capture is explicit: a capture point that never saw a
// context reports StatusUnsupported, a context with no pushed spans reports
// StatusEmpty, and neither is an error condition.
//
// When an OpenTelemetry span is active on the context at push time, its
// trace and span IDs are recorded on the entry so rendered span traces can
// be correlated with distributed traces.
package spantrace

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/trace"
)

// Status reports whether a SpanTrace was captured.
type Status int

const (
	// StatusUnsupported means no context was available at the capture
	// point, so nothing could be observed.
	StatusUnsupported Status = iota
	// StatusEmpty means a context was observed but no spans were active.
	StatusEmpty
	// StatusCaptured means at least one active span was recorded.
	StatusCaptured
)

func (s Status) String() string {
	switch s {
	case StatusUnsupported:
		return "unsupported"
	case StatusEmpty:
		return "empty"
	case StatusCaptured:
		return "captured"
	default:
		return "unknown"
	}
}

// Field is a single key-value annotation on a span.
type Field struct {
	Key string
	Val string
}

// Span is one recorded logical execution context.
type Span struct {
	Name   string
	Fields []Field
	// TraceID/SpanID mirror the OTel span context active when the span was
	// pushed; zero values mean no OTel span was active.
	TraceID trace.TraceID
	SpanID  trace.SpanID
}

// SpanTrace is an immutable snapshot of the active span stack, innermost
// (most recently entered) span first. The zero value has StatusUnsupported.
type SpanTrace struct {
	spans  []Span
	status Status
}

type ctxKey struct{}

// With pushes a named span onto the context's span stack and returns the
// derived context. kv is read as alternating key/value pairs; a trailing
// key with no value records an empty value. The parent stack is copied, so
// sibling contexts never observe each other's spans.
func With(ctx context.Context, name string, kv ...string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	parent, _ := ctx.Value(ctxKey{}).([]Span)

	sp := Span{Name: name, Fields: fieldsFromKV(kv...)}
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		sp.TraceID = sc.TraceID()
		sp.SpanID = sc.SpanID()
	}

	stack := make([]Span, len(parent)+1)
	copy(stack, parent)
	stack[len(parent)] = sp
	return context.WithValue(ctx, ctxKey{}, stack)
}

// Capture snapshots the span stack carried by ctx. Capture(nil) reports
// StatusUnsupported; a ctx without pushed spans reports StatusEmpty.
func Capture(ctx context.Context) SpanTrace {
	if ctx == nil {
		return SpanTrace{status: StatusUnsupported}
	}
	stack, _ := ctx.Value(ctxKey{}).([]Span)
	if len(stack) == 0 {
		return SpanTrace{status: StatusEmpty}
	}
	// Innermost first for display; the stored stack is push-ordered.
	spans := make([]Span, len(stack))
	for i, sp := range stack {
		spans[len(stack)-1-i] = sp
	}
	return SpanTrace{spans: spans, status: StatusCaptured}
}

// Status reports how the snapshot was taken.
func (st SpanTrace) Status() Status { return st.status }

// Len returns the number of recorded spans.
func (st SpanTrace) Len() int { return len(st.spans) }

// Spans returns a copy of the recorded spans, innermost first.
func (st SpanTrace) Spans() []Span {
	if len(st.spans) == 0 {
		return nil
	}
	out := make([]Span, len(st.spans))
	copy(out, st.spans)
	return out
}

// String renders the snapshot one span per line, innermost first:
//
//	   0: fetch{url=http://x} [trace=4bf9..., span=00f0...]
//	   1: request
func (st SpanTrace) String() string {
	if st.status != StatusCaptured {
		return "<span trace not captured>"
	}
	var sb strings.Builder
	for i, sp := range st.spans {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%4d: %s", i, sp.Name)
		if len(sp.Fields) > 0 {
			sb.WriteByte('{')
			for j, f := range sp.Fields {
				if j > 0 {
					sb.WriteByte(' ')
				}
				fmt.Fprintf(&sb, "%s=%s", f.Key, f.Val)
			}
			sb.WriteByte('}')
		}
		if sp.TraceID.IsValid() {
			fmt.Fprintf(&sb, " [trace=%s, span=%s]", sp.TraceID, sp.SpanID)
		}
	}
	return sb.String()
}

// fieldsFromKV parses alternating key/value strings. A trailing key with no
// value becomes (key, "").
func fieldsFromKV(kv ...string) []Field {
	if len(kv) == 0 {
		return nil
	}
	out := make([]Field, 0, len(kv)/2+1)
	for i := 0; i < len(kv); i += 2 {
		f := Field{Key: kv[i]}
		if i+1 < len(kv) {
			f.Val = kv[i+1]
		}
		out = append(out, f)
	}
	return out
}

// stack.go — causal-chain linearization for xgx-report.
//
// The walker turns a unified error value (and everything it wraps) into an
// ordered, owned list of Chain nodes in creation-outward order: the root
// marker for the wrap point first, the wrapped cause next, then its
// ancestors. Rendering consumes the node list read-only; walking never
// mutates the value and repeated walks yield equal lists.
//
// Capability probing happens in exactly one place (probeTrace): a foreign
// link either hands over a normalized backtrace there or its node carries
// nil. No placeholder is fabricated at this stage — substitution for
// missing traces is a render-time concern.
package xgxreport

import (
	"errors"

	pkgerrors "github.com/pkg/errors"

	"github.com/xgx-io/xgx-report/backtrace"
)

// Node is one renderable link of a linearized causal chain: a display-text
// source paired with the backtrace attributed to it, if any.
type Node struct {
	// Trace is the backtrace attributed to this link, nil when the link
	// carries none.
	Trace backtrace.Trace
	// Cause is the error this node renders. nil marks the root node: the
	// wrap point itself, which has no text of its own.
	Cause error
}

// Root reports whether the node is the synthetic wrap-point marker.
func (n Node) Root() bool { return n.Cause == nil }

// String returns the node's display text.
func (n Node) String() string {
	if n.Cause == nil {
		return "Root"
	}
	return n.Cause.Error()
}

// probeTrace is the single conversion point between foreign backtrace
// capabilities and the normalized representation. It recognizes, in order:
// this package's own Traced contract, then the pc stacks carried by
// pkg/errors values. Everything else yields nil.
func probeTrace(err error) backtrace.Trace {
	switch t := err.(type) {
	case Traced:
		return t.Backtrace()
	case interface{ StackTrace() pkgerrors.StackTrace }:
		return backtrace.FromPkgErrors(t.StackTrace())
	}
	return nil
}

// maxChainDepth guards foreign chains that violate the forward-finite
// invariant (a cyclic Unwrap would otherwise spin forever).
const maxChainDepth = 1 << 12

// appendChain walks err's declared-cause chain (err included) and appends
// one probed node per link.
func appendChain(nodes []Node, err error) []Node {
	for c, depth := err, 0; c != nil && depth < maxChainDepth; c, depth = errors.Unwrap(c), depth+1 {
		nodes = append(nodes, Node{Trace: probeTrace(c), Cause: c})
	}
	return nodes
}

// Stack on tracedErr: root marker, the capability-bearing source, then its
// declared causes, each probed individually.
func (e *tracedErr) Stack() []Node {
	nodes := []Node{{Trace: e.trace}}
	return appendChain(nodes, e.source)
}

// Stack on messageErr: root marker, then the opaque cause chain with a
// capability probe on every link.
func (e *messageErr) Stack() []Node {
	nodes := []Node{{Trace: e.trace}}
	return appendChain(nodes, e.source)
}

// Stack on chainErr: root marker, then the aggregate's own chain. The
// aggregate root's node gets its backtrace from the normalized external
// representation via the same probe.
func (e *chainErr) Stack() []Node {
	nodes := []Node{{Trace: e.trace}}
	return appendChain(nodes, e.source)
}

// Stack on adhocErr: root marker, then — when a nested value is present —
// one node for the nested value followed by its own node list minus its
// root marker. Flattening this way keeps re-wrapping from ever producing
// two adjacent root markers.
func (e *adhocErr) Stack() []Node {
	nodes := []Node{{Trace: e.trace}}
	if e.cause == nil {
		return nodes
	}
	nodes = append(nodes, Node{Trace: e.cause.Backtrace(), Cause: e.cause})
	inner := e.cause.Stack()
	if len(inner) > 0 && inner[0].Root() {
		inner = inner[1:]
	}
	return append(nodes, inner...)
}

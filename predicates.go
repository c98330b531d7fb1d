// predicates.go — minimal, stdlib-aligned predicates for xgx-report.
//
// Scope:
//   • Zero-policy helpers answering common classification questions.
//   • Interop-first: built on errors.Is / errors.As, so traversal works with
//     both single Unwrap() error and multi Unwrap() []error.
//
// Out of scope:
//   • HTTP/status mapping, retry policy, logging.
package xgxreport

import (
	"context"
	"errors"

	"github.com/xgx-io/xgx-report/backtrace"
)

// IsAbsent reports whether err stems from a Required check that found no
// value.
func IsAbsent(err error) bool {
	return errors.Is(err, errAbsent)
}

// Interrupted reports whether err is (or wraps) a context cancellation or
// deadline expiry.
func Interrupted(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// HasTrace reports whether any level of err's chain carries a backtrace,
// whether captured here or imported from a foreign traced error.
func HasTrace(err error) bool {
	if ue, ok := err.(Error); ok {
		for _, n := range ue.Stack() {
			if n.Trace != nil {
				return true
			}
		}
		return false
	}
	for _, level := range Chain(err) {
		if probeTrace(level) != nil {
			return true
		}
	}
	return false
}

// RootCause returns the innermost error in err's linear chain.
// Returns nil iff err is nil.
func RootCause(err error) error {
	chain := Chain(err)
	if len(chain) == 0 {
		return nil
	}
	return chain[len(chain)-1]
}

// InnermostTrace returns the deepest captured backtrace in err's chain,
// nil when none was captured.
func InnermostTrace(err error) backtrace.Trace {
	var last backtrace.Trace
	if ue, ok := err.(Error); ok {
		for _, n := range ue.Stack() {
			if n.Trace != nil {
				last = n.Trace
			}
		}
		return last
	}
	for _, level := range Chain(err) {
		if t := probeTrace(level); t != nil {
			last = t
		}
	}
	return last
}

// unwrap.go — stdlib-interop chain helpers.
//
// Scope (tiny, policy-free):
//   - Chain: the linear declared-cause sequence the walker, the dedup pass,
//     and the report adapter all share. Only Unwrap() error is followed; an
//     aggregate exposing Unwrap() []error terminates the linear chain and
//     contributes its combined text as one link (its branches stay
//     reachable through errors.Is/As and Split in join.go).
//   - Has: nil-safe errors.Is.
package xgxreport

import "errors"

// Chain returns err followed by its declared causes, outermost first.
// Returns nil for a nil error.
func Chain(err error) []error {
	if err == nil {
		return nil
	}
	out := make([]error, 0, 4)
	for c, depth := err, 0; c != nil && depth < maxChainDepth; c, depth = errors.Unwrap(c), depth+1 {
		out = append(out, c)
	}
	return out
}

// Has reports whether target appears anywhere in err's unwrap graph.
// It wraps errors.Is with nil-safety.
func Has(err, target error) bool {
	if err == nil || target == nil {
		return false
	}
	return errors.Is(err, target)
}

// join.go — multi-error combination for xgx-report.
//
// Goals:
//   • Preserve stdlib semantics for unwrapping & traversal:
//       - combined values expose Unwrap() []error, so errors.Is/As walk
//         every branch (Go 1.20+ multi-unwrap).
//       - Error() is the semicolon-joined child form; "%+v" prints each
//         child on its own line.
//   • Keep diagnostics flowing: a combined value is still renderable with
//     Report and CleanedChain, which treat it as a single chain level.
//
// The heavy lifting is go.uber.org/multierr; these wrappers exist so callers
// stay on one import and so Split has a home next to Join.
package xgxreport

import (
	"go.uber.org/multierr"
)

// Join combines the given errors into one, ignoring nils.
// All nil → nil; one non-nil → that error (identity preserved);
// 2+ non-nil → a combined value with Unwrap() []error.
func Join(errs ...error) error {
	return multierr.Combine(errs...)
}

// Append combines head with more, optimizing the common nil cases.
// Same identity rules as Join.
func Append(head error, more ...error) error {
	for _, e := range more {
		head = multierr.Append(head, e)
	}
	return head
}

// Split returns the individual errors inside a combined value.
// A nil error yields nil; a non-combined error yields a one-element slice.
func Split(err error) []error {
	return multierr.Errors(err)
}

// doc.go — package documentation for xgx-report
//
// Package xgxreport provides a unified error type for application code:
// every constructor yields a value that carries a backtrace, an optional
// span trace, and a walkable cause chain, regardless of what kind of error
// it started as. It is designed to be:
//   - Uniform at call sites (wrap anything, get the same diagnostics)
//   - Interoperable with the stdlib (errors.Is/As/Unwrap, fmt.Formatter)
//   - Policy-free (no HTTP/logging/retry rules in core)
//
// # The Four Shapes
//
// Incoming failures fall into four shapes, and the constructors normalize
// all of them into one Error interface:
//
//	+---------------------------+------------------------------+----------------------+
//	| Incoming value            | Constructor                  | Captures trace?      |
//	+---------------------------+------------------------------+----------------------+
//	| traced error (Backtrace)  | Wrap(err)                    | YES (own + source's) |
//	| plain error + message     | Context(err, msg) / Contextf | YES                  |
//	| foreign chain (pkg/errors)| Aggregate(err)               | YES (+ probed)       |
//	| nothing yet (ad hoc)      | New(msg) / Errorf            | YES                  |
//	+---------------------------+------------------------------+----------------------+
//
// Every constructor also accepts options: WithSpans(ctx) snapshots the
// span stack carried in ctx (see the spantrace subpackage), WithSkip(n)
// moves the capture site up for helper wrappers.
//
// Re-wrapping an Error with Context or Wrap stacks a new annotation on top
// without duplicating the underlying diagnostics; the combined chain stays
// flat and walkable via Stack().
//
// # Lazy Messages
//
// WithContext(err, produce) defers message construction to the failure
// path; produce is never called when err is nil. Required(v, ok, msg)
// turns an absent optional value into a wrapped error testable with
// IsAbsent.
//
// # Formatting
//
// Unified errors implement fmt.Formatter:
//   - %v, %s → concise, single-line Error()
//   - %+v    → full diagnostics (chain, span trace, per-level backtraces)
//   - %q     → quoted Error()
//
// Backtrace rendering obeys XGX_BACKTRACE ("" → minimal, "full" → full,
// anything else → medium); dependency and runtime frames are hidden below
// full. See the backtrace subpackage for the printer and filters.
//
// # Termination
//
// Report adapts a top-level outcome to a process exit:
//
//	func main() {
//		xgxreport.CaptureReport(run).Exit()
//	}
//
// On failure it prints the cause chain with redundant text removed
// (CleanedChain); set XGX_RAW_ERROR_MESSAGES=1 to see raw messages.
//
// # Foreign Error Caveat
//
// Stack(), HasTrace and friends interpret errors built by this package and
// errors exposing a pkg/errors-style StackTrace. Other foreign errors
// still participate in the chain but contribute no trace of their own.
package xgxreport

// format.go — fmt.Formatter implementations for xgx-report.
//
// Behavior:
//
//	%s, %v  → concise string (Error()).
//	%q      → quoted concise string.
//	%+v     → the full diagnostic trace:
//	            blank line
//	            zero-indexed display text of every non-root chain node
//	            blank line
//	            "Span trace:" block when a span trace was captured
//	            one filtered backtrace block per chain node, root included,
//	            each preceded by a blank line (an explicit placeholder
//	            stands in for nodes without a trace)
//
// The frame-filter pipeline is assembled per render: the fixed noise filter
// always, the dependency filter unless verbosity is Full. Verbosity is read
// from the environment at render time and never cached here, so rendering
// the same value twice under the same environment is byte-identical.
package xgxreport

import (
	"fmt"
	"io"

	"github.com/xgx-io/xgx-report/backtrace"
	"github.com/xgx-io/xgx-report/spantrace"
)

// noiseFramePrefixes is the fixed list of this module's own plumbing; user
// diagnostics never show the diagnostic machinery itself.
var noiseFramePrefixes = []string{
	"github.com/xgx-io/xgx-report.snap",
	"github.com/xgx-io/xgx-report.formatDiagnostic",
	"github.com/xgx-io/xgx-report.formatError",
	"github.com/xgx-io/xgx-report/backtrace.Capture",
	"github.com/xgx-io/xgx-report.(*tracedErr).Format",
	"github.com/xgx-io/xgx-report.(*messageErr).Format",
	"github.com/xgx-io/xgx-report.(*chainErr).Format",
	"github.com/xgx-io/xgx-report.(*adhocErr).Format",
}

// formatDiagnostic writes the full developer-facing trace.
func formatDiagnostic(w io.Writer, e Error) {
	verb := backtrace.VerbosityFromEnv()
	printer := backtrace.NewPrinter().
		AddFrameFilter(backtrace.PrefixFilter(noiseFramePrefixes...))
	if verb != backtrace.VerbosityFull {
		printer.AddFrameFilter(backtrace.DependencyFilter)
	}

	stack := e.Stack()

	fmt.Fprintln(w)
	for i, n := range stack[1:] {
		fmt.Fprintf(w, "    %d: %s\n", i, n)
	}
	fmt.Fprintln(w)

	if st := e.SpanTrace(); st.Status() == spantrace.StatusCaptured {
		fmt.Fprintln(w, "Span trace:")
		fmt.Fprintf(w, "%s\n\n", st)
	}

	for _, n := range stack {
		fmt.Fprintf(w, "\n%s\n", printer.Format(n.Trace))
	}
}

func formatError(e Error, s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			formatDiagnostic(s, e)
			return
		}
		_, _ = io.WriteString(s, e.Error())
	case 's':
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		_, _ = io.WriteString(s, e.Error())
	}
}

func (e *tracedErr) Format(s fmt.State, verb rune)  { formatError(e, s, verb) }
func (e *messageErr) Format(s fmt.State, verb rune) { formatError(e, s, verb) }
func (e *chainErr) Format(s fmt.State, verb rune)   { formatError(e, s, verb) }
func (e *adhocErr) Format(s fmt.State, verb rune)   { formatError(e, s, verb) }

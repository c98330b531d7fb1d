// report.go — the report / termination adapter.
//
// Report maps a top-level outcome to a process exit status, rendering
// diagnostics only on failure. Success produces no output and status 0;
// failure writes the display text, the (cleaned or raw) cause chain, and a
// final backtrace block to the error stream, then yields status 1.
//
// Typical main:
//
//	func main() {
//		xgxreport.CaptureReport(run).Exit()
//	}
//
// Library code should keep returning unified error values and leave
// rendering to the caller; Report is for the outermost boundary only.
package xgxreport

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xgx-io/xgx-report/backtrace"
)

// Report wraps a computation's outcome: nil for success, a terminal
// failure value otherwise.
type Report struct {
	err error
}

// ReportOK is the outcome of a computation that did not fail.
func ReportOK() Report { return Report{} }

// NewReport adapts an outcome (nil or a failure value) into a Report.
func NewReport(err error) Report { return Report{err: err} }

// CaptureReport runs body and adapts its outcome.
func CaptureReport(body func() error) Report { return Report{err: body()} }

// Failed reports whether the outcome was a failure.
func (r Report) Failed() bool { return r.err != nil }

// Err returns the wrapped failure, nil on success.
func (r Report) Err() error { return r.err }

// Render writes the failure diagnostics to w. Success writes nothing.
// The text-cleaning toggle is resolved once per process and threaded in
// here explicitly.
func (r Report) Render(w io.Writer) {
	if r.err == nil {
		return
	}
	writeReport(w, r.err, RawMessagesEnabled())
}

// String returns the rendered diagnostics, empty on success.
func (r Report) String() string {
	var sb strings.Builder
	r.Render(&sb)
	return sb.String()
}

// ExitCode maps the outcome to a process exit status, writing diagnostics
// to the error stream on failure: success → 0, failure → 1.
func (r Report) ExitCode() int {
	if r.err == nil {
		return 0
	}
	fmt.Fprint(os.Stderr, "Error: ")
	r.Render(os.Stderr)
	return 1
}

// Exit terminates the process with the report's exit status.
func (r Report) Exit() {
	os.Exit(r.ExitCode())
}

func writeReport(w io.Writer, err error, raw bool) {
	if raw {
		writeRawTrace(w, err)
	} else {
		writeCleanedTrace(w, err)
	}
	if bt := reportTrace(err); bt != nil {
		fmt.Fprintf(w, "\nBacktrace:\n%s\n", bt)
	}
}

// reportTrace selects the trace for the final backtrace block: the
// innermost chain node's for unified values, a capability probe otherwise.
func reportTrace(err error) backtrace.Trace {
	if ue, ok := err.(Error); ok {
		nodes := ue.Stack()
		return nodes[len(nodes)-1].Trace
	}
	return probeTrace(err)
}

// writeRawTrace prints every chain level's raw text unmodified.
func writeRawTrace(w io.Writer, err error) {
	fmt.Fprintln(w, err.Error())

	sources := Chain(err)[1:]
	switch len(sources) {
	case 0:
	case 1:
		fmt.Fprintln(w, "\nCaused by this error:")
	default:
		fmt.Fprintln(w, "\nCaused by these errors (recent errors listed first):")
	}
	for i, s := range sources {
		fmt.Fprintf(w, "%3d: %s\n", i+1, s.Error())
	}
}

// writeCleanedTrace prints the deduplicated chain: levels fully subsumed by
// their cause are omitted, cleaned levels are marked, and a trailing note
// names the toggle that disables the behavior.
func writeCleanedTrace(w io.Writer, err error) {
	const note = "*"

	var anyCleaned, anyRemoved bool
	levels := CleanedChain(err)
	visible := make([]string, 0, len(levels))
	for _, l := range levels {
		if l.Text == "" {
			anyRemoved = true
			continue
		}
		msg := l.Text
		if l.Cleaned {
			anyCleaned = true
			msg += " " + note
		}
		visible = append(visible, msg)
	}
	if len(visible) == 0 {
		return
	}

	fmt.Fprintln(w, visible[0])

	switch len(visible) {
	case 1:
	case 2:
		fmt.Fprintln(w, "\nCaused by this error:")
	default:
		fmt.Fprintln(w, "\nCaused by these errors (recent errors listed first):")
	}
	for i, msg := range visible[1:] {
		fmt.Fprintf(w, "%3d: %s\n", i+1, msg)
	}

	if anyCleaned || anyRemoved {
		fmt.Fprint(w, "\nNOTE: ")
		if anyCleaned {
			fmt.Fprintf(w, "Some redundant information has been removed from the lines marked with %s. ", note)
		} else {
			fmt.Fprint(w, "Some redundant information has been removed. ")
		}
		fmt.Fprintf(w, "Set %s=1 to disable this behavior.\n", EnvRawMessages)
	}
}

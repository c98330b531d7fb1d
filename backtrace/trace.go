// trace.go — normalized backtrace capture for xgx-report.
//
// Design goals:
//   - One frame representation: every capture shape is converted into Trace
//     at capture time, so nothing downstream dispatches on where a stack
//     came from.
//   - Two ingestion paths:
//       • Capture       — direct runtime.Callers capture at a wrap site.
//       • FromPkgErrors — program-counter stacks carried by github.com/pkg/errors
//         values (the common "foreign error that already has a stack" shape).
//   - Pragmatic performance: bounded depth, allocations only on failure paths.
//
// Notes:
//   - We resolve frames via runtime.CallersFrames, which expands inlined
//     calls correctly (FuncForPC does not).
//   - pkg/errors stores raw runtime.Callers output in its StackTrace, so its
//     program counters feed CallersFrames unmodified.
package backtrace

import (
	"fmt"
	"runtime"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// Frame is a single resolved call site.
type Frame struct {
	PC       uintptr // program counter of the call return
	Function string  // fully-qualified function name (pkg.Func or recv.method)
	File     string  // absolute file path as reported by runtime
	Line     int
}

// Trace is an ordered frame sequence, most recent call first. A nil Trace
// means "no backtrace captured"; an empty non-nil Trace means "captured,
// zero frames survived filtering".
type Trace []Frame

// defaultMaxDepth bounds capture work on exceptional paths.
const defaultMaxDepth = 64

// Capture records the current goroutine's stack, skipping 'skip' frames
// beyond the Capture call itself.
//
// Skip accounting mirrors runtime.Callers semantics:
//   - +1 for runtime.Callers
//   - +1 for Capture
//
// so skip=0 places the first frame at Capture's caller.
func Capture(skip int) Trace {
	pc := make([]uintptr, defaultMaxDepth)
	n := runtime.Callers(skip+2, pc)
	if n == 0 {
		return nil
	}
	return resolve(pc[:n])
}

// FromPkgErrors normalizes a pkg/errors stack into a Trace.
// Returns nil for an empty input so absence stays represented as nil.
func FromPkgErrors(st pkgerrors.StackTrace) Trace {
	if len(st) == 0 {
		return nil
	}
	pc := make([]uintptr, len(st))
	for i, f := range st {
		pc[i] = uintptr(f)
	}
	return resolve(pc)
}

func resolve(pc []uintptr) Trace {
	frames := runtime.CallersFrames(pc)
	out := make(Trace, 0, len(pc))
	for {
		fr, more := frames.Next()
		out = append(out, Frame{
			PC:       fr.PC,
			Function: fr.Function,
			File:     fr.File,
			Line:     fr.Line,
		})
		if !more {
			break
		}
	}
	return out
}

// IsDependency reports whether the frame is attributed to code outside the
// invoking program: the module cache, the standard library, or runtime and
// test-harness plumbing.
func (f Frame) IsDependency() bool {
	if strings.Contains(f.File, "/pkg/mod/") {
		return true
	}
	for _, p := range stdPrefixes {
		if strings.HasPrefix(f.Function, p) {
			return true
		}
	}
	return goroot != "" && strings.HasPrefix(f.File, goroot)
}

// stdPrefixes catches stdlib plumbing even when GOROOT detection fails
// (stripped binaries, trimpath builds).
var stdPrefixes = []string{"runtime.", "testing.", "reflect."}

var goroot = runtime.GOROOT()

// String renders the trace in the plain two-line-per-frame form used by the
// report adapter's final backtrace block. Rich filtered rendering lives in
// Printer.
func (t Trace) String() string {
	var sb strings.Builder
	for i, f := range t {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%s\n\t%s:%d", f.Function, f.File, f.Line)
	}
	return sb.String()
}

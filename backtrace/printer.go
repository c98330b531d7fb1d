// printer.go — frame-filter pipeline and block formatting for xgx-report.
//
// The pipeline is a small ordered list of pure set-subtraction stages:
// each FrameFilter returns a subset of its input in the original order.
// Filters never reorder and never fabricate frames; an empty result is a
// legitimate outcome and renders as an explicit placeholder line.
//
// Coloring follows the terminal conventions the rest of the toolchain uses
// (bold headers, faint source locations) and is disabled automatically on
// non-TTY outputs by fatih/color.
package backtrace

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// FrameFilter removes frames from a trace. Implementations must preserve
// relative order and must not mutate the input slice.
type FrameFilter func([]Frame) []Frame

// PrefixFilter drops frames whose function name starts with any of the
// given prefixes. Used for the always-on noise stage that hides this
// module's own capture and rendering plumbing.
func PrefixFilter(prefixes ...string) FrameFilter {
	return func(frames []Frame) []Frame {
		out := make([]Frame, 0, len(frames))
	next:
		for _, f := range frames {
			for _, p := range prefixes {
				if strings.HasPrefix(f.Function, p) {
					continue next
				}
			}
			out = append(out, f)
		}
		return out
	}
}

// DependencyFilter drops frames attributed to code outside the invoking
// program. Applied by renderers unless verbosity is Full.
func DependencyFilter(frames []Frame) []Frame {
	out := make([]Frame, 0, len(frames))
	for _, f := range frames {
		if !f.IsDependency() {
			out = append(out, f)
		}
	}
	return out
}

var (
	headerColor   = color.New(color.Bold)
	locationColor = color.New(color.Faint)
)

// Printer formats traces through its filter pipeline. The zero value prints
// unfiltered; filters are applied in the order they were added.
type Printer struct {
	filters []FrameFilter
}

// NewPrinter returns an empty Printer.
func NewPrinter() *Printer {
	return &Printer{}
}

// AddFrameFilter appends a stage to the pipeline and returns the Printer
// for chaining.
func (p *Printer) AddFrameFilter(f FrameFilter) *Printer {
	p.filters = append(p.filters, f)
	return p
}

// Apply runs the pipeline over a copy of t and returns the surviving frames.
func (p *Printer) Apply(t Trace) []Frame {
	frames := make([]Frame, len(t))
	copy(frames, t)
	for _, f := range p.filters {
		frames = f(frames)
	}
	return frames
}

// Format renders the filtered trace as a block:
//
//	Backtrace (most recent call first):
//	   0: main.fetchUser
//	      at /src/app/main.go:42
//
// A nil trace (never captured) and a trace with no surviving frames both
// render the placeholder line under the header, so chain output always has
// one block per node.
func (p *Printer) Format(t Trace) string {
	var sb strings.Builder
	sb.WriteString(headerColor.Sprint("Backtrace (most recent call first):"))

	frames := p.Apply(t)
	if len(frames) == 0 {
		sb.WriteString("\n  <no frames>")
		return sb.String()
	}
	for i, f := range frames {
		fmt.Fprintf(&sb, "\n  %2d: %s", i, f.Function)
		fmt.Fprintf(&sb, "\n      %s", locationColor.Sprintf("at %s:%d", f.File, f.Line))
	}
	return sb.String()
}

// report_test.go — terminal rendering: cleaned/raw chains and exit mapping.
package xgxreport

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	pkgerrors "github.com/pkg/errors"
)

// --- Outcome mapping -------------------------------------------------------------

func TestReport_SuccessIsSilent(t *testing.T) {
	t.Parallel()

	r := NewReport(nil)
	if r.Failed() {
		t.Fatal("nil outcome reported as failed")
	}
	if r.ExitCode() != 0 {
		t.Fatalf("ExitCode = %d; want 0", r.ExitCode())
	}
	if r.String() != "" {
		t.Fatalf("success rendered output: %q", r.String())
	}
}

func TestReportOK_EqualsNilOutcome(t *testing.T) {
	t.Parallel()

	if ReportOK().Failed() {
		t.Fatal("ReportOK reported as failed")
	}
}

func TestCaptureReport_AdaptsClosureOutcome(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	r := CaptureReport(func() error { return boom })
	if !r.Failed() {
		t.Fatal("failure not captured")
	}
	if r.Err() != boom {
		t.Fatalf("Err() = %v; want the closure's error", r.Err())
	}

	ok := CaptureReport(func() error { return nil })
	if ok.Failed() {
		t.Fatal("success not captured")
	}
}

// --- Cleaned rendering -----------------------------------------------------------

func TestWriteCleanedTrace_SingleLevel(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	writeCleanedTrace(&sb, errors.New("boom"))

	if got, want := sb.String(), "boom\n"; got != want {
		t.Fatalf("output = %q; want %q", got, want)
	}
}

func TestWriteCleanedTrace_TwoLevels_SingularTrailer(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("saving profile: %w", errors.New("disk full"))

	var sb strings.Builder
	writeCleanedTrace(&sb, err)
	out := sb.String()

	if !strings.Contains(out, "Caused by this error:") {
		t.Fatalf("singular trailer missing:\n%s", out)
	}
	if strings.Contains(out, "Caused by these errors") {
		t.Fatalf("plural trailer on a two-level chain:\n%s", out)
	}
	if !strings.Contains(out, "  1: disk full\n") {
		t.Fatalf("cause line missing or misnumbered:\n%s", out)
	}
}

func TestWriteCleanedTrace_ThreeLevels_PluralTrailer(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("l2: %w", fmt.Errorf("l1: %w", errors.New("leaf")))

	var sb strings.Builder
	writeCleanedTrace(&sb, err)
	out := sb.String()

	if !strings.Contains(out, "Caused by these errors (recent errors listed first):") {
		t.Fatalf("plural trailer missing:\n%s", out)
	}
	if !strings.Contains(out, "  1: l1 *\n") || !strings.Contains(out, "  2: leaf\n") {
		t.Fatalf("cause lines wrong:\n%s", out)
	}
}

func TestWriteCleanedTrace_MarksCleanedLinesAndExplains(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("A: %w", errors.New("B"))

	var sb strings.Builder
	writeCleanedTrace(&sb, err)
	out := sb.String()

	if !strings.HasPrefix(out, "A *\n") {
		t.Fatalf("head line not cleaned-marked:\n%s", out)
	}
	if !strings.Contains(out, "lines marked with *") {
		t.Fatalf("NOTE missing the marker explanation:\n%s", out)
	}
	if !strings.Contains(out, "Set "+EnvRawMessages+"=1 to disable this behavior.") {
		t.Fatalf("NOTE missing the toggle hint:\n%s", out)
	}
}

func TestWriteCleanedTrace_SkipsSubsumedLevels(t *testing.T) {
	t.Parallel()

	inner := errors.New("boom")
	err := Wrap(inner) // display equals the cause's: level fully subsumed

	var sb strings.Builder
	writeCleanedTrace(&sb, err)
	out := sb.String()

	if !strings.HasPrefix(out, "boom\n") {
		t.Fatalf("head should be the surviving level:\n%s", out)
	}
	if strings.Contains(out, "Caused by") {
		t.Fatalf("trailer rendered for a single surviving level:\n%s", out)
	}
	if !strings.Contains(out, "Some redundant information has been removed. ") {
		t.Fatalf("NOTE missing for removed level:\n%s", out)
	}
}

func TestWriteCleanedTrace_NoNoteWhenNothingCleaned(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("saving failed (%w)", errors.New("disk full"))

	var sb strings.Builder
	writeCleanedTrace(&sb, err)
	out := sb.String()

	if strings.Contains(out, "NOTE:") {
		t.Fatalf("NOTE rendered though nothing was cleaned:\n%s", out)
	}
}

// --- Raw rendering -----------------------------------------------------------------

func TestWriteRawTrace_KeepsEveryLevelVerbatim(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("A: %w", errors.New("B"))

	var sb strings.Builder
	writeRawTrace(&sb, err)
	out := sb.String()

	if !strings.HasPrefix(out, "A: B\n") {
		t.Fatalf("head not verbatim:\n%s", out)
	}
	if !strings.Contains(out, "  1: B\n") {
		t.Fatalf("cause not verbatim:\n%s", out)
	}
	if strings.Contains(out, "NOTE:") {
		t.Fatalf("raw rendering carries the cleaning NOTE:\n%s", out)
	}
}

// --- Final backtrace block -----------------------------------------------------------

func TestWriteReport_BacktraceBlockForTracedRoot(t *testing.T) {
	t.Parallel()

	err := Aggregate(pkgerrors.New("boom"))

	var sb strings.Builder
	writeReport(&sb, err, false)
	out := sb.String()

	if !strings.Contains(out, "\nBacktrace:\n") {
		t.Fatalf("backtrace block missing for a traced root:\n%s", out)
	}
	if !strings.Contains(out, "TestWriteReport_BacktraceBlockForTracedRoot") {
		t.Fatalf("backtrace block does not show the origin frame:\n%s", out)
	}
}

func TestWriteReport_NoBacktraceBlockForOpaqueRoot(t *testing.T) {
	t.Parallel()

	err := Context(errors.New("plain"), "top")

	var sb strings.Builder
	writeReport(&sb, err, false)

	if strings.Contains(sb.String(), "Backtrace:") {
		t.Fatalf("backtrace block rendered for a traceless root:\n%s", sb.String())
	}
}

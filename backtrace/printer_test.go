package backtrace

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pipelineFrames = []Frame{
	{Function: "main.fetchUser", File: "/src/app/main.go", Line: 42},
	{Function: "github.com/xgx-io/xgx-report.snap", File: "/src/lib/context.go", Line: 55},
	{Function: "runtime.goexit", File: "/opt/go/src/runtime/asm_amd64.s", Line: 1},
	{Function: "main.main", File: "/src/app/main.go", Line: 10},
}

func TestPrefixFilter_DropsMatchingFunctions(t *testing.T) {
	t.Parallel()

	got := PrefixFilter("github.com/xgx-io/xgx-report.")(pipelineFrames)
	require.Len(t, got, 3)
	for _, f := range got {
		assert.NotContains(t, f.Function, "xgx-report")
	}
}

func TestPrefixFilter_PreservesOrder(t *testing.T) {
	t.Parallel()

	got := PrefixFilter("runtime.")(pipelineFrames)
	require.Len(t, got, 3)
	assert.Equal(t, "main.fetchUser", got[0].Function)
	assert.Equal(t, "main.main", got[2].Function)
}

func TestDependencyFilter_KeepsProgramFramesOnly(t *testing.T) {
	t.Parallel()

	got := DependencyFilter(pipelineFrames)
	require.Len(t, got, 3)
	for _, f := range got {
		assert.False(t, f.IsDependency(), "kept dependency frame %q", f.Function)
	}
}

func TestPrinter_AppliesStagesInOrder(t *testing.T) {
	t.Parallel()

	p := NewPrinter().
		AddFrameFilter(PrefixFilter("github.com/xgx-io/xgx-report.")).
		AddFrameFilter(DependencyFilter)

	got := p.Apply(Trace(pipelineFrames))
	require.Len(t, got, 2)
	assert.Equal(t, "main.fetchUser", got[0].Function)
	assert.Equal(t, "main.main", got[1].Function)
}

func TestPrinter_ApplyDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	in := Trace{
		{Function: "a"},
		{Function: "b"},
	}
	NewPrinter().AddFrameFilter(PrefixFilter("a")).Apply(in)
	assert.Equal(t, "a", in[0].Function)
	assert.Equal(t, "b", in[1].Function)
}

func TestPrinterFormat_Block(t *testing.T) {
	restore := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = restore }()

	bt := Trace{
		{Function: "main.fetchUser", File: "/src/app/main.go", Line: 42},
		{Function: "main.main", File: "/src/app/main.go", Line: 10},
	}
	want := "Backtrace (most recent call first):\n" +
		"   0: main.fetchUser\n" +
		"      at /src/app/main.go:42\n" +
		"   1: main.main\n" +
		"      at /src/app/main.go:10"
	assert.Equal(t, want, NewPrinter().Format(bt))
}

func TestPrinterFormat_PlaceholderForEmptyAndNil(t *testing.T) {
	restore := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = restore }()

	want := "Backtrace (most recent call first):\n  <no frames>"
	assert.Equal(t, want, NewPrinter().Format(nil))

	p := NewPrinter().AddFrameFilter(PrefixFilter("main."))
	bt := Trace{{Function: "main.main", File: "/src/app/main.go", Line: 10}}
	assert.Equal(t, want, p.Format(bt))
}

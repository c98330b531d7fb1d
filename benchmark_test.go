package xgxreport

import (
	"errors"
	"fmt"
	"io"
	"testing"
)

func BenchmarkContext(b *testing.B) {
	cause := errors.New("boom")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Context(cause, "loading")
	}
}

func BenchmarkWrap(b *testing.B) {
	cause := errors.New("boom")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Wrap(cause)
	}
}

func BenchmarkContext_NilFastPath(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Context(nil, "loading")
	}
}

func buildDeepChain(depth int) error {
	err := errors.New("leaf")
	for i := 0; i < depth; i++ {
		err = Contextf(err, "layer %d", i)
	}
	return err
}

func BenchmarkStackWalk(b *testing.B) {
	err := buildDeepChain(16).(Error)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = err.Stack()
	}
}

func BenchmarkCleanedChain(b *testing.B) {
	err := buildDeepChain(16)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = CleanedChain(err)
	}
}

func BenchmarkFormatVerbose(b *testing.B) {
	err := buildDeepChain(8)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		fmt.Fprintf(io.Discard, "%+v", err)
	}
}

func BenchmarkReportRender(b *testing.B) {
	r := NewReport(buildDeepChain(8))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Render(io.Discard)
	}
}

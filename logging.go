// logging.go — structured-logging adapter for xgx-report.
//
// ZapFields flattens a unified error into zap fields so log pipelines get
// the root cause and chain shape as queryable attributes instead of one
// opaque string. Rendering policy (verbosity, cleaning) stays out of the
// log path; use Report or "%+v" for human-facing output.
package xgxreport

import (
	"go.uber.org/zap"

	"github.com/xgx-io/xgx-report/spantrace"
)

// ZapFields returns structured fields describing err: the error itself,
// its root cause, the chain depth, and (when captured) the span trace.
// A nil err yields nil.
func ZapFields(err error) []zap.Field {
	if err == nil {
		return nil
	}

	chain := Chain(err)
	fields := []zap.Field{
		zap.Error(err),
		zap.String("error_root", chain[len(chain)-1].Error()),
		zap.Int("error_chain_len", len(chain)),
	}

	if ue, ok := err.(Error); ok {
		if st := ue.SpanTrace(); st.Status() == spantrace.StatusCaptured {
			names := make([]string, 0, st.Len())
			for _, sp := range st.Spans() {
				names = append(names, sp.Name)
			}
			fields = append(fields, zap.Strings("error_spans", names))
		}
		if ue.Backtrace() != nil {
			fields = append(fields, zap.Bool("error_traced", true))
		}
	}
	return fields
}

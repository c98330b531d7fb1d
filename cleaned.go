// cleaned.go — text deduplication across adjacent chain levels.
//
// Errors that wrap a cause commonly restate the cause's text:
//
//	outer error text: middle error text: inner error text
//
// which reads badly when the chain is printed line by line. CleanedChain
// compares each pair of adjacent levels and strips an exact trailing
// occurrence of the cause's text from the containing level's text, plus the
// separator that joined them. Matching is literal trailing-substring
// equality only; partial and case-insensitive matches are never stripped.
//
// The pass can be disabled process-wide with XGX_RAW_ERROR_MESSAGES=1. The
// toggle is resolved from the environment once, on first use, into a
// write-once tri-state cache; callers thread the resolved value into the
// renderers rather than re-reading hidden state mid-render.
package xgxreport

import (
	"errors"
	"os"
	"strings"
	"unicode"

	"go.uber.org/atomic"
)

// EnvRawMessages disables cleaned rendering when set to "1". Any other
// value, or absence, leaves cleaning enabled.
const EnvRawMessages = "XGX_RAW_ERROR_MESSAGES"

const (
	rawStateUnknown int32 = iota
	rawStateRaw
	rawStateCleaned
)

var rawState = atomic.NewInt32(rawStateUnknown)

// RawMessagesEnabled reports whether the deduplication pass is disabled for
// this process. The environment is consulted once; the answer is immutable
// afterwards and reads never block.
func RawMessagesEnabled() bool {
	if s := rawState.Load(); s != rawStateUnknown {
		return s == rawStateRaw
	}
	resolved := rawStateCleaned
	if os.Getenv(EnvRawMessages) == "1" {
		resolved = rawStateRaw
	}
	rawState.CompareAndSwap(rawStateUnknown, resolved)
	return rawState.Load() == rawStateRaw
}

// CleanedText is one level of a deduplicated chain: the original error, its
// possibly-stripped display text, and whether stripping changed it. An
// empty Text marks a level fully subsumed by its cause.
type CleanedText struct {
	Err     error
	Text    string
	Cleaned bool
}

// CleanedChain walks any standard declared-cause chain, outermost first,
// stripping each level's trailing restatement of its cause. The innermost
// level always contributes its raw text.
func CleanedChain(err error) []CleanedText {
	if err == nil {
		return nil
	}
	out := make([]CleanedText, 0, 4)
	cur := err
	for depth := 0; cur != nil && depth < maxChainDepth; depth++ {
		text := cur.Error()
		next := errors.Unwrap(cur)
		if next == nil {
			out = append(out, CleanedText{Err: cur, Text: text})
			break
		}
		trimmed := strings.TrimSuffix(text, next.Error())
		if trimmed != text {
			trimmed = strings.TrimRightFunc(trimmed, unicode.IsSpace)
			trimmed = strings.TrimSuffix(trimmed, ":")
		}
		out = append(out, CleanedText{Err: cur, Text: trimmed, Cleaned: trimmed != text})
		cur = next
	}
	return out
}

// verbosity.go — render-time verbosity detection for xgx-report.
//
// The frame-filter pipeline recognizes exactly one option: verbosity. It is
// sourced from the environment at render time, on purpose uncached, so that
// re-rendering the same error under a changed environment honors the change
// and rendering twice under the same environment is byte-identical.
package backtrace

import "os"

// Verbosity selects how much of a captured backtrace survives filtering.
type Verbosity int

const (
	// VerbosityMinimal keeps only frames from the invoking program.
	VerbosityMinimal Verbosity = iota
	// VerbosityMedium is reserved middle ground: today it filters like
	// Minimal but signals that the user asked for backtraces explicitly.
	VerbosityMedium
	// VerbosityFull keeps dependency frames too. The fixed noise filter
	// still applies at every level.
	VerbosityFull
)

// EnvVerbosity is the environment variable consulted by VerbosityFromEnv.
const EnvVerbosity = "XGX_BACKTRACE"

// VerbosityFromEnv maps the environment onto the three levels:
//
//	unset or empty → Minimal
//	"full"         → Full
//	anything else  → Medium
func VerbosityFromEnv() Verbosity {
	switch v := os.Getenv(EnvVerbosity); v {
	case "":
		return VerbosityMinimal
	case "full":
		return VerbosityFull
	default:
		return VerbosityMedium
	}
}

func (v Verbosity) String() string {
	switch v {
	case VerbosityMinimal:
		return "minimal"
	case VerbosityMedium:
		return "medium"
	case VerbosityFull:
		return "full"
	default:
		return "unknown"
	}
}

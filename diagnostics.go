package sail

import (
	"os"
	"sync"

	kitlog "github.com/go-kit/log"
)

// Severity levels for the Diagnostics side channel (§7's "no exception
// escapes the core" contract: every fallback logs here instead of
// panicking).
type Severity string

const (
	SeverityDebug Severity = "debug"
	SeverityInfo  Severity = "info"
	SeverityWarn  Severity = "warn"
	SeverityError Severity = "error"
)

// Diagnostics wraps a go-kit logfmt logger the same way smd's spacecraft.go
// builds one per Spacecraft via SCLogInit: a shared base logger with a
// per-component key attached. Unlike smd (which keeps a package-level
// mutable logger and reaches for `panic` on unexpected input), every public
// function in this package takes or builds its own Diagnostics value — no
// mutable global toggle exists (Design Notes §9).
type Diagnostics struct {
	logger kitlog.Logger
}

var (
	baseLoggerOnce sync.Once
	baseLogger     kitlog.Logger
)

func sharedBaseLogger() kitlog.Logger {
	baseLoggerOnce.Do(func() {
		baseLogger = kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	})
	return baseLogger
}

// NewDiagnostics returns a Diagnostics side channel tagged with the named
// component (e.g. "predictor", "crossing", "soi"), mirroring smd's
// `kitlog.With(klog, "spacecraft", name)`.
func NewDiagnostics(component string) Diagnostics {
	return Diagnostics{logger: kitlog.With(sharedBaseLogger(), "component", component)}
}

// NopDiagnostics discards everything; used by pure functions' test paths
// and by callers that do not want log noise.
func NopDiagnostics() Diagnostics {
	return Diagnostics{logger: kitlog.NewNopLogger()}
}

func (d Diagnostics) log(level Severity, keyvals ...interface{}) {
	if d.logger == nil {
		return
	}
	args := append([]interface{}{"level", string(level)}, keyvals...)
	_ = d.logger.Log(args...)
}

// Debugf-style structured helpers. Keyvals follow go-kit's flat key/value
// convention, exactly as smd's `sc.logger.Log("level", "info", "subsys",
// "astro", ...)` calls do.
func (d Diagnostics) Debug(keyvals ...interface{}) { d.log(SeverityDebug, keyvals...) }
func (d Diagnostics) Info(keyvals ...interface{})  { d.log(SeverityInfo, keyvals...) }
func (d Diagnostics) Warn(keyvals ...interface{})  { d.log(SeverityWarn, keyvals...) }
func (d Diagnostics) Error(keyvals ...interface{}) { d.log(SeverityError, keyvals...) }

package razor

import "log/slog"

// DefaultLogger receives shader compile/link diagnostics when a
// ShaderProgram was not given its own logger via SetLogger; a Context's
// logger is not consulted for these. A nil value here
// falls back to slog.Default(), mirroring the package's EnableDebugOutput.
var DefaultLogger *slog.Logger

func diagLogger(override *slog.Logger) *slog.Logger {
	if override != nil {
		return override
	}
	if DefaultLogger != nil {
		return DefaultLogger
	}
	return slog.Default()
}

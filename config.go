package razor

import "log/slog"

// ContextConfig holds the optional knobs of NewContextWithConfig, modeled
// on the teacher's window configuration struct: a zero-value ContextConfig
// behaves like the plain three-argument NewContext.
type ContextConfig struct {
	// DebugLog, if non-nil, is wired to EnableDebugOutput automatically.
	DebugLog *slog.Logger
	// ClearColor is applied once at construction via SetClearColor.
	// Defaults to opaque black, matching a freshly created GL context.
	ClearColor [4]float32
}

func defaultContextConfig() ContextConfig {
	return ContextConfig{ClearColor: [4]float32{0, 0, 0, 1}}
}

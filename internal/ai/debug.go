package ai

import "sync/atomic"

// debugLoggingEnabled controls per-tick debug logging for the AI subsystem.
// Package-level so hot paths skip building log attributes when disabled.
// Set via EnableDebugLogging() from cmd/ghostchase after parsing config.LogLevel.
var debugLoggingEnabled atomic.Bool

// EnableDebugLogging enables or disables debug logging for AI subsystem.
func EnableDebugLogging(enabled bool) {
	debugLoggingEnabled.Store(enabled)
}

// IsDebugEnabled returns true if debug logging is enabled.
// Use this to guard per-tick debug log calls:
//
//	if ai.IsDebugEnabled() {
//	    slog.Debug("navigator decision", "mode", decision.Mode)
//	}
func IsDebugEnabled() bool {
	return debugLoggingEnabled.Load()
}

// Package logging provides a process-wide structured logger for
// statframe.
//
// The package wraps [log/slog] and exposes a single global logger that
// is initialized once and then retrieved via GetLogger, so that log
// level and output destination are controlled from one place.
//
// Call Init once at program startup, or rely on the lazy stderr default
// created on first use:
//
//	logger := logging.GetLogger()
//	logger.Debug("describe planned", "columns", n, "requests", len(reqs))
package logging

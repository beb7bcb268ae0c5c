package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

// Global logger instance and synchronization
var (
	logger   *slog.Logger
	loggerMu sync.RWMutex
	isInited bool
)

// LogLevel represents logging verbosity
type LogLevel string

const (
	LevelDebug LogLevel = "DEBUG"
	LevelInfo  LogLevel = "INFO"
	LevelWarn  LogLevel = "WARN"
	LevelError LogLevel = "ERROR"
)

// Config holds logger configuration
type Config struct {
	Level  LogLevel
	Output io.Writer // nil for stderr
	Format string    // "json" or "text"
}

// Init initializes the global logger with the given configuration.
// Subsequent calls return an error to prevent silent reconfiguration;
// call Reset first to reinitialize.
func Init(config Config) error {
	loggerMu.Lock()
	defer loggerMu.Unlock()

	if isInited {
		return fmt.Errorf("logger already initialized; call Reset() first to reinitialize")
	}

	writer := config.Output
	if writer == nil {
		writer = os.Stderr
	}

	var level slog.Level
	switch config.Level {
	case LevelDebug:
		level = slog.LevelDebug
	case LevelWarn:
		level = slog.LevelWarn
	case LevelError:
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if config.Format == "json" {
		handler = slog.NewJSONHandler(writer, opts)
	} else {
		handler = slog.NewTextHandler(writer, opts)
	}

	logger = slog.New(handler)
	isInited = true
	return nil
}

// GetLogger returns the global logger, creating an INFO-level stderr
// logger lazily if Init has not been called.
func GetLogger() *slog.Logger {
	loggerMu.RLock()
	if isInited {
		l := logger
		loggerMu.RUnlock()
		return l
	}
	loggerMu.RUnlock()

	loggerMu.Lock()
	defer loggerMu.Unlock()
	if !isInited {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
		isInited = true
	}
	return logger
}

// Reset clears the global logger so that Init can be called again.
// Intended for tests.
func Reset() {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	logger = nil
	isInited = false
}

// WithOp returns a child logger pre-populated with an op field.
func WithOp(op string) *slog.Logger {
	return GetLogger().With("op", op)
}

package client

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// RequestLogger is the interface used by [APIClient] for logging HTTP requests
// and errors. Implement this interface to integrate with your logging library
// and supply the implementation via [WithRequestLogger].
type RequestLogger interface {
	Errorf(format string, v ...any)
	Warnf(format string, v ...any)
	Debugf(format string, v ...any)
}

// NoopLogger is a [RequestLogger] that silently discards all log messages.
// It is the default logger used when no logger is provided.
type NoopLogger struct{}

func (l *NoopLogger) Errorf(_ string, _ ...any) {}
func (l *NoopLogger) Warnf(_ string, _ ...any)  {}
func (l *NoopLogger) Debugf(_ string, _ ...any) {}

// ZerologLogger is a [RequestLogger] writing to a zerolog logger.
type ZerologLogger struct {
	logger zerolog.Logger
}

// NewZerologLogger wraps logger, tagging every entry with the client component.
func NewZerologLogger(logger zerolog.Logger) *ZerologLogger {
	return &ZerologLogger{logger: logger.With().Str("component", "joplin-client").Logger()}
}

// Errorf logs at error level.
func (l *ZerologLogger) Errorf(format string, v ...any) {
	l.logger.Error().Msg(formatLogMessage(format, v...))
}

// Warnf logs at warn level.
func (l *ZerologLogger) Warnf(format string, v ...any) {
	l.logger.Warn().Msg(formatLogMessage(format, v...))
}

// Debugf logs at debug level.
func (l *ZerologLogger) Debugf(format string, v ...any) {
	l.logger.Debug().Msg(formatLogMessage(format, v...))
}

// resty terminates its messages with a newline.
func formatLogMessage(format string, v ...any) string {
	return strings.TrimRight(fmt.Sprintf(format, v...), "\n")
}

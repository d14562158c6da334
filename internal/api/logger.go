package api

import (
	"fmt"
	"log/slog"

	"resty.dev/v3"
)

var _ resty.Logger = slogLogger{}

// slogLogger sends resty's own messages to the default slog logger at Debug
// level, so they only show with --debug. Failures still reach the caller as
// errors.
type slogLogger struct{}

func (slogLogger) Errorf(format string, v ...any) {
	slog.Default().Debug(fmt.Sprintf(format, v...), "source", "resty", "severity", "error")
}

func (slogLogger) Warnf(format string, v ...any) {
	slog.Default().Debug(fmt.Sprintf(format, v...), "source", "resty", "severity", "warn")
}

func (slogLogger) Debugf(format string, v ...any) {
	slog.Default().Debug(fmt.Sprintf(format, v...), "source", "resty")
}

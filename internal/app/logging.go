package app

import (
	"log/slog"

	"github.com/copteruni/rulecalc/internal/logging"
)

// appLog is the package-level structured logger for the app package.
//
// The log level is controlled by RULECALC_LOG_LEVEL and output can be moved
// off the terminal with RULECALC_LOG_FILE (see the logging package).
var appLog = logging.New("app")

// setStatusError updates the footer with a user-facing error message and
// logs the error with context.
//
// Usage:
//
//	m.setStatusError("Lock changed but state save failed", err, "path", p)
//
// The status is displayed verbatim; err and attrs only go to the log.
func (m *Model) setStatusError(status string, err error, attrs ...any) {
	m.status = status
	fields := make([]any, 0, len(attrs)+2)
	fields = append(fields, slog.Any("error", err))
	fields = append(fields, attrs...)
	appLog.Error(status, fields...)
}

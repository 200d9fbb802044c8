// Package logger is a thin structured-logging layer over log/slog. Warnings
// and errors are also forwarded to Sentry when a client has been bound.
package logger

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
)

// Fields represents structured log fields
type Fields map[string]interface{}

// log is safe to use before Init is called.
var log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

// Init configures the shared logger and routes the stdlib log package through
// the same handler.
func Init(debug bool) {
	InitWriter(os.Stderr, debug)
}

// InitWriter is Init with output sent to w.
func InitWriter(w io.Writer, debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
	})
	log = slog.New(h)
	slog.SetDefault(log)
}

// InitSentry binds a Sentry client. An empty dsn is a no-op.
func InitSentry(dsn string, environment string, release string) error {
	if dsn == "" {
		return nil
	}
	return sentry.Init(sentry.ClientOptions{
		Dsn:         dsn,
		Environment: environment,
		Release:     release,
	})
}

func Flush() {
	sentry.Flush(2 * time.Second)
}

func Debug(msg string, fields Fields) {
	log.Debug(msg, attrs(fields)...)
}

func Info(msg string, fields Fields) {
	log.Info(msg, attrs(fields)...)
}

func Warn(msg string, fields Fields) {
	log.Warn(msg, attrs(fields)...)

	if hub := sentry.CurrentHub(); hub.Client() != nil {
		sentry.AddBreadcrumb(&sentry.Breadcrumb{
			Type:     "warning",
			Category: "log",
			Message:  msg,
			Data:     fields,
			Level:    sentry.LevelWarning,
		})
	}
}

func Error(msg string, err error, fields Fields) {
	log.Error(msg, append(attrs(fields), "error", err)...)

	if hub := sentry.CurrentHub(); hub.Client() != nil {
		hub.WithScope(func(scope *sentry.Scope) {
			for key, value := range fields {
				scope.SetContext(key, map[string]interface{}{
					"value": value,
				})
			}
			hub.CaptureException(err)
		})
	}
}

func attrs(fields Fields) []any {
	res := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		res = append(res, k, v)
	}
	return res
}

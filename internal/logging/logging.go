package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
)

// Init installs the default slog logger for service.
// LOG_FORMAT ("json" or "text") picks the handler; when unset, production
// builds log JSON and everything else logs text for local reading.
// LOG_LEVEL is "debug", "info" (default), "warn" or "error".
func Init(service string, w io.Writer, production bool) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: parseLevel(os.Getenv("LOG_LEVEL"))}

	var handler slog.Handler
	if useJSON(os.Getenv("LOG_FORMAT"), production) {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler).With(slog.String("service", service))
	slog.SetDefault(logger)

	log.SetFlags(0)
	log.SetOutput(&slogWriter{logger: logger})

	return logger
}

func useJSON(format string, production bool) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return true
	case "text":
		return false
	default:
		return production
	}
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// slogWriter lets stdlib log output land in slog.
type slogWriter struct {
	logger *slog.Logger
}

func (w *slogWriter) Write(p []byte) (int, error) {
	msg := strings.TrimRight(string(p), "\n")
	w.logger.Info(msg, slog.String("source", "stdlib"))
	return len(p), nil
}

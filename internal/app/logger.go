package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/yonasBSD/klickbee-crm-sub001/internal/config"
)

// serviceName tags every record so aggregated logs can be filtered by service.
const serviceName = "klickbee-crm"

// NewLogger creates the process logger writing to stderr and installs it as
// the slog default.
//
// Format "json" produces structured output for production; any other format
// produces text with source locations for development. Level is one of
// debug, info, warn (or warning), error; anything else means info.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	isJSON := strings.EqualFold(strings.TrimSpace(cfg.Format), "json")
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: !isJSON,
	}

	var handler slog.Handler
	if isJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler).With(slog.String("service", serviceName))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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

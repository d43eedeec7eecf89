package logging

import (
	"io"
	"log/slog"
	"strings"

	"mahjong-go/internal/config"
)

// ParseLevel maps a config level name onto slog. Unknown names fall back to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// New builds the process logger. JSON is the default format; "text" is meant
// for terminals.
func New(w io.Writer, cfg config.AppConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.LogLevel)}
	var h slog.Handler
	if strings.EqualFold(cfg.LogFormat, "text") {
		h = slog.NewTextHandler(w, opts)
	} else {
		h = slog.NewJSONHandler(w, opts)
	}
	if cfg.Name != "" {
		return slog.New(h).With("service", cfg.Name)
	}
	return slog.New(h)
}

package logx

import (
	"log/slog"
	"os"
	"strings"
)

var Logger *slog.Logger

// Init configura o logger global em JSON no stdout.
// level aceita debug/info/warn/error (default: info).
func Init(level string) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: lvl,
	})
	Logger = slog.New(handler)
	slog.SetDefault(Logger)
}

package logger

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"

	"github.com/polkiloo/banksajt/internal/config"
)

// New creates a preconfigured slog.Logger writing to stdout.
func New(cfg *config.Config) *slog.Logger {
	return slog.New(newHandler(os.Stdout, cfg.LogLevel, cfg.LogFormat))
}

func newHandler(w io.Writer, level, format string) slog.Handler {
	lvl := parseLevel(level)
	if format == config.LogFormatText {
		return tint.NewHandler(w, &tint.Options{Level: lvl, TimeFormat: time.Kitchen, NoColor: !isTerminal(w)})
	}
	return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})
}

func parseLevel(level string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

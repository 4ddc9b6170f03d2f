// Package logger provides structured logging with colored output.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorGray   = "\033[90m"
	colorCyan   = "\033[36m"
)

// New creates a structured logger writing to stderr at the given level so
// the verifier's own progress output on stdout stays clean. Uses colored
// text by default, JSON if LOG_FORMAT=json. Colors can be disabled with
// NO_COLOR=1 or LOG_COLOR=false.
func New(level string) *slog.Logger {
	l := parseLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
	}

	return slog.New(&textHandler{
		w:        os.Stderr,
		level:    l,
		useColor: shouldUseColor(),
	})
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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

// shouldUseColor respects NO_COLOR (https://no-color.org/) and LOG_COLOR.
func shouldUseColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	switch strings.ToLower(os.Getenv("LOG_COLOR")) {
	case "false", "0":
		return false
	}
	return true
}

// textHandler is a slog.Handler that writes single-line colored text.
type textHandler struct {
	w        io.Writer
	level    slog.Level
	useColor bool
	attrs    []slog.Attr
}

func (h *textHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *textHandler) Handle(_ context.Context, r slog.Record) error {
	var buf strings.Builder

	h.colored(&buf, colorGray, r.Time.Format("2006-01-02 15:04:05"))
	buf.WriteString(" ")
	h.colored(&buf, levelColor(r.Level), levelLabel(r.Level))
	buf.WriteString(" ")
	buf.WriteString(r.Message)

	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(&buf, a)
		return true
	})
	for _, a := range h.attrs {
		h.writeAttr(&buf, a)
	}

	buf.WriteString("\n")
	_, err := io.WriteString(h.w, buf.String())
	return err
}

func (h *textHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &clone
}

func (h *textHandler) WithGroup(_ string) slog.Handler {
	// Flat output; group names add nothing for a single-shot CLI.
	return h
}

func (h *textHandler) writeAttr(buf *strings.Builder, a slog.Attr) {
	buf.WriteString(" ")
	h.colored(buf, colorGray, a.Key+"="+a.Value.String())
}

func (h *textHandler) colored(buf *strings.Builder, color, s string) {
	if h.useColor {
		buf.WriteString(color)
		buf.WriteString(s)
		buf.WriteString(colorReset)
		return
	}
	buf.WriteString(s)
}

func levelColor(l slog.Level) string {
	switch {
	case l >= slog.LevelError:
		return colorRed
	case l >= slog.LevelWarn:
		return colorYellow
	case l >= slog.LevelInfo:
		return colorBlue
	default:
		return colorCyan
	}
}

func levelLabel(l slog.Level) string {
	switch {
	case l >= slog.LevelError:
		return "ERROR"
	case l >= slog.LevelWarn:
		return "WARN "
	case l >= slog.LevelInfo:
		return "INFO "
	default:
		return "DEBUG"
	}
}

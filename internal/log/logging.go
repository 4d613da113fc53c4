// Package log provides helpers for creating a configured slog.Logger.
//
// Console records always go to stderr; stdout carries report output.
// With a log file configured the console only shows warnings and errors.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// LevelTrace is a custom slog level below Debug for per-tick output.
const LevelTrace slog.Level = -8

// Config is the kong-tagged logging configuration shared by all commands.
type Config struct {
	Level   string `help:"Log level: trace, debug, info, warn, error" default:"info" enum:"trace,debug,info,warn,error" env:"NXPAD_LOG_LEVEL"`
	Format  string `help:"Log record format" default:"text" enum:"text,json" env:"NXPAD_LOG_FORMAT"`
	File    string `help:"Write logs to this file instead of stdout/stderr" env:"NXPAD_LOG_FILE"`
	RawFile string `help:"Write a hex dump of every report to this file" env:"NXPAD_LOG_RAW_FILE"`
}

func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "trace":
		return LevelTrace
	case "debug":
		return slog.LevelDebug
	case "info", "":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// replaceLevel prints LevelTrace as TRACE instead of DEBUG-4.
func replaceLevel(_ []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey {
		return a
	}
	if lvl, ok := a.Value.Any().(slog.Level); ok && lvl == LevelTrace {
		a.Value = slog.StringValue("TRACE")
	}
	return a
}

// NewHandler returns a text or JSON handler writing to w.
func NewHandler(w io.Writer, format string, level slog.Level) slog.Handler {
	opts := &slog.HandlerOptions{Level: level, ReplaceAttr: replaceLevel}
	if format == "json" {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// MultiHandler fans out records to multiple handlers.
type MultiHandler struct{ hs []slog.Handler }

func NewMultiHandler(hs ...slog.Handler) MultiHandler {
	return MultiHandler{hs: hs}
}

func (m MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.hs {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}
func (m MultiHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range m.hs {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		_ = h.Handle(ctx, r.Clone())
	}
	return nil
}
func (m MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make([]slog.Handler, len(m.hs))
	for i, h := range m.hs {
		out[i] = h.WithAttrs(attrs)
	}
	return MultiHandler{hs: out}
}
func (m MultiHandler) WithGroup(name string) slog.Handler {
	out := make([]slog.Handler, len(m.hs))
	for i, h := range m.hs {
		out[i] = h.WithGroup(name)
	}
	return MultiHandler{hs: out}
}

// LevelFilter delegates to an underlying handler but filters which levels are
// passed to it using the provided predicate.
type LevelFilter struct {
	pass func(slog.Level) bool
	h    slog.Handler
}

func NewLevelFilter(pass func(slog.Level) bool, h slog.Handler) LevelFilter {
	return LevelFilter{pass: pass, h: h}
}

func (f LevelFilter) Enabled(ctx context.Context, level slog.Level) bool {
	if !f.pass(level) {
		return false
	}
	return f.h.Enabled(ctx, level)
}

func (f LevelFilter) Handle(ctx context.Context, r slog.Record) error {
	if !f.pass(r.Level) {
		return nil
	}
	return f.h.Handle(ctx, r)
}

func (f LevelFilter) WithAttrs(attrs []slog.Attr) slog.Handler {
	return LevelFilter{pass: f.pass, h: f.h.WithAttrs(attrs)}
}
func (f LevelFilter) WithGroup(name string) slog.Handler {
	return LevelFilter{pass: f.pass, h: f.h.WithGroup(name)}
}

// SetupLogger builds a slog.Logger from cfg. The returned closers own any
// files opened for it.
func SetupLogger(cfg Config) (*slog.Logger, []io.Closer, error) {
	if cfg.File == "" {
		return slog.New(newHandler(cfg, os.Stderr, nil)), nil, nil
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file %s: %w", cfg.File, err)
	}
	return slog.New(newHandler(cfg, os.Stderr, f)), []io.Closer{f}, nil
}

func newHandler(cfg Config, console, file io.Writer) slog.Handler {
	level := ParseLevel(cfg.Level)
	if file == nil {
		return NewHandler(console, cfg.Format, level)
	}
	return NewMultiHandler(
		NewLevelFilter(func(l slog.Level) bool { return l >= slog.LevelWarn }, NewHandler(console, cfg.Format, level)),
		NewHandler(file, cfg.Format, level),
	)
}

// OpenRaw returns the RawLogger selected by cfg: the raw file when set,
// stderr at trace level, and a no-op logger otherwise. Stdout is left to
// the report output.
func OpenRaw(cfg Config) (RawLogger, io.Closer, error) {
	if cfg.RawFile != "" {
		f, err := os.OpenFile(cfg.RawFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			return NewRaw(nil), nil, fmt.Errorf("open raw log file %s: %w", cfg.RawFile, err)
		}
		return NewRaw(f), f, nil
	}
	if ParseLevel(cfg.Level) == LevelTrace {
		return NewRaw(os.Stderr), nil, nil
	}
	return NewRaw(nil), nil, nil
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package logging builds the process-wide slog logger.
//
// Terminals get a compact colored line per record, everything else (files,
// pipes, container log collectors) gets JSON.
package logging

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ParseLevel maps debug|info|warn|error to a slog level. Unknown values
// fall back to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// New returns a logger writing to out at the given level.
func New(out io.Writer, level string) *slog.Logger {
	lvl := ParseLevel(level)

	if f, ok := out.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return slog.New(NewColorHandler(out, lvl))
	}
	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: lvl}))
}

// ColorHandler prints one colored line per record.
type ColorHandler struct {
	l     *log.Logger
	level slog.Level
	attrs []slog.Attr
	group string
}

func NewColorHandler(out io.Writer, level slog.Level) *ColorHandler {
	return &ColorHandler{
		l:     log.New(out, "", 0),
		level: level,
	}
}

func (c *ColorHandler) Handle(_ context.Context, r slog.Record) error {
	level := r.Level.String() + ":"

	switch r.Level {
	case slog.LevelDebug:
		level = color.MagentaString(level)
	case slog.LevelInfo:
		level = color.HiBlueString(level)
	case slog.LevelWarn:
		level = color.YellowString(level)
	case slog.LevelError:
		level = color.RedString(level)
	}

	var b strings.Builder
	for _, a := range c.attrs {
		b.WriteString(color.GreenString(a.Key) + "=" + fmt.Sprint(a.Value.Any()) + " ")
	}
	r.Attrs(func(a slog.Attr) bool {
		b.WriteString(color.GreenString(c.key(a.Key)) + "=" + fmt.Sprint(a.Value.Any()) + " ")
		return true
	})

	c.l.Println(
		r.Time.Format("15:04:05.000"),
		level,
		r.Message,
		strings.TrimSuffix(b.String(), " "),
	)
	return nil
}

func (c *ColorHandler) key(k string) string {
	if c.group == "" {
		return k
	}
	return c.group + "." + k
}

// WithAttrs stores attrs with the current group already applied to the key.
func (c *ColorHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *c
	next.attrs = make([]slog.Attr, 0, len(c.attrs)+len(attrs))
	next.attrs = append(next.attrs, c.attrs...)
	for _, a := range attrs {
		next.attrs = append(next.attrs, slog.Attr{Key: c.key(a.Key), Value: a.Value})
	}
	return &next
}

func (c *ColorHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return c
	}
	next := *c
	if c.group != "" {
		name = c.group + "." + name
	}
	next.group = name
	return &next
}

func (c *ColorHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= c.level
}

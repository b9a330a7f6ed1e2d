package logger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/deixis/diaglog"
)

// Handler adapts a Logger to the slog facade. The record target is the
// handler's group path, so callers tag their origin with WithGroup;
// attributes are appended to the message as " key=value" pairs.
type Handler struct {
	logger *Logger
	target string
	attrs  []slog.Attr
}

// NewHandler returns a Handler emitting through l.
func NewHandler(l *Logger) *Handler {
	return &Handler{logger: l}
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return h.logger.Enabled(diaglog.SeverityFromLevel(level), h.target)
}

func (h *Handler) Handle(_ context.Context, record slog.Record) error {
	var b strings.Builder
	b.WriteString(record.Message)
	for _, attr := range h.attrs {
		writeAttr(&b, attr)
	}
	record.Attrs(func(attr slog.Attr) bool {
		writeAttr(&b, attr)
		return true
	})
	h.logger.Log(diaglog.SeverityFromLevel(record.Level), h.target, b.String())
	return nil
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &clone
}

func (h *Handler) WithGroup(name string) slog.Handler {
	clone := *h
	if clone.target == "" {
		clone.target = name
	} else {
		clone.target += "/" + name
	}
	return &clone
}

func writeAttr(b *strings.Builder, attr slog.Attr) {
	fmt.Fprintf(b, " %s=%s", attr.Key, attr.Value)
}

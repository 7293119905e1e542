package logging

import (
	"context"
	"log/slog"
	"strings"

	"github.com/sirupsen/logrus"
)

// slogHandler is a slog.Handler that writes records through a logrus logger.
// Attributes become logrus fields; group names prefix keys with "group.".
type slogHandler struct {
	logger *logrus.Logger
	fields logrus.Fields
	prefix string
}

// NewSlogHandler returns a slog.Handler that forwards records to logger.
func NewSlogHandler(logger *logrus.Logger) slog.Handler {
	return &slogHandler{logger: logger, fields: logrus.Fields{}}
}

func (h *slogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.logger.IsLevelEnabled(toLogrusLevel(level))
}

func (h *slogHandler) Handle(_ context.Context, r slog.Record) error {
	fields := make(logrus.Fields, len(h.fields)+r.NumAttrs())
	for k, v := range h.fields {
		fields[k] = v
	}

	r.Attrs(func(a slog.Attr) bool {
		addAttr(fields, h.prefix, a)
		return true
	})

	entry := h.logger.WithFields(fields)
	if !r.Time.IsZero() {
		entry = entry.WithTime(r.Time)
	}
	entry.Log(toLogrusLevel(r.Level), r.Message)

	return nil
}

func (h *slogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	fields := make(logrus.Fields, len(h.fields)+len(attrs))
	for k, v := range h.fields {
		fields[k] = v
	}
	for _, a := range attrs {
		addAttr(fields, h.prefix, a)
	}
	return &slogHandler{logger: h.logger, fields: fields, prefix: h.prefix}
}

func (h *slogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &slogHandler{logger: h.logger, fields: h.fields, prefix: h.prefix + name + "."}
}

// addAttr flattens a into fields, expanding groups into dotted keys.
func addAttr(fields logrus.Fields, prefix string, a slog.Attr) {
	v := a.Value.Resolve()

	if v.Kind() == slog.KindGroup {
		groupPrefix := prefix
		if a.Key != "" {
			groupPrefix = prefix + a.Key + "."
		}
		for _, ga := range v.Group() {
			addAttr(fields, groupPrefix, ga)
		}
		return
	}

	if a.Equal(slog.Attr{}) {
		return
	}

	fields[strings.TrimSuffix(prefix+a.Key, ".")] = v.Any()
}

// toLogrusLevel maps slog levels onto the nearest logrus level.
func toLogrusLevel(level slog.Level) logrus.Level {
	switch {
	case level >= slog.LevelError:
		return logrus.ErrorLevel
	case level >= slog.LevelWarn:
		return logrus.WarnLevel
	case level >= slog.LevelInfo:
		return logrus.InfoLevel
	case level >= slog.LevelDebug:
		return logrus.DebugLevel
	default:
		return logrus.TraceLevel
	}
}

package cmd

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// warnCounter passes records through and counts those at warn level and
// above.
type warnCounter struct {
	slog.Handler
	n *atomic.Int64
}

func newWarnCounter(h slog.Handler) *warnCounter {
	return &warnCounter{Handler: h, n: new(atomic.Int64)}
}

func (h *warnCounter) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= slog.LevelWarn {
		h.n.Add(1)
	}
	if !h.Handler.Enabled(ctx, r.Level) {
		return nil
	}
	return h.Handler.Handle(ctx, r)
}

// Enabled accepts warnings even when the wrapped handler drops them, so
// they are still counted.
func (h *warnCounter) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= slog.LevelWarn || h.Handler.Enabled(ctx, level)
}

func (h *warnCounter) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &warnCounter{Handler: h.Handler.WithAttrs(attrs), n: h.n}
}

func (h *warnCounter) WithGroup(name string) slog.Handler {
	return &warnCounter{Handler: h.Handler.WithGroup(name), n: h.n}
}

func (h *warnCounter) Count() int64 { return h.n.Load() }

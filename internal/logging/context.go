package logging

import (
	"context"
	"log/slog"
)

type attrsKey struct{}

// WithAttrs returns a context carrying attrs that WithContext will apply to
// any logger derived from it. Attrs accumulate across calls.
func WithAttrs(ctx context.Context, attrs ...Attr) context.Context {
	if len(attrs) == 0 {
		return ctx
	}
	existing, _ := ctx.Value(attrsKey{}).([]Attr)
	merged := make([]Attr, 0, len(existing)+len(attrs))
	merged = append(merged, existing...)
	merged = append(merged, attrs...)
	return context.WithValue(ctx, attrsKey{}, merged)
}

// WithContext returns logger enriched with the attrs carried by ctx. A nil
// logger yields the no-op logger so call sites never need nil checks.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	if ctx == nil {
		return logger
	}
	attrs, _ := ctx.Value(attrsKey{}).([]Attr)
	if len(attrs) == 0 {
		return logger
	}
	return logger.With(Args(attrs...)...)
}

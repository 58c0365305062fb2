package shared

import (
	"context"

	"github.com/skipkayhil/rail-inspector/internal/config"
)

type configKey struct{}

// WithConfig returns a context carrying cfg.
func WithConfig(ctx context.Context, cfg *config.Configuration) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// ConfigFrom returns the configuration stored by WithConfig, or nil.
func ConfigFrom(ctx context.Context) *config.Configuration {
	cfg, _ := ctx.Value(configKey{}).(*config.Configuration)
	return cfg
}

package app

import (
	"context"

	"github.com/specialistvlad/bikeshare/internal/ctxlog"
	"github.com/specialistvlad/bikeshare/internal/registry"
)

// loadRegistry builds the data source registry, from the configured sources
// path when one is given and from the built-in sources otherwise.
func loadRegistry(ctx context.Context, cfg *Config) (*registry.Registry, error) {
	logger := ctxlog.FromContext(ctx)

	if cfg.SourcesPath == "" {
		logger.Debug("Using built-in data sources.", "data_dir", cfg.DataDir)
		return registry.Default(ctx, cfg.DataDir)
	}

	logger.Debug("Using custom data sources.", "path", cfg.SourcesPath, "data_dir", cfg.DataDir)
	return registry.Load(ctx, cfg.SourcesPath, cfg.DataDir)
}

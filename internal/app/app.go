package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/bikeshare/internal/ctxlog"
	"github.com/specialistvlad/bikeshare/internal/prompt"
	"github.com/specialistvlad/bikeshare/internal/registry"
	"github.com/specialistvlad/bikeshare/internal/report"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	logger   *slog.Logger
	config   *Config
	registry *registry.Registry
	prompter *prompt.Prompter
	printer  *report.Printer
	pager    *report.Pager
}

// NewApp builds an App that converses over in and outW and logs to logW.
// It panics when the data source registry cannot be built, since nothing
// can be analysed without it.
func NewApp(in io.Reader, outW, logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	reg, err := loadRegistry(ctx, cfg)
	if err != nil {
		panic(fmt.Errorf("failed to load data sources: %w", err))
	}
	logger.Debug("Data sources registered.", "cities", reg.Cities())

	p := prompt.New(in, outW)
	return &App{
		logger:   logger,
		config:   cfg,
		registry: reg,
		prompter: p,
		printer:  report.NewPrinter(outW),
		pager:    report.NewPager(p, outW),
	}
}

// Registry returns the application's data source registry.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/specialistvlad/bikeshare/internal/ctxlog"
	"github.com/specialistvlad/bikeshare/internal/prompt"
	"github.com/specialistvlad/bikeshare/internal/report"
	"github.com/specialistvlad/bikeshare/internal/stats"
	"github.com/specialistvlad/bikeshare/internal/trips"
)

// Run repeats analysis passes until the user declines to restart or the
// input ends. A load failure ends the run with an error.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	for pass := 1; ; pass++ {
		again, err := a.runPass(ctx)
		if errors.Is(err, prompt.ErrClosed) {
			a.logger.Debug("Input closed, exiting.", "passes", pass)
			return nil
		}
		if err != nil {
			return err
		}
		if !again {
			a.logger.Debug("App.Run method finished.", "passes", pass)
			return nil
		}
	}
}

// runPass performs one analysis pass and reports whether to start another.
func (a *App) runPass(ctx context.Context) (bool, error) {
	sel, err := a.collectFilters(ctx)
	if err != nil {
		return false, err
	}

	ctx = ctxlog.With(ctx,
		"run_id", uuid.NewString(),
		"city", sel.Source.City,
		"filter", sel.Filter.String(),
	)
	logger := ctxlog.FromContext(ctx)

	table, err := trips.Load(ctx, sel.Source.Path, sel.Filter)
	if err != nil {
		logger.Error("Loading trip data failed.", "path", sel.Source.Path, "error", err)
		return false, fmt.Errorf("failed to load data for %s: %w", sel.Source.DisplayName, err)
	}
	a.printer.Loaded(sel.Source.DisplayName, table.Len())

	a.analyze(ctx, table)

	if err := a.pager.Run(table); err != nil {
		return false, err
	}

	answer, err := a.prompter.Ask("\nWould you like to restart? Type yes or no: ")
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, "yes"), nil
}

// analyze prints the four report sections in a fixed order. No section
// depends on the output of another.
func (a *App) analyze(ctx context.Context, table *trips.Table) {
	logger := ctxlog.FromContext(ctx)
	logOutcome := func(section string, err error) {
		switch {
		case errors.Is(err, stats.ErrNoData):
			logger.Info("Section has no data.", "section", section, "reason", err)
		case err != nil:
			logger.Warn("Section failed.", "section", section, "error", err)
		}
	}

	a.printer.Section("Calculating The Most Frequent Times of Travel...", func(w io.Writer) {
		res, err := stats.Times(table)
		logOutcome("times", err)
		report.WriteTimes(w, res, err)
	})
	a.printer.Section("Calculating The Most Popular Stations and Trip...", func(w io.Writer) {
		res, err := stats.Stations(table)
		logOutcome("stations", err)
		report.WriteStations(w, res, err)
	})
	a.printer.Section("Calculating Trip Duration...", func(w io.Writer) {
		res, err := stats.Durations(table)
		logOutcome("durations", err)
		report.WriteDurations(w, res, err)
	})
	a.printer.Section("Calculating User Stats...", func(w io.Writer) {
		res, err := stats.Users(table)
		logOutcome("users", err)
		report.WriteUsers(w, res, err)
	})
}

package trips

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/specialistvlad/bikeshare/internal/ctxlog"
)

// Load reads the trip records stored at path and returns the trips matching f.
// A missing file, a missing required column or an unparseable timestamp is
// fatal for the whole file.
func Load(ctx context.Context, path string, f Filter) (*Table, error) {
	logger := ctxlog.FromContext(ctx)
	if err := f.Validate(); err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open trip data: %w", err)
	}
	defer file.Close()

	started := time.Now()
	all, err := Read(ctx, file)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	filtered := all.Filter(f)
	logger.Info("Trip data loaded.",
		"path", path,
		"rows_read", all.Len(),
		"rows_kept", filtered.Len(),
		"filter", f.String(),
		"elapsed", time.Since(started),
	)
	return filtered, nil
}

// Read parses CSV trip records from r. Timestamps are interpreted as UTC.
func Read(ctx context.Context, r io.Reader) (*Table, error) {
	logger := ctxlog.FromContext(ctx)

	df := dataframe.ReadCSV(r,
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.WithTypes(map[string]series.Type{
			ColTripDuration: series.Float,
			ColBirthYear:    series.Float,
		}),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", df.Err)
	}

	names := df.Names()
	for _, col := range RequiredColumns {
		if !slices.Contains(names, col) {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, col)
		}
	}
	logger.Debug("CSV decoded.", "rows", df.Nrow(), "columns", names)

	starts, err := timestamps(df.Col(ColStartTime))
	if err != nil {
		return nil, err
	}
	ends, err := timestamps(df.Col(ColEndTime))
	if err != nil {
		return nil, err
	}

	table := &Table{
		Trips:        make([]Trip, len(starts)),
		HasGender:    slices.Contains(names, ColGender),
		HasBirthYear: slices.Contains(names, ColBirthYear),
	}

	durations := df.Col(ColTripDuration).Float()
	startStations := texts(df.Col(ColStartStation))
	endStations := texts(df.Col(ColEndStation))
	userTypes := texts(df.Col(ColUserType))

	var genders []string
	if table.HasGender {
		genders = texts(df.Col(ColGender))
	}
	var birthYears []float64
	if table.HasBirthYear {
		birthYears = df.Col(ColBirthYear).Float()
	}

	for i := range table.Trips {
		trip := NewTrip(starts[i], ends[i])
		trip.Row = i
		trip.Duration = durations[i]
		trip.StartStation = startStations[i]
		trip.EndStation = endStations[i]
		trip.UserType = userTypes[i]
		if genders != nil {
			trip.Gender = genders[i]
		}
		if birthYears != nil {
			trip.BirthYear = birthYears[i]
		}
		table.Trips[i] = trip
	}
	return table, nil
}

func timestamps(s series.Series) ([]time.Time, error) {
	out := make([]time.Time, s.Len())
	for i := range out {
		e := s.Elem(i)
		raw := strings.TrimSpace(e.String())
		if e.IsNA() || raw == "" {
			return nil, fmt.Errorf("%w: column %q row %d is empty", ErrTimestamp, s.Name, i+1)
		}
		ts, err := dateparse.ParseIn(raw, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("%w: column %q row %d %q: %v", ErrTimestamp, s.Name, i+1, raw, err)
		}
		out[i] = ts
	}
	return out, nil
}

// texts returns the cells of a string column with missing values as "".
func texts(s series.Series) []string {
	out := make([]string, s.Len())
	for i := range out {
		if e := s.Elem(i); !e.IsNA() {
			out[i] = strings.TrimSpace(e.String())
		}
	}
	return out
}

package stats

import (
	"fmt"

	"github.com/specialistvlad/bikeshare/internal/trips"
)

// StationStats holds the most popular stations and trip.
type StationStats struct {
	StartStation string
	EndStation   string
	Route        string
}

// Stations finds the most common start station, end station and
// "<start> to <end>" route. Trips with a blank station are ignored for the
// statistic that needs it.
func Stations(t *trips.Table) (StationStats, error) {
	starts := make([]string, 0, t.Len())
	ends := make([]string, 0, t.Len())
	routes := make([]string, 0, t.Len())
	for _, trip := range t.Trips {
		starts = append(starts, trip.StartStation)
		ends = append(ends, trip.EndStation)
		if trip.StartStation != "" && trip.EndStation != "" {
			routes = append(routes, trip.Route())
		}
	}

	var res StationStats
	var err error
	if res.StartStation, err = Mode(nonEmpty(starts)); err != nil {
		return StationStats{}, fmt.Errorf("start station: %w", err)
	}
	if res.EndStation, err = Mode(nonEmpty(ends)); err != nil {
		return StationStats{}, fmt.Errorf("end station: %w", err)
	}
	if res.Route, err = Mode(routes); err != nil {
		return StationStats{}, fmt.Errorf("trip: %w", err)
	}
	return res, nil
}

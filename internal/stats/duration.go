package stats

import (
	"fmt"
	"math"

	"github.com/specialistvlad/bikeshare/internal/trips"
)

// DurationStats holds the total and average trip duration in seconds.
type DurationStats struct {
	Total float64
	Mean  float64
	Count int // trips with a known duration
}

// Durations sums and averages trip durations, skipping empty cells. For a
// table without any known duration Total is 0 and ErrNoData is returned
// because the mean is undefined.
func Durations(t *trips.Table) (DurationStats, error) {
	var res DurationStats
	for _, trip := range t.Trips {
		if math.IsNaN(trip.Duration) {
			continue
		}
		res.Total += trip.Duration
		res.Count++
	}

	if res.Count == 0 {
		return res, fmt.Errorf("average duration: %w", ErrNoData)
	}
	res.Mean = res.Total / float64(res.Count)
	return res, nil
}

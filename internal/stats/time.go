package stats

import (
	"fmt"
	"time"

	"github.com/specialistvlad/bikeshare/internal/trips"
)

// TimeStats holds the most frequent times of travel.
type TimeStats struct {
	Month   time.Month
	DayName string
	Hour    int
}

// Times finds the most common month, day of week and start hour.
func Times(t *trips.Table) (TimeStats, error) {
	if t.Len() == 0 {
		return TimeStats{}, fmt.Errorf("times of travel: %w", ErrNoData)
	}

	months := make([]time.Month, 0, t.Len())
	days := make([]string, 0, t.Len())
	hours := make([]int, 0, t.Len())
	for _, trip := range t.Trips {
		months = append(months, trip.Month)
		days = append(days, trip.DayName)
		hours = append(hours, trip.Hour)
	}

	var res TimeStats
	var err error
	if res.Month, err = Mode(months); err != nil {
		return TimeStats{}, err
	}
	if res.DayName, err = Mode(days); err != nil {
		return TimeStats{}, err
	}
	if res.Hour, err = Mode(hours); err != nil {
		return TimeStats{}, err
	}
	return res, nil
}

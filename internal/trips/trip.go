package trips

import (
	"math"
	"time"
)

// Column names as they appear in the header row of every city file.
const (
	ColStartTime    = "Start Time"
	ColEndTime      = "End Time"
	ColTripDuration = "Trip Duration"
	ColStartStation = "Start Station"
	ColEndStation   = "End Station"
	ColUserType     = "User Type"
	ColGender       = "Gender"
	ColBirthYear    = "Birth Year"
)

// RequiredColumns must be present in every source file.
var RequiredColumns = []string{
	ColStartTime,
	ColEndTime,
	ColTripDuration,
	ColStartStation,
	ColEndStation,
	ColUserType,
}

// Trip is a single rental event. Month, DayName and Hour are derived from
// Start when the record is loaded and are never changed afterwards.
type Trip struct {
	Row          int // zero-based position in the source file
	Start        time.Time
	End          time.Time
	Duration     float64 // seconds, NaN when the cell is empty
	StartStation string
	EndStation   string
	UserType     string
	Gender       string
	BirthYear    float64 // NaN when unknown

	Month   time.Month
	DayName string
	Hour    int
}

// NewTrip builds a Trip with its time-part fields derived from start.
func NewTrip(start, end time.Time) Trip {
	return Trip{
		Start:     start,
		End:       end,
		Duration:  math.NaN(),
		BirthYear: math.NaN(),
		Month:     start.Month(),
		DayName:   start.Weekday().String(),
		Hour:      start.Hour(),
	}
}

// Route is the "<start> to <end>" label of the trip.
func (t Trip) Route() string {
	return t.StartStation + " to " + t.EndStation
}

// Table is the set of trips produced by one load. HasGender and HasBirthYear
// report whether the source carried those optional columns at all.
type Table struct {
	Trips        []Trip
	HasGender    bool
	HasBirthYear bool
}

// Len returns the number of trips in the table.
func (t *Table) Len() int {
	return len(t.Trips)
}

// Filter returns a new table holding only the trips that match f. Rows keep
// their original order and the receiver is left untouched.
func (t *Table) Filter(f Filter) *Table {
	out := &Table{
		Trips:        make([]Trip, 0, len(t.Trips)),
		HasGender:    t.HasGender,
		HasBirthYear: t.HasBirthYear,
	}
	for _, trip := range t.Trips {
		if f.Match(trip) {
			out.Trips = append(out.Trips, trip)
		}
	}
	return out
}

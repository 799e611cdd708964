package stats

import (
	"time"

	"github.com/specialistvlad/bikeshare/internal/trips"
)

type tripSpec struct {
	start    string
	duration float64
	from, to string
	userType string
	gender   string
	year     float64
}

func table(hasGender, hasBirthYear bool, specs ...tripSpec) *trips.Table {
	t := &trips.Table{HasGender: hasGender, HasBirthYear: hasBirthYear}
	for i, s := range specs {
		start, err := time.Parse(time.DateTime, s.start)
		if err != nil {
			panic(err)
		}
		trip := trips.NewTrip(start, start.Add(time.Duration(s.duration)*time.Second))
		trip.Row = i
		trip.Duration = s.duration
		trip.StartStation = s.from
		trip.EndStation = s.to
		trip.UserType = s.userType
		trip.Gender = s.gender
		if s.year != 0 {
			trip.BirthYear = s.year
		}
		t.Trips = append(t.Trips, trip)
	}
	return t
}

package stats

import (
	"fmt"
	"math"
	"slices"

	"github.com/specialistvlad/bikeshare/internal/trips"
)

// UserStats holds the demographics of the riders in a table. Gender and
// birth year figures are only meaningful when the matching Has flag is set.
type UserStats struct {
	UserTypes []Count[string]

	HasGender bool
	Genders   []Count[string]

	HasBirthYear bool
	BirthYears   BirthYearStats
}

// BirthYearStats summarises the known birth years.
type BirthYearStats struct {
	Earliest   int
	MostRecent int
	MostCommon int
}

// Users counts user types and, when the source carries them, genders and
// birth years. The breakdowns are always returned; the error is ErrNoData
// when the birth year column exists but holds no value to summarise.
func Users(t *trips.Table) (UserStats, error) {
	res := UserStats{
		HasGender:    t.HasGender,
		HasBirthYear: t.HasBirthYear,
	}

	userTypes := make([]string, 0, t.Len())
	genders := make([]string, 0, t.Len())
	years := make([]int, 0, t.Len())
	for _, trip := range t.Trips {
		userTypes = append(userTypes, trip.UserType)
		genders = append(genders, trip.Gender)
		if !math.IsNaN(trip.BirthYear) {
			years = append(years, int(trip.BirthYear))
		}
	}

	res.UserTypes = ValueCounts(nonEmpty(userTypes))
	if res.HasGender {
		res.Genders = ValueCounts(nonEmpty(genders))
	}
	if !res.HasBirthYear {
		return res, nil
	}

	mostCommon, err := Mode(years)
	if err != nil {
		return res, fmt.Errorf("birth year: %w", err)
	}
	res.BirthYears = BirthYearStats{
		Earliest:   slices.Min(years),
		MostRecent: slices.Max(years),
		MostCommon: mostCommon,
	}
	return res, nil
}

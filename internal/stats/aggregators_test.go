package stats

import (
	"math"
	"testing"
	"time"

	"github.com/specialistvlad/bikeshare/internal/trips"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() *trips.Table {
	return table(true, true,
		tripSpec{start: "2017-06-05 09:00:00", duration: 600, from: "A", to: "B", userType: "Subscriber", gender: "Male", year: 1990},
		tripSpec{start: "2017-06-12 09:30:00", duration: 300, from: "A", to: "B", userType: "Subscriber", gender: "Female", year: 1985},
		tripSpec{start: "2017-03-04 17:00:00", duration: 900, from: "C", to: "B", userType: "Customer", gender: "Male", year: 1990},
		tripSpec{start: "2017-06-19 09:45:00", duration: 200, from: "A", to: "C", userType: "Subscriber", gender: "", year: 2001},
	)
}

func TestTimes(t *testing.T) {
	res, err := Times(sample())

	require.NoError(t, err)
	assert.Equal(t, TimeStats{Month: time.June, DayName: "Monday", Hour: 9}, res)
}

func TestStations(t *testing.T) {
	res, err := Stations(sample())

	require.NoError(t, err)
	assert.Equal(t, StationStats{StartStation: "A", EndStation: "B", Route: "A to B"}, res)
}

func TestStations_SkipsBlankStations(t *testing.T) {
	tbl := table(false, false,
		tripSpec{start: "2017-01-01 00:00:00", from: "", to: "Z"},
		tripSpec{start: "2017-01-01 00:00:00", from: "", to: "Z"},
		tripSpec{start: "2017-01-01 00:00:00", from: "Q", to: "Y"},
	)

	res, err := Stations(tbl)

	require.NoError(t, err)
	assert.Equal(t, "Q", res.StartStation)
	assert.Equal(t, "Z", res.EndStation)
	assert.Equal(t, "Q to Y", res.Route)
}

func TestDurations(t *testing.T) {
	res, err := Durations(sample())

	require.NoError(t, err)
	assert.Equal(t, 2000.0, res.Total)
	assert.Equal(t, 4, res.Count)
	assert.Equal(t, res.Total/float64(res.Count), res.Mean)
}

func TestDurations_SkipsMissing(t *testing.T) {
	tbl := table(false, false,
		tripSpec{start: "2017-01-01 00:00:00", duration: 100},
		tripSpec{start: "2017-01-01 00:00:00", duration: 300},
	)
	tbl.Trips[1].Duration = math.NaN()

	res, err := Durations(tbl)

	require.NoError(t, err)
	assert.Equal(t, 100.0, res.Total)
	assert.Equal(t, 100.0, res.Mean)
}

func TestUsers(t *testing.T) {
	res, err := Users(sample())

	require.NoError(t, err)
	assert.Equal(t, []Count[string]{{Value: "Subscriber", N: 3}, {Value: "Customer", N: 1}}, res.UserTypes)
	require.True(t, res.HasGender)
	assert.Equal(t, []Count[string]{{Value: "Male", N: 2}, {Value: "Female", N: 1}}, res.Genders)
	require.True(t, res.HasBirthYear)
	assert.Equal(t, BirthYearStats{Earliest: 1985, MostRecent: 2001, MostCommon: 1990}, res.BirthYears)
}

func TestUsers_WithoutOptionalColumns(t *testing.T) {
	tbl := table(false, false,
		tripSpec{start: "2017-01-01 00:00:00", userType: "Customer"},
		tripSpec{start: "2017-01-01 00:00:00", userType: "Subscriber"},
		tripSpec{start: "2017-01-01 00:00:00", userType: "Subscriber"},
	)

	res, err := Users(tbl)

	require.NoError(t, err)
	assert.Equal(t, []Count[string]{{Value: "Subscriber", N: 2}, {Value: "Customer", N: 1}}, res.UserTypes)
	assert.False(t, res.HasGender)
	assert.Nil(t, res.Genders)
	assert.False(t, res.HasBirthYear)
}

func TestSingleRowReportsItsOwnValues(t *testing.T) {
	tbl := table(true, true, tripSpec{
		start: "2017-02-14 21:05:00", duration: 42, from: "Lake St", to: "Clark St",
		userType: "Customer", gender: "Female", year: 1977,
	})

	times, err := Times(tbl)
	require.NoError(t, err)
	assert.Equal(t, TimeStats{Month: time.February, DayName: "Tuesday", Hour: 21}, times)

	stations, err := Stations(tbl)
	require.NoError(t, err)
	assert.Equal(t, StationStats{StartStation: "Lake St", EndStation: "Clark St", Route: "Lake St to Clark St"}, stations)

	users, err := Users(tbl)
	require.NoError(t, err)
	assert.Equal(t, []Count[string]{{Value: "Customer", N: 1}}, users.UserTypes)
	assert.Equal(t, []Count[string]{{Value: "Female", N: 1}}, users.Genders)
	assert.Equal(t, BirthYearStats{Earliest: 1977, MostRecent: 1977, MostCommon: 1977}, users.BirthYears)
}

func TestEmptyTable(t *testing.T) {
	empty := table(true, true)

	_, err := Times(empty)
	require.ErrorIs(t, err, ErrNoData)

	_, err = Stations(empty)
	require.ErrorIs(t, err, ErrNoData)

	dur, err := Durations(empty)
	require.ErrorIs(t, err, ErrNoData)
	assert.Equal(t, 0.0, dur.Total)

	users, err := Users(empty)
	require.ErrorIs(t, err, ErrNoData)
	assert.Empty(t, users.UserTypes)
	assert.Empty(t, users.Genders)
}

func TestUsers_EmptyTableWithoutBirthYearIsNotAnError(t *testing.T) {
	users, err := Users(table(false, false))

	require.NoError(t, err)
	assert.Empty(t, users.UserTypes)
}

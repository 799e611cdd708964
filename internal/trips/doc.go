// Package trips loads bikeshare trip records from a city's CSV file into an
// in-memory Table, derives the Month, Day Name and Hour of every trip from
// its start time, and applies the month/day Filter chosen by the user.
package trips

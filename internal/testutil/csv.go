// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Header columns of each city layout, as found in the published data sets.
var (
	FullHeader  = []string{"", "Start Time", "End Time", "Trip Duration", "Start Station", "End Station", "User Type", "Gender", "Birth Year"}
	ShortHeader = []string{"", "Start Time", "End Time", "Trip Duration", "Start Station", "End Station", "User Type"}
)

// Row is one trip in a fixture. Gender and BirthYear are written only when
// the fixture uses FullHeader.
type Row struct {
	Start        string
	End          string
	Duration     string
	StartStation string
	EndStation   string
	UserType     string
	Gender       string
	BirthYear    string
}

// CSV renders rows under header. The leading unnamed column carries a
// running id like the published files do.
func CSV(t *testing.T, header []string, rows ...Row) string {
	t.Helper()

	var sb strings.Builder
	w := csv.NewWriter(&sb)
	require.NoError(t, w.Write(header))
	for i, r := range rows {
		record := []string{strconv.Itoa(i), r.Start, r.End, r.Duration, r.StartStation, r.EndStation, r.UserType}
		if len(header) == len(FullHeader) {
			record = append(record, r.Gender, r.BirthYear)
		}
		require.NoError(t, w.Write(record))
	}
	w.Flush()
	require.NoError(t, w.Error())
	return sb.String()
}

// WriteFile writes content into dir/name and returns the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

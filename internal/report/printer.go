package report

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/specialistvlad/bikeshare/internal/stats"
)

// Separator closes every section of output.
var Separator = strings.Repeat("-", 40)

// Printer writes report sections to out.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a Printer.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Loaded announces the number of trips left after filtering.
func (p *Printer) Loaded(city string, rows int) {
	fmt.Fprintf(p.out, "\nData loaded successfully for %s with %s records after filtering.\n\n", city, humanize.Comma(int64(rows)))
}

// Section prints title, runs body and reports how long body took.
func (p *Printer) Section(title string, body func(w io.Writer)) {
	fmt.Fprintf(p.out, "\n%s\n\n", title)
	started := time.Now()
	body(p.out)
	fmt.Fprintf(p.out, "\nThis took %.2f seconds.\n%s\n", time.Since(started).Seconds(), Separator)
}

// WriteTimes renders the most frequent times of travel.
func WriteTimes(w io.Writer, res stats.TimeStats, err error) {
	if noData(w, err) {
		return
	}
	fmt.Fprintf(w, "Most Common Month: %d (%s)\n", int(res.Month), res.Month)
	fmt.Fprintf(w, "Most Common Day of Week: %s\n", res.DayName)
	fmt.Fprintf(w, "Most Common Start Hour: %d\n", res.Hour)
}

// WriteStations renders the most popular stations and trip.
func WriteStations(w io.Writer, res stats.StationStats, err error) {
	if noData(w, err) {
		return
	}
	fmt.Fprintf(w, "Most Common Start Station: %s\n", res.StartStation)
	fmt.Fprintf(w, "Most Common End Station: %s\n", res.EndStation)
	fmt.Fprintf(w, "Most Frequent Trip: %s\n", res.Route)
}

// WriteDurations renders total and average trip duration. The total is
// printed even when the average is undefined.
func WriteDurations(w io.Writer, res stats.DurationStats, err error) {
	fmt.Fprintf(w, "Total Duration: %s seconds (%s)\n", humanize.Commaf(res.Total), seconds(res.Total))
	if errors.Is(err, stats.ErrNoData) {
		fmt.Fprintln(w, "Average Duration: no data to report.")
		return
	}
	if err != nil {
		fmt.Fprintf(w, "Average Duration: %v\n", err)
		return
	}
	fmt.Fprintf(w, "Average Duration: %.2f seconds (%s)\n", res.Mean, seconds(res.Mean))
}

// WriteUsers renders the user type breakdown and, when available, the gender
// breakdown and birth year summary.
func WriteUsers(w io.Writer, res stats.UserStats, err error) {
	fmt.Fprintln(w, "User Types:")
	writeCounts(w, res.UserTypes)

	if res.HasGender {
		fmt.Fprintln(w, "\nGender Distribution:")
		writeCounts(w, res.Genders)
	}

	if !res.HasBirthYear {
		return
	}
	fmt.Fprintln(w)
	if err != nil {
		if errors.Is(err, stats.ErrNoData) {
			fmt.Fprintln(w, "Birth Year: no data to report.")
		} else {
			fmt.Fprintf(w, "Birth Year: %v\n", err)
		}
		return
	}
	fmt.Fprintf(w, "Earliest Birth Year: %d\n", res.BirthYears.Earliest)
	fmt.Fprintf(w, "Most Recent Birth Year: %d\n", res.BirthYears.MostRecent)
	fmt.Fprintf(w, "Most Common Birth Year: %d\n", res.BirthYears.MostCommon)
}

func writeCounts(w io.Writer, counts []stats.Count[string]) {
	if len(counts) == 0 {
		fmt.Fprintln(w, "  no data to report.")
		return
	}
	for _, c := range counts {
		fmt.Fprintf(w, "  %s: %s\n", c.Value, humanize.Comma(int64(c.N)))
	}
}

// noData prints the no-data outcome and reports whether err was set.
func noData(w io.Writer, err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, stats.ErrNoData):
		fmt.Fprintln(w, "No data to report.")
	default:
		fmt.Fprintf(w, "Error: %v\n", err)
	}
	return true
}

func seconds(s float64) string {
	return time.Duration(s * float64(time.Second)).Round(time.Second).String()
}

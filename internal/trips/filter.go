package trips

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Months lists the months a trip set can be filtered by. Data sources only
// cover the first half of the year.
var Months = []time.Month{
	time.January,
	time.February,
	time.March,
	time.April,
	time.May,
	time.June,
}

// Filter is the month/day restriction applied while loading. The zero value
// matches every trip. Day uses 1=Sunday through 7=Saturday.
type Filter struct {
	Month time.Month
	Day   int
}

// Validate reports whether the filter only uses offered selectors.
func (f Filter) Validate() error {
	if f.Month != 0 && !isOffered(f.Month) {
		return fmt.Errorf("month %s is not available, choose January to June", f.Month)
	}
	if f.Day < 0 || f.Day > 7 {
		return fmt.Errorf("day must be between 1 and 7, got %d", f.Day)
	}
	return nil
}

// Match reports whether the trip satisfies both the month and the day selector.
func (f Filter) Match(t Trip) bool {
	if f.Month != 0 && t.Month != f.Month {
		return false
	}
	if f.Day != 0 && t.DayName != DayName(f.Day) {
		return false
	}
	return true
}

// String renders the filter for logs and headings.
func (f Filter) String() string {
	month, day := "none", "none"
	if f.Month != 0 {
		month = f.Month.String()
	}
	if f.Day != 0 {
		day = DayName(f.Day)
	}
	return fmt.Sprintf("month=%s day=%s", month, day)
}

// DayName returns the weekday name for a 1=Sunday..7=Saturday selector, or
// an empty string when day is out of range.
func DayName(day int) string {
	if day < 1 || day > 7 {
		return ""
	}
	return time.Weekday(day - 1).String()
}

// ParseMonth resolves a month name, ignoring case and surrounding spaces.
// Only the months in Months are accepted.
func ParseMonth(name string) (time.Month, error) {
	title := cases.Title(language.English).String(strings.ToLower(strings.TrimSpace(name)))
	for _, m := range Months {
		if m.String() == title {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown month %q", name)
}

func isOffered(m time.Month) bool {
	for _, offered := range Months {
		if offered == m {
			return true
		}
	}
	return false
}

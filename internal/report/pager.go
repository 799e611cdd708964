package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/specialistvlad/bikeshare/internal/trips"
)

// DefaultPageSize is the number of raw rows shown per page.
const DefaultPageSize = 5

// YesNoAsker asks a yes/no question until it gets a valid answer.
type YesNoAsker interface {
	YesNo(question string) (bool, error)
}

// Pager shows a table's raw rows a page at a time while the user agrees.
type Pager struct {
	asker    YesNoAsker
	out      io.Writer
	pageSize int
}

// NewPager creates a Pager with DefaultPageSize.
func NewPager(asker YesNoAsker, out io.Writer) *Pager {
	return &Pager{asker: asker, out: out, pageSize: DefaultPageSize}
}

// Run offers the raw data and pages through it. Once every row has been
// shown it stops on its own without asking again.
func (p *Pager) Run(t *trips.Table) error {
	show, err := p.asker.YesNo("Would you like to see raw data? Enter yes or no: ")
	if err != nil {
		return err
	}

	cursor := 0
	for show {
		end := min(cursor+p.pageSize, t.Len())
		if err := WriteTrips(p.out, t, t.Trips[cursor:end]); err != nil {
			return err
		}
		cursor += p.pageSize
		if cursor >= t.Len() {
			fmt.Fprintln(p.out, "No more data to display.")
			return nil
		}

		show, err = p.asker.YesNo(fmt.Sprintf("Would you like to see %d more lines of data? Enter yes or no: ", p.pageSize))
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteTrips renders rows as an aligned table. Optional columns are included
// when the table carries them.
func WriteTrips(w io.Writer, t *trips.Table, rows []trips.Trip) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	header := []string{"Row", trips.ColStartTime, trips.ColEndTime, trips.ColTripDuration, trips.ColStartStation, trips.ColEndStation, trips.ColUserType}
	if t.HasGender {
		header = append(header, trips.ColGender)
	}
	if t.HasBirthYear {
		header = append(header, trips.ColBirthYear)
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for _, r := range rows {
		cells := []string{
			strconv.Itoa(r.Row),
			r.Start.Format(time.DateTime),
			r.End.Format(time.DateTime),
			number(r.Duration),
			r.StartStation,
			r.EndStation,
			r.UserType,
		}
		if t.HasGender {
			cells = append(cells, r.Gender)
		}
		if t.HasBirthYear {
			cells = append(cells, number(r.BirthYear))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}

func number(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

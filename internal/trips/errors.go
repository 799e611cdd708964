package trips

import "errors"

var (
	// ErrMissingColumn is returned when a required column is absent from the source.
	ErrMissingColumn = errors.New("missing required column")
	// ErrTimestamp is returned when a Start Time or End Time cell cannot be parsed.
	ErrTimestamp = errors.New("unparseable timestamp")
)

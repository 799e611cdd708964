// Package stats computes the summary statistics reported for a filtered trip
// table: popular travel times, popular stations, trip durations and user
// demographics.
//
// Every "most common" value is chosen by frequency count. When several values
// share the highest count, the one seen first in table order wins. Statistics
// that are undefined on an empty input return ErrNoData instead of a zero
// value or NaN.
package stats

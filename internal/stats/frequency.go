package stats

import (
	"errors"
	"slices"
)

// ErrNoData is returned when a statistic needs at least one value.
var ErrNoData = errors.New("no data to report")

// Count is the number of occurrences of a single value.
type Count[T comparable] struct {
	Value T
	N     int
}

// ValueCounts counts every distinct value, ordered by count descending.
// Values with equal counts keep their first-seen order.
func ValueCounts[T comparable](values []T) []Count[T] {
	index := make(map[T]int)
	var counts []Count[T]
	for _, v := range values {
		if i, ok := index[v]; ok {
			counts[i].N++
			continue
		}
		index[v] = len(counts)
		counts = append(counts, Count[T]{Value: v, N: 1})
	}

	slices.SortStableFunc(counts, func(a, b Count[T]) int {
		return b.N - a.N
	})
	return counts
}

// Mode returns the most frequent value, first-seen on ties.
func Mode[T comparable](values []T) (T, error) {
	counts := ValueCounts(values)
	if len(counts) == 0 {
		var zero T
		return zero, ErrNoData
	}
	return counts[0].Value, nil
}

// nonEmpty drops blank cells, which stand for missing values.
func nonEmpty(values []string) []string {
	out := values[:0:0]
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

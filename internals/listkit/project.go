package listkit

import "time"

/* ===============================
   Aggregate projections
=================================*/

// CountBy groups items by key and counts them. Items whose key is empty
// are excluded from the projection, not lumped into an "unknown" bucket.
func CountBy[T any](items []T, key func(T) string) map[string]int {
	out := make(map[string]int)
	for _, item := range items {
		k := key(item)
		if k == "" {
			continue
		}
		out[k]++
	}
	return out
}

// CountByMonth counts items per month (index 0-11) within one calendar
// year. Items with a zero time or dated outside year are excluded.
func CountByMonth[T any](items []T, year int, at func(T) time.Time) [12]int {
	var out [12]int
	for _, item := range items {
		t := at(item)
		if t.IsZero() || t.Year() != year {
			continue
		}
		out[int(t.Month())-1]++
	}
	return out
}

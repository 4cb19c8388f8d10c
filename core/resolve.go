package core

import (
	"sort"
	"time"

	"github.com/fweigt/tslabel/schema"
)

// ResolveRange maps a user-chosen time range to the identifiers of every
// record whose timestamp falls within [lo, hi]. Both ends are inclusive: a
// user-drawn selection includes its boundary points by convention. An empty
// range or no matches yields an empty set, not an error. The result depends
// only on the series and the range.
func ResolveRange(series *schema.Series, lo, hi time.Time) []int {
	if hi.Before(lo) {
		return nil
	}

	// The series is sorted by timestamp, so locate the first candidate and
	// scan forward until the range ends.
	n := len(series.Records)
	first := sort.Search(n, func(i int) bool {
		return !series.Records[i].Timestamp.Before(lo)
	})

	var ids []int
	for i := first; i < n; i++ {
		if series.Records[i].Timestamp.After(hi) {
			break
		}
		ids = append(ids, series.Records[i].Index)
	}
	return ids
}

// recordsInRange returns the records themselves for an inclusive range, in
// series order. Used to build views.
func recordsInRange(series *schema.Series, lo, hi time.Time) []schema.Record {
	if hi.Before(lo) {
		return nil
	}
	n := len(series.Records)
	first := sort.Search(n, func(i int) bool {
		return !series.Records[i].Timestamp.Before(lo)
	})
	var out []schema.Record
	for i := first; i < n; i++ {
		if series.Records[i].Timestamp.After(hi) {
			break
		}
		out = append(out, series.Records[i])
	}
	return out
}

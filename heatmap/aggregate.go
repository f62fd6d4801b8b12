package heatmap

import (
	"fmt"
	"strings"
	"time"
)

// Counts maps a date key to the number of events on that day.
type Counts map[string]int

// Get returns the count for key; absent keys count zero.
func (c Counts) Get(key string) int {
	return c[key]
}

// Total returns the sum of all counts.
func (c Counts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// eventLayouts are tried in order. Layouts without a zone are read in the
// caller's location.
var eventLayouts = []struct {
	layout string
	zoned  bool
}{
	{time.RFC3339Nano, true},
	{"2006-01-02T15:04:05", false},
	{"2006-01-02T15:04", false},
	{DateKeyLayout, false},
}

// ParseEventTime parses an ISO-8601 event timestamp.
func ParseEventTime(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	v := strings.TrimSpace(s)
	for _, l := range eventLayouts {
		var (
			t   time.Time
			err error
		)
		if l.zoned {
			t, err = time.Parse(l.layout, v)
		} else {
			t, err = time.ParseInLocation(l.layout, v, loc)
		}
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidEventTimestamp, s)
}

// ParseEvents parses every event, failing on the first bad one.
func ParseEvents(events []string, loc *time.Location) ([]time.Time, error) {
	times := make([]time.Time, 0, len(events))
	for i, e := range events {
		t, err := ParseEventTime(e, loc)
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		times = append(times, t)
	}
	return times, nil
}

// Aggregate counts events per calendar day in loc. Only days in the
// displayed range are kept; every event is still validated.
func Aggregate(events []string, days []Day, loc *time.Location) (Counts, error) {
	times, err := ParseEvents(events, loc)
	if err != nil {
		return nil, err
	}
	return CountTimes(times, days, loc), nil
}

// CountTimes is Aggregate for already parsed instants.
func CountTimes(times []time.Time, days []Day, loc *time.Location) Counts {
	if loc == nil {
		loc = time.Local
	}
	counts := make(Counts, len(days))
	if len(days) == 0 {
		return counts
	}
	first := days[0].Key()
	last := days[len(days)-1].Key()
	for _, t := range times {
		key := DateKey(t.In(loc))
		// YYYY-MM-DD keys order lexically
		if key < first || key > last {
			continue
		}
		counts[key]++
	}
	return counts
}

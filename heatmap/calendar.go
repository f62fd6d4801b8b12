package heatmap

import (
	"fmt"
	"time"
)

// WeekStart is the weekday that begins each week column, counted from
// Monday (0) to Sunday (6).
type WeekStart int

const (
	Monday WeekStart = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// Valid reports whether w is in 0..6.
func (w WeekStart) Valid() bool {
	return w >= Monday && w <= Sunday
}

// Weekday converts w to the time package's Sunday-based weekday.
func (w WeekStart) Weekday() time.Weekday {
	return time.Weekday((int(w) + 1) % 7)
}

// WeekdayIndex returns the weekday of t counted from Monday (0).
func WeekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// DateKeyLayout formats the date key of a day.
const DateKeyLayout = "2006-01-02"

// Day is one calendar day of the grid.
type Day struct {
	Date time.Time // local midnight
	Week int       // column, oldest week is 0
	Row  int       // position within the week, 0..6
}

// Key returns the YYYY-MM-DD key of the day.
func (d Day) Key() string {
	return d.Date.Format(DateKeyLayout)
}

// DateKey returns the YYYY-MM-DD key of the calendar day containing t.
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// truncateToMidnight zeroes time component
func truncateToMidnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// AnchorWeek returns the first day of the week containing now: the most
// recent date on or before now whose weekday is start.
func AnchorWeek(now time.Time, start WeekStart) time.Time {
	today := truncateToMidnight(now)
	diff := (WeekdayIndex(today) - int(start) + 7) % 7
	return today.AddDate(0, 0, -diff)
}

// BuildDays returns weekCount*7 consecutive days in ascending order, the
// last week column being the one containing now. Days after now in the
// current week are included so every column spans a full week.
func BuildDays(weekCount int, start WeekStart, now time.Time) ([]Day, error) {
	if !start.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedWeekStartDay, int(start))
	}
	if weekCount < 1 {
		return nil, fmt.Errorf("%w: week count %d", ErrInvalidLayoutGeometry, weekCount)
	}

	anchor := AnchorWeek(now, start)
	days := make([]Day, 0, weekCount*7)
	for w := weekCount - 1; w >= 0; w-- {
		column := weekCount - 1 - w
		for r := range 7 {
			days = append(days, Day{
				Date: anchor.AddDate(0, 0, -w*7+r),
				Week: column,
				Row:  r,
			})
		}
	}
	return days, nil
}

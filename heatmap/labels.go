package heatmap

import "github.com/samber/lo"

// MonthLabel marks the first week column of a run of weeks in one month.
type MonthLabel struct {
	Column int    `json:"column"`
	Month  int    `json:"month"` // 0-based
	Text   string `json:"text"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
}

// WeekdayLabel names one grid row.
type WeekdayLabel struct {
	Row     int    `json:"row"`
	Weekday int    `json:"weekday"` // Monday-based
	Text    string `json:"text"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
}

// weekdayLabelRows skips every other row to avoid crowding.
var weekdayLabelRows = []int{0, 2, 4, 6}

// MonthLabels emits a label whenever the month of a week column's first
// day differs from the previous column. The first column is always
// labelled.
func MonthLabels(days []Day) []MonthLabel {
	var labels []MonthLabel
	prev := -1
	for column, week := range lo.Chunk(days, 7) {
		month := int(week[0].Date.Month()) - 1
		if month != prev {
			labels = append(labels, MonthLabel{Column: column, Month: month})
			prev = month
		}
	}
	return labels
}

// WeekdayLabels returns the labelled rows with the weekday each row shows
// for the given week start.
func WeekdayLabels(start WeekStart) []WeekdayLabel {
	return lo.Map(weekdayLabelRows, func(row int, _ int) WeekdayLabel {
		return WeekdayLabel{Row: row, Weekday: (row + int(start)) % 7}
	})
}

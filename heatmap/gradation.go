package heatmap

import "math"

// Level is the intensity bucket assigned to a day from its event count.
type Level int

const (
	LevelNone Level = iota
	LevelLow
	LevelMedium
	LevelHigh
	LevelMax
)

// NumLevels is the number of gradation levels (and ramp colors).
const NumLevels = 5

type gradation struct {
	min, max int
	label    string
}

// gradations are inclusive, disjoint and cover every non-negative count.
var gradations = [NumLevels]gradation{
	{min: 0, max: 0, label: "0"},
	{min: 1, max: 4, label: "1-4"},
	{min: 5, max: 9, label: "5-9"},
	{min: 10, max: 19, label: "10-19"},
	{min: 20, max: math.MaxInt, label: "20+"},
}

// Classify returns the gradation level for count.
// Negative counts are treated as no activity.
func Classify(count int) Level {
	for i, g := range gradations {
		if count >= g.min && count <= g.max {
			return Level(i)
		}
	}
	return LevelNone
}

// Levels returns every level in ascending order.
func Levels() []Level {
	return []Level{LevelNone, LevelLow, LevelMedium, LevelHigh, LevelMax}
}

// RangeLabel returns the legend text for the level ("0", "1-4", ... "20+").
func (l Level) RangeLabel() string {
	if !l.Valid() {
		return ""
	}
	return gradations[l].label
}

// Valid reports whether l is one of the five defined levels.
func (l Level) Valid() bool {
	return l >= LevelNone && l <= LevelMax
}

func (l Level) String() string {
	switch l {
	case LevelNone:
		return "none"
	case LevelLow:
		return "low"
	case LevelMedium:
		return "medium"
	case LevelHigh:
		return "high"
	case LevelMax:
		return "max"
	}
	return "unknown"
}

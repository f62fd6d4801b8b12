package heatmap

import (
	"fmt"
	"time"
)

// Layout constants (px).
const (
	LeftPad          = 44
	TopPad           = 30
	RightPad         = 4
	MonthLabelY      = 15
	WeekdayLabelGap  = 8
	VerticalPadding  = 60
	CellCornerRadius = 3
)

// FadeDuration is how long a cell takes to fade to its new color.
const FadeDuration = 500 * time.Millisecond

// Cell is one day of the composed grid.
type Cell struct {
	Key          string    `json:"date"`
	Date         time.Time `json:"-"`
	Column       int       `json:"column"`
	Row          int       `json:"row"`
	X            int       `json:"x"`
	Y            int       `json:"y"`
	Size         int       `json:"size"`
	Count        int       `json:"count"`
	Level        Level     `json:"level"`
	Fill         string    `json:"fill"`
	PreviousFill string    `json:"previous_fill"`
	Animate      bool      `json:"animate"` // fade PreviousFill -> Fill, then keep Fill
	Tooltip      string    `json:"tooltip"`
}

// LegendEntry pairs a ramp color with its count range.
type LegendEntry struct {
	Level Level  `json:"level"`
	Color string `json:"color"`
	Label string `json:"label"`
}

// Grid is a fully laid out heatmap, ready for a rendering surface.
type Grid struct {
	Width        int            `json:"width"`
	Height       int            `json:"height"`
	WeekCount    int            `json:"week_count"`
	WeekStart    WeekStart      `json:"week_start"`
	CellSize     int            `json:"cell_size"`
	CellGap      int            `json:"cell_gap"`
	Cells        []Cell         `json:"cells"`
	Months       []MonthLabel   `json:"months"`
	Weekdays     []WeekdayLabel `json:"weekdays"`
	Legend       []LegendEntry  `json:"legend,omitempty"`
	TransitionMS int            `json:"transition_ms"`
}

// Transition returns the fade duration for cells marked Animate.
func (g *Grid) Transition() time.Duration {
	return time.Duration(g.TransitionMS) * time.Millisecond
}

// Snapshot remembers the fill of every cell as of the last recompute caused
// by an activity-data change. It seeds the fade of the next such recompute.
type Snapshot struct {
	fills map[string]string
}

// NewSnapshot returns an empty snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{fills: make(map[string]string)}
}

// Previous returns the remembered fill of the cell with the given date key.
func (s *Snapshot) Previous(key string) (string, bool) {
	if s == nil {
		return "", false
	}
	fill, ok := s.fills[key]
	return fill, ok
}

// Capture replaces the snapshot with the fills of cells.
func (s *Snapshot) Capture(cells []Cell) {
	fills := make(map[string]string, len(cells))
	for _, c := range cells {
		fills[c.Key] = c.Fill
	}
	s.fills = fills
}

// Len returns the number of remembered cells.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.fills)
}

// ComposeInput bundles the derived artifacts a grid is composed from.
type ComposeInput struct {
	Config Config
	Days   []Day
	Counts Counts
	Ramp   Ramp
	Locale Locale
}

// Compose lays out the grid. When dataChanged is set, cells whose fill
// differs from snap are marked for a fade; otherwise no cell animates.
// Compose only reads snap.
func Compose(in ComposeInput, snap *Snapshot, dataChanged bool) *Grid {
	cfg := in.Config
	if in.Locale.Tooltip == "" {
		in.Locale = LookupLocale(cfg.Locale)
	}
	pitch := cfg.CellSize + cfg.CellGap
	weeks := len(in.Days) / 7

	grid := &Grid{
		Width:        weeks*pitch + LeftPad + RightPad,
		Height:       cfg.CellSize*7 + cfg.CellGap*6 + VerticalPadding,
		WeekCount:    weeks,
		WeekStart:    cfg.WeekStart,
		CellSize:     cfg.CellSize,
		CellGap:      cfg.CellGap,
		Cells:        make([]Cell, 0, len(in.Days)),
		TransitionMS: int(FadeDuration / time.Millisecond),
	}

	for i, d := range in.Days {
		key := d.Key()
		count := in.Counts.Get(key)
		level := Classify(count)
		fill := in.Ramp.Color(level)

		prev := fill
		if dataChanged {
			if p, ok := snap.Previous(key); ok {
				prev = p
			}
		}

		column, row := i/7, i%7
		grid.Cells = append(grid.Cells, Cell{
			Key:          key,
			Date:         d.Date,
			Column:       column,
			Row:          row,
			X:            LeftPad + column*pitch,
			Y:            TopPad + row*pitch,
			Size:         cfg.CellSize,
			Count:        count,
			Level:        level,
			Fill:         fill,
			PreviousFill: prev,
			Animate:      prev != fill,
			Tooltip:      fmt.Sprintf(in.Locale.Tooltip, key, count),
		})
	}

	for _, m := range MonthLabels(in.Days) {
		m.Text = in.Locale.MonthName(m.Month)
		m.X = LeftPad + m.Column*pitch
		m.Y = MonthLabelY
		grid.Months = append(grid.Months, m)
	}

	for _, w := range WeekdayLabels(cfg.WeekStart) {
		w.Text = in.Locale.WeekdayName(w.Weekday)
		w.X = LeftPad - WeekdayLabelGap
		w.Y = TopPad + w.Row*pitch + cfg.CellSize/2
		grid.Weekdays = append(grid.Weekdays, w)
	}

	if cfg.Legend {
		for _, l := range Levels() {
			grid.Legend = append(grid.Legend, LegendEntry{
				Level: l,
				Color: in.Ramp.Color(l),
				Label: l.RangeLabel(),
			})
		}
	}

	return grid
}

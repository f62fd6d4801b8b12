package heatmap

import (
	"fmt"
	"time"
)

// Config configures a heatmap grid. Zero values are not defaults; start
// from DefaultConfig and override.
type Config struct {
	WeekStart     WeekStart `json:"week_start" yaml:"week_start"`         // 0=Monday .. 6=Sunday
	Width         int       `json:"width" yaml:"width"`                   // fallback width (px)
	CellSize      int       `json:"cell_size" yaml:"cell_size"`           // size of each day cell (px)
	CellGap       int       `json:"cell_gap" yaml:"cell_gap"`             // gap between cells (px)
	InactiveColor string    `json:"inactive_color" yaml:"inactive_color"` // level 0 color
	ActiveColor   string    `json:"active_color" yaml:"active_color"`     // level 4 color
	Legend        bool      `json:"legend" yaml:"legend"`
	Adaptive      bool      `json:"adaptive" yaml:"adaptive"`
	Locale        string    `json:"locale,omitempty" yaml:"locale"`

	// Location defines calendar days. nil means time.Local.
	Location *time.Location `json:"-" yaml:"-"`
}

// DefaultConfig returns the default grid configuration.
func DefaultConfig() Config {
	return Config{
		WeekStart:     Monday,
		Width:         700,
		CellSize:      14,
		CellGap:       3,
		InactiveColor: "#ebedf0",
		ActiveColor:   "#216e39",
		Legend:        true,
		Adaptive:      true,
		Locale:        "en",
	}
}

// Validate checks the parts of the configuration that do not depend on the
// measured width.
func (c Config) Validate() error {
	if !c.WeekStart.Valid() {
		return fmt.Errorf("%w: %d", ErrUnsupportedWeekStartDay, int(c.WeekStart))
	}
	if c.CellSize <= 0 || c.CellGap <= 0 {
		return fmt.Errorf("%w: cell size %d, cell gap %d", ErrInvalidLayoutGeometry, c.CellSize, c.CellGap)
	}
	if _, err := NewRamp(c.InactiveColor, c.ActiveColor); err != nil {
		return err
	}
	return nil
}

func (c Config) location() *time.Location {
	if c.Location == nil {
		return time.Local
	}
	return c.Location
}

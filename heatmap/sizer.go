package heatmap

import (
	"fmt"
	"sync/atomic"
)

const (
	// MaxWeeks caps the number of week columns.
	MaxWeeks = 52
	// HorizontalPadding is the width reserved for weekday labels and margins.
	HorizontalPadding = 40
)

// WeekCount derives how many week columns fit into width.
// A result below one column is reported as ErrInvalidLayoutGeometry.
func WeekCount(width, cellSize, cellGap int) (int, error) {
	if cellSize <= 0 || cellGap <= 0 {
		return 0, fmt.Errorf("%w: cell size %d, cell gap %d", ErrInvalidLayoutGeometry, cellSize, cellGap)
	}
	weeks := floorDiv(width-HorizontalPadding, cellSize+cellGap)
	if weeks > MaxWeeks {
		weeks = MaxWeeks
	}
	if weeks < 1 {
		return 0, fmt.Errorf("%w: width %d fits no week column of %dpx", ErrInvalidLayoutGeometry, width, cellSize+cellGap)
	}
	return weeks, nil
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// WidthProvider reports the currently measured container width.
// ok is false when no container can be measured.
type WidthProvider interface {
	Width() (width int, ok bool)
}

// StaticWidth is a WidthProvider with a fixed measurement.
type StaticWidth int

// Width implements WidthProvider.
func (w StaticWidth) Width() (int, bool) {
	return int(w), w > 0
}

// LiveWidth receives resize notifications from any goroutine.
// The zero value reports no measurement.
type LiveWidth struct {
	width atomic.Int64
}

// Set records a new container width. Repeated signals are harmless.
func (l *LiveWidth) Set(width int) {
	l.width.Store(int64(width))
}

// Width implements WidthProvider.
func (l *LiveWidth) Width() (int, bool) {
	w := int(l.width.Load())
	return w, w > 0
}

// AvailableWidth resolves the width the grid is laid out in.
func AvailableWidth(cfg Config, p WidthProvider) int {
	if !cfg.Adaptive || p == nil {
		return cfg.Width
	}
	if w, ok := p.Width(); ok {
		return w
	}
	return cfg.Width
}

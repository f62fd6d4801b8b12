package heatmap

import "errors"

// Errors reported by the grid pipeline. They are always wrapped with
// context, so compare with errors.Is.
var (
	ErrInvalidEventTimestamp   = errors.New("invalid event timestamp")
	ErrInvalidLayoutGeometry   = errors.New("invalid layout geometry")
	ErrUnsupportedWeekStartDay = errors.New("unsupported week start day")
	ErrInvalidColor            = errors.New("invalid color")
)

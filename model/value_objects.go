// Package model provides value objects for API parameter validation.
package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/stsysd/activitygrid/heatmap"
)

// BoardID represents a board ID value object.
type BoardID struct {
	value uuid.UUID
}

// NewBoardID creates a new board ID value object.
func NewBoardID(idStr string) (*BoardID, error) {
	if idStr == "" {
		return nil, fmt.Errorf("board ID is required")
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, fmt.Errorf("invalid UUID format")
	}

	return &BoardID{value: id}, nil
}

// UUID returns the UUID value.
func (b *BoardID) UUID() uuid.UUID {
	return b.value
}

// maxBoardNameLength is the upper bound of a board name in characters.
const maxBoardNameLength = 100

// BoardName represents a board name value object.
type BoardName struct {
	value string
}

// NewBoardName creates a new board name value object.
func NewBoardName(name string) (*BoardName, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("board name is required")
	}
	if utf8.RuneCountInString(name) > maxBoardNameLength {
		return nil, fmt.Errorf("board name must be at most %d characters", maxBoardNameLength)
	}
	return &BoardName{value: name}, nil
}

// String returns the board name string.
func (b *BoardName) String() string {
	return b.value
}

// maxWidth is the largest container width accepted from a request.
const maxWidth = 10000

// Width represents a measured container width value object.
type Width struct {
	value int
}

// NewWidth creates a width value object. An empty string yields a zero
// width, which means "not measured".
func NewWidth(widthStr string) (*Width, error) {
	if widthStr == "" {
		return &Width{}, nil
	}
	w, err := strconv.Atoi(widthStr)
	if err != nil || w <= 0 {
		return nil, fmt.Errorf("invalid width parameter: must be a positive integer")
	}
	if w > maxWidth {
		w = maxWidth
	}
	return &Width{value: w}, nil
}

// Int returns the width in pixels.
func (w *Width) Int() int {
	return w.value
}

// Measured reports whether a width was given.
func (w *Width) Measured() bool {
	return w.value > 0
}

// maxEvents bounds the number of events accepted in a single request.
const maxEvents = 100000

// Events represents a validated list of activity event timestamps.
type Events struct {
	values []string
}

// NewEvents validates every timestamp against loc.
func NewEvents(events []string, loc *time.Location) (*Events, error) {
	if len(events) > maxEvents {
		return nil, fmt.Errorf("too many events: at most %d are accepted", maxEvents)
	}
	if _, err := heatmap.ParseEvents(events, loc); err != nil {
		return nil, err
	}
	if events == nil {
		events = []string{}
	}
	return &Events{values: events}, nil
}

// Values returns the event timestamps.
func (e *Events) Values() []string {
	return e.values
}

// Len returns the number of events.
func (e *Events) Len() int {
	return len(e.values)
}

// RenderFormat represents the output format of a rendered grid.
type RenderFormat string

const (
	FormatJSON RenderFormat = "json"
	FormatSVG  RenderFormat = "svg"
)

// NewRenderFormat parses a format parameter. Empty means JSON.
func NewRenderFormat(s string) (RenderFormat, error) {
	switch RenderFormat(strings.ToLower(s)) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatSVG:
		return FormatSVG, nil
	}
	return "", fmt.Errorf("invalid format parameter: must be json or svg")
}

// Pagination represents pagination parameters value object.
type Pagination struct {
	limit  int
	offset int
}

// NewPagination creates a new pagination value object.
func NewPagination(limitStr, offsetStr string) (*Pagination, error) {
	limit := 100 // Default value
	offset := 0  // Default value

	// Process limit parameter
	if limitStr != "" {
		parsedLimit, err := strconv.Atoi(limitStr)
		if err != nil {
			return nil, fmt.Errorf("invalid limit parameter: must be a positive integer")
		}
		if parsedLimit <= 0 {
			return nil, fmt.Errorf("limit must be greater than 0")
		}
		if parsedLimit > 1000 { // Set upper limit
			parsedLimit = 1000
		}
		limit = parsedLimit
	}

	// Process offset parameter
	if offsetStr != "" {
		parsedOffset, err := strconv.Atoi(offsetStr)
		if err != nil {
			return nil, fmt.Errorf("invalid offset parameter: must be a non-negative integer")
		}
		if parsedOffset < 0 {
			return nil, fmt.Errorf("offset must be non-negative")
		}
		offset = parsedOffset
	}

	return &Pagination{limit: limit, offset: offset}, nil
}

// Limit returns the limit value.
func (p *Pagination) Limit() int {
	return p.limit
}

// Offset returns the offset value.
func (p *Pagination) Offset() int {
	return p.offset
}

package heatmap

import (
	"slices"
	"sync"
	"time"
)

// Heatmap is one grid instance. It keeps the latest inputs, recomputes
// derived artifacts only when their inputs change, and owns the snapshot
// that drives fade transitions. A Heatmap is safe for concurrent use.
type Heatmap struct {
	mu sync.Mutex

	cfg    Config
	width  WidthProvider
	now    func() time.Time
	events []string

	// eventsVersion increments on every SetEvents; capturedVersion is the
	// version the snapshot was last captured for.
	eventsVersion   uint64
	capturedVersion uint64
	captured        bool
	snapshot        *Snapshot

	weeks  memo[sizeKey, int]
	days   memo[daysKey, []Day]
	counts memo[countsKey, Counts]
	ramp   memo[rampKey, Ramp]
}

type sizeKey struct {
	width, cellSize, cellGap int
}

type daysKey struct {
	weeks int
	start WeekStart
	today string
	loc   *time.Location
}

type countsKey struct {
	version     uint64
	first, last string
	loc         *time.Location
}

type rampKey struct {
	inactive, active string
}

// memo caches the result of the last successful computation for a key.
type memo[K comparable, V any] struct {
	key K
	val V
	ok  bool
}

func (m *memo[K, V]) get(key K, compute func() (V, error)) (V, error) {
	if m.ok && m.key == key {
		return m.val, nil
	}
	v, err := compute()
	if err != nil {
		var zero V
		return zero, err
	}
	m.key, m.val, m.ok = key, v, true
	return v, nil
}

// Option configures a Heatmap.
type Option func(*Heatmap)

// WithWidthProvider sets the source of container width measurements.
func WithWidthProvider(p WidthProvider) Option {
	return func(h *Heatmap) {
		h.width = p
	}
}

// WithClock overrides the reference instant "now".
func WithClock(now func() time.Time) Option {
	return func(h *Heatmap) {
		h.now = now
	}
}

// WithEvents sets the initial activity events.
func WithEvents(events []string) Option {
	return func(h *Heatmap) {
		h.events = slices.Clone(events)
	}
}

// New creates a grid instance.
func New(cfg Config, opts ...Option) (*Heatmap, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	h := &Heatmap{
		cfg:      cfg,
		now:      time.Now,
		snapshot: NewSnapshot(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

// Config returns the current configuration.
func (h *Heatmap) Config() Config {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cfg
}

// SetConfig replaces the configuration. It never touches the fade
// snapshot, so the next render animates nothing.
func (h *Heatmap) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cfg = cfg
	return nil
}

// SetEvents replaces the activity events. The next successful render
// fades changed cells and refreshes the snapshot.
func (h *Heatmap) SetEvents(events []string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.setEvents(events)
}

// SetEventsAndRender replaces the events and renders with locale while
// holding the lock, so no concurrent render can consume the fade of this
// data change.
func (h *Heatmap) SetEventsAndRender(events []string, locale Locale) (*Grid, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.setEvents(events)
	return h.render(locale)
}

func (h *Heatmap) setEvents(events []string) {
	h.events = slices.Clone(events)
	h.eventsVersion++
}

// Events returns a copy of the current activity events.
func (h *Heatmap) Events() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return slices.Clone(h.events)
}

// Render composes the grid with the configured locale.
func (h *Heatmap) Render() (*Grid, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.render(LookupLocale(h.cfg.Locale))
}

// RenderLocale composes the grid with an explicit locale.
func (h *Heatmap) RenderLocale(locale Locale) (*Grid, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.render(locale)
}

func (h *Heatmap) render(locale Locale) (*Grid, error) {
	cfg := h.cfg
	loc := cfg.location()

	width := AvailableWidth(cfg, h.width)
	weeks, err := h.weeks.get(sizeKey{width, cfg.CellSize, cfg.CellGap}, func() (int, error) {
		return WeekCount(width, cfg.CellSize, cfg.CellGap)
	})
	if err != nil {
		return nil, err
	}

	now := h.now().In(loc)
	days, err := h.days.get(daysKey{weeks, cfg.WeekStart, DateKey(now), loc}, func() ([]Day, error) {
		return BuildDays(weeks, cfg.WeekStart, now)
	})
	if err != nil {
		return nil, err
	}

	ck := countsKey{h.eventsVersion, days[0].Key(), days[len(days)-1].Key(), loc}
	counts, err := h.counts.get(ck, func() (Counts, error) {
		return Aggregate(h.events, days, loc)
	})
	if err != nil {
		return nil, err
	}

	ramp, err := h.ramp.get(rampKey{cfg.InactiveColor, cfg.ActiveColor}, func() (Ramp, error) {
		return NewRamp(cfg.InactiveColor, cfg.ActiveColor)
	})
	if err != nil {
		return nil, err
	}

	dataChanged := !h.captured || h.capturedVersion != h.eventsVersion
	grid := Compose(ComposeInput{
		Config: cfg,
		Days:   days,
		Counts: counts,
		Ramp:   ramp,
		Locale: locale,
	}, h.snapshot, dataChanged)

	if dataChanged {
		h.snapshot.Capture(grid.Cells)
		h.capturedVersion = h.eventsVersion
		h.captured = true
	}
	return grid, nil
}

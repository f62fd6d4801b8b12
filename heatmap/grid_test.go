package heatmap

import (
	"testing"
	"time"
)

func composeTestGrid(t *testing.T, cfg Config, events []string) *Grid {
	t.Helper()
	now := time.Date(2025, 5, 21, 10, 0, 0, 0, time.UTC)
	days, err := BuildDays(2, cfg.WeekStart, now)
	if err != nil {
		t.Fatalf("BuildDays failed: %v", err)
	}
	counts, err := Aggregate(events, days, time.UTC)
	if err != nil {
		t.Fatalf("Aggregate failed: %v", err)
	}
	ramp, err := NewRamp(cfg.InactiveColor, cfg.ActiveColor)
	if err != nil {
		t.Fatalf("NewRamp failed: %v", err)
	}
	return Compose(ComposeInput{
		Config: cfg,
		Days:   days,
		Counts: counts,
		Ramp:   ramp,
		Locale: LookupLocale("en"),
	}, nil, false)
}

func TestCompose_TwoWeekScenario(t *testing.T) {
	cfg := DefaultConfig()
	grid := composeTestGrid(t, cfg, []string{
		"2025-05-19T08:00:00Z",
		"2025-05-19T12:00:00Z",
		"2025-05-19T18:00:00Z",
	})

	if len(grid.Cells) != 14 {
		t.Fatalf("expected 14 cells, got %d", len(grid.Cells))
	}
	for _, c := range grid.Cells {
		if c.Key == "2025-05-19" {
			if c.Count != 3 || c.Level != LevelLow {
				t.Errorf("monday cell = count %d level %v, want 3 / low", c.Count, c.Level)
			}
			if c.Column != 1 || c.Row != 0 {
				t.Errorf("monday cell at (%d,%d), want (1,0)", c.Column, c.Row)
			}
			if c.Tooltip != "2025-05-19: 3 activities" {
				t.Errorf("tooltip = %q", c.Tooltip)
			}
			continue
		}
		if c.Count != 0 || c.Level != LevelNone || c.Fill != "#ebedf0" {
			t.Errorf("cell %s = count %d level %v fill %s, want empty", c.Key, c.Count, c.Level, c.Fill)
		}
	}
}

func TestCompose_Layout(t *testing.T) {
	cfg := DefaultConfig()
	grid := composeTestGrid(t, cfg, nil)

	pitch := cfg.CellSize + cfg.CellGap
	if grid.Width != 2*pitch+LeftPad+RightPad {
		t.Errorf("width = %d", grid.Width)
	}
	if grid.Height != cfg.CellSize*7+cfg.CellGap*6+VerticalPadding {
		t.Errorf("height = %d", grid.Height)
	}

	c := grid.Cells[9] // column 1, row 2
	if c.X != LeftPad+pitch || c.Y != TopPad+2*pitch {
		t.Errorf("cell 9 at (%d,%d)", c.X, c.Y)
	}

	if len(grid.Months) != 1 || grid.Months[0].Text != "May" || grid.Months[0].X != LeftPad || grid.Months[0].Y != MonthLabelY {
		t.Errorf("unexpected month labels: %+v", grid.Months)
	}

	wantNames := []string{"Mon", "Wed", "Fri", "Sun"}
	for i, w := range grid.Weekdays {
		if w.Text != wantNames[i] {
			t.Errorf("weekday label %d = %q, want %q", i, w.Text, wantNames[i])
		}
		if w.X != LeftPad-WeekdayLabelGap || w.Y != TopPad+w.Row*pitch+cfg.CellSize/2 {
			t.Errorf("weekday label %d at (%d,%d)", i, w.X, w.Y)
		}
	}

	if grid.Transition() != FadeDuration {
		t.Errorf("transition = %v", grid.Transition())
	}
}

func TestCompose_SundayStartLabels(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WeekStart = Sunday
	grid := composeTestGrid(t, cfg, nil)

	wantNames := []string{"Sun", "Tue", "Thu", "Sat"}
	for i, w := range grid.Weekdays {
		if w.Text != wantNames[i] {
			t.Errorf("weekday label %d = %q, want %q", i, w.Text, wantNames[i])
		}
	}
	if grid.Cells[0].Date.Weekday() != time.Sunday {
		t.Errorf("first cell is %v, want Sunday", grid.Cells[0].Date.Weekday())
	}
}

func TestCompose_Legend(t *testing.T) {
	cfg := DefaultConfig()
	grid := composeTestGrid(t, cfg, nil)

	wantLabels := []string{"0", "1-4", "5-9", "10-19", "20+"}
	if len(grid.Legend) != NumLevels {
		t.Fatalf("expected %d legend entries, got %d", NumLevels, len(grid.Legend))
	}
	for i, e := range grid.Legend {
		if e.Label != wantLabels[i] {
			t.Errorf("legend %d label = %q, want %q", i, e.Label, wantLabels[i])
		}
	}
	if grid.Legend[0].Color != "#ebedf0" || grid.Legend[4].Color != "#216e39" {
		t.Errorf("unexpected legend colors: %+v", grid.Legend)
	}

	cfg.Legend = false
	if grid := composeTestGrid(t, cfg, nil); grid.Legend != nil {
		t.Errorf("expected no legend, got %+v", grid.Legend)
	}
}

func TestCompose_Transitions(t *testing.T) {
	cfg := DefaultConfig()
	grid := composeTestGrid(t, cfg, []string{"2025-05-19T08:00:00Z"})

	snap := NewSnapshot()
	snap.Capture(grid.Cells)
	if snap.Len() != 14 {
		t.Fatalf("snapshot holds %d cells", snap.Len())
	}

	now := time.Date(2025, 5, 21, 10, 0, 0, 0, time.UTC)
	days, _ := BuildDays(2, Monday, now)
	ramp, _ := NewRamp(cfg.InactiveColor, cfg.ActiveColor)
	in := ComposeInput{
		Config: cfg,
		Days:   days,
		Counts: Counts{"2025-05-20": 25},
		Ramp:   ramp,
	}

	changed := Compose(in, snap, true)
	for _, c := range changed.Cells {
		switch c.Key {
		case "2025-05-19":
			if !c.Animate || c.PreviousFill != ramp[LevelLow] || c.Fill != ramp[LevelNone] {
				t.Errorf("monday cell = %+v", c)
			}
		case "2025-05-20":
			if !c.Animate || c.PreviousFill != ramp[LevelNone] || c.Fill != ramp[LevelMax] {
				t.Errorf("tuesday cell = %+v", c)
			}
		default:
			if c.Animate || c.PreviousFill != c.Fill {
				t.Errorf("cell %s should not animate: %+v", c.Key, c)
			}
		}
	}

	// データ変更以外の再計算ではアニメーションしない
	unchanged := Compose(in, snap, false)
	for _, c := range unchanged.Cells {
		if c.Animate || c.PreviousFill != c.Fill {
			t.Errorf("cell %s animates without a data change", c.Key)
		}
	}

	// Compose はスナップショットを更新しない
	if p, _ := snap.Previous("2025-05-20"); p != ramp[LevelNone] {
		t.Errorf("snapshot was modified: %s", p)
	}
}

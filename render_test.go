package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/stsysd/activitygrid/heatmap"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestReadEvents(t *testing.T) {
	dir := t.TempDir()
	want := []string{"2025-05-19T08:00:00Z", "2025-05-20"}

	tests := []struct {
		name    string
		content string
	}{
		{"JSON array", `["2025-05-19T08:00:00Z", "2025-05-20"]`},
		{"Lines", "# exported\n2025-05-19T08:00:00Z\n\n  2025-05-20  \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, "events.txt", tt.content)
			got, err := readEvents(path)
			if err != nil {
				t.Fatalf("readEvents failed: %v", err)
			}
			if !slices.Equal(got, want) {
				t.Errorf("Expected %v, got %v", want, got)
			}
		})
	}

	if _, err := readEvents(filepath.Join(dir, "missing")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func testRenderOptions(t *testing.T, dir string) renderOptions {
	t.Helper()
	cfg := writeFile(t, dir, "grid.yaml", "timezone: UTC\ngrid:\n  width: 74\n  adaptive: false\n")
	events := writeFile(t, dir, "events.txt", "2025-05-19T08:00:00Z\n")
	return renderOptions{
		eventsPath: events,
		configPath: cfg,
		format:     "json",
		weekStart:  -1,
	}
}

func TestRender(t *testing.T) {
	dir := t.TempDir()
	opts := testRenderOptions(t, dir)

	var buf bytes.Buffer
	if err := runRender(&buf, opts); err != nil {
		t.Fatalf("runRender failed: %v", err)
	}

	var grid heatmap.Grid
	if err := json.Unmarshal(buf.Bytes(), &grid); err != nil {
		t.Fatalf("Failed to decode output: %v", err)
	}
	if grid.WeekCount != 2 || len(grid.Cells) != 14 {
		t.Errorf("Expected a 2 week grid, got %d weeks", grid.WeekCount)
	}

	opts.format = "svg"
	opts.weekStart = int(heatmap.Sunday)
	buf.Reset()
	if err := runRender(&buf, opts); err != nil {
		t.Fatalf("runRender failed: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "<svg") || !strings.Contains(buf.String(), ">Sun<") {
		t.Errorf("Expected sunday-start svg, got %s", buf.String())
	}

	opts.format = "png"
	if err := runRender(&buf, opts); err == nil {
		t.Error("Expected error for unknown format")
	}
}

func TestRendererReload(t *testing.T) {
	dir := t.TempDir()
	opts := testRenderOptions(t, dir)
	opts.format = "svg"

	var buf bytes.Buffer
	r, err := newRenderer(&buf, opts)
	if err != nil {
		t.Fatalf("newRenderer failed: %v", err)
	}
	now := time.Now()
	r.grid, err = heatmap.New(r.grid.Config(),
		heatmap.WithEvents(r.grid.Events()),
		heatmap.WithClock(func() time.Time { return now }),
	)
	if err != nil {
		t.Fatalf("heatmap.New failed: %v", err)
	}
	if err := r.render(); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if strings.Contains(buf.String(), "<animate") {
		t.Error("First render should not animate")
	}

	// 設定ファイルの変更はアニメーションなし
	writeFile(t, dir, "grid.yaml", "title: Team\ntimezone: UTC\ngrid:\n  width: 74\n  adaptive: false\n  active_color: \"#000000\"\n")
	if err := r.reloadConfig(); err != nil {
		t.Fatalf("reloadConfig failed: %v", err)
	}
	buf.Reset()
	if err := r.render(); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if strings.Contains(buf.String(), "<animate") || !strings.Contains(buf.String(), ">Team<") {
		t.Errorf("Unexpected output after config reload:\n%s", buf.String())
	}

	// イベントファイルの変更はフェード付き
	today := now.UTC().Format("2006-01-02") + "T00:30:00Z"
	writeFile(t, dir, "events.txt", today+"\n")
	if err := r.reloadEvents(); err != nil {
		t.Fatalf("reloadEvents failed: %v", err)
	}
	buf.Reset()
	if err := r.render(); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(buf.String(), "<animate") {
		t.Error("Expected a fade after the events changed")
	}
}

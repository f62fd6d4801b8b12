// Package main demonstrates the use of the heatmap package to generate SVG heatmaps.
package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/stsysd/activitygrid/heatmap"
)

func main() {
	// Generate sample events for one year
	events := generateYearEvents(time.Now())

	cfg := heatmap.DefaultConfig()
	cfg.Adaptive = false
	cfg.Width = 1000

	h, err := heatmap.New(cfg, heatmap.WithEvents(events))
	if err != nil {
		log.Fatalf("Failed to create heatmap: %v", err)
	}
	grid, err := h.Render()
	if err != nil {
		log.Fatalf("Failed to render heatmap: %v", err)
	}

	// Output to stdout
	fmt.Println(heatmap.RenderSVG(grid, &heatmap.SVGOptions{Title: "Random activity"}))
}

// generateYearEvents creates random activity timestamps for the past 365 days
func generateYearEvents(end time.Time) []string {
	var events []string
	for i := range 365 {
		day := end.AddDate(0, 0, -i)

		// 最大5件、ときどき20件を超える日を混ぜる
		count := rand.Intn(6)
		if rand.Intn(20) == 0 {
			count += rand.Intn(20)
		}

		for range count {
			ts := time.Date(day.Year(), day.Month(), day.Day(), rand.Intn(24), rand.Intn(60), 0, 0, day.Location())
			events = append(events, ts.Format(time.RFC3339))
		}
	}
	return events
}

// svg.go
// Draws a composed Grid as a GitHub-like contribution heatmap SVG.
package heatmap

import (
	"fmt"
	"html"
	"strings"
)

// SVGOptions configures the SVG rendering surface.
type SVGOptions struct {
	FontSize   int    // font size for month labels (px)
	FontFamily string // font family for labels
	Title      string // optional title drawn above the grid
}

const (
	legendSwatchGap = 6  // swatch to label
	legendEntryGap  = 16 // label to next swatch
	legendCharWidth = 7  // rough advance of one label character
)

// RenderSVG returns an SVG string representing the grid.
func RenderSVG(g *Grid, opts *SVGOptions) string {
	// default options
	if opts == nil {
		opts = &SVGOptions{}
	}
	fontSize := opts.FontSize
	if fontSize <= 0 {
		fontSize = 12
	}
	fontFamily := opts.FontFamily
	if fontFamily == "" {
		fontFamily = "sans-serif"
	}

	titleHeight := 0
	if opts.Title != "" {
		titleHeight = fontSize + 8 // title text + padding
	}

	pitch := g.CellSize + g.CellGap
	legendY := TopPad + 7*pitch - g.CellGap + 10
	width, height := g.Width, g.Height
	if len(g.Legend) > 0 {
		width = max(width, LeftPad+legendWidth(g)+RightPad)
		height = max(height, legendY+g.CellSize+4)
	}
	height += titleHeight

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">`+"\n", width, height))
	sb.WriteString(fmt.Sprintf(`  <style>.label{font-family:%s;font-size:%dpx;fill:#888}.weekday{font-family:%s;font-size:%dpx;fill:#888}.title{font-family:%s;font-size:%dpx;fill:#333;font-weight:bold}</style>`+"\n",
		fontFamily, fontSize, fontFamily, fontSize-2, fontFamily, fontSize))

	// render title if provided
	if opts.Title != "" {
		sb.WriteString(fmt.Sprintf(`  <text x="%d" y="%d" class="title">%s</text>`+"\n",
			g.CellGap, fontSize, html.EscapeString(opts.Title)))
	}
	sb.WriteString(fmt.Sprintf(`  <g transform="translate(0,%d)">`+"\n", titleHeight))

	// month labels
	for _, m := range g.Months {
		sb.WriteString(fmt.Sprintf(`    <text x="%d" y="%d" class="label">%s</text>`+"\n",
			m.X, m.Y, html.EscapeString(m.Text)))
	}

	// weekday labels
	for _, w := range g.Weekdays {
		sb.WriteString(fmt.Sprintf(`    <text x="%d" y="%d" class="weekday" text-anchor="end" dominant-baseline="middle">%s</text>`+"\n",
			w.X, w.Y, html.EscapeString(w.Text)))
	}

	// 各セルに矩形と、その中にtitle要素（ツールチップ）を追加
	for _, c := range g.Cells {
		sb.WriteString(fmt.Sprintf(`    <rect x="%d" y="%d" width="%d" height="%d" rx="%d" fill="%s" data-date="%s" data-count="%d" data-level="%d">`+"\n",
			c.X, c.Y, c.Size, c.Size, CellCornerRadius, c.Fill, c.Key, c.Count, int(c.Level)))
		if c.Animate {
			sb.WriteString(fmt.Sprintf(`      <animate attributeName="fill" from="%s" to="%s" dur="%dms" fill="freeze"/>`+"\n",
				c.PreviousFill, c.Fill, g.TransitionMS))
		}
		sb.WriteString(fmt.Sprintf(`      <title>%s</title>`+"\n", html.EscapeString(c.Tooltip)))
		sb.WriteString(`    </rect>` + "\n")
	}

	// legend
	x := LeftPad
	for _, e := range g.Legend {
		sb.WriteString(fmt.Sprintf(`    <rect x="%d" y="%d" width="%d" height="%d" rx="%d" fill="%s" stroke="#ccc"/>`+"\n",
			x, legendY, g.CellSize, g.CellSize, CellCornerRadius, e.Color))
		x += g.CellSize + legendSwatchGap
		sb.WriteString(fmt.Sprintf(`    <text x="%d" y="%d" class="weekday" dominant-baseline="middle">%s</text>`+"\n",
			x, legendY+g.CellSize/2, e.Label))
		x += len(e.Label)*legendCharWidth + legendEntryGap
	}

	sb.WriteString(`  </g>` + "\n")
	sb.WriteString(`</svg>`)
	return sb.String()
}

func legendWidth(g *Grid) int {
	w := 0
	for _, e := range g.Legend {
		w += g.CellSize + legendSwatchGap + len(e.Label)*legendCharWidth + legendEntryGap
	}
	return w
}

package heatmap

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RGB is a 24-bit color.
type RGB struct {
	R, G, B uint8
}

// ParseHexColor decodes "#rrggbb", "rrggbb" or the "#rgb" shorthand.
func ParseHexColor(s string) (RGB, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Hex encodes the color as lowercase "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Lerp interpolates each channel linearly between a and b at t,
// rounding half up.
func Lerp(a, b RGB, t float64) RGB {
	return RGB{
		R: lerpChannel(a.R, b.R, t),
		G: lerpChannel(a.G, b.G, t),
		B: lerpChannel(a.B, b.B, t),
	}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	v := math.Floor(float64(a) + (float64(b)-float64(a))*t + 0.5)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// rampStops are the interpolation positions of levels 0..4.
var rampStops = [NumLevels]float64{0, 0.25, 0.5, 0.75, 1}

// Ramp holds one color per gradation level.
type Ramp [NumLevels]string

// NewRamp builds the five-color ramp from the inactive (level 0) to the
// active (level 4) color.
func NewRamp(inactive, active string) (Ramp, error) {
	var r Ramp
	from, err := ParseHexColor(inactive)
	if err != nil {
		return r, fmt.Errorf("inactive color: %w", err)
	}
	to, err := ParseHexColor(active)
	if err != nil {
		return r, fmt.Errorf("active color: %w", err)
	}
	for i, t := range rampStops {
		r[i] = Lerp(from, to, t).Hex()
	}
	return r, nil
}

// Color returns the ramp color for the level.
func (r Ramp) Color(l Level) string {
	if !l.Valid() {
		return r[LevelNone]
	}
	return r[l]
}

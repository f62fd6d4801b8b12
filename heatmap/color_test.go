package heatmap

import (
	"errors"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    RGB
		wantErr bool
	}{
		{in: "#ebedf0", want: RGB{0xeb, 0xed, 0xf0}},
		{in: "216E39", want: RGB{0x21, 0x6e, 0x39}},
		{in: "#fff", want: RGB{0xff, 0xff, 0xff}},
		{in: " #000000 ", want: RGB{}},
		{in: "#12345", wantErr: true},
		{in: "#gggggg", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidColor) {
				t.Errorf("ParseHexColor(%q) error = %v, want ErrInvalidColor", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseHexColor(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHexColor(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestNewRampBlackToWhite(t *testing.T) {
	ramp, err := NewRamp("#000000", "#ffffff")
	if err != nil {
		t.Fatalf("NewRamp failed: %v", err)
	}
	want := Ramp{"#000000", "#404040", "#808080", "#bfbfbf", "#ffffff"}
	if ramp != want {
		t.Errorf("NewRamp = %v, want %v", ramp, want)
	}
}

func TestNewRampDefaultColors(t *testing.T) {
	ramp, err := NewRamp("#ebedf0", "#216e39")
	if err != nil {
		t.Fatalf("NewRamp failed: %v", err)
	}
	if ramp[LevelNone] != "#ebedf0" {
		t.Errorf("level 0 = %s, want #ebedf0", ramp[LevelNone])
	}
	if ramp[LevelMax] != "#216e39" {
		t.Errorf("level 4 = %s, want #216e39", ramp[LevelMax])
	}
	if ramp[LevelMedium] != "#86ae95" {
		t.Errorf("level 2 = %s, want #86ae95", ramp[LevelMedium])
	}
}

func TestNewRampEqualEndpoints(t *testing.T) {
	ramp, err := NewRamp("#3366CC", "#3366cc")
	if err != nil {
		t.Fatalf("NewRamp failed: %v", err)
	}
	for i, c := range ramp {
		if c != "#3366cc" {
			t.Errorf("ramp[%d] = %s, want #3366cc", i, c)
		}
	}
}

func TestNewRampInvalidColor(t *testing.T) {
	if _, err := NewRamp("#ebedf0", "green"); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("expected ErrInvalidColor, got %v", err)
	}
	if _, err := NewRamp("nope", "#216e39"); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("expected ErrInvalidColor, got %v", err)
	}
}

func TestLerpRoundsHalfUp(t *testing.T) {
	got := Lerp(RGB{0, 0, 0}, RGB{1, 3, 255}, 0.5)
	want := RGB{1, 2, 128}
	if got != want {
		t.Errorf("Lerp = %+v, want %+v", got, want)
	}
}

package heatmap

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		count int
		want  Level
	}{
		{0, LevelNone},
		{1, LevelLow},
		{4, LevelLow},
		{5, LevelMedium},
		{9, LevelMedium},
		{10, LevelHigh},
		{19, LevelHigh},
		{20, LevelMax},
		{1000000, LevelMax},
		{-3, LevelNone},
	}

	for _, tt := range tests {
		if got := Classify(tt.count); got != tt.want {
			t.Errorf("Classify(%d) = %v, want %v", tt.count, got, tt.want)
		}
	}
}

func TestClassifyIsTotal(t *testing.T) {
	// 各値がちょうど1つの範囲に属することを確認
	for n := 0; n <= 500; n++ {
		matches := 0
		for _, g := range gradations {
			if n >= g.min && n <= g.max {
				matches++
			}
		}
		if matches != 1 {
			t.Fatalf("count %d matches %d gradations, want exactly 1", n, matches)
		}
		if g := gradations[Classify(n)]; n < g.min || n > g.max {
			t.Fatalf("Classify(%d) = %v whose range is [%d,%d]", n, Classify(n), g.min, g.max)
		}
	}
}

func TestLevelRangeLabel(t *testing.T) {
	want := []string{"0", "1-4", "5-9", "10-19", "20+"}
	for i, l := range Levels() {
		if got := l.RangeLabel(); got != want[i] {
			t.Errorf("Level(%d).RangeLabel() = %q, want %q", i, got, want[i])
		}
	}
	if got := Level(7).RangeLabel(); got != "" {
		t.Errorf("expected empty label for invalid level, got %q", got)
	}
}

package config

import (
	"testing"
	"time"
)

func TestDifficultyLevel(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 10},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0},
	})

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 0.5},
		{5, 0.75},
		{10, 1.0},
		{100, 1.0},
	}
	for _, tc := range tests {
		if got := d.Level(tc.score, 0); got != tc.expected {
			t.Errorf("Level(%d) = %v, expected %v", tc.score, got, tc.expected)
		}
	}
}

func TestDifficultyDisabled(t *testing.T) {
	d := NewDifficultyManager(DefaultNyanConfig().Difficulty)

	if d.IsEnabled() {
		t.Fatal("default difficulty should be disabled")
	}
	base := 8 * time.Millisecond
	if got := d.Interval(base, 3*time.Millisecond, 1000, 100000); got != base {
		t.Errorf("Interval() = %v, expected fixed %v", got, base)
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 100},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0},
	})

	if got := d.Level(999, 50); got != 0.5 {
		t.Errorf("Level(ticks=50) = %v, expected 0.5", got)
	}
}

func TestDifficultyInterval(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 10},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0},
	})
	base := 8 * time.Millisecond
	floor := 3 * time.Millisecond

	if got := d.Interval(base, floor, 0, 0); got != base {
		t.Errorf("Interval(score 0) = %v, expected %v", got, base)
	}
	if got := d.Interval(base, floor, 10, 0); got != 4*time.Millisecond {
		t.Errorf("Interval(score 10) = %v, expected 4ms", got)
	}

	d2 := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 1},
		Scaling:     ScalingConfig{SpeedMultiplier: 10.0},
	})
	if got := d2.Interval(base, floor, 5, 0); got != floor {
		t.Errorf("Interval() = %v, expected floor %v", got, floor)
	}
}

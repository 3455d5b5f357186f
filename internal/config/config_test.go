package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultNyanConfig()) {
		t.Errorf("embedded YAML = %+v, expected %+v", cfg, DefaultNyanConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadNyanCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nyan.yaml")
	data := "timing:\n  tick_interval_ms: 12\nsession:\n  exit_on_crash: false\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadNyan(path)
	if err != nil {
		t.Fatalf("LoadNyan() failed: %v", err)
	}

	if cfg.Timing.TickIntervalMS != 12 {
		t.Errorf("tick_interval_ms = %d, expected 12", cfg.Timing.TickIntervalMS)
	}
	if cfg.Session.ExitOnCrash {
		t.Error("exit_on_crash should be overridden to false")
	}
	// untouched fields keep their defaults
	if cfg.Timing.MinIntervalMS != 3 {
		t.Errorf("min_interval_ms = %d, expected default 3", cfg.Timing.MinIntervalMS)
	}
	if cfg.Playfield.MinHeight != 8 {
		t.Errorf("min_height = %d, expected default 8", cfg.Playfield.MinHeight)
	}
}

func TestLoadNyanCustomPathErrors(t *testing.T) {
	if _, err := LoadNyan(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("timing: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadNyan(path)
	if err == nil || !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("expected parse error, got %v", err)
	}
}

func TestLoadNyanSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// nothing on disk: embedded default
	cfg, err := LoadNyan("")
	if err != nil {
		t.Fatalf("LoadNyan() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultNyanConfig()) {
		t.Errorf("expected defaults, got %+v", cfg)
	}

	// local configs directory
	if err := os.MkdirAll(filepath.Join(work, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(work, LocalConfigPath), []byte("timing:\n  tick_interval_ms: 20\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, _ = LoadNyan("")
	if cfg.Timing.TickIntervalMS != 20 {
		t.Errorf("local config not used, tick_interval_ms = %d", cfg.Timing.TickIntervalMS)
	}

	// user config wins over local
	userDir := filepath.Join(home, ".nyanrush", "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, "nyan.yaml"), []byte("timing:\n  tick_interval_ms: 30\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, _ = LoadNyan("")
	if cfg.Timing.TickIntervalMS != 30 {
		t.Errorf("user config not preferred, tick_interval_ms = %d", cfg.Timing.TickIntervalMS)
	}
}

func TestLoadNyanSearchOrderParseError(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	work := t.TempDir()
	t.Chdir(work)

	if err := os.MkdirAll(filepath.Join(work, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(work, LocalConfigPath), []byte("timing: [unclosed\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadNyan("")
	if err == nil || !strings.Contains(err.Error(), "failed to parse") {
		t.Fatalf("LoadNyan() error = %v, want a parse error", err)
	}
	if !strings.Contains(err.Error(), LocalConfigPath) {
		t.Errorf("error %q should name the broken file", err)
	}
	if !reflect.DeepEqual(cfg, DefaultNyanConfig()) {
		t.Errorf("expected defaults alongside the error, got %+v", cfg)
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		enabled bool
		level   float64
	}{
		{DifficultyEasy, true, 0.0},
		{DifficultyNormal, true, 0.3},
		{DifficultyHard, true, 0.7},
		{DifficultyFixed, false, 0.0},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultNyanConfig()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.level {
				t.Errorf("InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tc.level)
			}
		})
	}

	cfg := DefaultNyanConfig()
	cfg.Difficulty.Enabled = true
	ApplyPreset(&cfg, "")
	if !cfg.Difficulty.Enabled {
		t.Error("empty preset should leave config untouched")
	}
}

func TestParsePreset(t *testing.T) {
	for _, name := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, ok := ParsePreset(name); !ok {
			t.Errorf("ParsePreset(%q) should succeed", name)
		}
	}
	if _, ok := ParsePreset("insane"); ok {
		t.Error("ParsePreset(insane) should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*NyanConfig)
		want   string
	}{
		{"zero tick", func(c *NyanConfig) { c.Timing.TickIntervalMS = 0 }, "tick_interval_ms"},
		{"min above base", func(c *NyanConfig) { c.Timing.MinIntervalMS = 50 }, "exceeds"},
		{"narrow playfield", func(c *NyanConfig) { c.Playfield.Width = 10 }, "min_width"},
		{"short playfield", func(c *NyanConfig) { c.Playfield.Height = 5 }, "min_height"},
		{"negative size", func(c *NyanConfig) { c.Playfield.Width = -1 }, "negative"},
		{"progression type", func(c *NyanConfig) { c.Difficulty.Progression.Type = "level" }, "progression.type"},
		{"initial level", func(c *NyanConfig) { c.Difficulty.InitialLevel = 2 }, "initial_level"},
		{"min width below head", func(c *NyanConfig) { c.Playfield.MinWidth = MinScreenWidth - 1 }, "min_width must be at least"},
		{"min height below head", func(c *NyanConfig) { c.Playfield.MinHeight = MinScreenHeight - 1 }, "min_height must be at least"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultNyanConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Validate() = %v, expected error mentioning %q", err, tc.want)
			}
		})
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	cfg := DefaultNyanConfig()
	cfg.Timing.TickIntervalMS = -1
	cfg.Difficulty.Progression.Type = "bogus"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "tick_interval_ms") || !strings.Contains(err.Error(), "bogus") {
		t.Errorf("expected both problems in %q", err.Error())
	}
}

func TestValidateRejectsTinyPlayfield(t *testing.T) {
	cfg := DefaultNyanConfig()
	cfg.Playfield.MinWidth = 0
	cfg.Playfield.MinHeight = 0
	cfg.Playfield.Width = 8
	cfg.Playfield.Height = 3

	if err := cfg.Validate(); err == nil {
		t.Error("Validate() accepted a playfield smaller than the head")
	}
	if err := cfg.CheckScreen(8, 3); err == nil {
		t.Error("CheckScreen() accepted a screen smaller than the head")
	}
	if err := cfg.CheckScreen(MinScreenWidth, MinScreenHeight); err != nil {
		t.Errorf("CheckScreen() rejected the smallest playable screen: %v", err)
	}
	if MinScreenWidth != 12 || MinScreenHeight != 5 {
		t.Errorf("minimum screen = %dx%d, want 12x5", MinScreenWidth, MinScreenHeight)
	}
}

func TestScreenSizeAndCheck(t *testing.T) {
	cfg := DefaultNyanConfig()

	if w, h := cfg.ScreenSize(100, 30); w != 100 || h != 30 {
		t.Errorf("ScreenSize() = %dx%d, expected terminal size 100x30", w, h)
	}

	cfg.Playfield.Width = 40
	cfg.Playfield.Height = 20
	if w, h := cfg.ScreenSize(100, 30); w != 40 || h != 20 {
		t.Errorf("ScreenSize() = %dx%d, expected configured 40x20", w, h)
	}

	if err := cfg.CheckScreen(40, 20); err != nil {
		t.Errorf("CheckScreen(40, 20) = %v", err)
	}
	if err := cfg.CheckScreen(10, 20); err == nil {
		t.Error("CheckScreen(10, 20) should fail")
	}
}

func TestIntervals(t *testing.T) {
	cfg := DefaultNyanConfig()
	if cfg.TickInterval() != 8*time.Millisecond {
		t.Errorf("TickInterval() = %v, expected 8ms", cfg.TickInterval())
	}
	if cfg.MinInterval() != 3*time.Millisecond {
		t.Errorf("MinInterval() = %v, expected 3ms", cfg.MinInterval())
	}
}

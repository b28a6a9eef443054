package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "viewsnap.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if !cfg.Smooth {
		t.Fatal("smooth should default to on")
	}
	if cfg.Animation.Mode != ModeDuration {
		t.Fatalf("default mode %q, want %q", cfg.Animation.Mode, ModeDuration)
	}
}

func TestLoadConfigFileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
smooth: false
animation:
  mode: frames
  max_frames: 24
logging:
  level: debug
`)
	cfg, err := LoadConfigFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if cfg.Smooth {
		t.Fatal("smooth not overridden")
	}
	if cfg.Animation.Mode != ModeFrames {
		t.Fatalf("mode %q, want %q", cfg.Animation.Mode, ModeFrames)
	}
	if cfg.Animation.MaxFrames != 24 {
		t.Fatalf("max_frames %d, want 24", cfg.Animation.MaxFrames)
	}
	// untouched keys keep their defaults
	if cfg.Animation.StepS != 0.02 {
		t.Fatalf("step_s %g, want default 0.02", cfg.Animation.StepS)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("log level %q, want debug", cfg.Logging.Level)
	}
}

func TestLoadConfigFileRejectsUnknownFields(t *testing.T) {
	path := writeConfig(t, "smoooth: true\n")
	if _, err := LoadConfigFile(path); err == nil {
		t.Fatal("unknown field accepted")
	}
}

func TestLoadConfigFileMissing(t *testing.T) {
	if _, err := LoadConfigFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("missing file accepted")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	for name, mutate := range map[string]func(*Config){
		"bad mode":      func(c *Config) { c.Animation.Mode = "warp" },
		"negative turn": func(c *Config) { c.Animation.MaxDurationS = -1 },
		"zero step":     func(c *Config) { c.Animation.StepS = 0 },
		"zero frames":   func(c *Config) { c.Animation.MaxFrames = 0 },
		"zero delay":    func(c *Config) { c.Animation.FrameDelayS = 0 },
		"bad log level": func(c *Config) { c.Logging.Level = "loud" },
	} {
		cfg := DefaultConfig()
		mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: Validate accepted invalid config", name)
		}
	}
}

func TestToAnimatorConfig(t *testing.T) {
	cfg := DefaultConfig()
	ac := cfg.ToAnimatorConfig()
	if ac.MaxDuration != 240*time.Millisecond {
		t.Fatalf("MaxDuration %v, want 240ms", ac.MaxDuration)
	}
	if ac.Step != 20*time.Millisecond {
		t.Fatalf("Step %v, want 20ms", ac.Step)
	}
	if ac.Mode != ModeDuration || ac.MaxFrames != 12 {
		t.Fatalf("unexpected animator config %+v", ac)
	}
}

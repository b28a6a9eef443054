package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level YAML configuration for viewsnap. The file is the
// only configuration surface; a missing file means defaults.
type Config struct {
	Smooth    bool            `yaml:"smooth"`
	Animation AnimationConfig `yaml:"animation"`
	Logging   LoggingConfig   `yaml:"logging"`
}

type AnimationConfig struct {
	Mode         string  `yaml:"mode"`           // "duration" or "frames"
	MaxDurationS float64 `yaml:"max_duration_s"` // 180° turn duration (seconds)
	StepS        float64 `yaml:"step_s"`         // duration-mode write period
	MaxFrames    int     `yaml:"max_frames"`     // 180° turn frame count
	FrameDelayS  float64 `yaml:"frame_delay_s"`  // frames-mode write period
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns a fully-populated Config with defaults matching the
// historical behaviour: smooth on, 0.24 s half turn, 20 ms steps.
func DefaultConfig() Config {
	return Config{
		Smooth: true,
		Animation: AnimationConfig{
			Mode:         ModeDuration,
			MaxDurationS: 0.24,
			StepS:        0.02,
			MaxFrames:    12,
			FrameDelayS:  0.02,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfigFile reads and parses a YAML config file on top of the defaults.
// Unknown fields are rejected to catch typos.
func LoadConfigFile(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config yaml: %w", err)
	}
	return cfg, nil
}

// Validate checks config invariants after defaults and file are applied.
func (c *Config) Validate() error {
	switch c.Animation.Mode {
	case ModeDuration, ModeFrames:
	default:
		return fmt.Errorf("animation.mode must be %q or %q", ModeDuration, ModeFrames)
	}
	if c.Animation.MaxDurationS < 0 {
		return errors.New("animation.max_duration_s must be >= 0")
	}
	if c.Animation.StepS <= 0 {
		return errors.New("animation.step_s must be > 0")
	}
	if c.Animation.MaxFrames <= 0 {
		return errors.New("animation.max_frames must be > 0")
	}
	if c.Animation.FrameDelayS <= 0 {
		return errors.New("animation.frame_delay_s must be > 0")
	}
	if _, err := parseLogLevel(c.Logging.Level); err != nil {
		return err
	}
	return nil
}

// ToAnimatorConfig converts the file units into the animator's durations.
func (c *Config) ToAnimatorConfig() AnimatorConfig {
	return AnimatorConfig{
		Mode:        c.Animation.Mode,
		MaxDuration: time.Duration(c.Animation.MaxDurationS * float64(time.Second)),
		Step:        time.Duration(c.Animation.StepS * float64(time.Second)),
		MaxFrames:   c.Animation.MaxFrames,
		FrameDelay:  time.Duration(c.Animation.FrameDelayS * float64(time.Second)),
	}
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package host

import (
	"errors"
	"flag"
	"io"
	"testing"
	"time"

	"github.com/gogpu/spotlight"
	_ "github.com/gogpu/spotlight/backend/software"
	_ "github.com/gogpu/spotlight/recording"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() error = %v", err)
	}
	if cfg.Width != 400 || cfg.Height != 400 {
		t.Errorf("default size = %dx%d, want 400x400", cfg.Width, cfg.Height)
	}
	// One full animation cycle.
	if got := time.Duration(cfg.Frames) * time.Second / time.Duration(cfg.FPS); got != spotlight.Period {
		t.Errorf("default run covers %v, want %v", got, spotlight.Period)
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		mode   Mode
		output string
		want   string
	}{
		{ModePNG, "", "frames"},
		{ModeGIF, "", "spotlight.gif"},
		{ModeTrace, "", ""},
		{ModeGIF, "out.gif", "out.gif"},
	}
	for _, tt := range tests {
		cfg := Config{Mode: tt.mode, Output: tt.output}
		if got := cfg.OutputPath(); got != tt.want {
			t.Errorf("OutputPath(%s, %q) = %q, want %q", tt.mode, tt.output, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"huge height", func(c *Config) { c.Height = maxSide + 1 }},
		{"zero fps", func(c *Config) { c.FPS = 0 }},
		{"fps too high", func(c *Config) { c.FPS = maxFPS + 1 }},
		{"no frames", func(c *Config) { c.Frames = 0 }},
		{"negative duration", func(c *Config) { c.Duration = -time.Second }},
		{"unknown mode", func(c *Config) { c.Mode = "vhs" }},
		{"unknown backend", func(c *Config) { c.Backend = "no-such-backend" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestValidateLiveModesIgnoreFrames(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mode = ModeTerm
	cfg.Frames = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}

func TestParseFlags(t *testing.T) {
	cfg, err := ParseFlags("spotlight", []string{
		"-mode", "gif", "-frames", "12", "-fps", "24",
		"-width", "200", "-height", "100",
		"-backend", "recording", "-bg", "#fff", "-o", "x.gif", "-v",
	}, io.Discard)
	if err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}

	want := Config{
		Width:      200,
		Height:     100,
		Backend:    "recording",
		Mode:       ModeGIF,
		Frames:     12,
		FPS:        24,
		Output:     "x.gif",
		Background: spotlight.White,
		Verbose:    true,
	}
	if cfg != want {
		t.Errorf("ParseFlags() = %+v, want %+v", cfg, want)
	}
}

func TestParseFlagsDefaults(t *testing.T) {
	cfg, err := ParseFlags("spotlight", nil, io.Discard)
	if err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("ParseFlags(nil) = %+v, want defaults", cfg)
	}
}

func TestParseFlagsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"help", []string{"-h"}, flag.ErrHelp},
		{"bad color", []string{"-bg", "nope"}, ErrInvalidConfig},
		{"bad mode", []string{"-mode", "vhs"}, ErrInvalidConfig},
		{"bad backend", []string{"-backend", "none"}, ErrInvalidConfig},
		{"bad size", []string{"-width", "-3"}, ErrInvalidConfig},
		{"extra args", []string{"frames"}, ErrInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFlags("spotlight", tt.args, io.Discard)
			if !errors.Is(err, tt.want) {
				t.Errorf("ParseFlags(%q) error = %v, want %v", tt.args, err, tt.want)
			}
		})
	}

	if _, err := ParseFlags("spotlight", []string{"-nosuchflag"}, io.Discard); err == nil {
		t.Error("ParseFlags() accepted an unknown flag")
	}
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package host

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gogpu/spotlight"
)

// ErrInvalidConfig is wrapped by every configuration validation error.
var ErrInvalidConfig = errors.New("host: invalid config")

// Mode selects how frames are presented.
type Mode string

const (
	ModePNG    Mode = "png"
	ModeGIF    Mode = "gif"
	ModeTrace  Mode = "trace"
	ModeTerm   Mode = "term"
	ModeWindow Mode = "window"
)

var modes = []Mode{ModePNG, ModeGIF, ModeTrace, ModeTerm, ModeWindow}

// offline reports whether the mode samples a fixed number of frames.
func (m Mode) offline() bool {
	return m == ModePNG || m == ModeGIF || m == ModeTrace
}

// Size limits.
const (
	maxSide = 8192
	maxFPS  = 240
)

// Config holds the runner settings.
type Config struct {
	Width      int
	Height     int
	Backend    string
	Mode       Mode
	Frames     int           // Frames rendered by offline modes
	FPS        int           // Sampling rate for offline modes, target rate otherwise
	Duration   time.Duration // Run time of term and window modes; 0 runs until quit
	Output     string        // File (gif) or directory (png); empty selects a default
	Background spotlight.Color
	Verbose    bool
	LogFile    string // Log destination; empty logs to stderr, except in term mode

	// Out receives the run summary. Nil selects os.Stdout.
	Out io.Writer
}

// DefaultConfig returns the settings of a plain invocation: one full
// animation cycle at 30 fps, rendered to PNG files by the software backend.
func DefaultConfig() Config {
	return Config{
		Width:      400,
		Height:     400,
		Backend:    "software",
		Mode:       ModePNG,
		Frames:     90,
		FPS:        30,
		Background: spotlight.Black,
	}
}

// OutputPath returns Output, or the default for the mode.
func (c Config) OutputPath() string {
	if c.Output != "" {
		return c.Output
	}
	switch c.Mode {
	case ModePNG:
		return "frames"
	case ModeGIF:
		return "spotlight.gif"
	default:
		return ""
	}
}

// Validate checks the settings. Errors wrap ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0 || c.Width > maxSide || c.Height > maxSide:
		return fmt.Errorf("%w: size %dx%d out of range [1, %d]", ErrInvalidConfig, c.Width, c.Height, maxSide)
	case c.FPS <= 0 || c.FPS > maxFPS:
		return fmt.Errorf("%w: fps %d out of range [1, %d]", ErrInvalidConfig, c.FPS, maxFPS)
	case c.Mode.offline() && c.Frames <= 0:
		return fmt.Errorf("%w: %s mode needs at least one frame", ErrInvalidConfig, c.Mode)
	case c.Duration < 0:
		return fmt.Errorf("%w: negative duration %v", ErrInvalidConfig, c.Duration)
	}
	if !knownMode(c.Mode) {
		return fmt.Errorf("%w: unknown mode %q (want one of %s)", ErrInvalidConfig, c.Mode, modeList())
	}
	if !spotlight.IsRegistered(c.Backend) {
		return fmt.Errorf("%w: unknown backend %q (registered: %s)",
			ErrInvalidConfig, c.Backend, strings.Join(spotlight.Backends(), ", "))
	}
	return nil
}

func knownMode(m Mode) bool {
	for _, k := range modes {
		if k == m {
			return true
		}
	}
	return false
}

func modeList() string {
	names := make([]string, len(modes))
	for i, m := range modes {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}

// ParseFlags parses command-line arguments into a validated Config.
// Usage and flag errors are written to output. flag.ErrHelp is returned
// as is.
func ParseFlags(name string, args []string, output io.Writer) (Config, error) {
	cfg := DefaultConfig()

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)

	var (
		mode = fs.String("mode", string(cfg.Mode), "presentation mode: "+modeList())
		bg   = fs.String("bg", cfg.Background.String(), "background color (#RGB, #RRGGBB, #RRGGBBAA)")
	)
	fs.IntVar(&cfg.Width, "width", cfg.Width, "canvas width")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "canvas height")
	fs.StringVar(&cfg.Backend, "backend", cfg.Backend, "rendering backend: "+strings.Join(spotlight.Backends(), ", "))
	fs.IntVar(&cfg.Frames, "frames", cfg.Frames, "frames to render in png, gif and trace modes")
	fs.IntVar(&cfg.FPS, "fps", cfg.FPS, "frame rate")
	fs.DurationVar(&cfg.Duration, "duration", cfg.Duration, "run time in term and window modes (0 = until quit)")
	fs.StringVar(&cfg.Output, "o", cfg.Output, "output file (gif) or directory (png)")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "debug logging")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "log file (default stderr; discarded in term mode)")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("%w: unexpected arguments %q", ErrInvalidConfig, fs.Args())
	}

	cfg.Mode = Mode(*mode)
	c, err := spotlight.ParseHex(*bg)
	if err != nil {
		return cfg, fmt.Errorf("%w: -bg: %w", ErrInvalidConfig, err)
	}
	cfg.Background = c

	return cfg, cfg.Validate()
}

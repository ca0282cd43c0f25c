// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package host

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/spotlight"
)

// ErrAllFramesFailed is returned when a run produced no frame at all.
var ErrAllFramesFailed = errors.New("host: every frame failed")

// Stats summarizes a run.
type Stats struct {
	Frames  int           // Frames attempted
	Failed  int           // Frames aborted by the example or the canvas
	Elapsed time.Duration // Wall time of the run
}

// FrameTime returns the elapsed animation time of offline frame i.
func FrameTime(i, fps int) time.Duration {
	return time.Duration(i) * time.Second / time.Duration(fps)
}

// driver renders the frames of one example onto one canvas.
type driver struct {
	ex     spotlight.Example
	canvas spotlight.RenderCanvas
	stats  Stats
}

// frame renders the frame at elapsed and returns the drawn image.
// The first call renders the example content; ok is false when the frame
// was aborted.
func (d *driver) frame(elapsed time.Duration) (img *image.RGBA, ok bool) {
	first := d.stats.Frames == 0
	d.stats.Frames++

	var err error
	if first {
		w, h := d.canvas.Size()
		err = d.ex.Content(d.canvas, w, h)
	} else {
		err = d.ex.Update(d.canvas, elapsed)
	}
	if err == nil {
		err = d.canvas.Draw()
	}
	if err != nil {
		d.stats.Failed++
		spotlight.Logger().Warn("frame skipped", "frame", d.stats.Frames-1, "elapsed", elapsed, "err", err)
		return nil, false
	}
	return d.canvas.Image(), true
}

// result turns the final stats into the run error.
func (d *driver) result() error {
	if d.stats.Frames > 0 && d.stats.Failed == d.stats.Frames {
		return fmt.Errorf("%w (%d frames)", ErrAllFramesFailed, d.stats.Frames)
	}
	return nil
}

// sink consumes the drawn offline frames.
type sink interface {
	frame(i int, elapsed time.Duration, img *image.RGBA) error
	close() error
}

// Run renders ex as configured and blocks until the run completes, the
// config's Duration passes, the user quits, or ctx is canceled.
func Run(ctx context.Context, ex spotlight.Example, cfg Config) error {
	_, err := RunStats(ctx, ex, cfg)
	return err
}

// RunStats is Run that also reports the run statistics.
func RunStats(ctx context.Context, ex spotlight.Example, cfg Config) (Stats, error) {
	if err := cfg.Validate(); err != nil {
		return Stats{}, err
	}
	canvas, err := spotlight.NewCanvas(cfg.Backend, spotlight.CanvasOptions{
		Width:      cfg.Width,
		Height:     cfg.Height,
		Background: cfg.Background,
	})
	if err != nil {
		return Stats{}, err
	}
	defer func() {
		_ = canvas.Close()
	}()

	d := &driver{ex: ex, canvas: canvas}
	start := time.Now()

	switch cfg.Mode {
	case ModePNG:
		err = runOffline(ctx, d, cfg, newPNGSink(cfg.OutputPath()))
	case ModeGIF:
		err = runOffline(ctx, d, cfg, newGIFSink(cfg.OutputPath(), cfg.FPS))
	case ModeTrace:
		t := newTrace(canvas)
		d.canvas = t
		err = runOffline(ctx, d, cfg, t)
	case ModeTerm:
		err = runTerminal(ctx, d, cfg)
	case ModeWindow:
		err = runWindow(ctx, d, cfg)
	}
	d.stats.Elapsed = time.Since(start)

	if err == nil {
		err = d.result()
	}
	if err == nil || errors.Is(err, ErrAllFramesFailed) {
		summarize(cfg, d.stats)
	}
	return d.stats, err
}

// runOffline renders cfg.Frames frames sampled at cfg.FPS into s.
func runOffline(ctx context.Context, d *driver, cfg Config, s sink) error {
	for i := 0; i < cfg.Frames; i++ {
		if err := ctx.Err(); err != nil {
			_ = s.close()
			return err
		}
		elapsed := FrameTime(i, cfg.FPS)
		img, ok := d.frame(elapsed)
		if !ok {
			continue
		}
		if err := s.frame(i, elapsed, img); err != nil {
			_ = s.close()
			return err
		}
	}
	return s.close()
}

// summarize prints the one-line run summary.
func summarize(cfg Config, st Stats) {
	var out io.Writer = os.Stdout
	if cfg.Out != nil {
		out = cfg.Out
	}
	p := message.NewPrinter(language.English)
	_, _ = p.Fprintf(out, "%s/%s: %d frames, %d failed, %v",
		cfg.Backend, cfg.Mode, st.Frames, st.Failed, st.Elapsed.Round(time.Millisecond))
	if path := cfg.OutputPath(); path != "" {
		_, _ = p.Fprintf(out, " -> %s", path)
	}
	_, _ = p.Fprintln(out)
}

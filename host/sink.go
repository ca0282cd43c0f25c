// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package host

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/image/draw"

	"github.com/gogpu/spotlight"
	"github.com/gogpu/spotlight/recording"
)

// pngSink writes frame_NNNN.png files into a directory.
type pngSink struct {
	dir     string
	written int
	err     error
}

func newPNGSink(dir string) *pngSink {
	s := &pngSink{dir: dir}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		s.err = fmt.Errorf("host: create output dir: %w", err)
	}
	return s
}

// FramePath returns the file name of frame i inside dir.
func FramePath(dir string, i int) string {
	return filepath.Join(dir, fmt.Sprintf("frame_%04d.png", i))
}

func (s *pngSink) frame(i int, _ time.Duration, img *image.RGBA) error {
	if s.err != nil {
		return s.err
	}
	path := FramePath(s.dir, i)
	if err := savePNG(path, img); err != nil {
		return fmt.Errorf("host: write %s: %w", path, err)
	}
	s.written++
	return nil
}

func (s *pngSink) close() error {
	if s.err == nil {
		spotlight.Logger().Info("frames written", "dir", s.dir, "count", s.written)
	}
	return s.err
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// gifSink collects paletted frames and writes one looping animation.
type gifSink struct {
	path  string
	fps   int
	shown int // Centiseconds of delay handed out so far
	anim  gif.GIF
}

func newGIFSink(path string, fps int) *gifSink {
	return &gifSink{path: path, fps: fps}
}

// delay returns the centiseconds frame i stays on screen. GIF delays are
// whole centiseconds, so the rounding error is carried to later frames and
// frame i ends at round((i+1)*100/fps). Every frame lasts at least 1cs.
func (s *gifSink) delay(i int) int {
	end := (100*(i+1) + s.fps/2) / s.fps
	d := max(end-s.shown, 1)
	s.shown += d
	return d
}

func (s *gifSink) frame(i int, _ time.Duration, img *image.RGBA) error {
	b := img.Bounds()
	pal := image.NewPaletted(b, palette.Plan9)
	draw.FloydSteinberg.Draw(pal, b, img, b.Min)
	s.anim.Image = append(s.anim.Image, pal)
	s.anim.Delay = append(s.anim.Delay, s.delay(i))
	return nil
}

func (s *gifSink) close() error {
	if len(s.anim.Image) == 0 {
		return nil
	}
	f, err := os.Create(s.path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("host: create %s: %w", s.path, err)
	}
	if err := gif.EncodeAll(f, &s.anim); err != nil {
		_ = f.Close()
		return fmt.Errorf("host: encode %s: %w", s.path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	spotlight.Logger().Info("animation written", "path", s.path, "frames", len(s.anim.Image))
	return nil
}

// trace forwards canvas operations to a real canvas while recording them,
// and logs each frame's scene.
type trace struct {
	spotlight.RenderCanvas
	rec *recording.Canvas
}

func newTrace(c spotlight.RenderCanvas) *trace {
	w, h := c.Size()
	return &trace{RenderCanvas: c, rec: recording.New(w, h)}
}

func (t *trace) Clear() error {
	if err := t.RenderCanvas.Clear(); err != nil {
		return err
	}
	return t.rec.Clear()
}

func (t *trace) Push(s *spotlight.Shape) error {
	if err := t.RenderCanvas.Push(s); err != nil {
		return err
	}
	return t.rec.Push(s)
}

func (t *trace) frame(i int, elapsed time.Duration, _ *image.RGBA) error {
	spotlight.Logger().Info("trace", "frame", i, "elapsed", elapsed, "scene", t.rec.String())
	return nil
}

func (t *trace) close() error { return nil }

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package host

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gogpu/gg"
	_ "github.com/gogpu/gg/gpu" // Register GPU accelerator
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gg/text"
	"github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/spotlight"
)

// ggRenderer is implemented by canvases that can draw their frame
// straight into a gg context.
type ggRenderer interface {
	RenderTo(dc *gg.Context)
}

// runWindow animates the example in a gogpu window. The run ends when the
// window is closed; cfg.Duration and ctx cancellation only stop the
// animation. Space pauses and resumes it.
func runWindow(ctx context.Context, d *driver, cfg Config) error {
	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle("spotlight: alpha masking").
		WithSize(cfg.Width, cfg.Height).
		WithContinuousRender(false))

	face := loadFont()
	log := spotlight.Logger()

	var (
		canvas    *ggcanvas.Canvas
		animToken *gogpu.AnimationToken
		paused    bool
		pausedAt  time.Duration
		start     = time.Now()
		drawErr   error
	)

	elapsed := func() time.Duration {
		if paused {
			return pausedAt
		}
		return time.Since(start)
	}

	app.OnDraw(func(dc *gogpu.Context) {
		if animToken == nil && !paused {
			animToken = app.StartAnimation()
		}
		if canvas == nil {
			provider := app.GPUContextProvider()
			if provider == nil {
				return
			}
			var err error
			canvas, err = ggcanvas.New(provider, cfg.Width, cfg.Height)
			if err != nil {
				drawErr = fmt.Errorf("host: create window canvas: %w", err)
				return
			}
			log.Info("window canvas created", "backend", dc.Backend(), "width", cfg.Width, "height", cfg.Height)
		}

		now := elapsed()
		if (cfg.Duration > 0 && now >= cfg.Duration) || ctx.Err() != nil {
			if animToken != nil {
				animToken.Stop()
				animToken = nil
			}
		}

		img, ok := d.frame(now)
		if !ok {
			return
		}
		if err := canvas.Draw(func(cc *gg.Context) {
			if r, ok := d.canvas.(ggRenderer); ok {
				r.RenderTo(cc)
			} else {
				cc.DrawImage(gg.ImageBufFromImage(img), 0, 0)
			}
			drawHUD(cc, face, now, d.stats, paused)
		}); err != nil {
			log.Warn("window draw failed", "err", err)
			return
		}
		if err := canvas.RenderTo(dc.AsTextureDrawer()); err != nil {
			log.Warn("window present failed", "err", err)
		}
	})

	app.EventSource().OnKeyPress(func(key gpucontext.Key, _ gpucontext.Modifiers) {
		if key != gpucontext.KeySpace {
			return
		}
		paused = !paused
		if paused {
			pausedAt = time.Since(start)
			if animToken != nil {
				animToken.Stop()
				animToken = nil
			}
			log.Info("paused", "at", pausedAt)
			return
		}
		start = time.Now().Add(-pausedAt)
		animToken = app.StartAnimation()
		log.Info("resumed")
	})

	app.OnClose(func() {
		if animToken != nil {
			animToken.Stop()
		}
		// Release GPU session resources while the device is still alive.
		if a := gg.Accelerator(); a != nil {
			a.Close()
		}
	})

	if err := app.Run(); err != nil {
		return err
	}
	return drawErr
}

// drawHUD draws the clock and frame counters in the lower-left corner.
func drawHUD(cc *gg.Context, face text.Face, elapsed time.Duration, st Stats, paused bool) {
	if face == nil {
		return
	}
	label := fmt.Sprintf("t=%.2fs  frame %d  failed %d", spotlight.Clock(elapsed), st.Frames, st.Failed)
	if paused {
		label += "  (paused)"
	}
	cc.SetFont(face)
	cc.SetRGBA(1, 1, 1, 0.8)
	cc.DrawString(label, 8, float64(cc.Height())-8)
}

// loadFont finds a system font for the HUD. It returns nil when none is
// available; the HUD is then skipped.
func loadFont() text.Face {
	path := findSystemFont()
	if path == "" {
		spotlight.Logger().Info("no system font found, HUD disabled")
		return nil
	}
	source, err := text.NewFontSourceFromFile(path)
	if err != nil {
		spotlight.Logger().Warn("load font", "path", path, "err", err)
		return nil
	}
	return source.Face(14)
}

// findSystemFont returns the path of a TTF font (TTC collections are not
// supported).
func findSystemFont() string {
	candidates := []string{
		"C:\\Windows\\Fonts\\arial.ttf",
		"C:\\Windows\\Fonts\\segoeui.ttf",
		"/Library/Fonts/Arial.ttf",
		"/System/Library/Fonts/Supplemental/Arial.ttf",
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/TTF/DejaVuSans.ttf",
		"/usr/share/fonts/liberation/LiberationSans-Regular.ttf",
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package host

import (
	"context"
	"image"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/image/draw"
)

// newScreen creates the terminal screen. Tests replace it with a
// simulation screen.
var newScreen = tcell.NewScreen

// halfBlock fills the upper half of a cell; the foreground paints the
// upper pixel and the background the lower one.
const halfBlock = '▀'

// runTerminal animates the example in the terminal until Esc, Ctrl-C or
// q is pressed, cfg.Duration passes, or ctx is canceled.
func runTerminal(ctx context.Context, d *driver, cfg Config) error {
	screen, err := newScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.HideCursor()
	screen.Clear()

	events := make(chan tcell.Event, 8)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return // screen finalized
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	var deadline <-chan time.Time
	if cfg.Duration > 0 {
		timer := time.NewTimer(cfg.Duration)
		defer timer.Stop()
		deadline = timer.C
	}

	ticker := time.NewTicker(time.Second / time.Duration(cfg.FPS))
	defer ticker.Stop()

	p := &presenter{screen: screen}
	start := time.Now()
	if img, ok := d.frame(0); ok {
		p.present(img)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-deadline:
			return nil
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if quitKey(ev) {
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			if img, ok := d.frame(time.Since(start)); ok {
				p.present(img)
			}
		}
	}
}

func quitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

// presenter draws frames as half-block cells, scaled to fit the screen
// while keeping square pixels.
type presenter struct {
	screen tcell.Screen
	scaled *image.RGBA
}

// fit returns the largest rectangle with the aspect of src that fits in a
// cols x 2*rows pixel grid, centered.
func fit(src image.Rectangle, cols, rows int) image.Rectangle {
	gw, gh := cols, rows*2
	if src.Dx() <= 0 || src.Dy() <= 0 || gw <= 0 || gh <= 0 {
		return image.Rectangle{}
	}
	w, h := gw, gw*src.Dy()/src.Dx()
	if h > gh {
		w, h = gh*src.Dx()/src.Dy(), gh
	}
	h -= h % 2 // whole cells
	x0, y0 := (gw-w)/2, (gh-h)/4*2
	return image.Rect(x0, y0, x0+w, y0+h)
}

func (p *presenter) present(img *image.RGBA) {
	cols, rows := p.screen.Size()
	r := fit(img.Bounds(), cols, rows)
	if r.Empty() {
		return
	}
	if p.scaled == nil || p.scaled.Bounds() != r {
		p.scaled = image.NewRGBA(r)
	}
	draw.ApproxBiLinear.Scale(p.scaled, r, img, img.Bounds(), draw.Src, nil)

	for y := r.Min.Y; y < r.Max.Y; y += 2 {
		for x := r.Min.X; x < r.Max.X; x++ {
			style := tcell.StyleDefault.
				Foreground(cellColor(p.scaled, x, y)).
				Background(cellColor(p.scaled, x, y+1))
			p.screen.SetContent(x, y/2, halfBlock, nil, style)
		}
	}
	p.screen.Show()
}

// cellColor returns the opaque terminal color of pixel (x, y).
func cellColor(img *image.RGBA, x, y int) tcell.Color {
	i := img.PixOffset(x, y)
	px := img.Pix[i : i+3 : i+3]
	return tcell.NewRGBColor(int32(px[0]), int32(px[1]), int32(px[2]))
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package rasterx

import (
	"image"
	"time"

	"github.com/srwiley/rasterx"

	"github.com/gogpu/spotlight"
	"github.com/gogpu/spotlight/internal/composite"
)

// Name is the registry name of the backend.
const Name = "rasterx"

func init() {
	spotlight.Register(Name, func(o spotlight.CanvasOptions) (spotlight.RenderCanvas, error) {
		return New(o), nil
	})
}

// layer is a scratch image with a filler bound to it.
type layer struct {
	img    *image.RGBA
	filler *rasterx.Filler
}

func newLayer(w, h int) *layer {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	return &layer{img: img, filler: rasterx.NewFiller(w, h, scanner)}
}

// fill clears the layer and fills the shape with its fill at opacity.
func (l *layer) fill(s *spotlight.Shape, opacity uint8) {
	composite.Fill(l.img, spotlight.Transparent)
	clr := toColor(s.Fill(), opacity)
	if clr == nil {
		return
	}
	l.filler.Clear()
	l.filler.SetWinding(true)
	trace(l.filler, s.Path())
	l.filler.SetColor(clr)
	l.filler.Draw()
	l.filler.Clear()
}

// Canvas is a spotlight.RenderCanvas backed by rasterx.
type Canvas struct {
	width, height int
	background    spotlight.Color

	shapes []*spotlight.Shape
	frame  *image.RGBA
	layer  *layer
	mask   *layer

	closed bool
}

var _ spotlight.RenderCanvas = (*Canvas)(nil)

// New creates a canvas. Callers normally go through spotlight.NewCanvas,
// which validates the size.
func New(o spotlight.CanvasOptions) *Canvas {
	return &Canvas{
		width:      o.Width,
		height:     o.Height,
		background: o.Background,
		frame:      image.NewRGBA(image.Rect(0, 0, o.Width, o.Height)),
		layer:      newLayer(o.Width, o.Height),
		mask:       newLayer(o.Width, o.Height),
	}
}

// Clear removes all pushed shapes.
func (c *Canvas) Clear() error {
	if c.closed {
		return spotlight.ErrCanvasClosed
	}
	c.shapes = c.shapes[:0]
	return nil
}

// Push appends a shape to the frame.
func (c *Canvas) Push(s *spotlight.Shape) error {
	if c.closed {
		return spotlight.ErrCanvasClosed
	}
	if s == nil {
		return spotlight.ErrNilShape
	}
	c.shapes = append(c.shapes, s)
	return nil
}

// Draw renders the pushed shapes, in push order, over the background.
func (c *Canvas) Draw() error {
	if c.closed {
		return spotlight.ErrCanvasClosed
	}
	start := time.Now()

	composite.Fill(c.frame, c.background)
	for _, s := range c.shapes {
		if s.Fill() == nil || s.Opacity() == 0 {
			continue
		}
		c.layer.fill(s, 255)

		m, method := s.Mask()
		if m == nil {
			composite.Over(c.frame, c.layer.img, nil, s.Opacity())
			continue
		}
		c.mask.fill(m, m.Opacity())
		composite.Over(c.frame, c.layer.img, composite.Mask(c.mask.img, method, s.Opacity()), 255)
	}

	spotlight.Logger().Debug("rasterx: draw", "shapes", len(c.shapes), "took", time.Since(start))
	return nil
}

// Image returns the last drawn frame.
func (c *Canvas) Image() *image.RGBA { return c.frame }

// Size returns the canvas dimensions.
func (c *Canvas) Size() (width, height int) { return c.width, c.height }

// Close releases the canvas. Close is idempotent.
func (c *Canvas) Close() error {
	c.closed = true
	c.shapes = nil
	return nil
}

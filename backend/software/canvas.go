// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package software

import (
	"image"
	"time"

	"github.com/gogpu/gg"

	"github.com/gogpu/spotlight"
	"github.com/gogpu/spotlight/internal/composite"
)

// Name is the registry name of the backend.
const Name = "software"

func init() {
	spotlight.Register(Name, func(o spotlight.CanvasOptions) (spotlight.RenderCanvas, error) {
		return New(o), nil
	})
}

// Canvas is a spotlight.RenderCanvas backed by gogpu/gg.
type Canvas struct {
	width, height int
	background    spotlight.Color

	shapes []*spotlight.Shape
	frame  *image.RGBA

	// Scratch contexts reused across draws.
	layer *gg.Context
	mask  *gg.Context

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
		layer:      gg.NewContext(o.Width, o.Height),
		mask:       gg.NewContext(o.Width, o.Height),
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
		if err := c.drawShape(s); err != nil {
			return err
		}
	}

	spotlight.Logger().Debug("software: draw", "shapes", len(c.shapes), "took", time.Since(start))
	return nil
}

func (c *Canvas) drawShape(s *spotlight.Shape) error {
	if s.Fill() == nil || s.Opacity() == 0 {
		return nil
	}
	if err := fillShape(c.layer, s, 255); err != nil {
		return err
	}
	layer := c.layer.Image()

	m, method := s.Mask()
	if m == nil {
		composite.Over(c.frame, layer, nil, s.Opacity())
		return nil
	}
	if err := fillShape(c.mask, m, m.Opacity()); err != nil {
		return err
	}
	composite.Over(c.frame, layer, maskImage(c.mask, method, s.Opacity()), 255)
	return nil
}

// maskImage reads the filled mask context back as an alpha mask.
func maskImage(dc *gg.Context, method spotlight.MaskMethod, opacity uint8) *image.Alpha {
	m := gg.NewMaskFromAlpha(dc.Image())
	if method == spotlight.MaskInverseAlpha {
		m.Invert()
	}
	a := &image.Alpha{
		Pix:    m.Data(),
		Stride: m.Width(),
		Rect:   m.Bounds(),
	}
	composite.Scale(a, opacity)
	return a
}

// fillShape clears dc and fills the shape outline with its fill at the
// given opacity.
func fillShape(dc *gg.Context, s *spotlight.Shape, opacity uint8) error {
	dc.Clear()
	dc.ClearPath()
	trace(dc, s.Path())
	brush := toBrush(s.Fill(), opacity)
	if brush == nil {
		dc.ClearPath()
		return nil
	}
	dc.SetFillRule(gg.FillRuleNonZero)
	dc.SetFillBrush(brush)
	if err := dc.Fill(); err != nil {
		return err
	}
	// A registered GPU accelerator may still hold the fill.
	return dc.FlushGPU()
}

// RenderTo draws the last rendered frame into dc at the origin.
func (c *Canvas) RenderTo(dc *gg.Context) {
	dc.DrawImage(gg.ImageBufFromImage(c.frame), 0, 0)
}

// Image returns the last drawn frame.
func (c *Canvas) Image() *image.RGBA { return c.frame }

// Size returns the canvas dimensions.
func (c *Canvas) Size() (width, height int) { return c.width, c.height }

// Close releases the scratch contexts. Close is idempotent.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.shapes = nil
	_ = c.layer.Close()
	_ = c.mask.Close()
	return nil
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package software

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/spotlight"
)

// trace replays a spotlight path into the current path of dc.
func trace(dc *gg.Context, p *spotlight.Path) {
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case spotlight.MoveTo:
			dc.MoveTo(e.Point.X, e.Point.Y)
		case spotlight.LineTo:
			dc.LineTo(e.Point.X, e.Point.Y)
		case spotlight.CubicTo:
			dc.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case spotlight.Close:
			dc.ClosePath()
		}
	}
}

// toColor converts an 8-bit color to gg's float color, applying opacity.
func toColor(c spotlight.Color, opacity uint8) gg.RGBA {
	r, g, b, a := c.WithAlpha(opacity).Float()
	return gg.RGBA{R: r, G: g, B: b, A: a}
}

// toBrush converts a fill to a gg brush. A nil fill yields a nil brush.
func toBrush(f spotlight.Fill, opacity uint8) gg.Brush {
	switch f := f.(type) {
	case spotlight.SolidFill:
		return gg.Solid(toColor(f.Color, opacity))
	case *spotlight.LinearGradient:
		grad := gg.NewLinearGradientBrush(f.Start.X, f.Start.Y, f.End.X, f.End.Y).
			SetExtend(gg.ExtendPad)
		for _, st := range f.ColorStops() {
			grad.AddColorStop(st.Offset, toColor(st.Color, opacity))
		}
		return grad
	default:
		return nil
	}
}

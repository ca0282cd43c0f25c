// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package rasterx

import (
	"github.com/srwiley/rasterx"

	"github.com/gogpu/spotlight"
)

// trace replays a spotlight path into a rasterx adder.
func trace(a rasterx.Adder, p *spotlight.Path) {
	open := false
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case spotlight.MoveTo:
			if open {
				a.Stop(false)
			}
			a.Start(rasterx.ToFixedP(e.Point.X, e.Point.Y))
			open = true
		case spotlight.LineTo:
			a.Line(rasterx.ToFixedP(e.Point.X, e.Point.Y))
		case spotlight.CubicTo:
			a.CubeBezier(
				rasterx.ToFixedP(e.Control1.X, e.Control1.Y),
				rasterx.ToFixedP(e.Control2.X, e.Control2.Y),
				rasterx.ToFixedP(e.Point.X, e.Point.Y))
		case spotlight.Close:
			a.Stop(true)
			open = false
		}
	}
	if open {
		a.Stop(false)
	}
}

// toColor converts a fill to a value accepted by rasterx scanners: a
// color.Color for solid fills, a color function for gradients.
func toColor(f spotlight.Fill, opacity uint8) interface{} {
	switch f := f.(type) {
	case spotlight.SolidFill:
		return f.Color.WithAlpha(opacity).NRGBA()
	case *spotlight.LinearGradient:
		g := toGradient(f)
		return g.GetColorFunction(float64(opacity) / 255)
	default:
		return nil
	}
}

func toGradient(g *spotlight.LinearGradient) rasterx.Gradient {
	stops := g.ColorStops()
	gs := make([]rasterx.GradStop, len(stops))
	for i, st := range stops {
		c := st.Color
		gs[i] = rasterx.GradStop{
			StopColor: spotlight.RGB(c.R, c.G, c.B).NRGBA(),
			Offset:    st.Offset,
			Opacity:   float64(c.A) / 255,
		}
	}
	return rasterx.Gradient{
		Points: [5]float64{g.Start.X, g.Start.Y, g.End.X, g.End.Y, 0},
		Stops:  gs,
		Matrix: rasterx.Identity,
		Spread: rasterx.PadSpread,
		Units:  rasterx.UserSpaceOnUse,
	}
}

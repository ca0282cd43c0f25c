package spotlight

import (
	"fmt"
	"sort"
)

// Fill describes how the interior of a shape is painted.
// This is a sealed interface: only SolidFill and *LinearGradient implement it.
type Fill interface {
	isFill()
}

// SolidFill paints a shape with a single color.
type SolidFill struct {
	Color Color
}

func (SolidFill) isFill() {}

// ColorStop is a gradient control point.
type ColorStop struct {
	Offset float64 // Position along the gradient, 0.0 to 1.0
	Color  Color
}

// LinearGradient interpolates its stops along the line from Start to End.
// Beyond the ends the edge colors extend (pad spread).
type LinearGradient struct {
	Start Point
	End   Point
	stops []ColorStop
}

func (*LinearGradient) isFill() {}

// NewLinearGradient creates a gradient from (x0, y0) to (x1, y1) with no stops.
func NewLinearGradient(x0, y0, x1, y1 float64) *LinearGradient {
	return &LinearGradient{Start: Pt(x0, y0), End: Pt(x1, y1)}
}

// SetColorStops replaces the stops. Offsets are clamped to [0, 1] and the
// stops are kept sorted by offset; equal offsets keep their given order.
func (g *LinearGradient) SetColorStops(stops ...ColorStop) *LinearGradient {
	g.stops = make([]ColorStop, len(stops))
	for i, s := range stops {
		s.Offset = min(max(s.Offset, 0), 1)
		g.stops[i] = s
	}
	sort.SliceStable(g.stops, func(i, j int) bool {
		return g.stops[i].Offset < g.stops[j].Offset
	})
	return g
}

// ColorStops returns a copy of the sorted stops.
func (g *LinearGradient) ColorStops() []ColorStop {
	out := make([]ColorStop, len(g.stops))
	copy(out, g.stops)
	return out
}

// MaskMethod selects how a mask shape modulates the shape it is applied to.
type MaskMethod int

const (
	// MaskNone disables masking.
	MaskNone MaskMethod = iota
	// MaskAlpha keeps the shape where the mask is opaque: output alpha is
	// source alpha times mask alpha.
	MaskAlpha
	// MaskInverseAlpha keeps the shape where the mask is transparent.
	MaskInverseAlpha
)

// String returns the method name.
func (m MaskMethod) String() string {
	switch m {
	case MaskNone:
		return "none"
	case MaskAlpha:
		return "alpha"
	case MaskInverseAlpha:
		return "inverse-alpha"
	default:
		return fmt.Sprintf("MaskMethod(%d)", int(m))
	}
}

package spotlight

// Shape is a filled path, optionally masked by another shape.
//
// A shape is built for a single frame, pushed to a Canvas, and discarded
// when the canvas is cleared. The canvas keeps a reference to the shape
// between Push and Clear, so a pushed shape must not be modified.
type Shape struct {
	path       Path
	fill       Fill
	opacity    uint8
	mask       *Shape
	maskMethod MaskMethod
}

// NewShape creates an empty, fully opaque shape with no fill.
func NewShape() *Shape {
	return &Shape{opacity: 255}
}

// MoveTo starts a new contour.
func (s *Shape) MoveTo(x, y float64) *Shape {
	s.path.MoveTo(x, y)
	return s
}

// LineTo appends a line segment.
func (s *Shape) LineTo(x, y float64) *Shape {
	s.path.LineTo(x, y)
	return s
}

// CubicTo appends a cubic Bezier curve.
func (s *Shape) CubicTo(c1x, c1y, c2x, c2y, x, y float64) *Shape {
	s.path.CubicTo(c1x, c1y, c2x, c2y, x, y)
	return s
}

// Close closes the current contour.
func (s *Shape) Close() *Shape {
	s.path.Close()
	return s
}

// AppendCircle appends a closed ellipse contour.
func (s *Shape) AppendCircle(cx, cy, rx, ry float64) *Shape {
	s.path.AppendCircle(cx, cy, rx, ry)
	return s
}

// Path returns the shape outline.
func (s *Shape) Path() *Path {
	return &s.path
}

// SetFill sets the fill. A nil fill leaves the shape unpainted.
func (s *Shape) SetFill(f Fill) *Shape {
	s.fill = f
	return s
}

// SetColor fills the shape with an opaque solid color.
func (s *Shape) SetColor(r, g, b uint8) *Shape {
	s.fill = SolidFill{Color: RGB(r, g, b)}
	return s
}

// Fill returns the current fill, or nil.
func (s *Shape) Fill() Fill {
	return s.fill
}

// SetOpacity sets the shape opacity, 0 (invisible) to 255 (opaque).
func (s *Shape) SetOpacity(opacity uint8) *Shape {
	s.opacity = opacity
	return s
}

// Opacity returns the shape opacity.
func (s *Shape) Opacity() uint8 {
	return s.opacity
}

// SetMask masks s with mask using method. The mask shape is not drawn on
// its own. A nil mask, MaskNone, or s itself removes the mask.
func (s *Shape) SetMask(mask *Shape, method MaskMethod) *Shape {
	if mask == nil || mask == s || method == MaskNone {
		s.mask, s.maskMethod = nil, MaskNone
		return s
	}
	s.mask, s.maskMethod = mask, method
	return s
}

// Mask returns the mask shape and method. The shape is nil when unmasked.
func (s *Shape) Mask() (*Shape, MaskMethod) {
	return s.mask, s.maskMethod
}

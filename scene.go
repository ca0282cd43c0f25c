package spotlight

// Scene geometry.
const (
	// MaskRadius is the radius of the circular mask.
	MaskRadius = 80.0

	// MaskOpacity is the opacity of the mask shape.
	MaskOpacity = 255
)

// StarPoints is the outline of the star, clockwise from the top tip.
var StarPoints = [10]Point{
	{199, 34},  // top
	{253, 143}, // top-right
	{374, 160}, // right
	{287, 244}, // bottom-right
	{307, 365}, // bottom
	{199, 309}, // bottom-left
	{97, 365},  // left
	{112, 245}, // top-left
	{26, 161},  // far-left
	{146, 143}, // far-top
}

// Gradient line of the star fill.
var (
	GradientStart = Pt(100, 34)
	GradientEnd   = Pt(300, 365)
)

// NewStar returns an unfilled star: one closed ten-vertex contour.
func NewStar() *Shape {
	s := NewShape()
	s.path.Polygon(StarPoints[:])
	return s
}

// NewStarGradient returns the star's linear gradient with the given stops.
func NewStarGradient(stops [3]ColorStop) *LinearGradient {
	return NewLinearGradient(GradientStart.X, GradientStart.Y, GradientEnd.X, GradientEnd.Y).
		SetColorStops(stops[:]...)
}

// NewMaskCircle returns the opaque white mask circle centered at center.
func NewMaskCircle(center Point) *Shape {
	return NewShape().
		AppendCircle(center.X, center.Y, MaskRadius, MaskRadius).
		SetColor(255, 255, 255).
		SetOpacity(MaskOpacity)
}

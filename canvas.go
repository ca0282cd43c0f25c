package spotlight

import (
	"errors"
	"image"
)

var (
	// ErrCanvasClosed is returned by operations on a closed canvas.
	ErrCanvasClosed = errors.New("spotlight: canvas closed")

	// ErrNilShape is returned when pushing a nil shape.
	ErrNilShape = errors.New("spotlight: nil shape")

	// ErrUnknownBackend is returned by NewCanvas for unregistered names.
	ErrUnknownBackend = errors.New("spotlight: unknown backend")
)

// Canvas collects the shapes of a single frame.
//
// Clear removes every shape pushed since the previous Clear. Push appends a
// shape; the canvas takes ownership of it until the next Clear.
type Canvas interface {
	Clear() error
	Push(s *Shape) error
}

// RenderCanvas is a Canvas that can rasterize its shapes.
//
// Draw renders the current shapes over the background into the frame
// returned by Image. The image is owned by the canvas and overwritten by
// the next Draw.
type RenderCanvas interface {
	Canvas
	Draw() error
	Image() *image.RGBA
	Size() (width, height int)
	Close() error
}

// CanvasOptions configures a RenderCanvas created through NewCanvas.
type CanvasOptions struct {
	Width      int
	Height     int
	Background Color
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package recording

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"strings"

	"github.com/gogpu/spotlight"
	"github.com/gogpu/spotlight/internal/composite"
)

// ErrClearFailed is the default error injected by FailNextClear.
var ErrClearFailed = errors.New("recording: clear failed")

func init() {
	spotlight.Register("recording", func(o spotlight.CanvasOptions) (spotlight.RenderCanvas, error) {
		c := New(o.Width, o.Height)
		c.background = o.Background
		return c, nil
	})
}

// Op identifies a recorded canvas operation.
type Op int

const (
	OpClear Op = iota
	OpPush
	OpDraw
)

// String returns the operation name.
func (o Op) String() string {
	switch o {
	case OpClear:
		return "clear"
	case OpPush:
		return "push"
	case OpDraw:
		return "draw"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// Event is one recorded operation.
type Event struct {
	Op    Op
	Shape *spotlight.Shape // Pushed shape, nil for other operations
	Err   error            // Error returned to the caller
}

// Canvas records operations. It implements spotlight.RenderCanvas.
// The Canvas is not safe for concurrent use.
type Canvas struct {
	width, height int
	background    spotlight.Color
	frame         *image.RGBA

	shapes []*spotlight.Shape
	events []Event
	clears int
	draws  int

	failNext error
	failAll  error
	closed   bool
}

var _ spotlight.RenderCanvas = (*Canvas)(nil)

// New creates a recording canvas of the given size.
func New(width, height int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		frame:  image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0))),
	}
}

// FailNextClear makes the next Clear return err, or ErrClearFailed if err
// is nil. The failed Clear keeps the current shapes.
func (c *Canvas) FailNextClear(err error) {
	if err == nil {
		err = ErrClearFailed
	}
	c.failNext = err
}

// FailClears makes every Clear return err until called with nil.
func (c *Canvas) FailClears(err error) {
	c.failAll = err
}

// Clear removes the current shapes.
func (c *Canvas) Clear() error {
	err := c.clearErr()
	c.events = append(c.events, Event{Op: OpClear, Err: err})
	if err != nil {
		return err
	}
	c.shapes = c.shapes[:0]
	c.clears++
	return nil
}

func (c *Canvas) clearErr() error {
	switch {
	case c.closed:
		return spotlight.ErrCanvasClosed
	case c.failNext != nil:
		err := c.failNext
		c.failNext = nil
		return err
	default:
		return c.failAll
	}
}

// Push appends s to the current frame.
func (c *Canvas) Push(s *spotlight.Shape) error {
	var err error
	switch {
	case c.closed:
		err = spotlight.ErrCanvasClosed
	case s == nil:
		err = spotlight.ErrNilShape
	}
	c.events = append(c.events, Event{Op: OpPush, Shape: s, Err: err})
	if err != nil {
		return err
	}
	c.shapes = append(c.shapes, s)
	return nil
}

// Draw fills the frame with the background and logs the scene.
func (c *Canvas) Draw() error {
	if c.closed {
		c.events = append(c.events, Event{Op: OpDraw, Err: spotlight.ErrCanvasClosed})
		return spotlight.ErrCanvasClosed
	}
	composite.Fill(c.frame, c.background)
	c.draws++
	c.events = append(c.events, Event{Op: OpDraw})
	if l := spotlight.Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("recording: draw", "shapes", len(c.shapes), "scene", c.String())
	}
	return nil
}

// Image returns the last drawn frame.
func (c *Canvas) Image() *image.RGBA { return c.frame }

// Size returns the canvas dimensions.
func (c *Canvas) Size() (width, height int) { return c.width, c.height }

// Close marks the canvas closed; later operations fail with
// spotlight.ErrCanvasClosed. Close is idempotent.
func (c *Canvas) Close() error {
	c.closed = true
	c.shapes = nil
	return nil
}

// Frame returns the shapes pushed since the last successful Clear.
func (c *Canvas) Frame() []*spotlight.Shape {
	out := make([]*spotlight.Shape, len(c.shapes))
	copy(out, c.shapes)
	return out
}

// Events returns every recorded operation in order.
func (c *Canvas) Events() []Event {
	out := make([]Event, len(c.events))
	copy(out, c.events)
	return out
}

// Clears returns the number of successful clears.
func (c *Canvas) Clears() int { return c.clears }

// Draws returns the number of successful draws.
func (c *Canvas) Draws() int { return c.draws }

// Pushes returns the number of successful pushes.
func (c *Canvas) Pushes() int {
	n := 0
	for _, e := range c.events {
		if e.Op == OpPush && e.Err == nil {
			n++
		}
	}
	return n
}

// Reset forgets all recorded events and shapes; injected failures and the
// closed state are kept.
func (c *Canvas) Reset() {
	c.shapes = nil
	c.events = nil
	c.clears = 0
	c.draws = 0
}

// String describes the current frame, one shape per line.
func (c *Canvas) String() string {
	var b strings.Builder
	for i, s := range c.shapes {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(Describe(s))
	}
	return b.String()
}

// Describe returns a one-line summary of a shape: its outline, fill,
// opacity and mask.
func Describe(s *spotlight.Shape) string {
	if s == nil {
		return "<nil>"
	}
	var b strings.Builder
	describeShape(&b, s)
	if m, method := s.Mask(); m != nil {
		fmt.Fprintf(&b, " mask=%s(", method)
		describeShape(&b, m)
		b.WriteByte(')')
	}
	return b.String()
}

func describeShape(b *strings.Builder, s *spotlight.Shape) {
	p := s.Path()
	lo, hi := p.Bounds()
	fmt.Fprintf(b, "path[%d elems, %d contours, bounds (%.1f,%.1f)-(%.1f,%.1f)]",
		p.Len(), p.Contours(), lo.X, lo.Y, hi.X, hi.Y)

	switch f := s.Fill().(type) {
	case nil:
		b.WriteString(" fill=none")
	case spotlight.SolidFill:
		fmt.Fprintf(b, " fill=%s", f.Color)
	case *spotlight.LinearGradient:
		fmt.Fprintf(b, " fill=linear(%.0f,%.0f)-(%.0f,%.0f)", f.Start.X, f.Start.Y, f.End.X, f.End.Y)
		for _, st := range f.ColorStops() {
			fmt.Fprintf(b, " %.2f:%s", st.Offset, st.Color)
		}
	}
	if op := s.Opacity(); op != 255 {
		fmt.Fprintf(b, " opacity=%d", op)
	}
}

package spotlight

import (
	"fmt"
	"time"
)

// Example is an animation driven by a host.
//
// Content renders the first frame once after the canvas is created.
// Update rebuilds the canvas content for an elapsed time. A non-nil error
// means the frame was aborted and nothing was pushed for it.
type Example interface {
	Content(c Canvas, width, height int) error
	Update(c Canvas, elapsed time.Duration) error
}

// SpotlightMasking is a star with an animated gradient, seen through a
// circular alpha mask orbiting its center.
type SpotlightMasking struct{}

var _ Example = SpotlightMasking{}

// New returns the spotlight masking example.
func New() SpotlightMasking {
	return SpotlightMasking{}
}

// Content renders the frame at elapsed zero. The canvas size is unused:
// the scene is laid out in fixed coordinates.
func (e SpotlightMasking) Content(c Canvas, _, _ int) error {
	return e.Update(c, 0)
}

// Update clears the canvas and pushes the scene for elapsed.
func (SpotlightMasking) Update(c Canvas, elapsed time.Duration) error {
	if err := c.Clear(); err != nil {
		Logger().Warn("frame aborted", "elapsed", elapsed, "err", err)
		return fmt.Errorf("spotlight: clear canvas: %w", err)
	}

	f := Animate(elapsed)

	star := NewStar()
	star.SetFill(NewStarGradient(f.Stops))
	star.SetMask(NewMaskCircle(f.MaskCenter), MaskAlpha)

	Logger().Debug("frame",
		"elapsed", elapsed,
		"t", f.T,
		"rgb", [3]uint8{f.Red, f.Green, f.Blue},
		"mask", f.MaskCenter)

	if err := c.Push(star); err != nil {
		return fmt.Errorf("spotlight: push star: %w", err)
	}
	return nil
}

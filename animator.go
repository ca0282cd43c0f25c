package spotlight

import (
	"math"
	"time"
)

// Animation constants.
const (
	// Period is the length of one animation cycle.
	Period = 3 * time.Second

	// ChannelBase and ChannelAmplitude shape the color waves:
	// base + amplitude*sin(...) stays within [1, 255].
	ChannelBase      = 128
	ChannelAmplitude = 127

	// ChannelPhase is the time offset between consecutive color channels.
	ChannelPhase = 1 * time.Second

	// MaskOrbitRadius is the distance of the mask center from the pivot.
	MaskOrbitRadius = 60.0
)

// Pivot is the point the mask orbits: the star center.
var Pivot = Pt(199, 199)

// Frame holds the time-dependent parameters of one frame.
type Frame struct {
	T          float64 // Seconds into the current cycle, in [0, Period)
	Angle      float64 // Cycle phase in radians, in [0, 2π)
	Red        uint8
	Green      uint8
	Blue       uint8
	Stops      [3]ColorStop
	MaskCenter Point
}

// Clock returns the position within the animation cycle in seconds.
// The result lies in [0, Period) and repeats exactly every Period.
// Negative elapsed values are treated as zero.
func Clock(elapsed time.Duration) float64 {
	if elapsed < 0 {
		elapsed = 0
	}
	return (elapsed % Period).Seconds()
}

// angularSpeed is the cycle phase advanced per second.
var angularSpeed = 2 * math.Pi / Period.Seconds()

// Channel returns base + amplitude*sin(angle + phase*speed), truncated to
// 8 bits. phase is a time offset in seconds.
func Channel(angle, phase float64) uint8 {
	v := ChannelBase + ChannelAmplitude*math.Sin(angle+phase*angularSpeed)
	return uint8(v)
}

// MaskCenter returns the orbiting mask center for a cycle angle.
func MaskCenter(angle float64) Point {
	return Pt(
		Pivot.X+MaskOrbitRadius*math.Sin(angle),
		Pivot.Y+MaskOrbitRadius*math.Cos(angle),
	)
}

// Animate computes the frame parameters for an elapsed time.
// It is a pure function of elapsed.
func Animate(elapsed time.Duration) Frame {
	t := Clock(elapsed)
	angle := t * angularSpeed
	phase := ChannelPhase.Seconds()

	f := Frame{
		T:          t,
		Angle:      angle,
		Red:        Channel(angle, 0),
		Green:      Channel(angle, phase),
		Blue:       Channel(angle, 2*phase),
		MaskCenter: MaskCenter(angle),
	}
	f.Stops = [3]ColorStop{
		{Offset: 0.0, Color: Color{R: f.Red, G: 0, B: 255, A: 255}},
		{Offset: 0.5, Color: Color{R: 0, G: f.Green, B: 255, A: 255}},
		{Offset: 1.0, Color: Color{R: 0, G: 0, B: f.Blue, A: 255}},
	}
	return f
}

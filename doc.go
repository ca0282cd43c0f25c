// Package spotlight is an animated masking demo for the gogpu/gg 2D graphics
// library.
//
// # Overview
//
// A ten-point star is filled with a color-cycling linear gradient and viewed
// through a circular alpha mask that orbits the star's center. The package
// holds the animation itself: the fixed scene geometry, the time-dependent
// frame parameters and the per-frame update that pushes the scene to a
// canvas. Rasterization and compositing belong to the rendering backends.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/spotlight"
//	    _ "github.com/gogpu/spotlight/backend/software" // register "software"
//	)
//
//	canvas, err := spotlight.NewCanvas("software", spotlight.CanvasOptions{
//	    Width: 400, Height: 400,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer canvas.Close()
//
//	ex := spotlight.New()
//	if err := ex.Update(canvas, 750*time.Millisecond); err != nil {
//	    log.Fatal(err)
//	}
//	_ = canvas.Draw()
//	img := canvas.Image()
//
// # Architecture
//
// Each frame is rebuilt from scratch:
//   - Scene builder: [NewStar], [NewMaskCircle], [NewStarGradient]
//   - Frame animator: [Clock], [Animate]
//   - Compositor: any [Canvas]; [RenderCanvas] implementations live in
//     backend/software (gogpu/gg) and backend/rasterx (srwiley/rasterx)
//
// The host package runs an [Example] against a registered backend and
// presents the frames as PNG files, an animated GIF, a terminal view or a
// gogpu window.
//
// # Logging
//
// The package is silent by default. Use [SetLogger] to route diagnostics to
// a [log/slog] logger; backends and the host share the same logger.
package spotlight

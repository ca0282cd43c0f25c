// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package host runs a spotlight.Example against a registered rendering
// backend and presents the frames.
//
// Presentation modes:
//
//	png     write one PNG per frame into a directory
//	gif     write a looping animated GIF
//	trace   log every frame's scene without writing files
//	term    animate in the terminal (gdamore/tcell)
//	window  animate in a gogpu window
//
// The first frame comes from Example.Content; every later frame is an
// Example.Update at the frame's elapsed time. Offline modes (png, gif,
// trace) sample the animation at a fixed frame rate; term and window use
// the wall clock.
//
// A command-line program needs only:
//
//	func main() {
//	    os.Exit(host.Main(spotlight.New(), os.Args[1:]))
//	}
package host

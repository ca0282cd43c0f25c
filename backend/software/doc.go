// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package software renders spotlight shapes with the gogpu/gg software
// rasterizer.
//
// Importing the package registers the "software" backend:
//
//	import _ "github.com/gogpu/spotlight/backend/software"
//
//	canvas, err := spotlight.NewCanvas("software", spotlight.CanvasOptions{Width: 400, Height: 400})
//
// Each pushed shape is filled into a scratch gg.Context. A masked shape's
// mask is filled into a second scratch context and read back as a gg.Mask,
// which gates the shape layer when it is composited onto the frame.
//
// The Canvas is not safe for concurrent use.
package software

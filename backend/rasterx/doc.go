// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package rasterx renders spotlight shapes with the srwiley/rasterx
// scanline rasterizer.
//
// Importing the package registers the "rasterx" backend. It produces the
// same frames as the software backend within anti-aliasing differences,
// and serves as a second implementation of spotlight.RenderCanvas.
//
// The Canvas is not safe for concurrent use.
package rasterx

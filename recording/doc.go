// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package recording provides a canvas that records operations instead of
// rasterizing them.
//
// The recording canvas keeps the shapes pushed since the last Clear and a
// log of every operation, which makes it the reference collaborator for
// testing examples without a graphics backend:
//
//	rec := recording.New(400, 400)
//	if err := spotlight.New().Update(rec, 750*time.Millisecond); err != nil {
//	    // handle aborted frame
//	}
//	shapes := rec.Frame()
//
// Clear failures can be injected with FailNextClear and FailClears to
// exercise the abort path of an example.
//
// Importing the package registers the canvas as the "recording" backend.
// Its Draw only fills the frame with the background color.
package recording

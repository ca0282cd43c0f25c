// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package composite holds the masked compositing steps shared by the
// rendering backends. The pixel work is delegated to golang.org/x/image/draw.
package composite

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/gogpu/spotlight"
)

// Fill replaces every pixel of dst with c.
func Fill(dst *image.RGBA, c spotlight.Color) {
	draw.Draw(dst, dst.Bounds(), image.NewUniform(c.NRGBA()), image.Point{}, draw.Src)
}

// AlphaOf returns the alpha channel of img as a mask.
func AlphaOf(img *image.RGBA) *image.Alpha {
	b := img.Bounds()
	a := image.NewAlpha(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		src := img.Pix[img.PixOffset(b.Min.X, y):]
		dst := a.Pix[a.PixOffset(b.Min.X, y):]
		for x := 0; x < b.Dx(); x++ {
			dst[x] = src[4*x+3]
		}
	}
	return a
}

// Invert replaces each mask value v with 255-v.
func Invert(a *image.Alpha) {
	for i, v := range a.Pix {
		a.Pix[i] = 255 - v
	}
}

// Scale multiplies each mask value by opacity/255.
// Opacity 255 leaves the mask unchanged.
func Scale(a *image.Alpha, opacity uint8) {
	if opacity == 255 {
		return
	}
	for i, v := range a.Pix {
		t := uint32(v)*uint32(opacity) + 128
		a.Pix[i] = uint8((t + t>>8) >> 8)
	}
}

// Over composites src onto dst through mask with the Porter-Duff over
// operator. A nil mask draws src unmasked. opacity further scales src
// when mask is nil.
func Over(dst *image.RGBA, src image.Image, mask image.Image, opacity uint8) {
	r := dst.Bounds()
	if mask == nil {
		if opacity == 255 {
			draw.Draw(dst, r, src, r.Min, draw.Over)
			return
		}
		mask = image.NewUniform(color.Alpha{A: opacity})
	}
	draw.DrawMask(dst, r, src, r.Min, mask, r.Min, draw.Over)
}

// Mask builds the mask image for a rendered mask layer: its alpha,
// inverted for spotlight.MaskInverseAlpha, scaled by the masked shape's
// opacity.
func Mask(layer *image.RGBA, method spotlight.MaskMethod, opacity uint8) *image.Alpha {
	a := AlphaOf(layer)
	if method == spotlight.MaskInverseAlpha {
		Invert(a)
	}
	Scale(a, opacity)
	return a
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster strokes line segments into RGBA buffers.
//
// Each segment is expanded into a quad of the stroke width, extended by half
// the width at both ends so that consecutive segments of a polyline overlap
// instead of leaving seams, and filled with golang.org/x/image/vector. The
// vector rasterizer is sized to the segment's bounding box rather than the
// whole buffer, so stroking a short segment costs a few dozen pixels no
// matter how large the target is.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// minLength is the segment length below which a segment is drawn as a dot.
const minLength = 1e-6

// Stroker draws anti-aliased segments of a fixed width.
//
// Stroker is not safe for concurrent use: it reuses one rasterizer.
type Stroker struct {
	width float64
	z     *vector.Rasterizer
}

// NewStroker creates a stroker. Widths below 0.1 are raised to 0.1.
func NewStroker(width float64) *Stroker {
	if width < 0.1 {
		width = 0.1
	}
	return &Stroker{
		width: width,
		z:     vector.NewRasterizer(1, 1),
	}
}

// Width returns the stroke width in pixels.
func (s *Stroker) Width() float64 {
	return s.width
}

// Line composites the segment (x0,y0)-(x1,y1) onto dst with the source-over
// operator. Segments entirely outside dst are skipped.
func (s *Stroker) Line(dst draw.Image, x0, y0, x1, y1 float64, c color.Color) {
	hw := s.width / 2

	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)

	// Unit direction; a degenerate segment becomes a square dot.
	ux, uy := 1.0, 0.0
	if length > minLength {
		ux, uy = dx/length, dy/length
	}

	// Extend along the direction and offset along the normal.
	ex, ey := ux*hw, uy*hw
	nx, ny := -uy*hw, ux*hw

	quad := [4][2]float64{
		{x0 - ex + nx, y0 - ey + ny},
		{x1 + ex + nx, y1 + ey + ny},
		{x1 + ex - nx, y1 + ey - ny},
		{x0 - ex - nx, y0 - ey - ny},
	}

	box := quadBounds(quad).Intersect(dst.Bounds())
	if box.Empty() {
		return
	}

	z := s.z
	z.Reset(box.Dx(), box.Dy())
	z.DrawOp = draw.Over
	ox, oy := float64(box.Min.X), float64(box.Min.Y)
	z.MoveTo(float32(quad[0][0]-ox), float32(quad[0][1]-oy))
	for _, p := range quad[1:] {
		z.LineTo(float32(p[0]-ox), float32(p[1]-oy))
	}
	z.ClosePath()
	z.Draw(dst, box, image.NewUniform(c), image.Point{})
}

func quadBounds(q [4][2]float64) image.Rectangle {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range q {
		minX = math.Min(minX, p[0])
		minY = math.Min(minY, p[1])
		maxX = math.Max(maxX, p[0])
		maxY = math.Max(maxY, p[1])
	}
	return image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	)
}

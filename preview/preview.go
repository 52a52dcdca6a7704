// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package preview paints images onto a terminal screen.
//
// Each terminal cell shows two vertically stacked pixels using an upper
// half block: the foreground colour is the top pixel and the background
// colour the bottom pixel. Transparent pixels show as black.
package preview

import (
	"image"

	"github.com/gdamore/tcell/v2"
	xdraw "golang.org/x/image/draw"
)

// upperHalf is the glyph whose foreground fills the top half of a cell.
const upperHalf = '▀'

// Paint draws img over the whole screen, keeping its aspect ratio and
// centring it. It does not call Show.
func Paint(s tcell.Screen, img image.Image) {
	w, h := s.Size()
	PaintRect(s, img, image.Rect(0, 0, w, h))
}

// PaintRect draws img inside the cell rectangle r. Cells of r the image
// does not cover are cleared to black.
func PaintRect(s tcell.Screen, img image.Image, r image.Rectangle) {
	if r.Empty() {
		return
	}
	black := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorBlack)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			s.SetContent(x, y, ' ', nil, black)
		}
	}

	pix := fit(img, r.Dx(), 2*r.Dy())
	if pix == nil {
		return
	}
	ox := r.Min.X + (r.Dx()-pix.Rect.Dx())/2
	oy := r.Min.Y + (r.Dy()-pix.Rect.Dy()/2)/2
	for cy := 0; cy < pix.Rect.Dy()/2; cy++ {
		for cx := 0; cx < pix.Rect.Dx(); cx++ {
			top := pix.RGBAAt(cx, 2*cy)
			bottom := pix.RGBAAt(cx, 2*cy+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			s.SetContent(ox+cx, oy+cy, upperHalf, nil, style)
		}
	}
}

// fit scales img to the largest size inside w×h pixels that keeps its
// aspect ratio. The height is rounded down to an even number of pixels.
// Pixels stay premultiplied, which is the same as compositing over black.
func fit(img image.Image, w, h int) *image.RGBA {
	src := img.Bounds()
	if src.Empty() || w < 1 || h < 2 {
		return nil
	}
	dw, dh := w, src.Dy()*w/src.Dx()
	if dh > h {
		dw, dh = src.Dx()*h/src.Dy(), h
	}
	dh &^= 1
	if dw < 1 || dh < 2 {
		return nil
	}
	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	xdraw.ApproxBiLinear.Scale(dst, dst.Rect, img, src, xdraw.Src, nil)
	return dst
}

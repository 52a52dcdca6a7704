// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package export

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// captionPadding is the distance of a caption from the image corner.
const captionPadding = 8

// Caption draws text in the bottom-left corner of dst.
func Caption(dst draw.Image, text string, c color.Color) {
	face := basicfont.Face7x13
	b := dst.Bounds()
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot: fixed.P(
			b.Min.X+captionPadding,
			b.Max.Y-captionPadding-face.Descent,
		),
	}
	d.DrawString(text)
}

// CaptionWidth returns the advance of text in pixels.
func CaptionWidth(text string) int {
	return font.MeasureString(basicfont.Face7x13, text).Ceil()
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package preview

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func cellColors(s tcell.Screen, x, y int) (rune, color.RGBA, color.RGBA) {
	r, _, style, _ := s.GetContent(x, y)
	fg, bg, _ := style.Decompose()
	fr, fgG, fb := fg.RGB()
	br, bgG, bb := bg.RGB()
	return r,
		color.RGBA{R: uint8(fr), G: uint8(fgG), B: uint8(fb), A: 255},
		color.RGBA{R: uint8(br), G: uint8(bgG), B: uint8(bb), A: 255}
}

func TestPaintSplitsCells(t *testing.T) {
	// Top half red, bottom half blue.
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	draw.Draw(img, image.Rect(0, 0, 8, 4), image.NewUniform(color.RGBA{R: 255, A: 255}), image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(0, 4, 8, 8), image.NewUniform(color.RGBA{B: 255, A: 255}), image.Point{}, draw.Src)

	s := newScreen(t, 8, 4)
	Paint(s, img)

	ch, fg, bg := cellColors(s, 3, 0)
	assert.Equal(t, upperHalf, ch)
	assert.Equal(t, color.RGBA{R: 255, A: 255}, fg)
	assert.Equal(t, color.RGBA{R: 255, A: 255}, bg)

	_, fg, bg = cellColors(s, 3, 3)
	assert.Equal(t, color.RGBA{B: 255, A: 255}, fg)
	assert.Equal(t, color.RGBA{B: 255, A: 255}, bg)
}

func TestPaintCentresSquareImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 40, 40))
	draw.Draw(img, img.Rect, image.NewUniform(color.White), image.Point{}, draw.Src)

	// 30 columns by 10 rows holds a 20×20 pixel square: 20 columns, 10 rows.
	s := newScreen(t, 30, 10)
	Paint(s, img)

	ch, _, _ := cellColors(s, 2, 5)
	assert.Equal(t, ' ', ch, "left border stays blank")
	ch, fg, _ := cellColors(s, 15, 5)
	assert.Equal(t, upperHalf, ch)
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, fg)
	ch, _, _ = cellColors(s, 27, 5)
	assert.Equal(t, ' ', ch, "right border stays blank")
}

func TestPaintTransparentIsBlack(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	s := newScreen(t, 4, 2)
	Paint(s, img)

	_, fg, bg := cellColors(s, 1, 1)
	assert.Equal(t, color.RGBA{A: 255}, fg)
	assert.Equal(t, color.RGBA{A: 255}, bg)
}

func TestPaintRectLeavesOutsideAlone(t *testing.T) {
	s := newScreen(t, 10, 6)
	s.SetContent(0, 5, 'x', nil, tcell.StyleDefault)

	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	PaintRect(s, img, image.Rect(0, 0, 10, 5))

	ch, _, _, _ := s.GetContent(0, 5)
	assert.Equal(t, 'x', ch)
}

func TestFit(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 50))
	assert.Equal(t, image.Rect(0, 0, 40, 20), fit(img, 40, 40).Rect)
	assert.Equal(t, image.Rect(0, 0, 22, 10), fit(img, 100, 11).Rect)
	assert.Nil(t, fit(img, 0, 10))
	assert.Nil(t, fit(image.NewRGBA(image.Rectangle{}), 10, 10))
}

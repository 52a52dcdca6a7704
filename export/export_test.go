// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package export

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/spiro"
	"github.com/gogpu/spiro/pattern"
)

func TestNames(t *testing.T) {
	assert.Equal(t, "spirograph_42.png", PNGName(42))
	assert.Equal(t, "Spirograph_42.gif", GIFName(42))
	assert.Equal(t, "spirograph_42.json", MetadataName(42))
}

func TestWritePNG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 12, 7))
	img.Set(3, 4, color.RGBA{R: 200, A: 255})

	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, img))

	got, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), got.Bounds())
	r, _, _, a := got.At(3, 4).RGBA()
	assert.Equal(t, uint32(200*257), r)
	assert.Equal(t, uint32(0xffff), a)
}

func TestFlatten(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{G: 255, A: 255})
	img.Set(2, 2, color.RGBA{G: 128, A: 128}) // premultiplied half green

	out := Flatten(img, color.Black)
	assert.Equal(t, color.RGBA{A: 255}, out.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{G: 255, A: 255}, out.RGBAAt(1, 1))

	half := out.RGBAAt(2, 2)
	assert.Equal(t, uint8(255), half.A)
	assert.InDelta(t, 128, half.G, 1)

	assert.Equal(t, uint8(0), img.RGBAAt(0, 0).A, "source must not change")
}

func TestCaption(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 200, 60))
	Caption(img, "Spirograph #7", color.White)

	var painted image.Rectangle
	for y := 0; y < 60; y++ {
		for x := 0; x < 200; x++ {
			if img.RGBAAt(x, y).A != 0 {
				painted = painted.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	require.False(t, painted.Empty(), "caption drew nothing")
	assert.GreaterOrEqual(t, painted.Min.X, captionPadding)
	assert.LessOrEqual(t, painted.Max.Y, 60-captionPadding)
	assert.Greater(t, painted.Min.Y, 30, "caption belongs at the bottom")
	assert.LessOrEqual(t, painted.Dx(), CaptionWidth("Spirograph #7"))
}

func TestAnimationCapture(t *testing.T) {
	a := NewAnimation(FrameEvery(3), FrameSize(20), FrameDelay(40*time.Millisecond), HoldLast(time.Second))
	src := image.NewRGBA(image.Rect(0, 0, 80, 80))

	for i := 0; i < 10; i++ {
		src.Set(i*8, 40, color.White)
		a.Capture(src)
	}
	// Calls 0, 3, 6 and 9.
	assert.Equal(t, 4, a.Len())

	var buf bytes.Buffer
	require.NoError(t, a.Encode(&buf))

	g, err := gif.DecodeAll(&buf)
	require.NoError(t, err)
	require.Len(t, g.Image, 4)
	assert.Equal(t, image.Rect(0, 0, 20, 20), g.Image[0].Bounds())
	assert.Equal(t, []int{4, 4, 4, 104}, g.Delay)
	assert.Equal(t, 0, g.LoopCount)

	a.Reset()
	assert.Equal(t, 0, a.Len())
	assert.ErrorIs(t, a.Encode(&buf), ErrNoFrames)
}

func TestAnimationKeepsAspect(t *testing.T) {
	a := NewAnimation(FrameSize(50))
	a.Add(image.NewRGBA(image.Rect(0, 0, 100, 40)))
	assert.Equal(t, image.Rect(0, 0, 50, 20), a.frames[0].Bounds())

	b := NewAnimation(FrameSize(0))
	b.Add(image.NewRGBA(image.Rect(0, 0, 33, 33)))
	assert.Equal(t, image.Rect(0, 0, 33, 33), b.frames[0].Bounds())
}

func TestAnimationFromRenderer(t *testing.T) {
	a := NewAnimation(FrameEvery(10), FrameSize(40))
	r := spiro.New(spiro.WithCanvas(80, 5), spiro.WithTickStep(0.25), spiro.WithSubSteps(4))
	r.SetSeed(99)
	for r.State().Phase == spiro.PhaseDrawing {
		r.Tick()
		a.Capture(r.Preview())
	}
	a.Add(r.Final())

	assert.Equal(t, (r.State().Ticks+9)/10+1, a.Len())
	var buf bytes.Buffer
	require.NoError(t, a.Encode(&buf))
	assert.Positive(t, buf.Len())
}

func TestWriteMetadata(t *testing.T) {
	md := spiro.Metadata{
		Seed:    5,
		Name:    spiro.Name(5),
		Family:  pattern.Lissajous,
		Rarity:  pattern.Legendary,
		Params:  pattern.Params{AmpX: 300, AmpY: 220, FreqX: 3, FreqY: 5, Phase: 0.5},
		Palette: "Pastel Vapor",
		Policy:  "multi",
		Layers:  5,
	}

	var buf bytes.Buffer
	require.NoError(t, WriteMetadata(&buf, md))

	var raw map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))
	assert.Equal(t, "Spirograph #5", raw["name"])
	assert.Equal(t, "Lissajous", raw["shape"])
	assert.Equal(t, "Legendary", raw["rarity"])

	var back spiro.Metadata
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, md.Params, back.Params)
	assert.Equal(t, md.Family, back.Family)
}

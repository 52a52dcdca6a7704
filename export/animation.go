// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package export

import (
	"errors"
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"time"

	xdraw "golang.org/x/image/draw"
)

// ErrNoFrames is returned by Encode when nothing was captured.
var ErrNoFrames = errors.New("export: animation has no frames")

// Defaults for an Animation.
const (
	DefaultFrameEvery = 30
	DefaultFrameSize  = 300
	DefaultFrameDelay = 50 * time.Millisecond
)

// Animation records snapshots of a drawing in progress and encodes them as
// an animated GIF. Frames are downscaled when captured so that memory stays
// bounded by the frame size, not the canvas size.
type Animation struct {
	every int
	size  int
	delay int // hundredths of a second
	hold  int

	calls  int
	frames []*image.Paletted
	delays []int
}

// AnimationOption configures an Animation.
type AnimationOption func(*Animation)

// FrameEvery captures one frame per n calls to Capture.
func FrameEvery(n int) AnimationOption {
	return func(a *Animation) {
		if n > 0 {
			a.every = n
		}
	}
}

// FrameSize sets the width of captured frames. Height keeps the aspect
// ratio. Zero keeps the source size.
func FrameSize(px int) AnimationOption {
	return func(a *Animation) {
		if px >= 0 {
			a.size = px
		}
	}
}

// FrameDelay sets the time each frame is shown.
func FrameDelay(d time.Duration) AnimationOption {
	return func(a *Animation) {
		a.delay = max(1, int(d/(10*time.Millisecond)))
	}
}

// HoldLast shows the last frame for d before the animation loops.
func HoldLast(d time.Duration) AnimationOption {
	return func(a *Animation) {
		a.hold = int(d / (10 * time.Millisecond))
	}
}

// NewAnimation creates an empty animation.
func NewAnimation(opts ...AnimationOption) *Animation {
	a := &Animation{
		every: DefaultFrameEvery,
		size:  DefaultFrameSize,
		delay: int(DefaultFrameDelay / (10 * time.Millisecond)),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Capture is called once per tick with the live image. It keeps a frame
// every n calls, starting with the first.
func (a *Animation) Capture(img image.Image) {
	if a.calls%a.every == 0 {
		a.Add(img)
	}
	a.calls++
}

// Add appends a frame unconditionally.
func (a *Animation) Add(img image.Image) {
	a.frames = append(a.frames, a.quantize(img))
	a.delays = append(a.delays, a.delay)
}

// Len returns the number of captured frames.
func (a *Animation) Len() int { return len(a.frames) }

// Reset drops every frame.
func (a *Animation) Reset() {
	a.calls = 0
	a.frames = nil
	a.delays = nil
}

func (a *Animation) quantize(img image.Image) *image.Paletted {
	src := img.Bounds()
	w, h := src.Dx(), src.Dy()
	if a.size > 0 && w > 0 && w != a.size {
		h = max(1, h*a.size/w)
		w = a.size
	}
	r := image.Rect(0, 0, w, h)

	scaled := image.NewRGBA(r)
	xdraw.CatmullRom.Scale(scaled, r, img, src, xdraw.Src, nil)

	out := image.NewPaletted(r, palette.Plan9)
	draw.FloydSteinberg.Draw(out, r, scaled, image.Point{})
	return out
}

// Encode writes the frames as a looping GIF.
func (a *Animation) Encode(w io.Writer) error {
	if len(a.frames) == 0 {
		return ErrNoFrames
	}
	delays := append([]int(nil), a.delays...)
	delays[len(delays)-1] += a.hold

	g := &gif.GIF{
		Image:     a.frames,
		Delay:     delays,
		LoopCount: 0,
	}
	if err := gif.EncodeAll(w, g); err != nil {
		return fmt.Errorf("export: encode gif: %w", err)
	}
	return nil
}

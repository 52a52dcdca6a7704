// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package export writes finished spirographs: PNG images, animated GIFs of
// the drawing and JSON metadata.
package export

import (
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/gogpu/spiro"
	"github.com/gogpu/spiro/internal/blend"
)

// PNGName returns the file name a rendered seed is saved under.
func PNGName(seed int) string {
	return fmt.Sprintf("spirograph_%d.png", seed)
}

// GIFName returns the file name of the drawing animation of a seed.
func GIFName(seed int) string {
	return fmt.Sprintf("Spirograph_%d.gif", seed)
}

// MetadataName returns the file name of the metadata sidecar of a seed.
func MetadataName(seed int) string {
	return fmt.Sprintf("spirograph_%d.json", seed)
}

// WritePNG encodes img as PNG with best compression.
func WritePNG(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(w, img); err != nil {
		return fmt.Errorf("export: encode png: %w", err)
	}
	return nil
}

// Flatten returns a copy of img placed over an opaque background.
func Flatten(img image.Image, background color.Color) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(b)
	draw.Draw(dst, b, img, b.Min, draw.Src)

	bg := image.NewRGBA(b)
	draw.Draw(bg, b, image.NewUniform(background), image.Point{}, draw.Src)
	blend.Image(dst, bg, blend.DestinationOver)
	return dst
}

// WriteMetadata writes md as indented JSON.
func WriteMetadata(w io.Writer, md spiro.Metadata) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(md); err != nil {
		return fmt.Errorf("export: encode metadata: %w", err)
	}
	return nil
}

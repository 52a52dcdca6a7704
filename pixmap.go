package spiro

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"github.com/gogpu/spiro/internal/blend"
	"github.com/gogpu/spiro/internal/raster"
)

// Pixmap represents a square drawing buffer with premultiplied RGBA pixels.
//
// Pixmap implements image.Image and draw.Image, so it can be handed to
// image/png, golang.org/x/image/draw or any other consumer directly.
type Pixmap struct {
	img *image.RGBA
}

// NewPixmap creates a new transparent pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Pixmap{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.img.Rect.Dx()
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.img.Rect.Dy()
}

// Data returns the raw pixel data (premultiplied RGBA).
func (p *Pixmap) Data() []uint8 {
	return p.img.Pix
}

// RGBA returns the backing image. Writes to it are visible in the pixmap.
func (p *Pixmap) RGBA() *image.RGBA {
	return p.img
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c color.Color) {
	draw.Draw(p.img, p.img.Rect, image.NewUniform(c), image.Point{}, draw.Src)
}

// line strokes a segment in pixel coordinates with s.
func (p *Pixmap) line(s *raster.Stroker, x0, y0, x1, y1 float64, c color.Color) {
	s.Line(p.img, x0, y0, x1, y1, c)
}

// Composite blends src over p.
func (p *Pixmap) Composite(src *Pixmap) {
	blend.Image(p.img, src.img, blend.SourceOver)
}

// Clone returns a deep copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	img := image.NewRGBA(p.img.Rect)
	copy(img.Pix, p.img.Pix)
	return &Pixmap{img: img}
}

// IsTransparent reports whether every pixel has zero alpha.
func (p *Pixmap) IsTransparent() bool {
	for i := 3; i < len(p.img.Pix); i += 4 {
		if p.img.Pix[i] != 0 {
			return false
		}
	}
	return true
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(f, p.img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.img.At(x, y)
}

// Set implements the draw.Image interface.
func (p *Pixmap) Set(x, y int, c color.Color) {
	p.img.Set(x, y, c)
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return p.img.Rect
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}

package spiro

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/spiro/internal/raster"
)

// TestPixmapClear tests that Clear fills every pixel.
func TestPixmapClear(t *testing.T) {
	pm := NewPixmap(10, 10)
	if !pm.IsTransparent() {
		t.Fatal("new pixmap should be transparent")
	}

	pm.Clear(color.RGBA{R: 10, G: 20, B: 30, A: 255})
	data := pm.Data()
	for i := 0; i < len(data); i += 4 {
		if data[i] != 10 || data[i+1] != 20 || data[i+2] != 30 || data[i+3] != 255 {
			t.Fatalf("pixel %d = %v, want (10, 20, 30, 255)", i/4, data[i:i+4])
		}
	}
}

// TestNewPixmapMinimumSize verifies degenerate sizes are raised to 1.
func TestNewPixmapMinimumSize(t *testing.T) {
	pm := NewPixmap(0, -5)
	if pm.Width() != 1 || pm.Height() != 1 {
		t.Errorf("size = %dx%d, want 1x1", pm.Width(), pm.Height())
	}
}

func TestPixmapLine(t *testing.T) {
	pm := NewPixmap(20, 20)
	pm.line(raster.NewStroker(2), 2, 10, 18, 10, color.White)

	if got := pm.RGBA().RGBAAt(10, 10); got.A == 0 {
		t.Errorf("pixel on the line is empty: %v", got)
	}
	if got := pm.RGBA().RGBAAt(10, 2); got.A != 0 {
		t.Errorf("pixel off the line is painted: %v", got)
	}
}

// TestPixmapComposite tests source-over compositing of two pixmaps.
func TestPixmapComposite(t *testing.T) {
	dst := NewPixmap(4, 4)
	dst.Clear(color.RGBA{R: 255, A: 255})

	src := NewPixmap(4, 4)
	src.Set(1, 1, color.RGBA{B: 255, A: 255})
	dst.Composite(src)

	if got := dst.RGBA().RGBAAt(1, 1); got != (color.RGBA{B: 255, A: 255}) {
		t.Errorf("covered pixel = %v, want opaque blue", got)
	}
	if got := dst.RGBA().RGBAAt(0, 0); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("uncovered pixel = %v, want opaque red", got)
	}
}

func TestPixmapClone(t *testing.T) {
	pm := NewPixmap(3, 3)
	pm.Set(0, 0, color.White)
	c := pm.Clone()
	pm.Set(0, 0, color.Black)

	if got := c.RGBA().RGBAAt(0, 0); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("clone changed with original: %v", got)
	}
}

func TestPixmapSavePNG(t *testing.T) {
	pm := NewPixmap(8, 6)
	pm.Set(2, 3, color.RGBA{G: 255, A: 255})

	path := filepath.Join(t.TempDir(), "out.png")
	if err := pm.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 6 {
		t.Errorf("bounds = %v, want 8x6", b)
	}
	if _, g, _, a := img.At(2, 3).RGBA(); g != 0xffff || a != 0xffff {
		t.Errorf("pixel = %v, want opaque green", img.At(2, 3))
	}
}

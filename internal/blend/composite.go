package blend

import "image"

// Buffer blends src onto dst pixel by pixel. Both slices hold premultiplied
// RGBA; only the common prefix of whole pixels is processed.
func Buffer(dst, src []byte, mode Mode) {
	n := min(len(dst), len(src)) / 4
	if n == 0 {
		return
	}

	fn := GetFunc(mode)
	for i := 0; i < n*4; i += 4 {
		sa := src[i+3]
		if sa == 0 && mode == SourceOver {
			continue
		}
		dst[i+0], dst[i+1], dst[i+2], dst[i+3] = fn(
			src[i+0], src[i+1], src[i+2], sa,
			dst[i+0], dst[i+1], dst[i+2], dst[i+3],
		)
	}
}

// Image blends src onto dst over the intersection of their bounds.
func Image(dst, src *image.RGBA, mode Mode) {
	r := dst.Bounds().Intersect(src.Bounds())
	if r.Empty() {
		return
	}
	w := r.Dx() * 4
	for y := r.Min.Y; y < r.Max.Y; y++ {
		d := dst.PixOffset(r.Min.X, y)
		s := src.PixOffset(r.Min.X, y)
		Buffer(dst.Pix[d:d+w], src.Pix[s:s+w], mode)
	}
}

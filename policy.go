package spiro

import (
	"fmt"
	"image/color"
	"math"
	"strings"
)

// LayerPolicy decides how segments are spread over layer buffers and which
// colour they are stroked with.
type LayerPolicy interface {
	// Name identifies the policy in metadata and on the command line.
	Name() string
	// Layers returns how many layer buffers plan needs.
	Layers(plan *Plan) int
	// Target returns the layer buffer seg is drawn into.
	Target(plan *Plan, seg Segment) int
	// Color returns the stroke colour of seg.
	Color(plan *Plan, seg Segment) color.NRGBA
}

// MultiBuffer keeps one buffer per palette colour. Each segment is drawn in
// the colour of the layer active when it was produced.
type MultiBuffer struct{}

// Name implements LayerPolicy.
func (MultiBuffer) Name() string { return "multi" }

// Layers implements LayerPolicy.
func (MultiBuffer) Layers(plan *Plan) int { return plan.Layers() }

// Target implements LayerPolicy.
func (MultiBuffer) Target(plan *Plan, seg Segment) int {
	return clampIndex(seg.Layer, plan.Layers())
}

// Color implements LayerPolicy.
func (MultiBuffer) Color(plan *Plan, seg Segment) color.NRGBA {
	return plan.Color(seg.Layer)
}

// ColorLerp draws into a single buffer and sweeps the colour smoothly
// through the palette in Luv space, wrapping from the last colour back to
// the first.
type ColorLerp struct{}

// Name implements LayerPolicy.
func (ColorLerp) Name() string { return "lerp" }

// Layers implements LayerPolicy.
func (ColorLerp) Layers(*Plan) int { return 1 }

// Target implements LayerPolicy.
func (ColorLerp) Target(*Plan, Segment) int { return 0 }

// Color implements LayerPolicy.
func (ColorLerp) Color(plan *Plan, seg Segment) color.NRGBA {
	cs := plan.colorful
	n := len(cs)
	if n == 1 {
		return plan.colors[0]
	}
	u := seg.T1 / plan.spec.MaxT * float64(n)
	i := int(math.Floor(u))
	frac := u - float64(i)
	i = ((i % n) + n) % n
	c := cs[i].BlendLuv(cs[(i+1)%n], frac).Clamped()
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

// ParsePolicy returns the policy registered under name ("multi" or "lerp").
func ParsePolicy(name string) (LayerPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "multi", "multibuffer":
		return MultiBuffer{}, nil
	case "lerp", "colorlerp":
		return ColorLerp{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
}

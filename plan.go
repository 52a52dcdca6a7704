package spiro

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/spiro/curve"
	"github.com/gogpu/spiro/pattern"
)

// Plan is everything a drawing cycle needs that does not change while it
// runs: the pattern, its palette, the fit scale, the layer breakpoints and
// the tick geometry. A Plan is immutable and safe to share.
type Plan struct {
	spec    pattern.Spec
	palette pattern.Palette
	eval    *curve.Evaluator

	size   int
	margin float64
	scale  float64

	breakpoints []float64
	tickStep    float64
	subSteps    int
	totalTicks  int

	colors   []color.NRGBA
	colorful []colorful.Color
}

// NewPlan prepares spec and palette for drawing. It samples the whole curve
// once to compute the fit scale, which is the only expensive step of a cycle.
func NewPlan(spec pattern.Spec, palette pattern.Palette, opts ...Option) *Plan {
	o := buildOptions(opts)
	return newPlan(spec, palette, o)
}

// GeneratePlan is a convenience for NewPlan(pattern.Generate(seed)).
func GeneratePlan(seed int, opts ...Option) *Plan {
	spec, pal := pattern.Generate(seed)
	return NewPlan(spec, pal, opts...)
}

func newPlan(spec pattern.Spec, palette pattern.Palette, o options) *Plan {
	eval := curve.NewEvaluator(spec)
	maxAllowed := curve.MaxAllowedExtent(float64(o.canvasSize), o.margin)

	p := &Plan{
		spec:        spec,
		palette:     palette,
		eval:        eval,
		size:        o.canvasSize,
		margin:      o.margin,
		scale:       eval.FitScale(maxAllowed),
		breakpoints: Breakpoints(spec.MaxT, palette.Len()),
		tickStep:    o.tickStep,
		subSteps:    o.subSteps,
		totalTicks:  TicksToComplete(spec.MaxT, o.tickStep, o.subSteps),
		colors:      palette.NRGBA(),
		colorful:    palette.Colorful(),
	}
	if len(p.colors) == 0 {
		p.colors = []color.NRGBA{{R: 0xff, G: 0xff, B: 0xff, A: 0xff}}
		p.colorful = []colorful.Color{{R: 1, G: 1, B: 1}}
	}
	return p
}

// Breakpoints divides [0, maxT] into n equal ranges and returns their upper
// ends. The last entry is maxT itself. n below 1 is treated as 1.
func Breakpoints(maxT float64, n int) []float64 {
	if n < 1 {
		n = 1
	}
	bp := make([]float64, n)
	for i := 0; i < n-1; i++ {
		bp[i] = float64(i+1) / float64(n) * maxT
	}
	bp[n-1] = maxT
	return bp
}

// TicksToComplete returns how many ticks of subSteps steps it takes for the
// curve position to reach maxT.
func TicksToComplete(maxT, tickStep float64, subSteps int) int {
	if tickStep <= 0 || subSteps < 1 || maxT <= 0 {
		return 1
	}
	return int(math.Ceil(maxT / (tickStep * float64(subSteps))))
}

// Spec returns the pattern being drawn.
func (p *Plan) Spec() pattern.Spec { return p.spec }

// Palette returns the palette being drawn with.
func (p *Plan) Palette() pattern.Palette { return p.palette }

// Evaluator returns the curve evaluator of the pattern.
func (p *Plan) Evaluator() *curve.Evaluator { return p.eval }

// Size returns the canvas size in pixels.
func (p *Plan) Size() int { return p.size }

// Scale returns the factor applied to every curve point.
func (p *Plan) Scale() float64 { return p.scale }

// Breakpoints returns a copy of the layer breakpoints.
func (p *Plan) Breakpoints() []float64 {
	return append([]float64(nil), p.breakpoints...)
}

// Layers returns the number of palette layers.
func (p *Plan) Layers() int { return len(p.breakpoints) }

// TickStep returns the curve-position step of one sub-step.
func (p *Plan) TickStep() float64 { return p.tickStep }

// SubSteps returns the number of sub-steps per tick.
func (p *Plan) SubSteps() int { return p.subSteps }

// TotalTicks returns the number of ticks a cycle takes.
func (p *Plan) TotalTicks() int { return p.totalTicks }

// Color returns palette colour i, clamped to the last colour.
func (p *Plan) Color(i int) color.NRGBA {
	return p.colors[clampIndex(i, len(p.colors))]
}

// Point returns the scaled, unrotated curve point at t.
func (p *Plan) Point(t float64) curve.Point {
	return p.eval.Position(t).Mul(p.scale)
}

// Rotation returns the drawing rotation at t: one full turn over the cycle.
func (p *Plan) Rotation(t float64) float64 {
	return t / p.spec.MaxT * 2 * math.Pi
}

// LayerAt advances layer past every breakpoint t has reached. The result
// never exceeds the last layer.
func (p *Plan) LayerAt(layer int, t float64) int {
	last := len(p.breakpoints) - 1
	layer = clampIndex(layer, len(p.breakpoints))
	for layer < last && t >= p.breakpoints[layer] {
		layer++
	}
	return layer
}

func clampIndex(i, n int) int {
	if i < 0 || n == 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

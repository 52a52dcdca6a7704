package spiro

import (
	"image/color"
	"math/rand/v2"

	"github.com/gogpu/spiro/pattern"
)

// Defaults for the drawing geometry and clock.
const (
	DefaultCanvasSize  = 600
	DefaultMargin      = 50.0
	DefaultTickStep    = 0.015
	DefaultSubSteps    = 2
	DefaultStrokeWidth = 1.0
	DefaultFrameRate   = 60
	DefaultCacheSize   = 64
)

// Option configures a Plan, Compositor or Renderer.
// Options that do not apply to the value being built are ignored.
//
// Example:
//
//	r := spiro.New(
//	    spiro.WithPolicy(spiro.ColorLerp{}),
//	    spiro.OnRenderComplete(func(img *spiro.Pixmap, md spiro.Metadata) {
//	        _ = img.SavePNG(fmt.Sprintf("spirograph_%d.png", md.Seed))
//	    }),
//	)
type Option func(*options)

// options holds the configuration shared by NewPlan, NewCompositor and New.
type options struct {
	canvasSize  int
	margin      float64
	tickStep    float64
	subSteps    int
	strokeWidth float64
	background  color.Color
	policy      LayerPolicy
	frameRate   int
	cacheSize   int

	rng        *rand.Rand
	seedSource func() (int, bool)
	allocator  SeedAllocator

	onSeedChosen       func(seed int)
	onPatternGenerated func(spec pattern.Spec)
	onPaletteChosen    func(p pattern.Palette)
	onRenderComplete   func(img *Pixmap, md Metadata)
}

// defaultOptions returns the default options.
func defaultOptions() options {
	return options{
		canvasSize:  DefaultCanvasSize,
		margin:      DefaultMargin,
		tickStep:    DefaultTickStep,
		subSteps:    DefaultSubSteps,
		strokeWidth: DefaultStrokeWidth,
		background:  color.Black,
		policy:      MultiBuffer{},
		frameRate:   DefaultFrameRate,
		cacheSize:   DefaultCacheSize,
	}
}

// buildOptions applies opts over the defaults and replaces out-of-range
// values with defaults.
func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	o.sanitize()
	return o
}

func (o *options) sanitize() {
	d := defaultOptions()
	if o.canvasSize <= 0 {
		Logger().Warn("spiro: invalid canvas size, using default", "size", o.canvasSize)
		o.canvasSize = d.canvasSize
	}
	if o.margin < 0 || o.margin >= float64(o.canvasSize)/2 {
		Logger().Warn("spiro: invalid margin, using none", "margin", o.margin)
		o.margin = 0
	}
	if o.tickStep <= 0 {
		o.tickStep = d.tickStep
	}
	if o.subSteps < 1 {
		o.subSteps = 1
	}
	if o.strokeWidth <= 0 {
		o.strokeWidth = d.strokeWidth
	}
	if o.background == nil {
		o.background = color.Transparent
	}
	if o.policy == nil {
		o.policy = d.policy
	}
	if o.frameRate <= 0 {
		o.frameRate = d.frameRate
	}
}

// WithCanvas sets the square canvas size in pixels and the margin kept free
// on every side. Patterns are scaled to fit inside size/2 - margin.
func WithCanvas(size int, margin float64) Option {
	return func(o *options) {
		o.canvasSize = size
		o.margin = margin
	}
}

// WithTickStep sets how far the curve position advances per sub-step.
func WithTickStep(step float64) Option {
	return func(o *options) {
		o.tickStep = step
	}
}

// WithSubSteps sets how many segments are drawn per tick.
func WithSubSteps(n int) Option {
	return func(o *options) {
		o.subSteps = n
	}
}

// WithStrokeWidth sets the line width in pixels.
func WithStrokeWidth(w float64) Option {
	return func(o *options) {
		o.strokeWidth = w
	}
}

// WithBackground sets the background of the live preview buffer.
// The final composite is always transparent.
func WithBackground(c color.Color) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithPolicy selects how segments are distributed over layer buffers.
func WithPolicy(p LayerPolicy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// WithFrameRate sets the tick rate used by Renderer.Run.
func WithFrameRate(fps int) Option {
	return func(o *options) {
		o.frameRate = fps
	}
}

// WithCacheSize sets how many prepared plans the Renderer keeps.
// Zero or less disables the limit.
func WithCacheSize(n int) Option {
	return func(o *options) {
		o.cacheSize = n
	}
}

// WithRand sets the random source used to pick seeds when neither a seed
// source nor an allocator supplies one.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		o.rng = r
	}
}

// WithSeedSource installs a seed override consulted first by Regenerate.
// The function returns false when it has no seed to offer.
func WithSeedSource(src func() (int, bool)) Option {
	return func(o *options) {
		o.seedSource = src
	}
}

// WithAllocator injects the seed bookkeeping capability. If the allocator
// also implements SeedFinder, Regenerate draws available seeds from it.
func WithAllocator(a SeedAllocator) Option {
	return func(o *options) {
		o.allocator = a
	}
}

// OnSeedChosen registers a callback fired when a cycle starts for a seed.
func OnSeedChosen(fn func(seed int)) Option {
	return func(o *options) {
		o.onSeedChosen = fn
	}
}

// OnPatternGenerated registers a callback fired with the generated Spec.
func OnPatternGenerated(fn func(spec pattern.Spec)) Option {
	return func(o *options) {
		o.onPatternGenerated = fn
	}
}

// OnPaletteChosen registers a callback fired with the chosen palette.
func OnPaletteChosen(fn func(p pattern.Palette)) Option {
	return func(o *options) {
		o.onPaletteChosen = fn
	}
}

// OnRenderComplete registers a callback fired once per cycle with the
// final transparent composite.
func OnRenderComplete(fn func(img *Pixmap, md Metadata)) Option {
	return func(o *options) {
		o.onRenderComplete = fn
	}
}

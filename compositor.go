package spiro

import (
	"image/color"

	"github.com/gogpu/spiro/internal/raster"
)

// Compositor owns the pixel buffers of one drawing cycle and advances them
// tick by tick. It is not safe for concurrent use.
//
// The main buffer is the live preview: it starts filled with the background
// colour and receives every segment. Layer buffers start transparent and
// receive only the segments the policy routes to them. When the cycle
// completes, the layers are merged in order into the final composite.
type Compositor struct {
	opts    options
	policy  LayerPolicy
	stroker *raster.Stroker

	plan   *Plan
	state  State
	main   *Pixmap
	layers []*Pixmap
	final  *Pixmap

	segments int
}

// NewCompositor creates an idle compositor.
func NewCompositor(opts ...Option) *Compositor {
	o := buildOptions(opts)
	return newCompositor(o)
}

func newCompositor(o options) *Compositor {
	return &Compositor{
		opts:    o,
		policy:  o.policy,
		stroker: raster.NewStroker(o.strokeWidth),
	}
}

// Reset starts a new cycle for plan. Buffers from a previous cycle are
// dropped, so pixmaps handed out earlier keep their contents.
func (c *Compositor) Reset(plan *Plan) {
	size := plan.Size()
	c.plan = plan
	c.state = plan.Start()
	c.segments = 0
	c.final = nil

	c.main = NewPixmap(size, size)
	c.main.Clear(c.opts.background)

	n := c.policy.Layers(plan)
	if n < 1 {
		n = 1
	}
	c.layers = make([]*Pixmap, n)
	for i := range c.layers {
		c.layers[i] = NewPixmap(size, size)
	}
}

// Tick advances the cycle by one tick. It reports true only for the tick
// that completes the cycle; ticks on an idle or completed compositor do
// nothing.
func (c *Compositor) Tick() bool {
	if c.state.Phase != PhaseDrawing {
		return false
	}

	next, segs := c.plan.Advance(c.state)
	half := float64(c.plan.Size()) / 2
	for _, seg := range segs {
		col := c.policy.Color(c.plan, seg)
		target := clampIndex(c.policy.Target(c.plan, seg), len(c.layers))
		c.stroke(c.main, seg, half, col)
		c.stroke(c.layers[target], seg, half, col)
	}
	c.segments += len(segs)
	c.state = next

	if next.Phase != PhaseComplete {
		return false
	}
	c.final = NewPixmap(c.plan.Size(), c.plan.Size())
	for _, l := range c.layers {
		c.final.Composite(l)
	}
	return true
}

func (c *Compositor) stroke(dst *Pixmap, seg Segment, half float64, col color.NRGBA) {
	dst.line(c.stroker, seg.From.X+half, seg.From.Y+half, seg.To.X+half, seg.To.Y+half, col)
}

// Plan returns the plan being drawn, or nil before the first Reset.
func (c *Compositor) Plan() *Plan { return c.plan }

// State returns the current cycle state.
func (c *Compositor) State() State { return c.state }

// Phase returns the current lifecycle phase.
func (c *Compositor) Phase() Phase { return c.state.Phase }

// Policy returns the layer policy in use.
func (c *Compositor) Policy() LayerPolicy { return c.policy }

// Segments returns the number of segments drawn in this cycle.
func (c *Compositor) Segments() int { return c.segments }

// Preview returns the live main buffer. It is mutated by later ticks.
func (c *Compositor) Preview() *Pixmap { return c.main }

// Layers returns the layer buffers in draw order.
func (c *Compositor) Layers() []*Pixmap {
	return append([]*Pixmap(nil), c.layers...)
}

// Final returns the transparent merge of all layers, or nil until the
// cycle is complete.
func (c *Compositor) Final() *Pixmap { return c.final }

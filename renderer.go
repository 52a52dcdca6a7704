package spiro

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/gogpu/spiro/internal/cache"
	"github.com/gogpu/spiro/internal/parallel"
	"github.com/gogpu/spiro/pattern"
)

// SeedAllocator tracks which seeds of the collection are taken.
// Implementations live outside this package; see package alloc.
type SeedAllocator interface {
	IsAvailable(seed int) bool
	Reserve(seed int) error
	Count() int
}

// SeedFinder is implemented by allocators that can search for a free seed.
// FindAvailable returns false when the collection is full.
type SeedFinder interface {
	FindAvailable() (int, bool)
}

// planKey identifies a prepared plan. Everything that changes the
// sampled geometry is part of the key.
type planKey struct {
	seed     int
	size     int
	margin   float64
	tickStep float64
	subSteps int
}

// Renderer drives generation cycles: it picks a seed, generates the
// pattern, draws it incrementally and reports the finished image.
//
// A Renderer is not safe for concurrent use. Run drives it from a single
// goroutine; callers that also react to input should funnel that input into
// the same goroutine.
type Renderer struct {
	opts  options
	comp  *Compositor
	plans *cache.Cache[planKey, *Plan]
	seed  int

	completed bool
	metadata  Metadata
}

// New creates an idle Renderer. Call Regenerate or SetSeed to start a cycle.
func New(opts ...Option) *Renderer {
	o := buildOptions(opts)
	return &Renderer{
		opts:  o,
		comp:  newCompositor(o),
		plans: cache.New[planKey, *Plan](o.cacheSize),
	}
}

// Regenerate starts a cycle for a newly chosen seed and returns it.
//
// The seed comes from the seed source if one is installed and offers a seed.
// Otherwise, if the allocator can search for free seeds, it is asked for
// one; ErrNoSeedAvailable is returned when the collection is full. As a
// last resort the seed is drawn uniformly from [pattern.MinSeed,
// pattern.MaxSeed].
func (r *Renderer) Regenerate() (int, error) {
	seed, err := r.chooseSeed()
	if err != nil {
		return 0, err
	}
	r.SetSeed(seed)
	return seed, nil
}

func (r *Renderer) chooseSeed() (int, error) {
	if r.opts.seedSource != nil {
		if seed, ok := r.opts.seedSource(); ok {
			return seed, nil
		}
	}
	if f, ok := r.opts.allocator.(SeedFinder); ok {
		seed, ok := f.FindAvailable()
		if !ok {
			return 0, ErrNoSeedAvailable
		}
		return seed, nil
	}
	n := pattern.MaxSeed - pattern.MinSeed + 1
	if r.opts.rng != nil {
		return pattern.MinSeed + r.opts.rng.IntN(n), nil
	}
	return pattern.MinSeed + rand.IntN(n), nil //nolint:gosec // not security sensitive
}

// SetSeed starts a cycle for seed, dropping any cycle in progress.
func (r *Renderer) SetSeed(seed int) {
	o := r.opts
	plan := r.plans.GetOrCreate(r.planKey(seed), func() *Plan {
		return r.buildPlan(seed)
	})

	r.seed = seed
	r.completed = false
	r.metadata = Metadata{}
	r.comp.Reset(plan)

	spec, pal := plan.Spec(), plan.Palette()
	Logger().Debug("spiro: pattern generated",
		"seed", seed,
		"family", spec.Family,
		"rarity", spec.Rarity,
		"palette", pal.Name,
		"maxT", spec.MaxT,
		"scale", plan.Scale(),
		"ticks", plan.TotalTicks())

	if o.onSeedChosen != nil {
		o.onSeedChosen(seed)
	}
	if o.onPatternGenerated != nil {
		o.onPatternGenerated(spec)
	}
	if o.onPaletteChosen != nil {
		o.onPaletteChosen(pal)
	}
}

func (r *Renderer) planKey(seed int) planKey {
	return planKey{
		seed:     seed,
		size:     r.opts.canvasSize,
		margin:   r.opts.margin,
		tickStep: r.opts.tickStep,
		subSteps: r.opts.subSteps,
	}
}

func (r *Renderer) buildPlan(seed int) *Plan {
	spec, pal := pattern.Generate(seed)
	return newPlan(spec, pal, r.opts)
}

// Prefetch prepares the plans of seeds on a worker pool and caches them,
// so that a later SetSeed for one of them starts drawing at once. It
// returns when every plan is ready.
func (r *Renderer) Prefetch(seeds ...int) {
	missing := make([]int, 0, len(seeds))
	for _, seed := range seeds {
		if _, ok := r.plans.Get(r.planKey(seed)); !ok {
			missing = append(missing, seed)
		}
	}
	if len(missing) == 0 {
		return
	}

	plans := make([]*Plan, len(missing))
	pool := parallel.NewWorkerPool(0)
	defer pool.Close()
	pool.ForEach(len(missing), func(i int) {
		plans[i] = r.buildPlan(missing[i])
	})
	for i, seed := range missing {
		r.plans.Set(r.planKey(seed), plans[i])
	}
	Logger().Debug("spiro: plans prefetched", "count", len(missing))
}

// Tick advances the current cycle by one tick and reports whether this tick
// completed it. OnRenderComplete fires from the completing tick.
func (r *Renderer) Tick() bool {
	if !r.comp.Tick() {
		return false
	}
	r.completed = true
	r.metadata = newMetadata(r.comp)
	Logger().Info("spiro: render complete",
		"seed", r.seed,
		"family", r.metadata.Family,
		"segments", r.metadata.Segments)
	if r.opts.onRenderComplete != nil {
		r.opts.onRenderComplete(r.comp.Final(), r.metadata)
	}
	return true
}

// Run ticks at the configured frame rate until the cycle completes or ctx is
// done. An idle Renderer regenerates first.
func (r *Renderer) Run(ctx context.Context) error {
	if r.comp.Phase() == PhaseIdle {
		if _, err := r.Regenerate(); err != nil {
			return err
		}
	}
	if r.comp.Phase() == PhaseComplete {
		return nil
	}

	ticker := time.NewTicker(time.Second / time.Duration(r.opts.frameRate))
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if r.Tick() {
				return nil
			}
		}
	}
}

// Finish ticks the current cycle to completion without waiting and returns
// the final composite. It returns nil when no cycle was started.
func (r *Renderer) Finish() *Pixmap {
	for r.comp.Phase() == PhaseDrawing {
		r.Tick()
	}
	return r.comp.Final()
}

// Seed returns the seed of the current cycle.
func (r *Renderer) Seed() int { return r.seed }

// State returns the state of the current cycle.
func (r *Renderer) State() State { return r.comp.State() }

// Plan returns the plan of the current cycle, or nil when idle.
func (r *Renderer) Plan() *Plan { return r.comp.Plan() }

// Preview returns the live main buffer of the current cycle.
func (r *Renderer) Preview() *Pixmap { return r.comp.Preview() }

// Final returns the final composite, or nil while drawing.
func (r *Renderer) Final() *Pixmap { return r.comp.Final() }

// Layers returns the layer buffers of the current cycle.
func (r *Renderer) Layers() []*Pixmap { return r.comp.Layers() }

// Metadata returns the metadata of the last completed cycle.
// The zero value is returned while drawing.
func (r *Renderer) Metadata() Metadata { return r.metadata }

// Mint reserves the seed of the completed cycle with the allocator and
// returns its metadata.
func (r *Renderer) Mint(ctx context.Context) (Metadata, error) {
	if err := ctx.Err(); err != nil {
		return Metadata{}, err
	}
	if !r.completed {
		return Metadata{}, ErrNotComplete
	}
	a := r.opts.allocator
	if a == nil {
		return Metadata{}, ErrNoAllocator
	}
	if !a.IsAvailable(r.seed) {
		return Metadata{}, fmt.Errorf("%w: %d", ErrSeedTaken, r.seed)
	}
	if err := a.Reserve(r.seed); err != nil {
		return Metadata{}, fmt.Errorf("spiro: mint seed %d: %w", r.seed, err)
	}
	Logger().Info("spiro: seed minted", "seed", r.seed, "minted", a.Count())
	return r.metadata, nil
}

// Package curve evaluates spirograph curves and sizes them for a canvas.
//
// An Evaluator maps a curve position t onto a point for one pattern.Spec.
// Points are centred on the origin in an unscaled coordinate space; the
// Extent and ScaleFactor helpers compute the uniform scale that fits a
// pattern inside a square canvas with a margin.
//
// OrganicFlow patterns read a smooth noise field. The field is seeded with
// the pattern seed, so a seed always reproduces the same curve and two seeds
// never share a field.
package curve

import (
	"math"

	"github.com/ojrac/opensimplex-go"

	"github.com/gogpu/spiro/pattern"
)

// Formula constants shared by the families.
const (
	RoseRadius   = 250.0
	FlowRadius   = 150.0
	WobbleRadius = 20.0
)

// Evaluator computes curve points for one Spec. It is immutable after
// construction and safe for concurrent use.
type Evaluator struct {
	spec  pattern.Spec
	noise opensimplex.Noise
}

// NewEvaluator returns an Evaluator for spec.
func NewEvaluator(spec pattern.Spec) *Evaluator {
	e := &Evaluator{spec: spec}
	if spec.Family == pattern.OrganicFlow {
		e.noise = opensimplex.NewNormalized(int64(spec.Seed))
	}
	return e
}

// Position is a convenience for NewEvaluator(spec).Position(t). Prefer an
// Evaluator when sampling many points of an OrganicFlow pattern.
func Position(spec pattern.Spec, t float64) Point {
	return NewEvaluator(spec).Position(t)
}

// Spec returns the pattern the evaluator was built for.
func (e *Evaluator) Spec() pattern.Spec {
	return e.spec
}

// Position returns the curve point at position t.
func (e *Evaluator) Position(t float64) Point {
	p := e.spec.Params
	switch e.spec.Family {
	case pattern.Rose:
		r := RoseRadius * math.Cos(float64(p.K)*t)
		return Point{X: r * math.Cos(t), Y: r * math.Sin(t)}

	case pattern.Epitrochoid:
		sum := p.FixedRadius + p.RollingRadius
		k := sum / p.RollingRadius
		return Point{
			X: sum*math.Cos(t) - p.Offset*math.Cos(k*t),
			Y: sum*math.Sin(t) - p.Offset*math.Sin(k*t),
		}

	case pattern.Hypotrochoid:
		diff := p.FixedRadius - p.RollingRadius
		k := diff / p.RollingRadius
		return Point{
			X: diff*math.Cos(t) + p.Offset*math.Cos(k*t),
			Y: diff*math.Sin(t) - p.Offset*math.Sin(k*t),
		}

	case pattern.Lissajous:
		return Point{
			X: p.AmpX * math.Sin(float64(p.FreqX)*t+p.Phase),
			Y: p.AmpY * math.Sin(float64(p.FreqY)*t),
		}

	case pattern.OrganicFlow:
		return e.organic(t)
	}
	return Point{}
}

func (e *Evaluator) organic(t float64) Point {
	p := e.spec.Params
	z := t * p.Speed

	r := FlowRadius
	for i := 0; i < p.Waves; i++ {
		fi := float64(i)
		n := e.noise.Eval3(math.Cos(t+fi)*p.NoiseScale, math.Sin(t+fi)*p.NoiseScale, z)
		r += math.Sin(t*(fi+1)*p.Complexity) * p.Amplitude * n
	}

	return Point{
		X: r*math.Cos(t) + math.Sin(3.5*t)*WobbleRadius*e.noise.Eval2(2*z, 0),
		Y: r*math.Sin(t) + math.Cos(2.7*t)*WobbleRadius*e.noise.Eval2(0, 2*z),
	}
}

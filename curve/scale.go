package curve

import "math"

// SampleStep is the curve-position step used to measure a pattern.
const SampleStep = 0.1

// Extent is the largest absolute coordinate reached on each axis.
type Extent struct {
	MaxX, MaxY float64
}

// Max returns the larger of the two axes.
func (e Extent) Max() float64 {
	return math.Max(e.MaxX, e.MaxY)
}

// Extent samples the curve over [0, maxT) every step and records the largest
// absolute coordinates. A non-positive step falls back to SampleStep.
func (e *Evaluator) Extent(maxT, step float64) Extent {
	if step <= 0 {
		step = SampleStep
	}
	var ext Extent
	n := int(math.Ceil(maxT / step))
	for i := 0; i < n; i++ {
		p := e.Position(float64(i) * step)
		ext.MaxX = math.Max(ext.MaxX, math.Abs(p.X))
		ext.MaxY = math.Max(ext.MaxY, math.Abs(p.Y))
	}
	return ext
}

// MaxAllowedExtent returns the largest coordinate a pattern may reach on a
// square canvas of the given size with margin on every side.
func MaxAllowedExtent(size, margin float64) float64 {
	return size/2 - margin
}

// ScaleFactor returns the uniform scale that shrinks ext into maxAllowed.
// Patterns that already fit are never enlarged.
func ScaleFactor(ext Extent, maxAllowed float64) float64 {
	m := ext.Max()
	if m > maxAllowed && m > 0 {
		return maxAllowed / m
	}
	return 1.0
}

// FitScale measures the evaluator's pattern over its MaxT and returns the
// scale factor for maxAllowed.
func (e *Evaluator) FitScale(maxAllowed float64) float64 {
	return ScaleFactor(e.Extent(e.spec.MaxT, SampleStep), maxAllowed)
}

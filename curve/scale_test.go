package curve

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gogpu/spiro/pattern"
)

func TestMaxAllowedExtent(t *testing.T) {
	assert.Equal(t, 250.0, MaxAllowedExtent(600, 50))
	assert.Equal(t, 100.0, MaxAllowedExtent(300, 50))
}

func TestScaleFactor(t *testing.T) {
	tests := []struct {
		name string
		ext  Extent
		want float64
	}{
		{"fits", Extent{MaxX: 100, MaxY: 200}, 1},
		{"exact", Extent{MaxX: 250, MaxY: 10}, 1},
		{"wide", Extent{MaxX: 500, MaxY: 100}, 0.5},
		{"tall", Extent{MaxX: 100, MaxY: 1000}, 0.25},
		{"empty", Extent{}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ScaleFactor(tt.ext, 250), eps)
		})
	}
}

func TestExtentRose(t *testing.T) {
	spec := pattern.NewSpec(1, pattern.Rose, pattern.Params{K: 4})
	ext := NewEvaluator(spec).Extent(spec.MaxT, SampleStep)
	assert.InDelta(t, 250, ext.MaxX, eps)
	assert.LessOrEqual(t, ext.MaxY, 250.0)
	assert.Equal(t, 1.0, NewEvaluator(spec).FitScale(250))
}

func TestScaleContainment(t *testing.T) {
	const maxAllowed = 250.0
	for seed := pattern.MinSeed; seed <= pattern.MaxSeed; seed += 5 {
		spec, _ := pattern.Generate(seed)
		ev := NewEvaluator(spec)
		scale := ev.FitScale(maxAllowed)
		assert.LessOrEqual(t, scale, 1.0)

		n := int(math.Ceil(spec.MaxT / SampleStep))
		for i := 0; i < n; i++ {
			p := ev.Position(float64(i) * SampleStep).Mul(scale)
			if math.Abs(p.X) > maxAllowed+eps || math.Abs(p.Y) > maxAllowed+eps {
				t.Fatalf("seed %d (%v): point %v escapes ±%v at scale %v", seed, spec.Family, p, maxAllowed, scale)
			}
		}
	}
}

func TestPointRotate(t *testing.T) {
	p := Pt(1, 0).Rotate(math.Pi / 2)
	assert.InDelta(t, 0, p.X, eps)
	assert.InDelta(t, 1, p.Y, eps)
	assert.InDelta(t, 5, pointLen(Pt(3, 4).Rotate(1.234)), eps)
}

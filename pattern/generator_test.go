package pattern

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDeterministic(t *testing.T) {
	for seed := MinSeed; seed <= MaxSeed; seed += 7 {
		s1, p1 := Generate(seed)
		s2, p2 := Generate(seed)
		require.Equal(t, s1, s2, "seed %d", seed)
		require.Equal(t, p1, p2, "seed %d", seed)
	}
}

func TestGenerateReturnsPaletteCopy(t *testing.T) {
	_, p := Generate(1)
	p.Colors[0] = "#000000"

	_, again := Generate(1)
	assert.NotEqual(t, "#000000", again.Colors[0])
}

func TestGenerateRarityDistribution(t *testing.T) {
	const n = 100000
	var families [5]int
	var pals [5]int
	for seed := 1; seed <= n; seed++ {
		spec, pal := Generate(seed)
		families[spec.Family]++
		pals[pal.Rarity]++
	}

	for r := Common; r <= Legendary; r++ {
		want := r.Weight()
		gotFamily := 100 * float64(families[r]) / n
		gotPalette := 100 * float64(pals[r]) / n
		assert.InDelta(t, want, gotFamily, 1.0, "family share of %v", Family(r))
		assert.InDelta(t, want, gotPalette, 1.0, "palette share of %v", r)
	}
}

func TestGenerateFamilyAndPaletteIndependent(t *testing.T) {
	// Rose patterns should still see every palette.
	seen := map[string]bool{}
	for seed := MinSeed; seed <= MaxSeed; seed++ {
		spec, pal := Generate(seed)
		if spec.Family == Rose {
			seen[pal.Name] = true
		}
	}
	assert.Len(t, seen, len(palettes))
}

func TestGenerateParamRanges(t *testing.T) {
	seen := map[Family]int{}
	for seed := MinSeed; seed <= MaxSeed; seed++ {
		spec, _ := Generate(seed)
		p := spec.Params
		seen[spec.Family]++
		assert.Equal(t, spec.Family.Rarity(), spec.Rarity)

		switch spec.Family {
		case Rose:
			assert.GreaterOrEqual(t, p.K, 4)
			assert.LessOrEqual(t, p.K, 8)
		case Epitrochoid:
			inRange(t, p.FixedRadius, 200, 300)
			inRange(t, p.RollingRadius, 20, 60)
			inRange(t, p.Offset, 80, 160)
		case Hypotrochoid:
			inRange(t, p.FixedRadius, 250, 400)
			inRange(t, p.RollingRadius, 20, 60)
			inRange(t, p.Offset, 100, 180)
		case OrganicFlow:
			inRange(t, p.Complexity, 0.5, 2.5)
			inRange(t, p.Speed, 0.01, 0.05)
			assert.GreaterOrEqual(t, p.Waves, 3)
			assert.LessOrEqual(t, p.Waves, 6)
			inRange(t, p.Amplitude, 100, 250)
			inRange(t, p.NoiseScale, 0.005, 0.02)
		case Lissajous:
			inRange(t, p.AmpX, 200, 350)
			inRange(t, p.AmpY, 200, 350)
			assert.GreaterOrEqual(t, p.FreqX, 3)
			assert.LessOrEqual(t, p.FreqX, 6)
			assert.GreaterOrEqual(t, p.FreqY, 3)
			assert.LessOrEqual(t, p.FreqY, 6)
			inRange(t, p.Phase, 0, math.Pi)
		}

		assert.GreaterOrEqual(t, spec.MaxT, MinMaxT, "seed %d", seed)
	}
	for _, f := range Families {
		assert.Positive(t, seen[f], "no seed produced %v", f)
	}
}

func TestIntBetweenCoversBounds(t *testing.T) {
	s := newStream(99)
	hits := map[int]bool{}
	for i := 0; i < 2000; i++ {
		v := s.intBetween(3, 6)
		require.GreaterOrEqual(t, v, 3)
		require.LessOrEqual(t, v, 6)
		hits[v] = true
	}
	assert.Len(t, hits, 4)
}

func TestValidSeed(t *testing.T) {
	tests := []struct {
		seed int
		want bool
	}{
		{0, false},
		{-3, false},
		{1, true},
		{5000, true},
		{10000, true},
		{10001, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidSeed(tt.seed), "ValidSeed(%d)", tt.seed)
	}
}

func inRange(t *testing.T, v, lo, hi float64) {
	t.Helper()
	assert.GreaterOrEqual(t, v, lo)
	assert.Less(t, v, hi)
}

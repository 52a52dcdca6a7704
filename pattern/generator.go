package pattern

import (
	"encoding/binary"
	"math"
	"math/rand/v2"
)

// Seed domain of the collection.
const (
	MinSeed = 1
	MaxSeed = 10000
)

// ValidSeed reports whether seed lies in [MinSeed, MaxSeed].
func ValidSeed(seed int) bool {
	return seed >= MinSeed && seed <= MaxSeed
}

// stream is the seeded pseudo-random sequence behind Generate.
type stream struct {
	rng *rand.Rand
}

// newStream keys a ChaCha8 generator with the little-endian seed, which
// gives the same sequence on every platform and Go release.
func newStream(seed int) *stream {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], uint64(int64(seed)))
	return &stream{rng: rand.New(rand.NewChaCha8(key))}
}

// between returns a uniform real in [lo, hi).
func (s *stream) between(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// intBetween returns a uniform integer in [lo, hi].
func (s *stream) intBetween(lo, hi int) int {
	return int(math.Floor(s.between(float64(lo), float64(hi+1))))
}

// roll returns a uniform real in [0, 100).
func (s *stream) roll() float64 {
	return s.between(0, 100)
}

// Generate derives the pattern and palette of a seed. The draw order is
// fixed: family roll, the family's parameters, then the palette roll.
func Generate(seed int) (Spec, Palette) {
	s := newStream(seed)

	family := familyForRoll(s.roll())
	params := drawParams(s, family)
	palette := PaletteFor(rarityForRoll(s.roll()))

	return NewSpec(seed, family, params), palette
}

func drawParams(s *stream, family Family) Params {
	var p Params
	switch family {
	case Rose:
		p.K = s.intBetween(4, 8)
	case Epitrochoid:
		p.FixedRadius = s.between(200, 300)
		p.RollingRadius = s.between(20, 60)
		p.Offset = s.between(80, 160)
	case Hypotrochoid:
		p.FixedRadius = s.between(250, 400)
		p.RollingRadius = s.between(20, 60)
		p.Offset = s.between(100, 180)
	case OrganicFlow:
		p.Complexity = s.between(0.5, 2.5)
		p.Speed = s.between(0.01, 0.05)
		p.Waves = s.intBetween(3, 6)
		p.Amplitude = s.between(100, 250)
		p.NoiseScale = s.between(0.005, 0.02)
	case Lissajous:
		p.AmpX = s.between(200, 350)
		p.AmpY = s.between(200, 350)
		p.FreqX = s.intBetween(3, 6)
		p.FreqY = s.intBetween(3, 6)
		p.Phase = s.between(0, math.Pi)
	}
	return p
}

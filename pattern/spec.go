package pattern

import "math"

// MinMaxT is the shortest curve-position range any pattern is drawn over:
// ten full revolutions.
const MinMaxT = 2 * math.Pi * 10

// Params holds the numeric parameters of a pattern. Only the fields of the
// pattern's family are meaningful; the rest stay zero.
type Params struct {
	// Rose
	K int `json:"k,omitempty"`

	// Epitrochoid and Hypotrochoid
	FixedRadius   float64 `json:"R,omitempty"`
	RollingRadius float64 `json:"r,omitempty"`
	Offset        float64 `json:"d,omitempty"`

	// OrganicFlow
	Complexity float64 `json:"complexity,omitempty"`
	Speed      float64 `json:"speed,omitempty"`
	Waves      int     `json:"waves,omitempty"`
	Amplitude  float64 `json:"amplitude,omitempty"`
	NoiseScale float64 `json:"noiseScale,omitempty"`

	// Lissajous
	AmpX  float64 `json:"A,omitempty"`
	AmpY  float64 `json:"B,omitempty"`
	FreqX int     `json:"a,omitempty"`
	FreqY int     `json:"b,omitempty"`
	Phase float64 `json:"delta,omitempty"`
}

// Spec is the immutable description of one seed's curve.
type Spec struct {
	Seed   int     `json:"seed"`
	Family Family  `json:"family"`
	Params Params  `json:"params"`
	MaxT   float64 `json:"maxT"`
	Rarity Rarity  `json:"rarity"`
}

// NewSpec builds a Spec for the given family and parameters, computing
// MaxT from the family period. It is how Generate assembles its result and
// lets callers construct patterns by hand.
func NewSpec(seed int, family Family, params Params) Spec {
	return Spec{
		Seed:   seed,
		Family: family,
		Params: params,
		MaxT:   MaxT(family, params),
		Rarity: family.Rarity(),
	}
}

// BaseMaxT returns the family's natural period before the MinMaxT floor.
func BaseMaxT(family Family, p Params) float64 {
	switch family {
	case Rose:
		if p.K%2 == 0 {
			return 2 * math.Pi
		}
		return math.Pi
	case Epitrochoid, Hypotrochoid:
		return 2 * math.Pi * (p.RollingRadius / float64(GCD(p.FixedRadius, p.RollingRadius)))
	case OrganicFlow:
		return 2 * math.Pi * 20
	case Lissajous:
		return 2 * math.Pi * float64(LCM(p.FreqX, p.FreqY))
	default:
		return MinMaxT
	}
}

// MaxT returns the curve-position range a pattern is drawn over.
func MaxT(family Family, p Params) float64 {
	return math.Max(BaseMaxT(family, p), MinMaxT)
}

// GCD returns the greatest common divisor of a and b after rounding both to
// the nearest integer. GCD(0, 0) is 0 and the result is never negative.
func GCD(a, b float64) int {
	x, y := int(math.Round(math.Abs(a))), int(math.Round(math.Abs(b)))
	for y != 0 {
		x, y = y, x%y
	}
	return x
}

// LCM returns the least common multiple of a and b, or 0 if either is 0.
func LCM(a, b int) int {
	g := GCD(float64(a), float64(b))
	if g == 0 {
		return 0
	}
	l := a / g * b
	if l < 0 {
		return -l
	}
	return l
}

package pattern

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGCD(t *testing.T) {
	tests := []struct {
		a, b float64
		want int
	}{
		{12, 8, 4},
		{8, 12, 4},
		{7, 0, 7},
		{0, 0, 0},
		{250.4, 40.2, 10}, // rounds to 250, 40
		{299.6, 59.5, 60}, // rounds to 300, 60
		{201.2, 37.9, 1},  // rounds to 201, 38
		{-12, 18, 6},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GCD(tt.a, tt.b), "GCD(%v, %v)", tt.a, tt.b)
	}
}

func TestLCM(t *testing.T) {
	tests := []struct {
		a, b, want int
	}{
		{4, 6, 12},
		{3, 3, 3},
		{5, 6, 30},
		{3, 6, 6},
		{0, 4, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LCM(tt.a, tt.b), "LCM(%d, %d)", tt.a, tt.b)
	}
}

func TestMaxTRose(t *testing.T) {
	odd := NewSpec(42, Rose, Params{K: 5})
	assert.InDelta(t, math.Pi, BaseMaxT(Rose, odd.Params), 1e-12)
	assert.InDelta(t, 20*math.Pi, odd.MaxT, 1e-12)

	even := NewSpec(42, Rose, Params{K: 6})
	assert.InDelta(t, 2*math.Pi, BaseMaxT(Rose, even.Params), 1e-12)
	assert.InDelta(t, 20*math.Pi, even.MaxT, 1e-12)
}

func TestMaxTLissajousAboveFloor(t *testing.T) {
	spec := NewSpec(1, Lissajous, Params{AmpX: 300, AmpY: 300, FreqX: 4, FreqY: 6, Phase: 1})
	assert.InDelta(t, 24*math.Pi, spec.MaxT, 1e-12)
	assert.Equal(t, Legendary, spec.Rarity)
}

func TestMaxTTrochoid(t *testing.T) {
	// gcd(250, 40) = 10 so the period is 2π·4.
	p := Params{FixedRadius: 250, RollingRadius: 40, Offset: 100}
	assert.InDelta(t, 8*math.Pi, BaseMaxT(Epitrochoid, p), 1e-12)
	assert.InDelta(t, MinMaxT, MaxT(Epitrochoid, p), 1e-12)

	// gcd(301, 37) = 1 so the period is 2π·37.
	p = Params{FixedRadius: 301, RollingRadius: 37, Offset: 120}
	assert.InDelta(t, 74*math.Pi, MaxT(Hypotrochoid, p), 1e-9)
}

func TestMaxTOrganicFlow(t *testing.T) {
	assert.InDelta(t, 40*math.Pi, MaxT(OrganicFlow, Params{Waves: 3}), 1e-12)
}

func TestSpecJSON(t *testing.T) {
	spec := NewSpec(7, Lissajous, Params{AmpX: 210, AmpY: 220, FreqX: 3, FreqY: 5, Phase: 0.5})
	data, err := json.Marshal(spec)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"family":"Lissajous"`)
	assert.Contains(t, string(data), `"rarity":"Legendary"`)
	assert.NotContains(t, string(data), `"k"`)

	var back Spec
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, spec, back)
}

func TestParseFamily(t *testing.T) {
	f, err := ParseFamily("rhodonea")
	require.NoError(t, err)
	assert.Equal(t, Rose, f)

	f, err = ParseFamily("organicflow")
	require.NoError(t, err)
	assert.Equal(t, OrganicFlow, f)

	_, err = ParseFamily("cardioid")
	assert.Error(t, err)
}

func TestRarityForRoll(t *testing.T) {
	tests := []struct {
		roll float64
		want Rarity
	}{
		{0, Common},
		{39.999, Common},
		{40, Uncommon},
		{69.9, Uncommon},
		{70, Rare},
		{89.99, Rare},
		{90, SuperRare},
		{97.99, SuperRare},
		{98, Legendary},
		{99.999, Legendary},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, rarityForRoll(tt.roll), "roll %v", tt.roll)
	}
}

func TestPaletteColors(t *testing.T) {
	for _, p := range Palettes() {
		require.Equal(t, 5, p.Len(), p.Name)
		for _, c := range p.NRGBA() {
			assert.Equal(t, uint8(0xff), c.A)
		}
	}
	first := PaletteFor(Common).NRGBA()[0]
	assert.Equal(t, uint8(0xFF), first.R)
	assert.Equal(t, uint8(0x6B), first.G)
	assert.Equal(t, uint8(0x6B), first.B)
}

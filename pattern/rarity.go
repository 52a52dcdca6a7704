package pattern

import "fmt"

// Rarity is the weight class of a family or palette.
type Rarity uint8

const (
	Common Rarity = iota
	Uncommon
	Rare
	SuperRare
	Legendary
)

// rarityThresholds are the cumulative upper bounds, in percent, of each
// rarity class for a roll in [0, 100).
var rarityThresholds = [...]float64{40, 70, 90, 98, 100}

// String returns the display label.
func (r Rarity) String() string {
	switch r {
	case Common:
		return "Common"
	case Uncommon:
		return "Uncommon"
	case Rare:
		return "Rare"
	case SuperRare:
		return "Super Rare"
	case Legendary:
		return "Legendary"
	default:
		return fmt.Sprintf("Rarity(%d)", uint8(r))
	}
}

// Weight returns the selection probability of the class in percent.
func (r Rarity) Weight() float64 {
	if r > Legendary {
		return 0
	}
	if r == Common {
		return rarityThresholds[0]
	}
	return rarityThresholds[r] - rarityThresholds[r-1]
}

// MarshalText implements encoding.TextMarshaler.
func (r Rarity) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Rarity) UnmarshalText(text []byte) error {
	for c := Common; c <= Legendary; c++ {
		if c.String() == string(text) {
			*r = c
			return nil
		}
	}
	return fmt.Errorf("pattern: unknown rarity %q", text)
}

// rarityForRoll maps a roll in [0, 100) onto a rarity class.
func rarityForRoll(roll float64) Rarity {
	for i, limit := range rarityThresholds[:len(rarityThresholds)-1] {
		if roll < limit {
			return Rarity(i)
		}
	}
	return Legendary
}

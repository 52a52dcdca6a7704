package pattern

import (
	"fmt"
	"strings"
)

// Family identifies a parametric curve formula.
type Family uint8

const (
	Rose Family = iota
	Epitrochoid
	Hypotrochoid
	OrganicFlow
	Lissajous
)

// Families lists every family in rarity order.
var Families = [...]Family{Rose, Epitrochoid, Hypotrochoid, OrganicFlow, Lissajous}

// String returns the family name.
func (f Family) String() string {
	switch f {
	case Rose:
		return "Rose"
	case Epitrochoid:
		return "Epitrochoid"
	case Hypotrochoid:
		return "Hypotrochoid"
	case OrganicFlow:
		return "OrganicFlow"
	case Lissajous:
		return "Lissajous"
	default:
		return fmt.Sprintf("Family(%d)", uint8(f))
	}
}

// Rarity returns the rarity class the family is drawn with.
func (f Family) Rarity() Rarity {
	return Rarity(f)
}

// MarshalText implements encoding.TextMarshaler.
func (f Family) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Family) UnmarshalText(text []byte) error {
	v, err := ParseFamily(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// ParseFamily parses a family name, case-insensitively. "Rhodonea" is
// accepted as an alias for Rose.
func ParseFamily(s string) (Family, error) {
	if strings.EqualFold(s, "rhodonea") {
		return Rose, nil
	}
	for _, f := range Families {
		if strings.EqualFold(s, f.String()) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("pattern: unknown family %q", s)
}

// familyForRoll maps a roll in [0, 100) onto a family.
func familyForRoll(roll float64) Family {
	return Family(rarityForRoll(roll))
}

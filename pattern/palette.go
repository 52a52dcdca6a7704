package pattern

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette is a named, ordered set of stroke colours.
type Palette struct {
	Name   string   `json:"name"`
	Colors []string `json:"colors"`
	Rarity Rarity   `json:"rarity"`
}

var palettes = [...]Palette{
	{Name: "Neon Mirage", Colors: []string{"#FF6B6B", "#4ECDC4", "#45B7D1", "#FDCB6E", "#6C5CE7"}, Rarity: Common},
	{Name: "Digital Dream", Colors: []string{"#FF00CC", "#3333FF", "#00FFF7", "#FFD6E8", "#BAFFC9"}, Rarity: Uncommon},
	{Name: "Crystal Sunset", Colors: []string{"#9B5DE5", "#F15BB5", "#FEE440", "#00BBF9", "#00F5D4"}, Rarity: Rare},
	{Name: "Cyber Haze", Colors: []string{"#F72585", "#B5179E", "#7209B7", "#3A0CA3", "#4361EE"}, Rarity: SuperRare},
	{Name: "Pastel Vapor", Colors: []string{"#FF6EC7", "#FFC8DD", "#A0C4FF", "#BDB2FF", "#FFADAD"}, Rarity: Legendary},
}

// Palettes returns the palette list in rarity order. The result is a copy.
func Palettes() []Palette {
	out := make([]Palette, len(palettes))
	for i, p := range palettes {
		out[i] = p.clone()
	}
	return out
}

// PaletteFor returns the palette of the given rarity class.
func PaletteFor(r Rarity) Palette {
	if r > Legendary {
		r = Legendary
	}
	return palettes[r].clone()
}

func (p Palette) clone() Palette {
	p.Colors = append([]string(nil), p.Colors...)
	return p
}

// Len returns the number of colours.
func (p Palette) Len() int {
	return len(p.Colors)
}

// Colorful returns the colours parsed for blending. Malformed entries
// become black.
func (p Palette) Colorful() []colorful.Color {
	out := make([]colorful.Color, len(p.Colors))
	for i, hex := range p.Colors {
		c, err := colorful.Hex(hex)
		if err != nil {
			c = colorful.Color{}
		}
		out[i] = c
	}
	return out
}

// NRGBA returns the colours as opaque image colours.
func (p Palette) NRGBA() []color.NRGBA {
	cs := p.Colorful()
	out := make([]color.NRGBA, len(cs))
	for i, c := range cs {
		r, g, b := c.RGB255()
		out[i] = color.NRGBA{R: r, G: g, B: b, A: 0xff}
	}
	return out
}

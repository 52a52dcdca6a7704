package spiro

import (
	"fmt"

	"github.com/gogpu/spiro/pattern"
)

// Metadata describes a rendered pattern. It is what a collection record or
// a sidecar JSON file is built from.
type Metadata struct {
	Seed        int            `json:"seed"`
	Name        string         `json:"name"`
	Family      pattern.Family `json:"shape"`
	Rarity      pattern.Rarity `json:"rarity"`
	Params      pattern.Params `json:"params"`
	MaxT        float64        `json:"maxT"`
	Palette     string         `json:"palette"`
	Colors      []string       `json:"colors"`
	Policy      string         `json:"policy"`
	Scale       float64        `json:"scale"`
	Layers      int            `json:"layers"`
	StrokeWidth float64        `json:"strokeWeight"`
	Segments    int            `json:"segments"`
}

// Name returns the display name of a seed.
func Name(seed int) string {
	return fmt.Sprintf("Spirograph #%d", seed)
}

func newMetadata(c *Compositor) Metadata {
	plan := c.Plan()
	if plan == nil {
		return Metadata{}
	}
	spec, pal := plan.Spec(), plan.Palette()
	return Metadata{
		Seed:        spec.Seed,
		Name:        Name(spec.Seed),
		Family:      spec.Family,
		Rarity:      spec.Rarity,
		Params:      spec.Params,
		MaxT:        spec.MaxT,
		Palette:     pal.Name,
		Colors:      append([]string(nil), pal.Colors...),
		Policy:      c.policy.Name(),
		Scale:       plan.Scale(),
		Layers:      len(c.layers),
		StrokeWidth: c.stroker.Width(),
		Segments:    c.Segments(),
	}
}

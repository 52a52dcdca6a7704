// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package alloc

import (
	"slices"
	"time"

	"github.com/gogpu/spiro"
	"github.com/gogpu/spiro/pattern"
)

// Record is one minted pattern in the collection.
type Record struct {
	ID           int          `json:"id"`
	Name         string       `json:"name"`
	Params       RecordParams `json:"params"`
	Palette      string       `json:"palette"`
	ImageURL     string       `json:"imageUrl,omitempty"`
	AnimationURL string       `json:"animatedGifUrl,omitempty"`
	MintDate     time.Time    `json:"mintDate"`
}

// RecordParams are the drawing parameters stored with a record.
type RecordParams struct {
	Shape        pattern.Family `json:"shape"`
	Rarity       pattern.Rarity `json:"rarity"`
	FixedRadius  float64        `json:"fixedRadius,omitempty"`
	MovingRadius float64        `json:"movingRadius,omitempty"`
	Offset       float64        `json:"offset,omitempty"`
	Colors       []string       `json:"colors"`
	StrokeWeight float64        `json:"strokeWeight"`
}

// NewRecord builds a collection record from the metadata of a finished
// render.
func NewRecord(md spiro.Metadata, imageURL, animationURL string, mintDate time.Time) Record {
	return Record{
		ID:   md.Seed,
		Name: md.Name,
		Params: RecordParams{
			Shape:        md.Family,
			Rarity:       md.Rarity,
			FixedRadius:  md.Params.FixedRadius,
			MovingRadius: md.Params.RollingRadius,
			Offset:       md.Params.Offset,
			Colors:       slices.Clone(md.Colors),
			StrokeWeight: md.StrokeWidth,
		},
		Palette:      md.Palette,
		ImageURL:     imageURL,
		AnimationURL: animationURL,
		MintDate:     mintDate.UTC(),
	}
}

func (r Record) clone() Record {
	r.Params.Colors = slices.Clone(r.Params.Colors)
	return r
}

// Package pattern derives spirograph patterns from integer seeds.
//
// # Overview
//
// A seed drives a deterministic pseudo-random stream that selects one of five
// curve families, draws that family's numeric parameters, and picks a colour
// palette. Families and palettes share the same rarity table:
//
//	Common     40%   Rose           Neon Mirage
//	Uncommon   30%   Epitrochoid    Digital Dream
//	Rare       20%   Hypotrochoid   Crystal Sunset
//	Super Rare  8%   OrganicFlow    Cyber Haze
//	Legendary   2%   Lissajous      Pastel Vapor
//
// The two draws are independent, so a pattern's family rarity says nothing
// about its palette rarity.
//
// # Quick Start
//
//	spec, pal := pattern.Generate(42)
//	fmt.Println(spec.Family, spec.Rarity, pal.Name, spec.MaxT)
//
// Generate never fails. Seeds outside [MinSeed, MaxSeed] still produce a
// pattern; rejecting them is the job of the seed allocator (see ValidSeed).
package pattern

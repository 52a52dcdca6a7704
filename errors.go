package spiro

import "errors"

// Sentinel errors returned by the Renderer. Compare with errors.Is.
var (
	// ErrNoSeedAvailable is returned by Regenerate when the seed allocator
	// reports that every seed of the collection is taken.
	ErrNoSeedAvailable = errors.New("spiro: no seed available")

	// ErrNotComplete is returned by Mint before the current cycle finished.
	ErrNotComplete = errors.New("spiro: render not complete")

	// ErrNoAllocator is returned by Mint when no SeedAllocator is configured.
	ErrNoAllocator = errors.New("spiro: no seed allocator configured")

	// ErrSeedTaken is returned by Mint when the current seed is already
	// reserved.
	ErrSeedTaken = errors.New("spiro: seed already reserved")

	// ErrUnknownPolicy is returned by ParsePolicy.
	ErrUnknownPolicy = errors.New("spiro: unknown layer policy")
)

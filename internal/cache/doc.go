// Package cache provides a small generic LRU cache.
//
// The renderer keeps prepared plans here so that drawing a seed a second
// time skips the dense sampling pass that sizes the pattern.
//
//	c := cache.New[int, *Plan](64)
//	plan := c.GetOrCreate(seed, func() *Plan { return build(seed) })
//
// # Thread Safety
//
// Cache is safe for concurrent use. Create callbacks run under the cache
// lock, so two goroutines asking for the same missing key build it once.
package cache

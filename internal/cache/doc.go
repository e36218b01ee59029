// Package cache provides a sharded, thread-safe LRU cache.
//
// The GPU context keeps compiled SPIR-V here, keyed by WGSL source, so that
// loading the same shader twice skips the compiler.
//
//	c := cache.NewSharded[string, []uint32](16, cache.StringHasher)
//	words := c.GetOrCreate(src, func() []uint32 { return compile(src) })
package cache

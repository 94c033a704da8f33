// Package cache provides the keyed store behind the text layout and glyph
// caches.
//
// A [Cache] keeps every entry until it is replaced and counts lookups:
//
//	c := cache.New[string, int]()
//	c.Set("key", 42)
//	value, ok := c.Get("key")
//	fmt.Println(c.Stats().HitRate)
//
// # Thread Safety
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache

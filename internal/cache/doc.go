// Package cache provides a small generic cache with a soft size limit.
//
//	c := cache.New[string, int](100)
//	c.Set("key", 42)
//	value, ok := c.Get("key")
//
// When an insertion pushes the cache past its limit, the least recently
// used entries are dropped in one pass until three quarters remain.
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache

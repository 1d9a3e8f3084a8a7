package glyph

import (
	"fmt"
	"strings"

	"github.com/gogpu/glyphswap/internal/cache"
)

// Chain tries renderers in order and uses the first one that has a symbol.
type Chain []Renderer

// Name implements Renderer.
func (c Chain) Name() string {
	names := make([]string, len(c))
	for i, r := range c {
		names[i] = r.Name()
	}
	return "chain(" + strings.Join(names, ",") + ")"
}

// Has implements Renderer.
func (c Chain) Has(symbol string) bool {
	_, ok := c.Resolve(symbol)
	return ok
}

// Resolve returns the renderer that would draw symbol.
func (c Chain) Resolve(symbol string) (Renderer, bool) {
	for _, r := range c {
		if r.Has(symbol) {
			return r, true
		}
	}
	return nil, false
}

// Render implements Renderer.
func (c Chain) Render(symbol string, size int) (*Glyph, error) {
	r, ok := c.Resolve(symbol)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoGlyph, symbol)
	}
	return r.Render(symbol, size)
}

type cacheKey struct {
	symbol string
	size   int
}

// Cache memoizes glyphs of an underlying renderer by symbol and size.
// Rasterization is deterministic, so cached glyphs are interchangeable
// with freshly rendered ones.
//
// Cache is safe for concurrent use.
type Cache struct {
	r      Renderer
	glyphs *cache.Cache[cacheKey, *Glyph]
}

// DefaultCacheSize is the number of glyphs NewCache keeps.
const DefaultCacheSize = 512

// NewCache wraps r with a glyph cache.
func NewCache(r Renderer) *Cache {
	return &Cache{r: r, glyphs: cache.New[cacheKey, *Glyph](DefaultCacheSize)}
}

// Name implements Renderer.
func (c *Cache) Name() string { return c.r.Name() }

// Has implements Renderer.
func (c *Cache) Has(symbol string) bool { return c.r.Has(symbol) }

// Resolve reports which renderer draws symbol when the wrapped renderer
// is a Chain; otherwise the wrapped renderer itself.
func (c *Cache) Resolve(symbol string) (Renderer, bool) {
	if chain, ok := c.r.(Chain); ok {
		return chain.Resolve(symbol)
	}
	if c.r.Has(symbol) {
		return c.r, true
	}
	return nil, false
}

// Render implements Renderer.
func (c *Cache) Render(symbol string, size int) (*Glyph, error) {
	key := cacheKey{symbol, size}

	if g, ok := c.glyphs.Get(key); ok {
		return g, nil
	}

	g, err := c.r.Render(symbol, size)
	if err != nil {
		return nil, err
	}

	c.glyphs.Set(key, g)
	return g, nil
}

// Len returns the number of cached glyphs.
func (c *Cache) Len() int {
	return c.glyphs.Len()
}

// Package glyph turns symbol identifiers into coverage masks.
//
// A Renderer is a capability: it reports which symbols it can draw and
// rasterizes them at a pixel size. Three implementations are provided:
//
//   - Shapes: vector outlines for the geometric symbols (●, ▲, ★, ♥, ...)
//   - Font: any symbol covered by a loaded font
//   - Chain: the first renderer in a list that has the symbol
//
// Default assembles the chain used by the generator: an optional user font,
// then Shapes, then the bundled Go Regular font as the guaranteed fallback.
package glyph

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/glyphswap/text"
)

// ErrNoGlyph is returned when no renderer can draw a symbol.
var ErrNoGlyph = errors.New("glyph: no glyph for symbol")

// Glyph is a rasterized symbol. Mask is trimmed to the ink bounds and its
// rectangle starts at the origin. Glyphs may be shared through a Cache and
// must not be modified.
type Glyph struct {
	Mask *image.Alpha
}

// Size returns the ink box dimensions.
func (g *Glyph) Size() image.Point {
	return g.Mask.Rect.Size()
}

// Origin returns where the mask's top-left corner goes so that the ink
// box's center lands on center.
func (g *Glyph) Origin(center image.Point) image.Point {
	s := g.Size()
	return center.Sub(image.Pt(s.X/2, s.Y/2))
}

// Renderer rasterizes symbols into glyphs.
type Renderer interface {
	// Name identifies the renderer in logs and listings.
	Name() string

	// Has reports whether the renderer can draw symbol.
	Has(symbol string) bool

	// Render rasterizes symbol with a nominal size of size pixels.
	Render(symbol string, size int) (*Glyph, error)
}

// Trim crops m to the smallest rectangle holding non-zero coverage and
// rebases it at the origin. A mask without ink yields an empty mask.
func Trim(m *image.Alpha) *image.Alpha {
	r := m.Rect
	minX, minY, maxX, maxY := r.Max.X, r.Max.Y, r.Min.X, r.Min.Y
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := m.Pix[m.PixOffset(r.Min.X, y):m.PixOffset(r.Max.X, y)]
		for i, v := range row {
			if v == 0 {
				continue
			}
			x := r.Min.X + i
			minX, maxX = min(minX, x), max(maxX, x+1)
			minY, maxY = min(minY, y), max(maxY, y+1)
		}
	}
	if minX >= maxX || minY >= maxY {
		return image.NewAlpha(image.Rectangle{})
	}

	out := image.NewAlpha(image.Rect(0, 0, maxX-minX, maxY-minY))
	for y := minY; y < maxY; y++ {
		copy(out.Pix[out.PixOffset(0, y-minY):], m.Pix[m.PixOffset(minX, y):m.PixOffset(maxX, y)])
	}
	return out
}

// Default returns the standard renderer chain wrapped in a Cache.
// When fontPath is set, that font takes precedence for every symbol it covers.
func Default(fontPath string) (Renderer, error) {
	var chain Chain
	if fontPath != "" {
		src, err := text.NewFontSourceFromFile(fontPath)
		if err != nil {
			return nil, fmt.Errorf("glyph: loading font: %w", err)
		}
		chain = append(chain, NewFont(src))
	}
	chain = append(chain, Shapes(), NewFont(text.GoRegular()))
	return NewCache(chain), nil
}

package glyph

import (
	"github.com/gogpu/glyphswap/text"
)

// Font renders symbols with a loaded font.
type Font struct {
	source *text.FontSource
}

// NewFont wraps a font source as a Renderer.
func NewFont(source *text.FontSource) *Font {
	return &Font{source: source}
}

// Name implements Renderer.
func (f *Font) Name() string {
	return "font:" + f.source.Name()
}

// Has implements Renderer.
func (f *Font) Has(symbol string) bool {
	return f.source.Covers(symbol)
}

// Render implements Renderer. The size is the font's pixels per em.
func (f *Font) Render(symbol string, size int) (*Glyph, error) {
	mask, err := f.source.Rasterize(symbol, float64(size))
	if err != nil {
		return nil, err
	}
	return &Glyph{Mask: Trim(mask)}, nil
}

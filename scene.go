package glyphswap

import (
	"fmt"
	"image"

	"github.com/gogpu/glyphswap/glyph"
	"github.com/gogpu/glyphswap/internal/blend"
)

// DefaultMargin is the horizontal gap between neighbouring glyph cells.
const DefaultMargin = 20

// SceneConfig holds the canvas and layout parameters of a scene.
type SceneConfig struct {
	Width      int
	Height     int
	GlyphSize  int
	Margin     int
	Background RGB
}

func (c SceneConfig) validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return configErrorf("image size", "%dx%d must be positive", c.Width, c.Height)
	case c.GlyphSize <= 0:
		return configErrorf("symbol_size", "%d must be positive", c.GlyphSize)
	case c.Margin < 0:
		return configErrorf("symbol_margin", "%d must not be negative", c.Margin)
	}
	return nil
}

// SceneRenderer draws a symbol sequence as a centered horizontal row.
//
// Layout: every symbol owns a cell of GlyphSize+Margin pixels; the row is
// L*cell-Margin wide and horizontally centered; every glyph's ink box is
// centered on its cell center at half the canvas height.
//
// SceneRenderer is deterministic: the same sequence, colors and
// configuration always produce pixel-identical frames.
type SceneRenderer struct {
	cfg    SceneConfig
	glyphs glyph.Renderer
}

// NewSceneRenderer creates a renderer drawing glyphs from glyphs.
func NewSceneRenderer(cfg SceneConfig, glyphs glyph.Renderer) (*SceneRenderer, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if glyphs == nil {
		return nil, configErrorf("glyph renderer", "nil")
	}
	return &SceneRenderer{cfg: cfg, glyphs: glyphs}, nil
}

// Config returns the scene configuration.
func (s *SceneRenderer) Config() SceneConfig {
	return s.cfg
}

// CellCenters returns the glyph center point of each of n cells.
func (s *SceneRenderer) CellCenters(n int) []image.Point {
	if n <= 0 {
		return nil
	}
	cell := s.cfg.GlyphSize + s.cfg.Margin
	total := n*cell - s.cfg.Margin
	startX := (s.cfg.Width - total) / 2
	centerY := s.cfg.Height / 2

	centers := make([]image.Point, n)
	for i := range centers {
		centers[i] = image.Pt(startX+i*cell+s.cfg.GlyphSize/2, centerY)
	}
	return centers
}

// Render draws seq with every glyph opaque. An empty sequence yields a
// blank canvas. Every symbol must have a color in colors.
func (s *SceneRenderer) Render(seq []string, colors *ColorAssignment) (*Frame, error) {
	canvas := newCanvas(s.cfg.Width, s.cfg.Height, s.cfg.Background)
	for i, center := range s.CellCenters(len(seq)) {
		if err := s.drawSymbol(canvas, seq[i], center, colors, 255); err != nil {
			return nil, err
		}
	}
	return &Frame{img: canvas}, nil
}

// drawSymbol composites symbol's glyph centered on center at the given
// straight alpha.
func (s *SceneRenderer) drawSymbol(dst *image.RGBA, symbol string, center image.Point, colors *ColorAssignment, alpha uint8) error {
	c, err := colors.lookup("render scene", symbol)
	if err != nil {
		return err
	}
	if alpha == 0 {
		return nil
	}
	g, err := s.glyphs.Render(symbol, s.cfg.GlyphSize)
	if err != nil {
		return fmt.Errorf("glyphswap: rendering %q: %w", symbol, err)
	}
	blend.MaskOver(dst, g.Origin(center), g.Mask, c.NRGBA(alpha))
	return nil
}

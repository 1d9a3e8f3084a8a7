package glyphswap

import (
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/glyphswap/glyph"
)

func newTestScene(t *testing.T, glyphs glyph.Renderer) *SceneRenderer {
	t.Helper()
	s, err := NewSceneRenderer(testScene(), glyphs)
	require.NoError(t, err)
	return s
}

func TestSceneRenderer_CellCenters(t *testing.T) {
	s := newTestScene(t, blockRenderer{})

	// cell 30, row 80 wide, starting at 60.
	assert.Equal(t, []image.Point{{70, 25}, {100, 25}, {130, 25}}, s.CellCenters(3))
	assert.Equal(t, []image.Point{{100, 25}}, s.CellCenters(1))
	assert.Nil(t, s.CellCenters(0))
}

func TestSceneRenderer_RowIsCentered(t *testing.T) {
	s := newTestScene(t, blockRenderer{})
	for n := 1; n <= 5; n++ {
		c := s.CellCenters(n)
		left := c[0].X - 10
		right := 200 - (c[n-1].X + 10)
		assert.InDelta(t, left, right, 1, "n=%d", n)
	}
}

func TestSceneRenderer_EmptyIsBlank(t *testing.T) {
	s := newTestScene(t, blockRenderer{})
	f, err := s.Render(nil, NewColorAssignment(DefaultPalette))
	require.NoError(t, err)
	assert.True(t, f.Equal(&Frame{img: newCanvas(200, 50, White)}))
}

func TestSceneRenderer_DrawsColoredGlyphs(t *testing.T) {
	s := newTestScene(t, blockRenderer{})
	colors := NewColorAssignment(DefaultPalette, "a", "b")

	f, err := s.Render([]string{"a", "b"}, colors)
	require.NoError(t, err)

	// Two cells: row 50 wide starting at 75, centers 85 and 115.
	assert.Equal(t, DefaultPalette[0], f.PixelAt(85, 25))
	assert.Equal(t, DefaultPalette[0], f.PixelAt(75, 15))
	assert.Equal(t, DefaultPalette[0], f.PixelAt(94, 34))
	assert.Equal(t, White, f.PixelAt(95, 25), "margin stays background")
	assert.Equal(t, DefaultPalette[1], f.PixelAt(115, 25))
	assert.Equal(t, White, f.PixelAt(0, 0))
	assert.Equal(t, White, f.PixelAt(85, 35))
}

func TestSceneRenderer_Deterministic(t *testing.T) {
	s := newTestScene(t, glyph.Shapes())
	seq := []string{"●", "▲", "■", "★"}
	colors := NewColorAssignment(DefaultPalette, seq...)

	a, err := s.Render(seq, colors)
	require.NoError(t, err)
	b, err := s.Render(seq, colors)
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
}

func TestSceneRenderer_MissingColor(t *testing.T) {
	s := newTestScene(t, blockRenderer{})
	_, err := s.Render([]string{"a", "b"}, NewColorAssignment(DefaultPalette, "a"))

	var ce *ConsistencyError
	require.True(t, errors.As(err, &ce), "got %v", err)
	assert.Contains(t, ce.Detail, `"b"`)
}

func TestSceneRenderer_GlyphError(t *testing.T) {
	s := newTestScene(t, blockRenderer{missing: map[string]bool{"b": true}})
	_, err := s.Render([]string{"a", "b"}, NewColorAssignment(DefaultPalette, "a", "b"))
	assert.ErrorIs(t, err, glyph.ErrNoGlyph)
}

func TestNewSceneRenderer_Errors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*SceneConfig)
	}{
		{"zero width", func(c *SceneConfig) { c.Width = 0 }},
		{"negative height", func(c *SceneConfig) { c.Height = -1 }},
		{"zero glyph size", func(c *SceneConfig) { c.GlyphSize = 0 }},
		{"negative margin", func(c *SceneConfig) { c.Margin = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testScene()
			tt.modify(&cfg)
			_, err := NewSceneRenderer(cfg, blockRenderer{})
			var ce *ConfigError
			assert.True(t, errors.As(err, &ce))
		})
	}

	_, err := NewSceneRenderer(testScene(), nil)
	var ce *ConfigError
	assert.True(t, errors.As(err, &ce))
}

package text

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inkPixels(m *image.Alpha) int {
	n := 0
	for _, v := range m.Pix {
		if v > 0 {
			n++
		}
	}
	return n
}

func TestRasterize_Letter(t *testing.T) {
	mask, err := GoRegular().Rasterize("A", 60)
	require.NoError(t, err)

	r := mask.Rect
	assert.Less(t, r.Min.Y, 0, "glyph ink sits above the baseline")
	assert.Greater(t, r.Dx(), 10)
	assert.Greater(t, r.Dy(), 20)
	assert.Greater(t, inkPixels(mask), 100)
}

func TestRasterize_ScalesWithSize(t *testing.T) {
	small, err := GoRegular().Rasterize("M", 20)
	require.NoError(t, err)
	large, err := GoRegular().Rasterize("M", 80)
	require.NoError(t, err)

	assert.Greater(t, large.Rect.Dy(), 3*small.Rect.Dy())
}

func TestRasterize_Deterministic(t *testing.T) {
	a, err := GoRegular().Rasterize("7", 48)
	require.NoError(t, err)
	b, err := GoRegular().Rasterize("7", 48)
	require.NoError(t, err)

	assert.Equal(t, a.Rect, b.Rect)
	assert.Equal(t, a.Pix, b.Pix)
}

func TestRasterize_Errors(t *testing.T) {
	_, err := GoRegular().Rasterize("", 40)
	require.ErrorIs(t, err, ErrEmptyText)

	_, err = GoRegular().Rasterize("☆", 40)
	require.ErrorIs(t, err, ErrMissingGlyph)
}

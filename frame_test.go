package glyphswap

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCanvas(t *testing.T) {
	bg := RGB{10, 20, 30}
	f := &Frame{img: newCanvas(4, 3, bg)}

	assert.Equal(t, 4, f.Width())
	assert.Equal(t, 3, f.Height())
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			require.Equal(t, bg, f.PixelAt(x, y))
		}
	}
	assert.Equal(t, color.RGBA{10, 20, 30, 255}, f.At(2, 1))
}

func TestFrame_PixelAtOutOfBounds(t *testing.T) {
	f := &Frame{img: newCanvas(2, 2, White)}
	assert.Equal(t, RGB{}, f.PixelAt(-1, 0))
	assert.Equal(t, RGB{}, f.PixelAt(2, 0))
	assert.Equal(t, RGB{}, f.PixelAt(0, 2))
}

func TestNewFrame_CopiesAndRebases(t *testing.T) {
	src := image.NewRGBA(image.Rect(5, 5, 8, 7))
	src.Set(5, 5, color.RGBA{1, 2, 3, 255})

	f := NewFrame(src)
	assert.Equal(t, image.Rect(0, 0, 3, 2), f.Bounds())
	assert.Equal(t, RGB{1, 2, 3}, f.PixelAt(0, 0))

	src.Set(5, 5, color.RGBA{9, 9, 9, 255})
	assert.Equal(t, RGB{1, 2, 3}, f.PixelAt(0, 0), "frame must not alias its source")
}

func TestFrame_Equal(t *testing.T) {
	a := &Frame{img: newCanvas(3, 3, White)}
	b := &Frame{img: newCanvas(3, 3, White)}
	assert.True(t, a.Equal(b))
	assert.True(t, a.Equal(a))
	assert.False(t, a.Equal(nil))

	b.img.Pix[0] = 0
	assert.False(t, a.Equal(b))
	assert.False(t, a.Equal(&Frame{img: newCanvas(3, 4, White)}))
}

func TestFrame_EncodePNG(t *testing.T) {
	f := &Frame{img: newCanvas(6, 2, RGB{200, 100, 50})}

	var buf bytes.Buffer
	require.NoError(t, f.EncodePNG(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.True(t, f.Equal(NewFrame(img)))
}

func TestFrame_SavePNG(t *testing.T) {
	f := &Frame{img: newCanvas(6, 2, White)}
	path := filepath.Join(t.TempDir(), "frame.png")
	require.NoError(t, f.SavePNG(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, f.EncodePNG(&buf))
	assert.Equal(t, buf.Bytes(), data)

	assert.Error(t, f.SavePNG(filepath.Join(t.TempDir(), "missing", "frame.png")))
}

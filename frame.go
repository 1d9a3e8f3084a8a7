package glyphswap

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
)

// Frame is one fully rendered raster image of a scene.
// Frames are immutable once produced; animations share Frame values
// between identical hold frames.
type Frame struct {
	img *image.RGBA
}

// newCanvas allocates an opaque canvas filled with bg.
func newCanvas(width, height int, bg RGB) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	pix := img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i+0] = bg.R
		pix[i+1] = bg.G
		pix[i+2] = bg.B
		pix[i+3] = 255
	}
	return img
}

// NewFrame copies img into a new frame.
func NewFrame(img image.Image) *Frame {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Rect, img, b.Min, draw.Src)
	return &Frame{img: dst}
}

// Width returns the width of the frame.
func (f *Frame) Width() int {
	return f.img.Rect.Dx()
}

// Height returns the height of the frame.
func (f *Frame) Height() int {
	return f.img.Rect.Dy()
}

// RGBA returns the frame's pixel buffer. The buffer is shared and must not
// be modified; encoders read it directly to avoid a copy per frame.
func (f *Frame) RGBA() *image.RGBA {
	return f.img
}

// PixelAt returns the opaque color at (x, y).
// Out-of-bounds coordinates return the zero color.
func (f *Frame) PixelAt(x, y int) RGB {
	if !(image.Point{x, y}.In(f.img.Rect)) {
		return RGB{}
	}
	i := f.img.PixOffset(x, y)
	return RGB{f.img.Pix[i], f.img.Pix[i+1], f.img.Pix[i+2]}
}

// Equal reports whether two frames are pixel-identical.
func (f *Frame) Equal(other *Frame) bool {
	if f == other {
		return true
	}
	if f == nil || other == nil || f.img.Rect != other.img.Rect {
		return false
	}
	return bytes.Equal(f.img.Pix, other.img.Pix)
}

// EncodePNG writes the frame as a PNG image.
func (f *Frame) EncodePNG(w io.Writer) error {
	return png.Encode(w, f.img)
}

// SavePNG saves the frame to a PNG file.
func (f *Frame) SavePNG(path string) error {
	file, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := f.EncodePNG(file); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// At implements the image.Image interface.
func (f *Frame) At(x, y int) color.Color {
	return f.img.At(x, y)
}

// Bounds implements the image.Image interface.
func (f *Frame) Bounds() image.Rectangle {
	return f.img.Rect
}

// ColorModel implements the image.Image interface.
func (f *Frame) ColorModel() color.Model {
	return color.RGBAModel
}

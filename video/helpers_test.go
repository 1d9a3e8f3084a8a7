package video

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/gogpu/glyphswap"
)

func solidFrame(w, h int, c color.RGBA) *glyphswap.Frame {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Rect, image.NewUniform(c), image.Point{}, draw.Src)
	return glyphswap.NewFrame(img)
}

func testAnimation() glyphswap.Animation {
	red := solidFrame(16, 8, color.RGBA{255, 0, 0, 255})
	blue := solidFrame(16, 8, color.RGBA{0, 0, 255, 255})
	return glyphswap.Animation{red, red, solidFrame(16, 8, color.RGBA{128, 0, 128, 255}), blue, blue}
}

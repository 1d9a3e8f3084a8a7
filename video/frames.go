package video

import (
	"errors"
	"image"
	"path/filepath"
	"strings"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/glyphswap"
)

// ErrNoFrames is returned when asked to encode an empty animation.
var ErrNoFrames = errors.New("video: no frames")

// normalize returns the frames' pixel buffers, all at the first frame's
// size. Frames of another size are rescaled.
func normalize(frames glyphswap.Animation) ([]*image.RGBA, image.Rectangle, error) {
	if len(frames) == 0 {
		return nil, image.Rectangle{}, ErrNoFrames
	}
	size := frames[0].Bounds()

	out := make([]*image.RGBA, len(frames))
	for i, f := range frames {
		if f.Bounds() == size {
			out[i] = f.RGBA()
			continue
		}
		dst := image.NewRGBA(size)
		xdraw.CatmullRom.Scale(dst, size, f.RGBA(), f.Bounds(), xdraw.Src, nil)
		out[i] = dst
	}
	return out, size, nil
}

// withExt replaces path's extension with ext.
func withExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + "." + ext
}

// Package blend implements the Porter-Duff source-over operator used to
// composite glyph coverage masks onto scene canvases.
//
// Colors handed to MaskOver are straight (non-premultiplied); they are
// premultiplied by the effective per-pixel alpha before compositing, so the
// result matches straight-alpha compositing onto an opaque canvas.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

import (
	"image"
	"image/color"
)

// SourceOver composites source over destination.
// All values are premultiplied alpha, 0-255.
// Formula: S + D*(1-Sa)
func SourceOver(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte) {
	invSa := 255 - sa
	return addDiv255(sr, mulDiv255(dr, invSa)),
		addDiv255(sg, mulDiv255(dg, invSa)),
		addDiv255(sb, mulDiv255(db, invSa)),
		addDiv255(sa, mulDiv255(da, invSa))
}

// MaskOver composites the straight-alpha color c onto dst through the
// coverage mask. The mask's Rect.Min is placed at dp in dst coordinates;
// pixels falling outside dst are clipped.
//
// Each pixel's effective alpha is coverage*c.A/255. A zero effective alpha
// leaves dst unchanged; a full one writes c exactly.
func MaskOver(dst *image.RGBA, dp image.Point, mask *image.Alpha, c color.NRGBA) {
	if mask == nil || c.A == 0 {
		return
	}
	offset := dp.Sub(mask.Rect.Min)
	area := mask.Rect.Add(offset).Intersect(dst.Rect)
	if area.Empty() {
		return
	}

	for y := area.Min.Y; y < area.Max.Y; y++ {
		mi := mask.PixOffset(area.Min.X-offset.X, y-offset.Y)
		di := dst.PixOffset(area.Min.X, y)
		for x := area.Min.X; x < area.Max.X; x, mi, di = x+1, mi+1, di+4 {
			coverage := mask.Pix[mi]
			if coverage == 0 {
				continue
			}
			sa := mulDiv255(coverage, c.A)
			if sa == 0 {
				continue
			}
			p := dst.Pix[di : di+4 : di+4]
			p[0], p[1], p[2], p[3] = SourceOver(
				mulDiv255(c.R, sa), mulDiv255(c.G, sa), mulDiv255(c.B, sa), sa,
				p[0], p[1], p[2], p[3],
			)
		}
	}
}

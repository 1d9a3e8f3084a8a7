package text

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Rasterize renders str at size pixels per em into an alpha mask.
//
// The mask's rectangle is expressed relative to the pen origin on the
// baseline, so Rect.Min.Y is usually negative. It covers the ink bounds
// reported by the font; callers that need the exact visual box should trim
// zero-coverage rows and columns.
func (s *FontSource) Rasterize(str string, size float64) (*image.Alpha, error) {
	if str == "" {
		return nil, ErrEmptyText
	}
	for _, r := range str {
		if !s.HasGlyph(r) {
			return nil, fmt.Errorf("%w: %q in %s", ErrMissingGlyph, r, s.name)
		}
	}

	face, err := opentype.NewFace(s.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("text: failed to create face: %w", err)
	}
	defer func() {
		_ = face.Close()
	}()

	bounds, _ := font.BoundString(face, str)
	rect := image.Rect(
		bounds.Min.X.Floor(), bounds.Min.Y.Floor(),
		bounds.Max.X.Ceil(), bounds.Max.Y.Ceil(),
	)
	mask := image.NewAlpha(rect)
	if rect.Empty() {
		return mask, nil
	}

	d := &font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.Point26_6{},
	}
	d.DrawString(str)
	return mask, nil
}

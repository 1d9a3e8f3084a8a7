// Package text loads fonts and rasterizes symbols into coverage masks.
//
// The pipeline follows a separation of concerns:
//
//   - FontSource: heavyweight, shared font resource (parses TTF/OTF data once)
//   - Coverage: rune lookups through the font's cmap (go-text/typesetting)
//   - Rasterize: alpha masks at a pixel size (golang.org/x/image/font/opentype)
//
// # Example usage
//
//	source, err := text.NewFontSourceFromFile("DejaVuSans.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if source.Covers("★") {
//	    mask, err := source.Rasterize("★", 60)
//	    ...
//	}
//
// GoRegular returns the bundled Go Regular font, which is always available
// and serves as the last fallback for letters and digits.
package text

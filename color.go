package glyphswap

import (
	"fmt"
	"image/color"
)

// RGB is an opaque 8-bit color.
type RGB struct {
	R, G, B uint8
}

// NRGBA returns the color with the given straight (non-premultiplied) alpha.
func (c RGB) NRGBA(alpha uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: alpha}
}

// String returns the color as #rrggbb.
func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// White is the default scene background.
var White = RGB{255, 255, 255}

// Hex parses a color from a hex string.
// Supports formats: "RGB" and "RRGGBB", with or without a leading '#'.
func Hex(hex string) (RGB, error) {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var r, g, b uint32
	var ok bool
	switch len(s) {
	case 3:
		ok = parseHex(s[0:1], &r) && parseHex(s[1:2], &g) && parseHex(s[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 6:
		ok = parseHex(s[0:2], &r) && parseHex(s[2:4], &g) && parseHex(s[4:6], &b)
	}
	if !ok {
		return RGB{}, fmt.Errorf("glyphswap: malformed hex color %q", hex)
	}
	return RGB{uint8(r), uint8(g), uint8(b)}, nil
}

// parseHex is a helper for hex parsing
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// Palette is a fixed ordered list of symbol colors.
type Palette []RGB

// DefaultPalette holds ten well separated hues.
var DefaultPalette = Palette{
	{220, 60, 60},  // red
	{60, 60, 220},  // blue
	{60, 180, 60},  // green
	{220, 160, 60}, // orange
	{160, 60, 220}, // purple
	{60, 180, 180}, // cyan
	{220, 60, 160}, // pink
	{100, 150, 60}, // olive
	{220, 120, 60}, // coral
	{80, 80, 200},  // indigo
}

// ColorAssignment maps each symbol of one task instance to its color.
// It is built once per instance and never mutated afterwards, so a symbol
// renders identically in the before scene, the after scene and every
// animation frame.
type ColorAssignment struct {
	order  []string
	colors map[string]RGB
}

// NewColorAssignment assigns palette colors to symbols in the order given.
// Repeated symbols keep their first color. The palette cycles when there are
// more symbols than colors. An empty palette falls back to DefaultPalette.
func NewColorAssignment(palette Palette, symbols ...string) *ColorAssignment {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	ca := &ColorAssignment{colors: make(map[string]RGB, len(symbols))}
	for _, s := range symbols {
		if _, ok := ca.colors[s]; ok {
			continue
		}
		ca.colors[s] = palette[len(ca.order)%len(palette)]
		ca.order = append(ca.order, s)
	}
	return ca
}

// AssignColors builds the color assignment for a sequence pair: the before
// sequence in order, then the replacement symbol.
func AssignColors(pair SequencePair, palette Palette) *ColorAssignment {
	symbols := make([]string, 0, len(pair.Before)+1)
	symbols = append(symbols, pair.Before...)
	symbols = append(symbols, pair.New)
	return NewColorAssignment(palette, symbols...)
}

// Color returns the color assigned to symbol.
func (ca *ColorAssignment) Color(symbol string) (RGB, bool) {
	c, ok := ca.colors[symbol]
	return c, ok
}

// Symbols returns the assigned symbols in assignment order.
func (ca *ColorAssignment) Symbols() []string {
	out := make([]string, len(ca.order))
	copy(out, ca.order)
	return out
}

// Len returns the number of assigned symbols.
func (ca *ColorAssignment) Len() int { return len(ca.order) }

// lookup returns the color for symbol or a ConsistencyError attributed to op.
func (ca *ColorAssignment) lookup(op, symbol string) (RGB, error) {
	if ca == nil {
		return RGB{}, &ConsistencyError{Op: op, Detail: "nil color assignment"}
	}
	c, ok := ca.colors[symbol]
	if !ok {
		return RGB{}, &ConsistencyError{Op: op, Detail: fmt.Sprintf("no color assigned to symbol %q", symbol)}
	}
	return c, nil
}

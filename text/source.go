package text

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	gotextfont "github.com/go-text/typesetting/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// FontSource represents a loaded font file.
// One FontSource can rasterize symbols at any number of sizes.
// FontSource is heavyweight and should be shared across the application.
//
// FontSource is safe for concurrent use.
type FontSource struct {
	font *opentype.Font
	name string

	// mu guards cmap: go-text faces keep lookup caches and are not safe
	// for concurrent use.
	mu   sync.Mutex
	cmap *gotextfont.Face
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
func NewFontSource(data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	// ParseTTF keeps a reference to its reader, so give it a private copy.
	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)
	cmap, err := gotextfont.ParseTTF(bytes.NewReader(dataCopy))
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font cmap: %w", err)
	}

	return &FontSource{
		font: f,
		name: fontName(f),
		cmap: cmap,
	}, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return NewFontSource(data)
}

var goRegular = sync.OnceValue(func() *FontSource {
	s, err := NewFontSource(goregular.TTF)
	if err != nil {
		panic("text: bundled Go Regular font failed to parse: " + err.Error())
	}
	return s
})

// GoRegular returns the bundled Go Regular font.
func GoRegular() *FontSource {
	return goRegular()
}

// Name returns the font family name, or "" when the font has none.
func (s *FontSource) Name() string {
	return s.name
}

// HasGlyph reports whether the font maps r to a glyph.
func (s *FontSource) HasGlyph(r rune) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.cmap.NominalGlyph(r)
	return ok
}

// Covers reports whether every rune of str has a glyph.
// The empty string is never covered.
func (s *FontSource) Covers(str string) bool {
	if str == "" {
		return false
	}
	for _, r := range str {
		if !s.HasGlyph(r) {
			return false
		}
	}
	return true
}

func fontName(f *opentype.Font) string {
	if name, err := f.Name(nil, sfnt.NameIDFamily); err == nil {
		return name
	}
	return ""
}

package glyphswap

import (
	"math/rand/v2"

	"github.com/gogpu/glyphswap/glyph"
)

// Defaults matching the reference dataset.
const (
	DefaultDomain        = "symbol_substitute"
	DefaultMinLength     = 5
	DefaultMaxLength     = 9
	DefaultWidth         = 800
	DefaultHeight        = 200
	DefaultGlyphSize     = 60
	DefaultFPS           = 10
	DefaultVideoFormat   = "mp4"
	DefaultSymbolSetName = SetShapes
)

// Options holds the generation parameters consumed by the Generator.
type Options struct {
	// Domain tags every task and prefixes task identifiers.
	Domain string

	// Catalog is the candidate symbol set.
	Catalog *Catalog

	// MinLength and MaxLength bound the sequence length, inclusive.
	MinLength int
	MaxLength int

	Scene   SceneConfig
	Palette Palette

	// Video enables animation rendering and encoding.
	Video            bool
	HoldFrames       int
	TransitionFrames int

	// Seed seeds the run's random source unless WithRand overrides it.
	Seed uint64
}

// DefaultOptions returns the reference configuration: shapes, 5-9 symbols,
// an 800x200 white canvas with 60 px glyphs and a 5/10/5 frame animation.
func DefaultOptions() Options {
	catalog, err := LookupCatalog(DefaultSymbolSetName)
	if err != nil {
		panic(err)
	}
	return Options{
		Domain:    DefaultDomain,
		Catalog:   catalog,
		MinLength: DefaultMinLength,
		MaxLength: DefaultMaxLength,
		Scene: SceneConfig{
			Width:      DefaultWidth,
			Height:     DefaultHeight,
			GlyphSize:  DefaultGlyphSize,
			Margin:     DefaultMargin,
			Background: White,
		},
		Palette:          DefaultPalette,
		Video:            true,
		HoldFrames:       DefaultHoldFrames,
		TransitionFrames: DefaultTransitionFrames,
	}
}

// NewRand returns the run's random source for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// GeneratorOption configures a Generator during creation.
// Use functional options to inject collaborators.
//
// Example:
//
//	// Image-only generation with a custom font
//	glyphs, _ := glyph.Default("DejaVuSans.ttf")
//	g, err := glyphswap.NewGenerator(opts, glyphswap.WithGlyphs(glyphs))
type GeneratorOption func(*generatorOptions)

// generatorOptions holds optional collaborators for Generator creation.
type generatorOptions struct {
	glyphs   glyph.Renderer
	encoder  VideoEncoder
	prompter Prompter
	rng      *rand.Rand
	videoDir string
}

// defaultGeneratorOptions returns the default collaborators.
func defaultGeneratorOptions() generatorOptions {
	return generatorOptions{
		glyphs:   nil, // glyph.Default("") if nil
		encoder:  NoVideo{},
		prompter: DefaultPrompt,
		rng:      nil, // NewRand(Options.Seed) if nil
		videoDir: "", // <tmp>/<domain>_videos if empty
	}
}

// WithGlyphs sets the glyph renderer used for every scene.
func WithGlyphs(r glyph.Renderer) GeneratorOption {
	return func(o *generatorOptions) {
		o.glyphs = r
	}
}

// WithVideoEncoder sets the encoder for transition videos.
// Without it, videos are reported unavailable and omitted.
func WithVideoEncoder(e VideoEncoder) GeneratorOption {
	return func(o *generatorOptions) {
		if e != nil {
			o.encoder = e
		}
	}
}

// WithPrompter replaces the instruction text collaborator.
func WithPrompter(p Prompter) GeneratorOption {
	return func(o *generatorOptions) {
		if p != nil {
			o.prompter = p
		}
	}
}

// WithRand sets the shared random source. It takes precedence over
// Options.Seed.
func WithRand(r *rand.Rand) GeneratorOption {
	return func(o *generatorOptions) {
		o.rng = r
	}
}

// WithVideoDir sets the directory encoders write videos into before the
// dataset writer collects them.
func WithVideoDir(dir string) GeneratorOption {
	return func(o *generatorOptions) {
		o.videoDir = dir
	}
}

// Package config loads glyphswap generation settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/glyphswap"
	"github.com/gogpu/glyphswap/video"
)

// Bounds enforced by Validate.
const (
	MinSymbolSize = 8
	MaxSymbolSize = 400
)

// DefaultNumSamples is the dataset size when none is configured.
const DefaultNumSamples = 100

// Config holds all generation settings.
type Config struct {
	NumSamples int    `yaml:"num_samples"`
	Domain     string `yaml:"domain"`

	// Symbol selection. CustomSymbols is used when SymbolSet is "custom".
	SymbolSet     string   `yaml:"symbol_set"`
	CustomSymbols []string `yaml:"custom_symbols,omitempty"`

	MinSequenceLength int `yaml:"min_sequence_length"`
	MaxSequenceLength int `yaml:"max_sequence_length"`

	// Scene
	ImageWidth   int    `yaml:"image_width"`
	ImageHeight  int    `yaml:"image_height"`
	SymbolSize   int    `yaml:"symbol_size"`
	SymbolMargin int    `yaml:"symbol_margin"`
	Background   string `yaml:"background"` // #rgb or #rrggbb
	FontPath     string `yaml:"font_path,omitempty"`

	Video VideoConfig `yaml:"video"`

	// RandomSeed fixes the run's random source. Nil means a seed derived
	// from the clock.
	RandomSeed *uint64 `yaml:"random_seed,omitempty"`

	OutputDir string `yaml:"output_dir"`
	Index     bool   `yaml:"index"`
}

// VideoConfig configures transition videos.
type VideoConfig struct {
	Enabled          bool   `yaml:"enabled"`
	Format           string `yaml:"format"` // mp4, avi, none
	FPS              int    `yaml:"fps"`
	HoldFrames       int    `yaml:"hold_frames"`
	TransitionFrames int    `yaml:"transition_frames"`
}

// DefaultConfig returns the reference settings.
func DefaultConfig() *Config {
	return &Config{
		NumSamples:        DefaultNumSamples,
		Domain:            glyphswap.DefaultDomain,
		SymbolSet:         glyphswap.DefaultSymbolSetName,
		MinSequenceLength: glyphswap.DefaultMinLength,
		MaxSequenceLength: glyphswap.DefaultMaxLength,
		ImageWidth:        glyphswap.DefaultWidth,
		ImageHeight:       glyphswap.DefaultHeight,
		SymbolSize:        glyphswap.DefaultGlyphSize,
		SymbolMargin:      glyphswap.DefaultMargin,
		Background:        "#ffffff",
		Video: VideoConfig{
			Enabled:          true,
			Format:           glyphswap.DefaultVideoFormat,
			FPS:              glyphswap.DefaultFPS,
			HoldFrames:       glyphswap.DefaultHoldFrames,
			TransitionFrames: glyphswap.DefaultTransitionFrames,
		},
		OutputDir: filepath.Join("data", "questions"),
		Index:     true,
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides are applied in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // config path is user-provided
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // config files are world-readable
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if dir := os.Getenv("GLYPHSWAP_OUTPUT_DIR"); dir != "" {
		c.OutputDir = dir
	}
	if font := os.Getenv("GLYPHSWAP_FONT"); font != "" {
		c.FontPath = font
	}
	if s := os.Getenv("GLYPHSWAP_SEED"); s != "" {
		seed, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return &glyphswap.ConfigError{Field: "GLYPHSWAP_SEED", Reason: fmt.Sprintf("%q is not an unsigned integer", s)}
		}
		c.RandomSeed = &seed
	}
	return nil
}

// Catalog resolves the configured symbol set.
func (c *Config) Catalog() (*glyphswap.Catalog, error) {
	if c.SymbolSet == glyphswap.SetCustom {
		return glyphswap.NewCatalog(glyphswap.SetCustom, c.CustomSymbols)
	}
	return glyphswap.LookupCatalog(c.SymbolSet)
}

// Validate checks every setting and returns the first problem as a
// *glyphswap.ConfigError.
func (c *Config) Validate() error {
	invalid := func(field, format string, args ...any) error {
		return &glyphswap.ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
	}

	catalog, err := c.Catalog()
	if errors.Is(err, glyphswap.ErrUnknownSymbolSet) {
		return invalid("symbol_set", "%q (valid: %v)", c.SymbolSet, append(glyphswap.SymbolSets(), glyphswap.SetCustom))
	}
	if err != nil {
		return err
	}

	switch {
	case c.NumSamples < 0:
		return invalid("num_samples", "%d must not be negative", c.NumSamples)
	case c.Domain == "":
		return invalid("domain", "must not be empty")
	case c.MinSequenceLength < glyphswap.MinSequenceLength:
		return invalid("min_sequence_length", "%d must be at least %d", c.MinSequenceLength, glyphswap.MinSequenceLength)
	case c.MinSequenceLength > c.MaxSequenceLength:
		return invalid("min_sequence_length", "%d exceeds max_sequence_length %d", c.MinSequenceLength, c.MaxSequenceLength)
	case c.MaxSequenceLength > catalog.Len()-1:
		return invalid("max_sequence_length", "%d leaves no replacement symbol in %q (%d symbols)", c.MaxSequenceLength, catalog.Name(), catalog.Len())
	case c.ImageWidth <= 0 || c.ImageHeight <= 0:
		return invalid("image size", "%dx%d must be positive", c.ImageWidth, c.ImageHeight)
	case c.SymbolSize < MinSymbolSize || c.SymbolSize > MaxSymbolSize:
		return invalid("symbol_size", "%d outside [%d, %d]", c.SymbolSize, MinSymbolSize, MaxSymbolSize)
	case c.SymbolMargin < 0:
		return invalid("symbol_margin", "%d must not be negative", c.SymbolMargin)
	case c.Video.HoldFrames < 0:
		return invalid("video.hold_frames", "%d must not be negative", c.Video.HoldFrames)
	case c.Video.TransitionFrames < 1:
		return invalid("video.transition_frames", "%d must be at least 1", c.Video.TransitionFrames)
	case c.Video.FPS < 1:
		return invalid("video.fps", "%d must be at least 1", c.Video.FPS)
	case !slices.Contains(video.Formats(), c.Video.Format):
		return invalid("video.format", "%q (valid: %v)", c.Video.Format, video.Formats())
	}

	if _, err := glyphswap.Hex(c.Background); err != nil {
		return invalid("background", "%v", err)
	}
	return nil
}

// VideoEnabled reports whether videos are requested.
func (c *Config) VideoEnabled() bool {
	return c.Video.Enabled && c.Video.Format != video.FormatNone
}

// Options converts the settings into generator options using seed.
func (c *Config) Options(seed uint64) (glyphswap.Options, error) {
	if err := c.Validate(); err != nil {
		return glyphswap.Options{}, err
	}
	catalog, err := c.Catalog()
	if err != nil {
		return glyphswap.Options{}, err
	}
	bg, err := glyphswap.Hex(c.Background)
	if err != nil {
		return glyphswap.Options{}, err
	}

	return glyphswap.Options{
		Domain:    c.Domain,
		Catalog:   catalog,
		MinLength: c.MinSequenceLength,
		MaxLength: c.MaxSequenceLength,
		Scene: glyphswap.SceneConfig{
			Width:      c.ImageWidth,
			Height:     c.ImageHeight,
			GlyphSize:  c.SymbolSize,
			Margin:     c.SymbolMargin,
			Background: bg,
		},
		Palette:          glyphswap.DefaultPalette,
		Video:            c.VideoEnabled(),
		HoldFrames:       c.Video.HoldFrames,
		TransitionFrames: c.Video.TransitionFrames,
		Seed:             seed,
	}, nil
}

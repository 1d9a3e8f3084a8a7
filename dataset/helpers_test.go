package dataset

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gogpu/glyphswap"
	"github.com/gogpu/glyphswap/glyph"
)

// fileEncoder writes a small placeholder video describing the animation.
type fileEncoder struct{}

func (fileEncoder) Format() string { return "avi" }

func (fileEncoder) Encode(_ context.Context, frames glyphswap.Animation, path string) (*glyphswap.VideoArtifact, error) {
	out := strings.TrimSuffix(path, filepath.Ext(path)) + ".avi"
	if err := os.WriteFile(out, []byte(fmt.Sprintf("%d frames", len(frames))), 0o644); err != nil {
		return nil, err
	}
	return &glyphswap.VideoArtifact{Path: out, Format: "avi", Frames: len(frames), FPS: 10}, nil
}

func smallOptions(seed uint64, video bool) glyphswap.Options {
	opts := glyphswap.DefaultOptions()
	opts.MinLength = 3
	opts.MaxLength = 4
	opts.Scene = glyphswap.SceneConfig{Width: 160, Height: 40, GlyphSize: 20, Margin: 6, Background: glyphswap.White}
	opts.Video = video
	opts.HoldFrames = 2
	opts.TransitionFrames = 3
	opts.Seed = seed
	return opts
}

func newGenerator(t *testing.T, opts glyphswap.Options, extra ...glyphswap.GeneratorOption) *glyphswap.Generator {
	t.Helper()
	options := append([]glyphswap.GeneratorOption{glyphswap.WithGlyphs(glyph.Shapes())}, extra...)
	g, err := glyphswap.NewGenerator(opts, options...)
	require.NoError(t, err)
	return g
}

package glyphswap

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/glyphswap/glyph"
)

func testPair() SequencePair {
	return SequencePair{
		Before:   []string{"a", "b", "c"},
		After:    []string{"a", "x", "c"},
		Position: 1,
		Old:      "b",
		New:      "x",
	}
}

func newTestAnimator(t *testing.T, glyphs glyph.Renderer, hold, transition int) *Animator {
	t.Helper()
	a, err := NewAnimator(newTestScene(t, glyphs), hold, transition)
	require.NoError(t, err)
	return a
}

// inkDistance is how far a pixel is from the white background.
func inkDistance(c RGB) int {
	return int(255-c.R) + int(255-c.G) + int(255-c.B)
}

func TestAnimator_FrameLayout(t *testing.T) {
	a := newTestAnimator(t, blockRenderer{}, 5, 10)
	pair := testPair()
	colors := AssignColors(pair, DefaultPalette)

	frames, err := a.Animate(pair, colors)
	require.NoError(t, err)
	require.Len(t, frames, 20)
	assert.Equal(t, 20, a.FrameCount())

	before, err := a.scene.Render(pair.Before, colors)
	require.NoError(t, err)
	after, err := a.scene.Render(pair.After, colors)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		assert.True(t, frames[i].Equal(before), "frame %d is the before scene", i)
	}
	for i := 15; i < 20; i++ {
		assert.True(t, frames[i].Equal(after), "frame %d is the after scene", i)
	}
	assert.True(t, frames[14].Equal(after), "last cross-fade frame equals the after scene")
	assert.False(t, frames[5].Equal(before))
}

func TestAnimator_CrossFadeIsMonotone(t *testing.T) {
	glyphs := halfRenderer{left: map[string]bool{"b": true}}
	a := newTestAnimator(t, glyphs, 5, 10)
	pair := testPair()

	frames, err := a.Animate(pair, AssignColors(pair, DefaultPalette))
	require.NoError(t, err)

	// Position 1 is centered at (100, 25); the old glyph covers the left
	// half of the cell, the new glyph the right half.
	oldPx, newPx := func(f *Frame) RGB { return f.PixelAt(95, 25) }, func(f *Frame) RGB { return f.PixelAt(105, 25) }

	prevOld, prevNew := inkDistance(oldPx(frames[4])), inkDistance(newPx(frames[4]))
	assert.Zero(t, prevNew, "new symbol absent before the transition")
	for i := 5; i < 15; i++ {
		o, n := inkDistance(oldPx(frames[i])), inkDistance(newPx(frames[i]))
		assert.LessOrEqual(t, o, prevOld, "old symbol fades out at frame %d", i)
		assert.GreaterOrEqual(t, n, prevNew, "new symbol fades in at frame %d", i)
		prevOld, prevNew = o, n
	}
	assert.Zero(t, prevOld)
	assert.Equal(t, DefaultPalette[3], newPx(frames[14]))
}

func TestAnimator_OtherSymbolsUnchanged(t *testing.T) {
	a := newTestAnimator(t, blockRenderer{}, 2, 4)
	pair := testPair()
	frames, err := a.Animate(pair, AssignColors(pair, DefaultPalette))
	require.NoError(t, err)

	for i, f := range frames {
		assert.Equal(t, DefaultPalette[0], f.PixelAt(70, 25), "frame %d", i)
		assert.Equal(t, DefaultPalette[2], f.PixelAt(130, 25), "frame %d", i)
	}
}

func TestAnimator_SingleTransitionFrame(t *testing.T) {
	a := newTestAnimator(t, blockRenderer{}, 0, 1)
	pair := testPair()
	colors := AssignColors(pair, DefaultPalette)

	frames, err := a.Animate(pair, colors)
	require.NoError(t, err)
	require.Len(t, frames, 1)

	after, err := a.scene.Render(pair.After, colors)
	require.NoError(t, err)
	assert.True(t, frames[0].Equal(after))
}

func TestAnimator_RejectsBrokenPair(t *testing.T) {
	a := newTestAnimator(t, blockRenderer{}, 1, 2)
	pair := testPair()
	pair.After = []string{"a", "x"}

	_, err := a.Animate(pair, AssignColors(testPair(), DefaultPalette))
	var ce *ConsistencyError
	assert.True(t, errors.As(err, &ce))
}

func TestNewAnimator_Errors(t *testing.T) {
	scene := newTestScene(t, blockRenderer{})
	tests := []struct {
		name             string
		scene            *SceneRenderer
		hold, transition int
	}{
		{"nil scene", nil, 1, 1},
		{"negative hold", scene, -1, 10},
		{"zero transition", scene, 5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAnimator(tt.scene, tt.hold, tt.transition)
			var ce *ConfigError
			assert.True(t, errors.As(err, &ce))
		})
	}
}

func TestFadeAlphas(t *testing.T) {
	tests := []struct {
		i, t          int
		fadeOut, fadeIn uint8
	}{
		{0, 10, 229, 25},
		{4, 10, 127, 127},
		{9, 10, 0, 255},
		{0, 4, 191, 63},
		{0, 1, 0, 255},
	}
	for _, tt := range tests {
		out, in := FadeAlphas(tt.i, tt.t)
		assert.Equal(t, tt.fadeOut, out, "fade out %d/%d", tt.i, tt.t)
		assert.Equal(t, tt.fadeIn, in, "fade in %d/%d", tt.i, tt.t)
	}
}

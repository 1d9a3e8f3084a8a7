package glyphswap

import (
	"math"
)

// Default animation timing, in frames.
const (
	DefaultHoldFrames       = 5
	DefaultTransitionFrames = 10
)

// Animation is an ordered list of frames: hold copies of the before scene,
// the cross-fade frames, then hold copies of the after scene. Hold frames
// share one Frame value.
type Animation []*Frame

// Animator synthesizes the substitution cross-fade.
type Animator struct {
	scene      *SceneRenderer
	hold       int
	transition int
}

// NewAnimator creates an animator holding each end scene for hold frames
// and cross-fading over transition frames.
func NewAnimator(scene *SceneRenderer, hold, transition int) (*Animator, error) {
	if scene == nil {
		return nil, configErrorf("scene renderer", "nil")
	}
	if hold < 0 {
		return nil, configErrorf("hold_frames", "%d must not be negative", hold)
	}
	if transition < 1 {
		return nil, configErrorf("transition_frames", "%d must be at least 1", transition)
	}
	return &Animator{scene: scene, hold: hold, transition: transition}, nil
}

// FrameCount returns the length of every animation: 2*hold + transition.
func (a *Animator) FrameCount() int {
	return 2*a.hold + a.transition
}

// FadeAlphas returns the straight alphas of the outgoing and incoming glyph
// for cross-fade frame i of t, with progress p = (i+1)/t:
// floor(255*(1-p)) and floor(255*p). They need not sum to 255.
func FadeAlphas(i, t int) (fadeOut, fadeIn uint8) {
	p := float64(i+1) / float64(t)
	return uint8(math.Floor(255 * (1 - p))), uint8(math.Floor(255 * p))
}

// Animate renders the full animation for pair. Only the glyph at
// pair.Position changes; every other symbol is drawn exactly as in the
// static scenes. At the last cross-fade frame the old glyph is fully
// transparent, so that frame equals the after scene.
func (a *Animator) Animate(pair SequencePair, colors *ColorAssignment) (Animation, error) {
	if err := pair.Validate(); err != nil {
		return nil, err
	}

	before, err := a.scene.Render(pair.Before, colors)
	if err != nil {
		return nil, err
	}
	after, err := a.scene.Render(pair.After, colors)
	if err != nil {
		return nil, err
	}

	frames := make(Animation, 0, a.FrameCount())
	for i := 0; i < a.hold; i++ {
		frames = append(frames, before)
	}
	for i := 0; i < a.transition; i++ {
		f, err := a.crossfade(pair, colors, i)
		if err != nil {
			return nil, err
		}
		frames = append(frames, f)
	}
	for i := 0; i < a.hold; i++ {
		frames = append(frames, after)
	}

	Logger().Debug("animation rendered",
		"symbols", pair.Len(),
		"position", pair.Position,
		"frames", len(frames))
	return frames, nil
}

// crossfade renders transition frame i: background, then every symbol in
// order, with the substituted cell drawing the old glyph and then the new
// glyph at their fade alphas.
func (a *Animator) crossfade(pair SequencePair, colors *ColorAssignment, i int) (*Frame, error) {
	cfg := a.scene.cfg
	canvas := newCanvas(cfg.Width, cfg.Height, cfg.Background)
	oldAlpha, newAlpha := FadeAlphas(i, a.transition)

	for k, center := range a.scene.CellCenters(pair.Len()) {
		if k != pair.Position {
			if err := a.scene.drawSymbol(canvas, pair.Before[k], center, colors, 255); err != nil {
				return nil, err
			}
			continue
		}
		if err := a.scene.drawSymbol(canvas, pair.Old, center, colors, oldAlpha); err != nil {
			return nil, err
		}
		if err := a.scene.drawSymbol(canvas, pair.New, center, colors, newAlpha); err != nil {
			return nil, err
		}
	}
	return &Frame{img: canvas}, nil
}

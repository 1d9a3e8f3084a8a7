package glyphswap

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"sync"

	"github.com/gogpu/glyphswap/glyph"
)

// Generator assembles task instances. It is strictly sequential: one task
// is fully produced, including its video, before the next begins, and all
// randomness comes from a single source drawn in a fixed order per task.
//
// A Generator is not safe for concurrent use.
type Generator struct {
	opts     Options
	sampler  *Sampler
	scene    *SceneRenderer
	animator *Animator
	encoder  VideoEncoder
	prompt   Prompter
	rng      *rand.Rand
	videoDir string

	warnVideo sync.Once
}

// NewGenerator validates opts and wires the collaborators. Every
// configuration problem, including catalog symbols no glyph renderer can
// draw, is reported here before any sampling happens.
func NewGenerator(opts Options, options ...GeneratorOption) (*Generator, error) {
	o := defaultGeneratorOptions()
	for _, opt := range options {
		opt(&o)
	}

	if opts.Domain == "" {
		return nil, configErrorf("domain", "must not be empty")
	}
	sampler, err := NewSampler(opts.Catalog, opts.MinLength, opts.MaxLength)
	if err != nil {
		return nil, err
	}

	if o.glyphs == nil {
		if o.glyphs, err = glyph.Default(""); err != nil {
			return nil, err
		}
	}
	for _, s := range opts.Catalog.symbols {
		if !o.glyphs.Has(s) {
			return nil, configErrorf("symbol catalog", "no glyph renderer can draw %q from %s", s, opts.Catalog.Name())
		}
	}

	scene, err := NewSceneRenderer(opts.Scene, o.glyphs)
	if err != nil {
		return nil, err
	}
	animator, err := NewAnimator(scene, opts.HoldFrames, opts.TransitionFrames)
	if err != nil {
		return nil, err
	}

	if o.rng == nil {
		o.rng = NewRand(opts.Seed)
	}
	if o.videoDir == "" {
		o.videoDir = filepath.Join(os.TempDir(), opts.Domain+"_videos")
	}

	return &Generator{
		opts:     opts,
		sampler:  sampler,
		scene:    scene,
		animator: animator,
		encoder:  o.encoder,
		prompt:   o.prompter,
		rng:      o.rng,
		videoDir: o.videoDir,
	}, nil
}

// Options returns the generation parameters.
func (g *Generator) Options() Options {
	return g.opts
}

// Scene returns the scene renderer.
func (g *Generator) Scene() *SceneRenderer {
	return g.scene
}

// Animator returns the transition animator.
func (g *Generator) Animator() *Animator {
	return g.animator
}

// TaskID returns the identifier of the index-th task: the domain and the
// zero-padded index.
func (g *Generator) TaskID(index int) string {
	return fmt.Sprintf("%s_%04d", g.opts.Domain, index)
}

// GenerateTask produces the index-th task instance.
func (g *Generator) GenerateTask(ctx context.Context, index int) (*Task, error) {
	id := g.TaskID(index)

	pair := g.sampler.Sample(g.rng)
	if err := pair.Validate(); err != nil {
		return nil, err
	}
	colors := AssignColors(pair, g.opts.Palette)

	before, err := g.scene.Render(pair.Before, colors)
	if err != nil {
		return nil, err
	}
	after, err := g.scene.Render(pair.After, colors)
	if err != nil {
		return nil, err
	}

	var video *VideoArtifact
	if g.opts.Video {
		if video, err = g.renderVideo(ctx, id, pair, colors); err != nil {
			return nil, err
		}
	}

	Logger().Debug("task assembled",
		"task", id,
		"length", pair.Len(),
		"position", pair.Position,
		"video", video != nil)

	return &Task{
		ID:     id,
		Domain: g.opts.Domain,
		Prompt: g.prompt(g.rng, pair.Old, pair.New, pair.Position+1),
		Pair:   pair,
		Before: before,
		After:  after,
		Video:  video,
	}, nil
}

// renderVideo animates pair and encodes it. An unavailable encoder yields
// no video and a single warning per generator.
func (g *Generator) renderVideo(ctx context.Context, id string, pair SequencePair, colors *ColorAssignment) (*VideoArtifact, error) {
	frames, err := g.animator.Animate(pair, colors)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(g.videoDir, 0o755); err != nil {
		return nil, fmt.Errorf("glyphswap: creating video directory: %w", err)
	}

	path := filepath.Join(g.videoDir, id+"_ground_truth."+g.encoder.Format())
	art, err := g.encoder.Encode(ctx, frames, path)
	if errors.Is(err, ErrVideoUnavailable) {
		g.warnVideo.Do(func() {
			Logger().Warn("video encoding unavailable, writing images only",
				"encoder", g.encoder.Format(),
				"error", err)
		})
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("glyphswap: encoding video for %s: %w", id, err)
	}
	return art, nil
}

// Run generates n tasks and hands each to sink as soon as it is complete.
// The first error stops the run; tasks already delivered stay delivered.
// ctx is checked between tasks.
func (g *Generator) Run(ctx context.Context, n int, sink Sink) (int, error) {
	return g.run(ctx, n, sink, nil)
}

// GenerateDataset generates n tasks, delivers each to sink (which may be
// nil) and returns all of them.
func (g *Generator) GenerateDataset(ctx context.Context, n int, sink Sink) ([]*Task, error) {
	tasks := make([]*Task, 0, max(n, 0))
	_, err := g.run(ctx, n, sink, func(t *Task) { tasks = append(tasks, t) })
	return tasks, err
}

func (g *Generator) run(ctx context.Context, n int, sink Sink, keep func(*Task)) (int, error) {
	if n < 0 {
		return 0, configErrorf("num_samples", "%d must not be negative", n)
	}
	log := Logger()
	log.Info("generating dataset",
		"domain", g.opts.Domain,
		"samples", n,
		"symbol_set", g.opts.Catalog.Name(),
		"video", g.opts.Video)

	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		t, err := g.GenerateTask(ctx, i)
		if err != nil {
			return i, fmt.Errorf("glyphswap: task %s: %w", g.TaskID(i), err)
		}
		if sink != nil {
			if err := sink.WriteTask(ctx, t); err != nil {
				return i, fmt.Errorf("glyphswap: writing task %s: %w", t.ID, err)
			}
		}
		if keep != nil {
			keep(t)
		}
		log.Info("generated", "task", t.ID)
	}
	return n, nil
}

// Package glyphswap generates before/after symbol substitution examples for
// visual reasoning datasets.
//
// # Overview
//
// Every task instance shows a row of distinct symbols, the same row with
// the symbol at one position replaced by a symbol not in the row, an
// instruction describing the edit and, optionally, a video in which the old
// glyph cross-fades into the new one.
//
// # Quick Start
//
//	import "github.com/gogpu/glyphswap"
//
//	opts := glyphswap.DefaultOptions()
//	opts.Seed = 42
//
//	g, err := glyphswap.NewGenerator(opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	task, err := g.GenerateTask(ctx, 0)
//	_ = task.Before.SavePNG("first_frame.png")
//	_ = task.After.SavePNG("final_frame.png")
//
// # Architecture
//
// The package is organized into:
//   - Sampling: Catalog, Sampler, SequencePair
//   - Rendering: ColorAssignment, SceneRenderer, Animator, Frame
//   - Assembly: Generator, Task, Sink
//   - Sub-packages: glyph (glyph rasterization), text (fonts), video
//     (encoders), dataset (on-disk writer and index)
//
// # Determinism
//
// All randomness flows through one *rand.Rand, seeded once per run and
// drawn in a fixed order per task. A fixed seed and configuration reproduce
// identical images and instructions. Rendering itself never draws
// randomness.
//
// # Coordinate System
//
// Uses standard raster coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
package glyphswap

// Version is the current version of the library
const Version = "0.1.0"

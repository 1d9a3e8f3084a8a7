package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gogpu/glyphswap"
	"github.com/gogpu/glyphswap/dataset"
	"github.com/gogpu/glyphswap/glyph"
	"github.com/gogpu/glyphswap/internal/config"
	"github.com/gogpu/glyphswap/video"
)

type generateFlags struct {
	numSamples  int
	symbolSet   string
	minLength   int
	maxLength   int
	output      string
	seed        uint64
	noVideos    bool
	videoFormat string
	font        string
}

func (c *cli) generateCmd() *cobra.Command {
	var f generateFlags
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a dataset",
		Long: `Generates --num-samples tasks into <output>/<domain>_task/<task_id>/.

Flags override the configuration file, which overrides the defaults.

Example:
  glyphswap generate --num-samples 50 --symbol-set letters --seed 42`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			f.apply(cmd, cfg)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return c.generate(ctx, cfg)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&f.numSamples, "num-samples", "n", config.DefaultNumSamples, "Number of tasks to generate")
	flags.StringVar(&f.symbolSet, "symbol-set", glyphswap.DefaultSymbolSetName, "Symbol set: shapes, letters, numbers, mixed, custom")
	flags.IntVar(&f.minLength, "min-length", glyphswap.DefaultMinLength, "Minimum sequence length")
	flags.IntVar(&f.maxLength, "max-length", glyphswap.DefaultMaxLength, "Maximum sequence length")
	flags.StringVarP(&f.output, "output", "o", "", "Output directory")
	flags.Uint64Var(&f.seed, "seed", 0, "Random seed (default: derived from the clock)")
	flags.BoolVar(&f.noVideos, "no-videos", false, "Skip transition videos")
	flags.StringVar(&f.videoFormat, "video-format", glyphswap.DefaultVideoFormat, "Video container: mp4, avi, none")
	flags.StringVar(&f.font, "font", "", "TrueType/OpenType font tried before the built-in glyphs")
	return cmd
}

// apply copies explicitly set flags onto cfg.
func (f *generateFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	changed := cmd.Flags().Changed
	if changed("num-samples") {
		cfg.NumSamples = f.numSamples
	}
	if changed("symbol-set") {
		cfg.SymbolSet = f.symbolSet
	}
	if changed("min-length") {
		cfg.MinSequenceLength = f.minLength
	}
	if changed("max-length") {
		cfg.MaxSequenceLength = f.maxLength
	}
	if changed("output") {
		cfg.OutputDir = f.output
	}
	if changed("seed") {
		cfg.RandomSeed = &f.seed
	}
	if f.noVideos {
		cfg.Video.Enabled = false
	}
	if changed("video-format") {
		cfg.Video.Format = f.videoFormat
	}
	if changed("font") {
		cfg.FontPath = f.font
	}
}

func (c *cli) generate(ctx context.Context, cfg *config.Config) error {
	log := c.logger

	seed := uint64(time.Now().UnixNano())
	if cfg.RandomSeed != nil {
		seed = *cfg.RandomSeed
	} else {
		log.Info("no random seed configured, using clock", zap.Uint64("seed", seed))
	}

	opts, err := cfg.Options(seed)
	if err != nil {
		return err
	}
	glyphs, err := glyph.Default(cfg.FontPath)
	if err != nil {
		return err
	}

	var encoder glyphswap.VideoEncoder = glyphswap.NoVideo{}
	if opts.Video {
		if encoder, err = video.Select(cfg.Video.Format, cfg.Video.FPS); err != nil {
			return err
		}
	}

	layout := dataset.NewWriter(cfg.OutputDir)
	var writerOpts []dataset.Option
	if cfg.Index {
		ix, err := dataset.OpenIndex(layout.IndexPath(opts.Domain))
		if err != nil {
			return err
		}
		defer ix.Close()
		if _, err := ix.BeginRun(ctx, opts.Domain, seed); err != nil {
			return err
		}
		writerOpts = append(writerOpts, dataset.WithIndex(ix))
	}
	writer := dataset.NewWriter(cfg.OutputDir, writerOpts...)

	videoDir, err := os.MkdirTemp("", opts.Domain+"_videos-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(videoDir)

	gen, err := glyphswap.NewGenerator(opts,
		glyphswap.WithGlyphs(glyphs),
		glyphswap.WithVideoEncoder(encoder),
		glyphswap.WithVideoDir(videoDir))
	if err != nil {
		return err
	}

	log.Info("starting generation",
		zap.Int("samples", cfg.NumSamples),
		zap.String("symbol_set", opts.Catalog.Name()),
		zap.String("glyphs", glyphs.Name()),
		zap.String("video", encoder.Format()),
		zap.Uint64("seed", seed),
		zap.String("output", writer.DomainDir(opts.Domain)))

	start := time.Now()
	n, err := gen.Run(ctx, cfg.NumSamples, writer)
	if err != nil {
		log.Error("generation stopped", zap.Int("written", n), zap.Error(err))
		return err
	}
	log.Info("generation complete",
		zap.Int("written", n),
		zap.Duration("elapsed", time.Since(start)),
		zap.String("output", writer.DomainDir(opts.Domain)))
	return nil
}

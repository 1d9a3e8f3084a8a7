package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/glyphswap"
	"github.com/gogpu/glyphswap/glyph"
	"github.com/gogpu/glyphswap/internal/config"
)

func (c *cli) previewCmd() *cobra.Command {
	var symbols, out string
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render one scene to a PNG file",
		Long: `Renders the given comma-separated symbols with the configured scene settings.

Example:
  glyphswap preview --symbols "●,▲,★" --out preview.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			seq := splitSymbols(symbols)
			if len(seq) == 0 {
				return fmt.Errorf("--symbols must name at least one symbol")
			}

			opts, err := cfg.Options(0)
			if err != nil {
				return err
			}
			glyphs, err := glyph.Default(cfg.FontPath)
			if err != nil {
				return err
			}
			scene, err := glyphswap.NewSceneRenderer(opts.Scene, glyphs)
			if err != nil {
				return err
			}

			frame, err := scene.Render(seq, glyphswap.NewColorAssignment(opts.Palette, seq...))
			if err != nil {
				return err
			}
			if err := frame.SavePNG(out); err != nil {
				return err
			}
			c.logger.Sugar().Infof("wrote %s (%dx%d, %d symbols)", out, frame.Width(), frame.Height(), len(seq))
			return nil
		},
	}
	cmd.Flags().StringVar(&symbols, "symbols", "", "Comma-separated symbols to render")
	cmd.Flags().StringVarP(&out, "out", "o", "preview.png", "Output PNG file")
	return cmd
}

func splitSymbols(s string) []string {
	var seq []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			seq = append(seq, part)
		}
	}
	return seq
}

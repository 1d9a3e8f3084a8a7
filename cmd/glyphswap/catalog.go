package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gogpu/glyphswap"
	"github.com/gogpu/glyphswap/glyph"
	"github.com/gogpu/glyphswap/internal/config"
)

// resolver is implemented by glyph renderers that delegate to others.
type resolver interface {
	Resolve(symbol string) (glyph.Renderer, bool)
}

func (c *cli) catalogCmd() *cobra.Command {
	var symbolSet, font string
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List symbol sets and the glyph source of every symbol",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("font") {
				cfg.FontPath = font
			}
			glyphs, err := glyph.Default(cfg.FontPath)
			if err != nil {
				return err
			}

			sets := glyphswap.SymbolSets()
			if symbolSet != "" {
				sets = []string{symbolSet}
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, name := range sets {
				catalog, err := glyphswap.LookupCatalog(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s (%d symbols)\n", catalog.Name(), catalog.Len())
				for _, s := range catalog.Symbols() {
					fmt.Fprintf(w, "  %s\t%s\n", s, sourceOf(glyphs, s))
				}
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&symbolSet, "symbol-set", "", "Only list this set")
	cmd.Flags().StringVar(&font, "font", "", "TrueType/OpenType font tried before the built-in glyphs")
	return cmd
}

// sourceOf names the renderer that draws symbol.
func sourceOf(glyphs glyph.Renderer, symbol string) string {
	if r, ok := glyphs.(resolver); ok {
		if src, ok := r.Resolve(symbol); ok {
			return src.Name()
		}
		return "missing"
	}
	if glyphs.Has(symbol) {
		return glyphs.Name()
	}
	return "missing"
}

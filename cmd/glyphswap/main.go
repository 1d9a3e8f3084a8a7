// Command glyphswap generates symbol substitution datasets.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"go.uber.org/zap/zapcore"

	"github.com/gogpu/glyphswap"
)

// cli holds the state shared by all subcommands.
type cli struct {
	verbose    bool
	configPath string

	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "glyphswap",
		Short: "Generate before/after symbol substitution tasks",
		Long: `glyphswap renders rows of distinct symbols, replaces one symbol with another
not in the row and writes the before image, the after image, an instruction
and optionally a cross-fade video for every task.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.initLogger()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
	}

	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable verbose logging")
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "glyphswap.yaml", "Configuration file")

	root.AddCommand(c.generateCmd())
	root.AddCommand(c.catalogCmd())
	root.AddCommand(c.previewCmd())
	root.AddCommand(c.indexCmd())
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), glyphswap.Version)
		},
	})
	return root
}

// initLogger builds the zap logger and routes the library's slog output
// through it.
func (c *cli) initLogger() error {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.DisableStacktrace = true
	if c.verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	c.logger = logger
	glyphswap.SetLogger(slog.New(zapslog.NewHandler(logger.Core())))
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

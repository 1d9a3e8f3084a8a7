package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gogpu/glyphswap/dataset"
	"github.com/gogpu/glyphswap/internal/config"
)

func (c *cli) indexCmd() *cobra.Command {
	var output, domain string
	cmd := &cobra.Command{
		Use:   "index",
		Short: "Summarize a dataset's index",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("output") {
				cfg.OutputDir = output
			}
			if cmd.Flags().Changed("domain") {
				cfg.Domain = domain
			}

			path := dataset.NewWriter(cfg.OutputDir).IndexPath(cfg.Domain)
			if _, err := os.Stat(path); err != nil {
				return fmt.Errorf("no index for %s: %w", cfg.Domain, err)
			}
			ix, err := dataset.OpenIndex(path)
			if err != nil {
				return err
			}
			defer ix.Close()

			s, err := ix.Summary(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "index:  %s\n", path)
			fmt.Fprintf(out, "runs:   %d\n", s.Runs)
			fmt.Fprintf(out, "tasks:  %d\n", s.Tasks)
			fmt.Fprintf(out, "videos: %d\n", s.Videos)
			if s.LastRun != "" {
				fmt.Fprintf(out, "last:   %s (%s)\n", s.LastRun, s.LastRunAt.Format(time.RFC3339))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output directory")
	cmd.Flags().StringVar(&domain, "domain", "", "Task domain")
	return cmd
}

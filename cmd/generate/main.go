package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"navjot.dev/internal/content"
	"navjot.dev/internal/export"
	"navjot.dev/internal/logging"
)

var (
	contentPath string
	publicDir   string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:          "generate <output-dir>",
	Short:        "Export the portfolio as a static site",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		level := "info"
		if verbose {
			level = "debug"
		}
		logger, err := logging.New(level, true)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer func() { _ = logger.Sync() }()

		portfolio, err := content.Load(contentPath)
		if err != nil {
			return err
		}

		opts := export.Options{OutputDir: args[0], PublicDir: publicDir}
		if err := export.Site(cmd.Context(), portfolio, opts, logger); err != nil {
			return err
		}
		logger.Info("Done!", zap.String("output", args[0]))
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&contentPath, "content", "", "portfolio YAML file (defaults to the embedded content)")
	rootCmd.Flags().StringVar(&publicDir, "public", "", "directory of images and downloads to copy alongside the page")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// Package cmd wires the CLI commands.
package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:           "freshly",
	Short:         "Generate and deploy the Freshly marketing site",
	Long:          "Freshly renders the marketing site from display records into static HTML,\npreviews it locally, and deploys it to S3 behind CloudFront.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

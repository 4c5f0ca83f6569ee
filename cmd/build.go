package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/freshlyset/freshly/internal/build"
	"github.com/freshlyset/freshly/internal/config"
	"github.com/freshlyset/freshly/internal/site"
	"github.com/freshlyset/freshly/internal/styles"
)

var (
	buildOut     string
	buildContent string
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate the static site",
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger()
		if err != nil {
			return err
		}
		defer log.Sync()

		builder, err := newBuilder(log)
		if err != nil {
			return err
		}
		if err := builder.Build(cmd.Context()); err != nil {
			return err
		}
		color.Green("Site generated in %s", builder.OutputDir)
		return nil
	},
}

func init() {
	buildCmd.Flags().StringVar(&buildOut, "out", "", "output directory (default from FRESHLY_OUTPUT_DIR)")
	buildCmd.Flags().StringVar(&buildContent, "content", "", "TOML content file overlaying the built-in records")
	rootCmd.AddCommand(buildCmd)
}

// newBuilder assembles a Builder from env config plus build flags. Shared
// by the build, deploy and serve commands.
func newBuilder(log *zap.Logger) (*build.Builder, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	out := cfg.OutputDir
	if buildOut != "" {
		out = buildOut
	}

	content := site.Default()
	if buildContent != "" {
		content, err = site.Load(buildContent)
		if err != nil {
			return nil, err
		}
	}

	if cfg.AnalyticsID == "" {
		fmt.Fprintln(color.Output, color.YellowString("FRESHLY_ANALYTICS_ID not set; pages are built without analytics."))
	}

	return &build.Builder{
		OutputDir:   out,
		StaticDir:   cfg.StaticDir,
		AnalyticsID: cfg.AnalyticsID,
		Content:     content,
		Styles:      styles.Default(),
		Log:         log,
	}, nil
}

// runBuild is the build step reused by deploy and serve.
func runBuild(ctx context.Context, log *zap.Logger) (*build.Builder, error) {
	builder, err := newBuilder(log)
	if err != nil {
		return nil, err
	}
	if err := builder.Build(ctx); err != nil {
		return nil, err
	}
	return builder, nil
}

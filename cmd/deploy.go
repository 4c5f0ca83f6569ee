package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/freshlyset/freshly/internal/config"
	"github.com/freshlyset/freshly/internal/deploy"
)

var (
	deployBucket    string
	deploySkipBuild bool
)

var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Upload the site to S3 and refresh CloudFront",
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger()
		if err != nil {
			return err
		}
		defer log.Sync()

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		bucket := cfg.Bucket
		if deployBucket != "" {
			bucket = deployBucket
		}
		if bucket == "" {
			return fmt.Errorf("no bucket given: use --bucket or set FRESHLY_BUCKET")
		}

		out := cfg.OutputDir
		if !deploySkipBuild {
			builder, err := runBuild(cmd.Context(), log)
			if err != nil {
				return err
			}
			out = builder.OutputDir
		}

		site, err := deploy.New(cmd.Context(), bucket, out, log)
		if err != nil {
			return err
		}
		if err := site.Push(cmd.Context()); err != nil {
			return err
		}
		distID, err := site.EnsureDistribution(cmd.Context())
		if err != nil {
			return err
		}
		if err := site.Invalidate(cmd.Context(), distID); err != nil {
			return err
		}

		color.Green("Deployed %s to s3://%s (distribution %s)", out, bucket, distID)
		return nil
	},
}

func init() {
	deployCmd.Flags().StringVar(&deployBucket, "bucket", "", "S3 bucket to deploy to (default from FRESHLY_BUCKET)")
	deployCmd.Flags().BoolVar(&deploySkipBuild, "skip-build", false, "deploy the existing output directory without rebuilding")
	rootCmd.AddCommand(deployCmd)
}

package cmd

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/freshlyset/freshly/internal/config"
	"github.com/freshlyset/freshly/internal/serve"
)

var (
	serveAddr  string
	serveWatch bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Preview the site locally",
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger()
		if err != nil {
			return err
		}
		defer log.Sync()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		addr := cfg.Addr
		if serveAddr != "" {
			addr = serveAddr
		}

		builder, err := runBuild(ctx, log)
		if err != nil {
			return err
		}

		srv := &serve.Server{
			Addr: addr,
			Dir:  builder.OutputDir,
			Log:  log,
		}
		if serveWatch {
			srv.WatchDirs = []string{cfg.StaticDir}
			if buildContent != "" {
				srv.WatchDirs = append(srv.WatchDirs, filepath.Dir(buildContent))
			}
			srv.Rebuild = func(ctx context.Context) error {
				_, err := runBuild(ctx, log)
				return err
			}
		}

		color.Green("Serving %s on http://localhost%s", builder.OutputDir, addr)
		return srv.Run(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from FRESHLY_ADDR)")
	serveCmd.Flags().BoolVar(&serveWatch, "watch", false, "rebuild when content or static files change")
	serveCmd.Flags().StringVar(&buildContent, "content", "", "TOML content file overlaying the built-in records")
	rootCmd.AddCommand(serveCmd)
}

// Package build renders the site to an output directory: one HTML file per
// page, the static asset tree, and the styles config file.
package build

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	g "maragu.dev/gomponents"

	"github.com/freshlyset/freshly/internal/site"
	"github.com/freshlyset/freshly/internal/styles"
	"github.com/freshlyset/freshly/internal/ui"
)

// StylesConfigFile is the name of the generated CSS tool config, written
// next to the output directory.
const StylesConfigFile = "tailwind.config.js"

// Builder renders a site. Zero-value fields fall back to defaults where one
// exists; OutputDir is required.
type Builder struct {
	OutputDir   string
	StaticDir   string
	AnalyticsID string
	Content     site.Content
	Styles      styles.Config
	Log         *zap.Logger
}

type page struct {
	name  string
	title string
	body  g.Node
}

func (b *Builder) pages() []page {
	return []page{
		{name: "index.html", title: b.Content.SiteName, body: ui.HomePage(b.Content)},
		{name: "about.html", title: "About | " + b.Content.SiteName, body: ui.AboutPage(b.Content)},
		{name: "error.html", title: "Not Found | " + b.Content.SiteName, body: ui.ErrorPage(b.Content)},
	}
}

// Build renders every page, copies static assets and writes the styles
// config. Two builds from the same content produce identical files.
func (b *Builder) Build(ctx context.Context) error {
	if b.OutputDir == "" {
		return fmt.Errorf("output directory is required")
	}
	if b.Log == nil {
		b.Log = zap.NewNop()
	}
	if b.Styles.ContentGlobs == nil && b.Styles.DarkMode == "" {
		b.Styles = styles.Default()
	}
	if err := b.Styles.Validate(); err != nil {
		return fmt.Errorf("styles config: %w", err)
	}
	if err := os.MkdirAll(b.OutputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	for _, pg := range b.pages() {
		if err := ctx.Err(); err != nil {
			return err
		}
		path := filepath.Join(b.OutputDir, pg.name)
		if err := writePage(path, pg.title, b.AnalyticsID, pg.body); err != nil {
			return err
		}
		b.Log.Info("generated page", zap.String("path", path))
	}

	if b.StaticDir != "" {
		if _, err := os.Stat(b.StaticDir); err != nil {
			b.Log.Warn("static dir not found; skipping asset copy",
				zap.String("dir", b.StaticDir), zap.Error(err))
		} else {
			dst := filepath.Join(b.OutputDir, "static")
			if err := copyTree(b.StaticDir, dst); err != nil {
				return fmt.Errorf("copy static assets: %w", err)
			}
			b.Log.Info("copied static assets", zap.String("from", b.StaticDir), zap.String("to", dst))
		}
	}

	configPath := filepath.Join(filepath.Dir(b.OutputDir), StylesConfigFile)
	if err := writeStylesConfig(configPath, b.Styles); err != nil {
		return err
	}
	b.Log.Info("wrote styles config", zap.String("path", configPath))

	return nil
}

func writePage(path, title, analyticsID string, body g.Node) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	if err := ui.Document(title, analyticsID, body).Render(w); err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func writeStylesConfig(path string, cfg styles.Config) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	if err := cfg.Render(file); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func copyTree(src, dst string) error {
	return filepath.Walk(src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		destPath := filepath.Join(dst, relPath)

		if info.IsDir() {
			return os.MkdirAll(destPath, info.Mode())
		}
		return copyFile(path, destPath)
	})
}

func copyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	dstFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer dstFile.Close()

	_, err = io.Copy(dstFile, srcFile)
	return err
}

// Package export writes the portfolio as a static site.
package export

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"navjot.dev/internal/models"
	"navjot.dev/internal/views"
	"navjot.dev/web"
)

// Options controls a static export
type Options struct {
	// OutputDir receives index.html and static/
	OutputDir string
	// PublicDir, when set, is copied into OutputDir as is
	PublicDir string
}

// Site renders the home page and copies its assets into opts.OutputDir
func Site(ctx context.Context, p *models.Portfolio, opts Options, logger *zap.Logger) error {
	if opts.OutputDir == "" {
		return fmt.Errorf("output directory is required")
	}
	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	index := filepath.Join(opts.OutputDir, "index.html")
	if err := writeIndex(ctx, index, p); err != nil {
		return err
	}
	logger.Info("Wrote page", zap.String("path", index))

	n, err := copyTree(ctx, web.Static(), filepath.Join(opts.OutputDir, "static"))
	if err != nil {
		return fmt.Errorf("failed to copy static assets: %w", err)
	}
	logger.Info("Copied static assets", zap.Int("files", n))

	if opts.PublicDir != "" {
		n, err := copyTree(ctx, os.DirFS(opts.PublicDir), opts.OutputDir)
		if err != nil {
			return fmt.Errorf("failed to copy %s: %w", opts.PublicDir, err)
		}
		logger.Info("Copied public files", zap.String("from", opts.PublicDir), zap.Int("files", n))
	}
	return nil
}

func writeIndex(ctx context.Context, path string, p *models.Portfolio) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	page := views.Page{Portfolio: p}
	if err := views.Component(views.Home(page)).Render(ctx, f); err != nil {
		f.Close()
		return fmt.Errorf("failed to render %s: %w", path, err)
	}
	return f.Close()
}

// copyTree copies every regular file in src under dst and returns the count
func copyTree(ctx context.Context, src fs.FS, dst string) (int, error) {
	count := 0
	err := fs.WalkDir(src, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		target := filepath.Join(dst, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if err := copyFile(src, path, target); err != nil {
			return err
		}
		count++
		return nil
	})
	return count, err
}

func copyFile(src fs.FS, path, target string) error {
	in, err := src.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(target)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

package main

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/yosssi/gohtml"
	"go.uber.org/zap"

	"github.com/vpawar/folio/internal/assets"
	"github.com/vpawar/folio/internal/content"
	"github.com/vpawar/folio/internal/views"
)

var (
	exportDir    string
	exportPretty bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the page and its assets to a directory",
	Long: `Renders the portfolio once and writes index.html plus the static
assets it references, ready to upload to any static file host.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := content.NewStore(cfg.ContentFile, logger)
		if err != nil {
			return err
		}
		written, err := export(exportDir, store.Sections(), exportPretty)
		if err != nil {
			return err
		}
		logger.Info("export complete", zap.String("dir", exportDir), zap.Strings("files", written))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportDir, "out", "o", "dist", "output directory")
	exportCmd.Flags().BoolVar(&exportPretty, "pretty", true, "indent the generated HTML")
}

// export renders sections into dir and returns the files written, relative
// to dir.
func export(dir string, sections views.Sections, pretty bool) ([]string, error) {
	var page bytes.Buffer
	if err := views.RenderPage(&page, "static", sections); err != nil {
		return nil, err
	}

	out := page.Bytes()
	if pretty {
		out = gohtml.FormatBytes(out)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", dir, err)
	}
	if err := os.WriteFile(filepath.Join(dir, "index.html"), out, 0o644); err != nil {
		return nil, fmt.Errorf("writing index.html: %w", err)
	}
	written := []string{"index.html"}

	static := assets.Static()
	err := fs.WalkDir(static, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(static, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dir, "static", filepath.FromSlash(path))
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(target, data, 0o644); err != nil {
			return err
		}
		written = append(written, filepath.ToSlash(filepath.Join("static", path)))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("copying static assets: %w", err)
	}

	return written, nil
}

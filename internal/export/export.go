// Package export writes gallery panels to image files and series collections
// to spreadsheet workbooks.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/alexisbeaulieu97/econviz/internal/chart"
	"github.com/alexisbeaulieu97/econviz/internal/gallery"
	"github.com/alexisbeaulieu97/econviz/internal/logger"
	"github.com/alexisbeaulieu97/econviz/internal/series"
	vizerrors "github.com/alexisbeaulieu97/econviz/pkg/errors"
)

// Exporter writes render-pass output to disk.
type Exporter struct {
	logger *logger.Logger
}

// New returns an Exporter. log may be nil.
func New(log *logger.Logger) *Exporter {
	return &Exporter{logger: log.Component("export")}
}

// Images renders each panel to dir as <region>_<index>_<slug>.<ext> and
// returns the written paths in panel order.
func (e *Exporter) Images(ctx context.Context, dir string, region series.Region, panels []gallery.Panel, format chart.Format, width int) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	paths := make([]string, 0, len(panels))
	for _, p := range panels {
		if err := ctx.Err(); err != nil {
			return paths, fmt.Errorf("export cancelled: %w", err)
		}

		path := filepath.Join(dir, ImageName(region, p, format))
		if err := writeImage(path, p, format, width); err != nil {
			e.logger.Error(err, "panel export failed", "panel", p.Title, "path", path)
			return paths, vizerrors.NewRenderError(p.Title, err)
		}
		e.logger.Debug("panel exported", "panel", p.Title, "path", path)
		paths = append(paths, path)
	}

	e.logger.Info("images exported", "region", region.String(), "count", len(paths), "dir", dir)
	return paths, nil
}

func writeImage(path string, p gallery.Panel, format chart.Format, width int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return chart.Render(f, p.Figure, format, width)
}

// ImageName is the file name used for a panel, e.g. "us_02_gdp-growth.png".
func ImageName(region series.Region, p gallery.Panel, format chart.Format) string {
	return fmt.Sprintf("%s_%02d_%s.%s", region, p.Index, Slug(p.Title), format.Ext())
}

// Slug lower-cases s and replaces runs of non-alphanumerics with a hyphen.
func Slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// Package site holds the output plumbing around the rendering core: writing
// the HTML page and its stylesheet to disk, computing the stylesheet href,
// rebuilding on dataset changes, and serving a local preview.
package site

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goliatone/go-magnitude/pkg/dataset"
	"github.com/goliatone/go-magnitude/pkg/orchestrator"
	"github.com/goliatone/go-magnitude/pkg/renderers/page"
)

const stylesheetName = "index.css"

// DefaultHTMLFilename is the page output path used when the caller does not
// choose one.
const DefaultHTMLFilename = "orders-of-magnitude.html"

// DefaultCSSFilename is the stylesheet output path used when the caller does
// not choose one.
const DefaultCSSFilename = "orders-of-magnitude.css"

// Builder renders the configured datasets and writes the page plus its
// stylesheet to disk.
type Builder struct {
	gen      *orchestrator.Orchestrator
	configs  []dataset.Config
	renderer string
	assets   fs.FS
}

// NewBuilder wires a Builder around an orchestrator and an ordered dataset
// configuration. An empty renderer name selects the orchestrator default.
func NewBuilder(gen *orchestrator.Orchestrator, configs []dataset.Config, renderer string) *Builder {
	return &Builder{
		gen:      gen,
		configs:  configs,
		renderer: renderer,
		assets:   page.AssetsFS(),
	}
}

// Build generates the page and writes both output files. Every dataset is
// loaded before anything is written, so an invalid record never produces a
// partial site.
func (b *Builder) Build(ctx context.Context, htmlPath, cssPath string) error {
	href, err := StylesheetHref(htmlPath, cssPath)
	if err != nil {
		return err
	}

	html, err := b.gen.Generate(ctx, orchestrator.Request{
		Datasets:       b.configs,
		Renderer:       b.renderer,
		StylesheetHref: href,
	})
	if err != nil {
		return err
	}

	css, err := fs.ReadFile(b.assets, stylesheetName)
	if err != nil {
		return fmt.Errorf("site: read stylesheet asset: %w", err)
	}

	if err := os.WriteFile(htmlPath, html, 0o644); err != nil {
		return fmt.Errorf("site: write %s: %w", htmlPath, err)
	}
	if err := os.WriteFile(cssPath, css, 0o644); err != nil {
		return fmt.Errorf("site: write %s: %w", cssPath, err)
	}
	return nil
}

// StylesheetHref builds a browser-safe CSS href relative to the HTML file
// when possible, falling back to the absolute path when the two outputs do
// not share a root.
func StylesheetHref(htmlPath, cssPath string) (string, error) {
	absHTML, err := filepath.Abs(htmlPath)
	if err != nil {
		return "", fmt.Errorf("site: resolve %s: %w", htmlPath, err)
	}
	absCSS, err := filepath.Abs(cssPath)
	if err != nil {
		return "", fmt.Errorf("site: resolve %s: %w", cssPath, err)
	}

	rel, err := filepath.Rel(filepath.Dir(absHTML), absCSS)
	if err != nil {
		// Windows paths on different drives have no relative form.
		return filepath.ToSlash(absCSS), nil
	}
	return filepath.ToSlash(rel), nil
}
